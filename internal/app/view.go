package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/pointer"
	"github.com/journeyq/dashboard/internal/types"
	"github.com/journeyq/dashboard/internal/ui/bookingtable"
	"github.com/journeyq/dashboard/internal/ui/overlay"
	"github.com/journeyq/dashboard/internal/ui/statusbar"
)

const (
	// originX is the left padding of the App style
	originX = 1
	// contentTop is the first row below the header and its spacer
	contentTop = 2
	// searchGap separates the status menu from the search box
	searchGap = 2
)

// View renders the dashboard
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	m.layout()

	var body string
	if !m.overlays.IsEmpty() {
		box := overlay.New().Render(m.overlays.Current())
		body = lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
	} else {
		content := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", m.renderPage())
		body = m.styles.App.Render(content)

		if toastView := m.toaster.Render(m.toasts, m.width); toastView != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView))
		}
		body = lipgloss.Place(m.width, m.height-1, lipgloss.Left, lipgloss.Top, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

// layout records where each menu is drawn so pointer presses can be
// matched against it
func (m Model) layout() {
	m.statusMenu.SetOrigin(originX, contentTop)
	m.serviceMenu.SetOrigin(originX, contentTop+lipgloss.Height(m.renderProfile()))
}

// searchBounds is the screen region of the search box
func (m Model) searchBounds() pointer.Rect {
	return pointer.Rect{
		X: originX + m.statusMenu.Width() + searchGap,
		Y: contentTop,
		W: lipgloss.Width(m.renderSearchBox()),
		H: 3,
	}
}

type tabSpan struct {
	page       types.Page
	start, end int
}

// tabSpans returns the header columns occupied by each page tab
func (m Model) tabSpans() []tabSpan {
	x := originX + lipgloss.Width(m.renderTitle()) + 2
	spans := make([]tabSpan, 0, len(types.Pages))
	for _, p := range types.Pages {
		w := lipgloss.Width(m.renderTab(p))
		spans = append(spans, tabSpan{page: p, start: x, end: x + w})
		x += w
	}
	return spans
}

func (m Model) renderTitle() string {
	return m.styles.Header.Render("JourneyQ")
}

func (m Model) renderTab(p types.Page) string {
	if p == m.page {
		return m.styles.TabActive.Render(p.String())
	}
	return m.styles.Tab.Render(p.String())
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(types.Pages))
	for _, p := range types.Pages {
		tabs = append(tabs, m.renderTab(p))
	}
	return m.renderTitle() + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatusBar() string {
	sb := statusbar.New(m.page, m.width, m.styles)
	if m.searching {
		sb = sb.WithHints(statusbar.SearchHints)
	}
	if m.user != nil {
		sb = sb.WithRight(m.user.Name)
	}
	return sb.Render()
}

func (m Model) renderPage() string {
	switch m.page {
	case types.PageBookings:
		return m.renderBookings()
	case types.PagePayments:
		return m.renderPayments()
	case types.PageSettings:
		return m.renderSettings()
	default:
		return m.renderOverview()
	}
}

func (m Model) renderOverview() string {
	var intro string
	if m.user != nil {
		intro = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Heading.Render("Welcome back, "+m.user.Name),
			m.styles.Muted.Render(fmt.Sprintf("%s · %s · ★ %.1f (%d reviews)",
				m.user.BusinessName, m.user.ServiceType.Label(), m.user.Rating, m.user.TotalReviews)),
		)
	} else {
		intro = m.styles.Heading.Render("Welcome to JourneyQ")
	}

	stats := domain.ComputeStats(m.bookings)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Total Bookings", fmt.Sprintf("%d", stats.Total)),
		m.statCard("Revenue", bookingtable.Money(stats.Revenue)),
		m.statCard("Pending Payments", bookingtable.Money(stats.Pending)),
		m.statCard("Confirmation Rate", fmt.Sprintf("%.0f%%", stats.ConfirmationRate())),
	)

	recent := domain.DefaultSort().Apply(m.bookings)
	if len(recent) > 3 {
		recent = recent[:3]
	}
	lines := []string{m.styles.Heading.Render("Recent Bookings")}
	for _, b := range recent {
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			fit(b.CustomerName, 16),
			fit(b.ServiceName, 26),
			m.styles.Amount.Render(fit(bookingtable.Money(b.TotalAmount), 8)),
			m.styles.BookingStatus(b.Status).Render(b.Status.Label()),
		))
	}
	if len(recent) == 0 {
		lines = append(lines, m.styles.Muted.Render("No bookings yet"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, intro, "", cards, "", strings.Join(lines, "\n"))
}

func (m Model) statCard(label, value string) string {
	return m.styles.StatCard.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.StatLabel.Render(label),
		m.styles.StatValue.Render(value),
	))
}

func (m Model) renderSearchBox() string {
	style := m.styles.DropdownTrigger
	if m.searching {
		style = m.styles.DropdownTriggerOpen
	}
	return style.Render(m.search.View())
}

func (m Model) renderBookings() string {
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statusMenu.View(),
		strings.Repeat(" ", searchGap),
		m.renderSearchBox(),
	)

	visible := m.visibleBookings()
	summary := m.styles.Muted.Render(fmt.Sprintf("Showing %d of %d bookings · sort: %s",
		len(visible), len(m.bookings), m.sort))

	table := bookingtable.New(visible, m.width-2*originX, m.styles)
	table.SetCursor(m.cursor)

	return lipgloss.JoinVertical(lipgloss.Left, controls, summary, "", table.Render())
}

func (m Model) renderPayments() string {
	stats := domain.ComputeStats(m.bookings)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Received", bookingtable.Money(stats.Revenue)),
		m.statCard("Pending", bookingtable.Money(stats.Pending)),
		m.statCard("Refunded", bookingtable.Money(stats.Refunded)),
	)

	table := bookingtable.NewPayments(m.payments(), m.width-2*originX, m.styles)
	table.SetCursor(m.payCursor)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Heading.Render("Payments"),
		"",
		cards,
		"",
		table.Render(),
	)
}

// renderProfile renders the settings block above the service type menu
func (m Model) renderProfile() string {
	if m.user == nil {
		return m.styles.Heading.Render("Profile")
	}
	u := m.user
	fields := []string{
		field("Name", u.Name),
		field("Business", u.BusinessName),
		field("Email", u.Email),
		field("Phone", u.Phone),
		field("Address", u.Address),
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Heading.Render("Profile"),
		strings.Join(fields, "\n"),
		"",
		m.styles.StatLabel.Render("Service Type"),
	)
}

func (m Model) renderSettings() string {
	if m.user == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderProfile(),
			m.styles.Muted.Render("Not signed in. Run journeyq --email you@example.com to sign in."),
		)
	}

	hint := "Ctrl+S to save"
	if m.draft.serviceType != m.user.ServiceType {
		hint = "Unsaved changes · " + hint
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderProfile(),
		m.serviceMenu.View(),
		"",
		m.styles.Muted.Render(hint),
	)
}

func field(label, value string) string {
	return fit(label+":", 10) + value
}

// fit truncates or pads s to exactly w columns
func fit(s string, w int) string {
	runes := []rune(s)
	if len(runes) > w {
		if w <= 1 {
			return string(runes[:w])
		}
		return string(runes[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(runes))
}
