package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/types"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	page   types.Page
	hints  string
	right  string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for the given page
func New(page types.Page, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		page:   page,
		hints:  GetHints(page),
		width:  width,
		styles: styles,
	}
}

// WithHints replaces the page hints
func (sb StatusBar) WithHints(hints string) StatusBar {
	sb.hints = hints
	return sb
}

// WithRight sets text shown flush right, such as the signed-in user
func (sb StatusBar) WithRight(text string) StatusBar {
	sb.right = text
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusPage.Render(sb.page.String())

	content := badge
	if sb.hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		// StatusBar padding takes one column on each side
		room := sb.width - 2 - lipgloss.Width(badge) - lipgloss.Width(separator)
		hints := clip(sb.hints, room)
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, sb.styles.StatusHint.Render(hints))
	}

	if sb.right != "" {
		gap := sb.width - 2 - lipgloss.Width(content) - lipgloss.Width(sb.right)
		if gap > 0 {
			content += lipgloss.NewStyle().Width(gap).Render("") + sb.right
		}
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
