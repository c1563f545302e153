package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/toast"
	"github.com/journeyq/dashboard/internal/types"
	"github.com/stretchr/testify/assert"
)

func viewLines(view string) []string {
	return strings.Split(strings.TrimRight(view, "\n"), "\n")
}

func TestView_Loading(t *testing.T) {
	m := New(Dependencies{Logger: discardLogger()})
	defer m.queue.Close()

	assert.Equal(t, "Loading...", m.View())
}

func TestViewHeight(t *testing.T) {
	m, h := newTestModel(t)

	for _, page := range types.Pages {
		t.Run(page.String(), func(t *testing.T) {
			m = goTo(t, m, page)
			lines := viewLines(m.View())
			if len(lines) != m.height {
				t.Errorf("view height: got %d lines, want %d", len(lines), m.height)
			}
		})
	}

	t.Run("with toasts", func(t *testing.T) {
		h.queue.Enqueue(toast.Options{Title: "Booking Updated", Description: "Booking status changed to confirmed"})
		m = send(t, m, toastsChangedMsg{})
		if lines := viewLines(m.View()); len(lines) > m.height {
			t.Errorf("view with toasts is too tall: got %d lines, want %d", len(lines), m.height)
		}
	})

	t.Run("with overlay", func(t *testing.T) {
		m = send(t, m, key("?"))
		if lines := viewLines(m.View()); len(lines) > m.height {
			t.Errorf("view with overlay is too tall: got %d lines, want %d", len(lines), m.height)
		}
	})
}

func TestView_Header(t *testing.T) {
	m, _ := newTestModel(t)
	header := viewLines(m.View())[0]

	for _, want := range []string{"JourneyQ", "Overview", "Bookings", "Settings"} {
		assert.Contains(t, header, want)
	}
}

func TestView_Overview(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Welcome back, John Smith")
	assert.Contains(t, view, "Grand Vista Hotel")
	assert.Contains(t, view, "Hotel Provider")
	assert.Contains(t, view, "Total Bookings")
	// Bookings 1 and 3 are paid
	assert.Contains(t, view, "$1344.00")
	assert.Contains(t, view, "100%")
	assert.Contains(t, view, "Recent Bookings")
}

func TestView_Bookings(t *testing.T) {
	m, _ := newTestModel(t)
	m = goTo(t, m, types.PageBookings)
	view := m.View()

	assert.Contains(t, view, "All Status")
	assert.Contains(t, view, "customers or services")
	assert.Contains(t, view, "Showing 4 of 4 bookings")
	for _, name := range []string{"Alice Johnson", "Bob Wilson", "Carol Davis", "David Lee"} {
		assert.Contains(t, view, name)
	}

	m = send(t, m, key("f"))
	open := m.View()
	assert.Contains(t, open, "Cancelled", "open menu lists every status")
	assert.Contains(t, open, "✓")
}

func TestView_BookingsEmpty(t *testing.T) {
	m, _ := newTestModel(t)
	m = goTo(t, m, types.PageBookings)
	m = send(t, m, key("/"))
	m = typeText(t, m, "nobody")

	assert.Contains(t, m.View(), "No bookings match")
	assert.Contains(t, m.View(), "Type to search", "status bar shows search hints")
}

func TestView_Payments(t *testing.T) {
	m, _ := newTestModel(t)
	m = goTo(t, m, types.PagePayments)
	view := m.View()

	assert.Contains(t, view, "Received")
	assert.Contains(t, view, "$1344.00")
	assert.Contains(t, view, "$953.00")
	assert.Contains(t, view, "David Lee")
	assert.Contains(t, view, "r: refund")

	m = send(t, m, key("G"))
	m = send(t, m, key("r"))
	assert.NotContains(t, m.View(), "$1344.00", "received total drops")
	assert.Contains(t, m.View(), "refunded")
}

func TestView_Settings(t *testing.T) {
	m, _ := newTestModel(t)
	m = goTo(t, m, types.PageSettings)
	view := m.View()

	assert.Contains(t, view, "Profile")
	assert.Contains(t, view, "john@example.com")
	assert.Contains(t, view, "Service Type")
	assert.Contains(t, view, "Hotel Provider")
	assert.NotContains(t, view, "Unsaved changes")

	m.serviceMenu.Menu().Select("travel-service")
	view = m.View()
	assert.Contains(t, view, "Travel Service")
	assert.Contains(t, view, "Unsaved changes")
}

func TestView_ServiceMenuOrigin(t *testing.T) {
	m, _ := newTestModel(t)
	m = goTo(t, m, types.PageSettings)
	lines := viewLines(m.View())

	b := m.serviceMenu.Menu().Bounds()
	// The trigger's top border sits on the recorded row
	assert.Contains(t, lines[b.Y], "╭")
	assert.Contains(t, lines[b.Y+1], "Hotel Provider")
}

func TestView_Toasts(t *testing.T) {
	m, h := newTestModel(t)
	h.queue.Enqueue(toast.Options{Title: "Profile updated", Description: "Your profile has been saved."})
	m = send(t, m, toastsChangedMsg{})

	view := m.View()
	assert.Contains(t, view, "Profile updated")
	assert.Contains(t, view, "saved")
}

func TestView_Overlay(t *testing.T) {
	m, _ := newTestModel(t)
	m = goTo(t, m, types.PageBookings)
	m = send(t, m, key("x"))

	view := m.View()
	assert.Contains(t, view, "Cancel Booking")
	assert.Contains(t, view, "David Lee")
}

func TestView_StatusBarShowsUser(t *testing.T) {
	m, _ := newTestModel(t)
	lines := viewLines(m.View())

	last := lines[len(lines)-1]
	assert.Contains(t, last, "John Smith")
	assert.Equal(t, m.width, lipgloss.Width(last))
}

func TestView_NarrowTerminal(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	m = goTo(t, m, types.PageBookings)

	assert.NotPanics(t, func() { m.View() })
}
