package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/journeyq/dashboard/internal/types"
)

// handleMouse routes a mouse event. Outside presses go to the pointer
// dispatcher first so open menus close before anything else reacts.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.overlays.IsEmpty() {
		return m, nil
	}
	m.layout()
	ev := tea.MouseEvent(msg)

	if ev.IsWheel() {
		step := 0
		switch ev.Button {
		case tea.MouseButtonWheelDown:
			step = 1
		case tea.MouseButtonWheelUp:
			step = -1
		}
		switch m.page {
		case types.PageBookings:
			m.cursor += step
		case types.PagePayments:
			m.payCursor += step
		}
		return m, nil
	}

	m.pointer.HandleMouse(msg)

	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if ev.Y == 0 {
		for _, span := range m.tabSpans() {
			if ev.X >= span.start && ev.X < span.end {
				m.setPage(span.page)
				break
			}
		}
		return m, nil
	}

	switch m.page {
	case types.PageBookings:
		if m.statusMenu.HandleMouse(msg) {
			return m, nil
		}
		if m.searchBounds().Contains(ev.X, ev.Y) && !m.searching {
			m.searching = true
			cmd := m.search.Focus()
			return m, cmd
		}
	case types.PageSettings:
		if m.user != nil {
			m.serviceMenu.HandleMouse(msg)
		}
	}
	return m, nil
}
