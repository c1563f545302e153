package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/toast"
	"github.com/journeyq/dashboard/internal/types"
	"github.com/journeyq/dashboard/internal/ui/overlay"
)

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if !m.overlays.IsEmpty() {
		return m, m.overlays.Update(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	// An open menu owns navigation keys
	if m.activeMenuKey(msg) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "tab":
		m.setPage(m.page.Next())
		return m, nil
	case "shift+tab":
		m.setPage(m.page.Prev())
		return m, nil
	case "?":
		return m, m.overlays.Push(overlay.NewHelpOverlay())
	case "ctrl+l":
		return m, tea.ClearScreen
	case "d":
		m.dismissNewestToast()
		return m, nil
	}

	switch m.page {
	case types.PageBookings:
		return m.handleBookingsKey(msg)
	case types.PagePayments:
		return m.handlePaymentsKey(msg)
	case types.PageSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) activeMenuKey(msg tea.KeyMsg) bool {
	switch m.page {
	case types.PageBookings:
		return m.statusMenu.HandleKey(msg)
	case types.PageSettings:
		if m.user == nil {
			return false
		}
		return m.serviceMenu.HandleKey(msg)
	}
	return false
}

func (m Model) handleBookingsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.cursor++
	case "k", "up":
		m.cursor--
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.visibleBookings()) - 1
	case "f":
		m.statusMenu.Focus()
		m.statusMenu.Menu().Open()
	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case "s":
		m.sort.Next()
	case "S":
		m.sort.Toggle(m.sort.Field)
	case "esc":
		m.filter.Search = ""
		m.search.SetValue("")
		m.statusMenu.Menu().Select(domain.StatusAll)
	case "c":
		return m.confirmCurrent()
	case "x":
		return m.askCancelCurrent()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopSearch(true)
		return m, nil
	case "enter":
		m.stopSearch(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.Search = m.search.Value()
	m.cursor = 0
	return m, cmd
}

// stopSearch blurs the search box, optionally clearing the query
func (m *Model) stopSearch(clear bool) {
	if clear {
		m.search.SetValue("")
		m.filter.Search = ""
	}
	m.searching = false
	m.search.Blur()
}

func (m Model) handlePaymentsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.payCursor++
	case "k", "up":
		m.payCursor--
	case "g", "home":
		m.payCursor = 0
	case "G", "end":
		m.payCursor = len(m.bookings) - 1
	case "r":
		if b, ok := m.currentPayment(); ok {
			m.refund(b.ID)
		}
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveProfile()
	case "L":
		if m.user == nil {
			return m, nil
		}
		return m, m.overlays.Push(overlay.NewConfirmDialog(
			"Log Out",
			"Sign out of "+m.user.BusinessName+"?",
			logoutAction{},
		))
	}
	return m, nil
}

// confirmCurrent accepts the highlighted booking
func (m Model) confirmCurrent() (Model, tea.Cmd) {
	b, ok := m.currentBooking()
	if !ok {
		return m, nil
	}
	m.setBookingStatus(b.ID, domain.BookingConfirmed)
	return m, nil
}

// askCancelCurrent opens a confirmation dialog before declining a booking
func (m Model) askCancelCurrent() (Model, tea.Cmd) {
	b, ok := m.currentBooking()
	if !ok {
		return m, nil
	}
	if !b.Actionable() {
		m.setBookingStatus(b.ID, domain.BookingCancelled)
		return m, nil
	}
	return m, m.overlays.Push(overlay.NewConfirmDialog(
		"Cancel Booking",
		fmt.Sprintf("Cancel booking #%d for %s?", b.ID, b.CustomerName),
		cancelBookingAction{id: b.ID, customer: b.CustomerName},
	))
}

func (m Model) handleConfirmed(action any) (Model, tea.Cmd) {
	switch a := action.(type) {
	case cancelBookingAction:
		m.setBookingStatus(a.id, domain.BookingCancelled)
	case logoutAction:
		m.logout()
	}
	return m, nil
}

// setBookingStatus applies a status change and reports it as a toast
func (m *Model) setBookingStatus(id int, status domain.BookingStatus) {
	updated, err := domain.UpdateStatus(m.bookings, id, status)
	if err != nil {
		m.logger.Warn("booking update rejected", "id", id, "status", status, "error", err)
		title := "Update failed"
		if errors.Is(err, domain.ErrInvalidTransition) {
			title = "Booking already processed"
		}
		m.notify(title, err.Error(), toast.VariantDestructive)
		return
	}

	m.bookings = updated
	m.logger.Info("booking updated", "id", id, "status", status)

	variant := toast.VariantDefault
	if status == domain.BookingCancelled {
		variant = toast.VariantDestructive
	}
	m.notify("Booking Updated", "Booking status changed to "+string(status), variant)
}

// saveProfile persists the settings draft
func (m *Model) saveProfile() {
	if m.store == nil || m.user == nil {
		m.notify("Not signed in", "Sign in to edit your profile.", toast.VariantDestructive)
		return
	}

	serviceType := m.draft.serviceType
	user, err := m.store.UpdateProfile(domain.ProfileUpdate{ServiceType: &serviceType})
	if err != nil {
		m.logger.Error("failed to save profile", "error", err)
		m.notify("Save failed", err.Error(), toast.VariantDestructive)
		return
	}

	m.user = &user
	m.notify("Profile updated", "Your profile has been saved.", toast.VariantDefault)
}

func (m *Model) logout() {
	if m.store != nil {
		if err := m.store.Logout(); err != nil {
			m.logger.Error("failed to log out", "error", err)
			m.notify("Logout failed", err.Error(), toast.VariantDestructive)
			return
		}
	}
	m.user = nil
	m.notify("Logged out", "You have been signed out.", toast.VariantDefault)
}

// refund marks a paid booking refunded and reports it as a toast
func (m *Model) refund(id int) {
	updated, err := domain.Refund(m.bookings, id)
	if err != nil {
		m.logger.Warn("refund rejected", "id", id, "error", err)
		m.notify("Refund failed", err.Error(), toast.VariantDestructive)
		return
	}

	m.bookings = updated
	m.logger.Info("booking refunded", "id", id)
	m.notify("Refund Processed", "Payment has been refunded successfully", toast.VariantDefault)
}

// dismissNewestToast removes the most recent toast shown
func (m Model) dismissNewestToast() {
	if len(m.toasts) == 0 {
		return
	}
	id := m.toasts[len(m.toasts)-1].ID
	if !m.queue.Dismiss(id) {
		m.logger.Debug("toast already gone", "id", id)
	}
}
