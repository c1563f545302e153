package app

import tea "github.com/charmbracelet/bubbletea"

// toastsChangedMsg signals that the toast queue changed
type toastsChangedMsg struct{}

// waitForToasts blocks until the queue reports a change or done is closed
func waitForToasts(ch, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ch:
			return toastsChangedMsg{}
		case <-done:
			return nil
		}
	}
}

// cancelBookingAction is the pending action behind the cancel dialog
type cancelBookingAction struct {
	id       int
	customer string
}

// logoutAction is the pending action behind the logout dialog
type logoutAction struct{}
