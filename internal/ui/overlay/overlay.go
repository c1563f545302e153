// Package overlay provides modal dialogs drawn above the dashboard.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// ConfirmResultMsg is sent when a confirm dialog is answered. Action is the
// value the dialog was created with. The receiver pops the dialog.
type ConfirmResultMsg struct {
	Action    any
	Confirmed bool
}

func closeCmd() tea.Msg {
	return CloseOverlayMsg{}
}
