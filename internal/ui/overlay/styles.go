package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Box is the overlay container
	Box lipgloss.Style
	// Title is the overlay title
	Title lipgloss.Style
	// Item is plain body text and unselected buttons
	Item lipgloss.Style
	// ItemActive is the selected button
	ItemActive lipgloss.Style
	// Key is a keybinding in the help listing
	Key lipgloss.Style
	// Header is a help section header
	Header lipgloss.Style
	// Footer is the hint line at the bottom
	Footer lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Item: lipgloss.NewStyle().
			Foreground(styles.Text),

		ItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}

// Render wraps an overlay's view in its titled box
func (s *Styles) Render(o Overlay) string {
	view := o.View()
	if title := o.Title(); title != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(title), view)
	}
	width, height := o.Size()
	return s.Box.Width(width).Height(height).Render(view)
}
