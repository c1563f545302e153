package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Chrome
	App       lipgloss.Style
	Header    lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Panel     lipgloss.Style
	Heading   lipgloss.Style
	Muted     lipgloss.Style

	// Bookings table
	Row       lipgloss.Style
	RowActive lipgloss.Style
	Amount    lipgloss.Style

	// Stat cards
	StatCard  lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style

	// Dropdowns
	DropdownTrigger       lipgloss.Style
	DropdownTriggerOpen   lipgloss.Style
	DropdownList          lipgloss.Style
	DropdownItem          lipgloss.Style
	DropdownItemHighlight lipgloss.Style
	DropdownCheck         lipgloss.Style

	// Toasts
	ToastDefault     lipgloss.Style
	ToastDestructive lipgloss.Style
	ToastTitle       lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusPage lipgloss.Style
	StatusHint lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(Subtext0).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		Heading: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(Overlay1),

		Row: lipgloss.NewStyle().
			Foreground(Text),

		RowActive: lipgloss.NewStyle().
			Foreground(Lavender).
			Background(Surface0).
			Bold(true),

		Amount: lipgloss.NewStyle().
			Foreground(Green),

		StatCard: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 2).
			MarginRight(1),

		StatValue: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		DropdownTrigger: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Foreground(Text).
			Padding(0, 1),

		DropdownTriggerOpen: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Text).
			Padding(0, 1),

		DropdownList: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Background(Mantle),

		DropdownItem: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),

		DropdownItemHighlight: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Padding(0, 1),

		DropdownCheck: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		ToastDefault: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Foreground(Text).
			Padding(0, 1),

		ToastDestructive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		ToastTitle: lipgloss.NewStyle().
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusPage: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Subtext1),
	}
}

// BookingStatus returns the badge style for a booking status
func (s *Styles) BookingStatus(status domain.BookingStatus) lipgloss.Style {
	color, ok := BookingStatusColors[string(status)]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(color).
		Padding(0, 1)
}

// PaymentStatus returns the text style for a payment status
func (s *Styles) PaymentStatus(status domain.PaymentStatus) lipgloss.Style {
	color, ok := PaymentStatusColors[string(status)]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().Foreground(color)
}
