package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		viewHeight: 18,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, closeCmd
	case "j", "down":
		if h.scroll < h.maxScroll {
			h.scroll++
		}
	case "k", "up":
		if h.scroll > 0 {
			h.scroll--
		}
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range Categories() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.Header.Render(cat.Name + ":"))
		content.WriteString("\n")
		for _, binding := range cat.Bindings {
			content.WriteString("  " + h.styles.Key.Render(binding.Key) + "  " + h.styles.Item.Render(binding.Description))
			content.WriteString("\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		result += "\n" + h.styles.Footer.Render("[j/k to scroll]")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 52, h.viewHeight + 4
}

// Categories returns the dashboard keybindings grouped by page
func Categories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Global",
			Bindings: []KeyBinding{
				{Key: "Tab", Description: "Next page"},
				{Key: "Shift+Tab", Description: "Previous page"},
				{Key: "d", Description: "Dismiss newest toast"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
		{
			Name: "Bookings",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Move between bookings"},
				{Key: "f", Description: "Status filter menu"},
				{Key: "/", Description: "Search customers and services"},
				{Key: "s", Description: "Cycle sort field"},
				{Key: "S", Description: "Reverse sort order"},
				{Key: "c", Description: "Confirm pending booking"},
				{Key: "x", Description: "Cancel pending booking"},
			},
		},
		{
			Name: "Payments",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Move between payments"},
				{Key: "r", Description: "Refund paid booking"},
			},
		},
		{
			Name: "Settings",
			Bindings: []KeyBinding{
				{Key: "Enter", Description: "Open service type menu"},
				{Key: "Ctrl+S", Description: "Save profile"},
				{Key: "L", Description: "Log out"},
			},
		},
		{
			Name: "Menus",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Move highlight"},
				{Key: "Enter", Description: "Select"},
				{Key: "Esc", Description: "Close"},
				{Key: "Click", Description: "Outside an open menu closes it"},
			},
		},
	}
}
