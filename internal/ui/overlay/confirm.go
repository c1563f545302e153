package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog asks a yes/no question about a pending action
type ConfirmDialog struct {
	title    string
	message  string
	action   any
	styles   *Styles
	selected bool // true = Yes
}

// NewConfirmDialog creates a dialog whose answer is reported as a
// ConfirmResultMsg carrying action. The default answer is No.
func NewConfirmDialog(title, message string, action any) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		action:  action,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, c.answer(true)
	case "n", "N", "esc":
		return c, c.answer(false)
	case "enter":
		return c, c.answer(c.selected)
	case "left", "h":
		c.selected = true
	case "right", "l":
		c.selected = false
	case "tab":
		c.selected = !c.selected
	}
	return c, nil
}

func (c *ConfirmDialog) answer(yes bool) tea.Cmd {
	action := c.action
	return func() tea.Msg {
		return ConfirmResultMsg{Action: action, Confirmed: yes}
	}
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.Item.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle, noStyle := c.styles.Item, c.styles.ItemActive
	if c.selected {
		yesStyle, noStyle = c.styles.ItemActive, c.styles.Item
	}
	b.WriteString(yesStyle.Render("[Y] Yes") + "    " + noStyle.Render("[N] No"))
	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	return 56, len(strings.Split(c.message, "\n")) + 5
}
