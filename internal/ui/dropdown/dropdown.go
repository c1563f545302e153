// Package dropdown draws a selectmenu.Menu in the terminal and feeds it
// keyboard and mouse input.
package dropdown

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/pointer"
	"github.com/journeyq/dashboard/internal/selectmenu"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

// triggerHeight is the trigger box height including its border
const triggerHeight = 3

// KeyMap defines the dropdown key bindings
type KeyMap struct {
	Toggle key.Binding
	Next   key.Binding
	Prev   key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the default dropdown bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open/select")),
		Next:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
		Prev:   key.NewBinding(key.WithKeys("k", "up")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Dropdown is a terminal widget around a selectmenu.Menu
type Dropdown struct {
	menu        *selectmenu.Menu
	placeholder string
	width       int
	styles      *styles.Styles
	keys        KeyMap
	focused     bool
	x, y        int
}

// New creates a dropdown of the given total width
func New(menu *selectmenu.Menu, placeholder string, width int, s *styles.Styles) *Dropdown {
	d := &Dropdown{
		menu:        menu,
		placeholder: placeholder,
		width:       width,
		styles:      s,
		keys:        DefaultKeyMap(),
	}
	d.syncBounds()
	return d
}

// Menu returns the underlying state machine
func (d *Dropdown) Menu() *selectmenu.Menu {
	return d.menu
}

// Focus makes the dropdown receive key input
func (d *Dropdown) Focus() {
	d.focused = true
}

// Blur stops key input and closes the list
func (d *Dropdown) Blur() {
	d.focused = false
	d.menu.Close()
	d.syncBounds()
}

// Focused reports whether the dropdown receives key input
func (d *Dropdown) Focused() bool {
	return d.focused
}

// SetOrigin records the screen cell of the dropdown's top-left corner
func (d *Dropdown) SetOrigin(x, y int) {
	d.x, d.y = x, y
	d.syncBounds()
}

// Height returns the number of rows the dropdown occupies
func (d *Dropdown) Height() int {
	if d.menu.IsOpen() {
		return triggerHeight + len(d.menu.Options()) + 2
	}
	return triggerHeight
}

// Width returns the number of columns the dropdown occupies
func (d *Dropdown) Width() int {
	return d.width
}

// HandleKey applies a key press when focused. It reports whether the key
// was consumed.
func (d *Dropdown) HandleKey(msg tea.KeyMsg) bool {
	if !d.focused {
		return false
	}
	defer d.syncBounds()

	switch {
	case key.Matches(msg, d.keys.Toggle):
		if d.menu.IsOpen() {
			d.menu.SelectHighlighted()
		} else {
			d.menu.Open()
		}
		return true
	case key.Matches(msg, d.keys.Next):
		if d.menu.IsOpen() {
			d.menu.HighlightNext()
			return true
		}
	case key.Matches(msg, d.keys.Prev):
		if d.menu.IsOpen() {
			d.menu.HighlightPrev()
			return true
		}
	case key.Matches(msg, d.keys.Close):
		if d.menu.IsOpen() {
			d.menu.Close()
			return true
		}
	}
	return false
}

// HandleMouse applies a press that lands inside the dropdown. Presses on
// the trigger toggle the list; presses on an option row select it. It
// reports whether the press was inside.
func (d *Dropdown) HandleMouse(msg tea.MouseMsg) bool {
	ev := tea.MouseEvent(msg)
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return false
	}
	if !d.menu.Bounds().Contains(ev.X, ev.Y) {
		return false
	}
	defer d.syncBounds()

	if ev.Y < d.y+triggerHeight {
		d.menu.ToggleOpen()
		return true
	}

	// First list row sits below the list's top border
	row := ev.Y - (d.y + triggerHeight + 1)
	options := d.menu.Options()
	if row >= 0 && row < len(options) {
		d.menu.Select(options[row].Value)
	}
	return true
}

// View renders the trigger and, when open, the option list
func (d *Dropdown) View() string {
	d.syncBounds()

	inner := d.width - 2
	label := d.menu.Label()
	labelStyle := d.styles.DropdownItem.Padding(0)
	if label == "" {
		label = d.placeholder
		labelStyle = d.styles.Muted
	}

	arrow := "▾"
	triggerStyle := d.styles.DropdownTrigger
	if d.menu.IsOpen() {
		arrow = "▴"
		triggerStyle = d.styles.DropdownTriggerOpen
	} else if d.focused {
		triggerStyle = triggerStyle.BorderForeground(styles.Lavender)
	}

	// Trigger padding takes one column on each side
	space := inner - 2 - lipgloss.Width(arrow)
	text := truncate(label, space-1)
	gap := space - lipgloss.Width(text)
	trigger := triggerStyle.Width(inner).Render(labelStyle.Render(text) + strings.Repeat(" ", gap) + arrow)

	if !d.menu.IsOpen() {
		return trigger
	}

	options := d.menu.Options()
	rows := make([]string, 0, len(options))
	for i, opt := range options {
		mark := "  "
		if d.menu.Selected(opt.Value) {
			mark = d.styles.DropdownCheck.Render("✓") + " "
		}
		style := d.styles.DropdownItem
		if i == d.menu.Highlighted() {
			style = d.styles.DropdownItemHighlight
		}
		rows = append(rows, style.Width(inner).Render(mark+truncate(opt.Label, inner-4)))
	}
	list := d.styles.DropdownList.Width(inner).Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, trigger, list)
}

func (d *Dropdown) syncBounds() {
	d.menu.SetBounds(pointer.Rect{X: d.x, Y: d.y, W: d.width, H: d.Height()})
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
