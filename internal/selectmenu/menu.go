// Package selectmenu implements a single-choice dropdown state machine.
//
// A Menu starts closed. Opening it installs an outside-interaction listener
// through a Host; closing it for any reason (selection, outside press,
// toggle, unmount) releases that listener.
package selectmenu

import "github.com/journeyq/dashboard/internal/pointer"

// Option is one selectable entry
type Option struct {
	Value string
	Label string
}

// Host lets a menu observe presses outside its region
type Host interface {
	OnOutside(bounds func() pointer.Rect, fn func()) (release func())
}

// Props configures a Menu
type Props struct {
	Options       []Option
	Value         string
	OnValueChange func(value string)
	Host          Host
}

// Menu is the dropdown state. It is driven from a single event loop and is
// not safe for concurrent use.
type Menu struct {
	options       []Option
	value         string
	open          bool
	highlight     int
	onValueChange func(string)

	host      Host
	bounds    pointer.Rect
	release   func()
	unmounted bool
}

// New creates a closed menu
func New(props Props) *Menu {
	options := make([]Option, len(props.Options))
	copy(options, props.Options)

	m := &Menu{
		options:       options,
		onValueChange: props.OnValueChange,
		host:          props.Host,
	}
	if m.indexOf(props.Value) >= 0 {
		m.value = props.Value
	}
	return m
}

// IsOpen reports whether the option list is showing
func (m *Menu) IsOpen() bool {
	return m.open
}

// Value returns the selected value, or "" when nothing is selected
func (m *Menu) Value() string {
	return m.value
}

// Label returns the label of the selected option, or "" when nothing is selected
func (m *Menu) Label() string {
	if i := m.indexOf(m.value); i >= 0 {
		return m.options[i].Label
	}
	return ""
}

// Options returns a copy of the options in display order
func (m *Menu) Options() []Option {
	out := make([]Option, len(m.options))
	copy(out, m.options)
	return out
}

// Selected reports whether value is the current selection
func (m *Menu) Selected(value string) bool {
	return m.value != "" && m.value == value
}

// Highlighted returns the index of the keyboard-highlighted option
func (m *Menu) Highlighted() int {
	return m.highlight
}

// SetBounds records where the menu is drawn. Presses inside these bounds
// are not treated as outside interaction.
func (m *Menu) SetBounds(r pointer.Rect) {
	m.bounds = r
}

// Bounds returns the last recorded bounds
func (m *Menu) Bounds() pointer.Rect {
	return m.bounds
}

// Open shows the option list. Opening an open menu does nothing.
func (m *Menu) Open() {
	if m.unmounted || m.open {
		return
	}
	m.open = true
	if i := m.indexOf(m.value); i >= 0 {
		m.highlight = i
	}
	m.listen()
}

// Close hides the option list without changing the value
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.stopListening()
}

// ToggleOpen opens a closed menu and closes an open one
func (m *Menu) ToggleOpen() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// Select picks value, closes the menu and reports the value to
// OnValueChange. Picking the current value again leaves the state as is
// and still reports it. Values that are not options are ignored.
func (m *Menu) Select(value string) {
	if m.unmounted || m.indexOf(value) < 0 {
		return
	}
	m.value = value
	m.Close()
	if m.onValueChange != nil {
		m.onValueChange(value)
	}
}

// HighlightNext moves the keyboard highlight down, wrapping at the end
func (m *Menu) HighlightNext() {
	if len(m.options) == 0 {
		return
	}
	m.highlight = (m.highlight + 1) % len(m.options)
}

// HighlightPrev moves the keyboard highlight up, wrapping at the start
func (m *Menu) HighlightPrev() {
	if len(m.options) == 0 {
		return
	}
	m.highlight = (m.highlight - 1 + len(m.options)) % len(m.options)
}

// SelectHighlighted selects the keyboard-highlighted option
func (m *Menu) SelectHighlighted() {
	if !m.open || m.highlight < 0 || m.highlight >= len(m.options) {
		return
	}
	m.Select(m.options[m.highlight].Value)
}

// HandleOutside closes the menu after a press outside its bounds
func (m *Menu) HandleOutside() {
	if m.unmounted || !m.open {
		return
	}
	m.Close()
}

// Unmount releases the outside listener and makes the menu inert
func (m *Menu) Unmount() {
	if m.unmounted {
		return
	}
	m.open = false
	m.stopListening()
	m.unmounted = true
}

func (m *Menu) listen() {
	if m.host == nil || m.release != nil {
		return
	}
	m.release = m.host.OnOutside(m.Bounds, m.HandleOutside)
}

func (m *Menu) stopListening() {
	if m.release == nil {
		return
	}
	release := m.release
	m.release = nil
	release()
}

func (m *Menu) indexOf(value string) int {
	if value == "" {
		return -1
	}
	for i, opt := range m.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
