// Package pointer tracks screen regions and routes mouse presses that land
// outside them to interested components.
package pointer

import tea "github.com/charmbracelet/bubbletea"

// Rect is a rectangle of terminal cells
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell at (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type listener struct {
	id       int
	bounds   func() Rect
	fn       func()
	released bool
}

// Dispatcher delivers presses to listeners whose region they fall outside.
// It is meant to be driven from the Bubble Tea update loop and is not safe
// for concurrent use.
type Dispatcher struct {
	nextID    int
	listeners []*listener
}

// NewDispatcher creates a dispatcher with no listeners
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnOutside registers fn to run for every press outside bounds(). bounds is
// evaluated at press time so the region may move between renders. The
// returned release function is idempotent.
func (d *Dispatcher) OnOutside(bounds func() Rect, fn func()) (release func()) {
	d.nextID++
	l := &listener{id: d.nextID, bounds: bounds, fn: fn}
	d.listeners = append(d.listeners, l)

	return func() {
		if l.released {
			return
		}
		l.released = true
		for i, other := range d.listeners {
			if other.id == l.id {
				d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
				break
			}
		}
	}
}

// Press dispatches a press at (x, y) and returns how many listeners ran.
// Listeners released by an earlier callback in the same dispatch are skipped.
func (d *Dispatcher) Press(x, y int) int {
	snapshot := make([]*listener, len(d.listeners))
	copy(snapshot, d.listeners)

	ran := 0
	for _, l := range snapshot {
		if l.released {
			continue
		}
		if l.bounds().Contains(x, y) {
			continue
		}
		l.fn()
		ran++
	}
	return ran
}

// HandleMouse dispatches a Bubble Tea mouse press. It reports whether the
// message was a press; motion, release and wheel events are ignored.
func (d *Dispatcher) HandleMouse(msg tea.MouseMsg) bool {
	ev := tea.MouseEvent(msg)
	if ev.Action != tea.MouseActionPress || ev.IsWheel() {
		return false
	}
	d.Press(ev.X, ev.Y)
	return true
}

// Len returns the number of live registrations
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}
