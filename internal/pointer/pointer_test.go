package pointer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"bottom-right cell", 5, 4, true},
		{"just right", 6, 3, false},
		{"just below", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestDispatcher_PressOutsideOnly(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.OnOutside(func() Rect { return Rect{X: 0, Y: 0, W: 10, H: 3} }, func() { calls++ })

	assert.Equal(t, 0, d.Press(5, 1), "inside press is not dispatched")
	assert.Equal(t, 1, d.Press(20, 1))
	assert.Equal(t, 1, calls)
}

func TestDispatcher_BoundsEvaluatedAtPressTime(t *testing.T) {
	d := NewDispatcher()
	bounds := Rect{X: 0, Y: 0, W: 5, H: 1}
	calls := 0
	d.OnOutside(func() Rect { return bounds }, func() { calls++ })

	bounds = Rect{X: 10, Y: 0, W: 5, H: 1}
	d.Press(12, 0)
	assert.Equal(t, 0, calls)

	d.Press(2, 0)
	assert.Equal(t, 1, calls)
}

func TestDispatcher_ReleaseIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	release := d.OnOutside(func() Rect { return Rect{} }, func() { t.Fatal("released listener ran") })
	other := d.OnOutside(func() Rect { return Rect{} }, func() {})
	assert.Equal(t, 2, d.Len())

	release()
	release()
	assert.Equal(t, 1, d.Len())

	d.Press(0, 0)
	other()
	assert.Equal(t, 0, d.Len())
}

func TestDispatcher_ReleaseDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var releaseSecond func()
	secondRan := false

	d.OnOutside(func() Rect { return Rect{} }, func() { releaseSecond() })
	releaseSecond = d.OnOutside(func() Rect { return Rect{} }, func() { secondRan = true })

	assert.Equal(t, 1, d.Press(0, 0))
	assert.False(t, secondRan)
	assert.Equal(t, 1, d.Len())
}

func TestDispatcher_SelfReleaseDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var release func()
	release = d.OnOutside(func() Rect { return Rect{} }, func() { release() })

	d.Press(1, 1)
	assert.Equal(t, 0, d.Len())
}

func TestDispatcher_HandleMouse(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.OnOutside(func() Rect { return Rect{W: 1, H: 1} }, func() { calls++ })

	tests := []struct {
		name    string
		msg     tea.MouseMsg
		handled bool
	}{
		{"left press", tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"right press", tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true},
		{"release", tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"motion", tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion}, false},
		{"wheel", tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.handled, d.HandleMouse(tt.msg))
		})
	}
	assert.Equal(t, 2, calls)
}
