// Package clock abstracts time so timer-driven components can be tested
// deterministically.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Clock provides the current time and one-shot timers
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is a Clock backed by the time package
type Real struct{}

// Now returns time.Now()
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Manual is a Clock that only moves when Advance is called.
// Callbacks run synchronously inside Advance, in deadline order, with ties
// broken by registration order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	seq      int
	f        func()
	done     bool
}

// NewManual creates a manual clock starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers f to run once the clock has advanced by d
func (c *Manual) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{
		clock:    c,
		deadline: c.now.Add(d),
		seq:      c.seq,
		f:        f,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers scheduled by callbacks fire too if their deadline falls inside
// the advanced window.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		next.done = true
		c.now = next.deadline
		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}

	c.now = target
	c.compact()
	c.mu.Unlock()
}

// Pending returns the number of timers that have neither fired nor been stopped
func (c *Manual) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live timer due at or before target.
// Caller must hold c.mu.
func (c *Manual) nextDue(target time.Time) *manualTimer {
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.done && !t.deadline.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	return due[0]
}

// compact drops finished timers. Caller must hold c.mu.
func (c *Manual) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	c.timers = live
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}
