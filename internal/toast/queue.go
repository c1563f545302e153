package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/journeyq/dashboard/internal/clock"
)

// Queue is an ordered, observable collection of notifications. Each
// notification removes itself when its timer fires.
//
// A Queue is safe for concurrent use. Subscribers are always called without
// the queue lock held, so they may enqueue or dismiss from the callback.
type Queue struct {
	mu              sync.Mutex
	clock           clock.Clock
	defaultDuration time.Duration
	logger          *slog.Logger

	items       []Notification
	timers      map[string]clock.Timer
	subscribers map[int]func()
	nextSubID   int
	closed      bool
}

// Option configures a Queue
type Option func(*Queue)

// WithClock sets the clock used for expiry timers
func WithClock(c clock.Clock) Option {
	return func(q *Queue) {
		q.clock = c
	}
}

// WithDefaultDuration overrides DefaultDuration for toasts enqueued without one
func WithDefaultDuration(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.defaultDuration = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// NewQueue creates an empty queue
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		clock:           clock.Real{},
		defaultDuration: DefaultDuration,
		logger:          slog.Default(),
		timers:          make(map[string]clock.Timer),
		subscribers:     make(map[int]func()),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends a notification and schedules its removal. It returns the
// new notification's id. On a closed queue nothing is stored.
func (q *Queue) Enqueue(opts Options) string {
	id := uuid.NewString()

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return id
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = q.defaultDuration
	}

	n := Notification{
		ID:          id,
		Title:       opts.Title,
		Description: opts.Description,
		Variant:     opts.Variant,
		CreatedAt:   q.clock.Now(),
		Duration:    duration,
	}
	q.items = append(q.items, n)
	q.timers[id] = q.clock.AfterFunc(duration, func() {
		q.expire(id)
	})
	subs := q.subscribersLocked()
	q.mu.Unlock()

	q.logger.Debug("toast enqueued", "id", id, "title", n.Title, "variant", n.Variant, "duration", duration, "expires", n.ExpiresAt())
	notify(subs)
	return id
}

// List returns a snapshot of the current notifications, oldest first
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of notifications currently queued
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Dismiss removes a notification before its timer fires. It returns false
// if the id is not queued, including when it has already expired.
func (q *Queue) Dismiss(id string) bool {
	return q.remove(id)
}

// Subscribe registers fn to be called after every change to the queue.
// The returned function removes the subscription and may be called more
// than once.
func (q *Queue) Subscribe(fn func()) (unsubscribe func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return func() {}
	}

	q.nextSubID++
	subID := q.nextSubID
	q.subscribers[subID] = fn

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		delete(q.subscribers, subID)
	}
}

// Close stops every pending timer and empties the queue. Later calls on a
// closed queue are no-ops.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.logger.Debug("toast queue closed", "dropped", len(q.items))
	q.items = nil
	q.subscribers = make(map[int]func())
}

func (q *Queue) expire(id string) {
	if q.remove(id) {
		q.logger.Debug("toast expired", "id", id)
	}
}

func (q *Queue) remove(id string) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}

	idx := -1
	for i, n := range q.items {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		q.mu.Unlock()
		return false
	}

	q.items = append(q.items[:idx:idx], q.items[idx+1:]...)
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	subs := q.subscribersLocked()
	q.mu.Unlock()

	notify(subs)
	return true
}

// subscribersLocked copies the subscriber set. Caller must hold q.mu.
func (q *Queue) subscribersLocked() []func() {
	subs := make([]func(), 0, len(q.subscribers))
	for i := 1; i <= q.nextSubID; i++ {
		if fn, ok := q.subscribers[i]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
