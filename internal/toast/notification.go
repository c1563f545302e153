// Package toast implements the process-wide queue of short-lived
// notifications shown in the corner of the dashboard.
package toast

import "time"

// DefaultDuration is how long a toast stays visible when no duration is given
const DefaultDuration = 5 * time.Second

// Variant controls how a toast is presented
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantDestructive:
		return "destructive"
	default:
		return "default"
	}
}

// Notification is a single toast in the queue
type Notification struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	CreatedAt   time.Time
	Duration    time.Duration
}

// ExpiresAt returns the time at which the notification is removed
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Duration)
}

// Options describes a toast to enqueue. Zero values pick the defaults.
type Options struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
}
