package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoSession         = errors.New("no active session")
	ErrInvalidInput      = errors.New("invalid input")
)

// BookingError represents a failed booking status change
type BookingError struct {
	ID   int
	From BookingStatus // empty when the booking was not found
	To   BookingStatus
	Err  error
}

func (e *BookingError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("booking %d: %s -> %s: %v", e.ID, e.From, e.To, e.Err)
	}
	return fmt.Sprintf("booking %d: %v", e.ID, e.Err)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// SessionError represents an error from the local session store
type SessionError struct {
	Op   string // Operation: "load", "save", "clear"
	Path string // Optional: backing file
	Err  error
}

func (e *SessionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("session %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("session %s: %v", e.Op, e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}
