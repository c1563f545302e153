package domain

import "strings"

// StatusAll matches bookings of any status
const StatusAll = "all"

// BookingFilter narrows the bookings list
type BookingFilter struct {
	// Status is a BookingStatus value or StatusAll
	Status string
	// Search matches customer or service names, case-insensitively
	Search string
}

// NewBookingFilter creates a filter that matches everything
func NewBookingFilter() *BookingFilter {
	return &BookingFilter{Status: StatusAll}
}

// IsActive returns true if any filter is active
func (f *BookingFilter) IsActive() bool {
	return (f.Status != "" && f.Status != StatusAll) || strings.TrimSpace(f.Search) != ""
}

// Apply filters a list of bookings, preserving order
func (f *BookingFilter) Apply(bookings []Booking) []Booking {
	if !f.IsActive() {
		return bookings
	}

	result := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Matches(b) {
			result = append(result, b)
		}
	}
	return result
}

// Matches returns true if the booking passes both the status and search filters
func (f *BookingFilter) Matches(b Booking) bool {
	if f.Status != "" && f.Status != StatusAll && string(b.Status) != f.Status {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.CustomerName), query) ||
		strings.Contains(strings.ToLower(b.ServiceName), query)
}
