package domain

import (
	"sort"
	"strings"
)

// SortField represents a field to sort bookings by
type SortField string

const (
	SortByBooked   SortField = "booked"
	SortByCheckIn  SortField = "check-in"
	SortByAmount   SortField = "amount"
	SortByCustomer SortField = "customer"
)

// SortFields lists the fields in the order the bookings page cycles them
var SortFields = []SortField{SortByBooked, SortByCheckIn, SortByAmount, SortByCustomer}

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort shows the most recent bookings first
func DefaultSort() Sort {
	return Sort{Field: SortByBooked, Order: SortDesc}
}

// Toggle switches to field in ascending order, or flips the order if
// field is already active
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
		return
	}
	s.Field = field
	s.Order = SortAsc
}

// Next moves to the following field in SortFields, wrapping around
func (s *Sort) Next() {
	for i, f := range SortFields {
		if f == s.Field {
			s.Toggle(SortFields[(i+1)%len(SortFields)])
			return
		}
	}
	s.Toggle(SortFields[0])
}

// String returns a short description such as "amount ↓"
func (s Sort) String() string {
	arrow := "↑"
	if s.Order == SortDesc {
		arrow = "↓"
	}
	return string(s.Field) + " " + arrow
}

// Apply returns a sorted copy of bookings. Ties keep their input order.
func (s Sort) Apply(bookings []Booking) []Booking {
	result := make([]Booking, len(bookings))
	copy(result, bookings)

	var less func(a, b Booking) bool
	switch s.Field {
	case SortByBooked:
		less = func(a, b Booking) bool { return a.BookedAt.Before(b.BookedAt) }
	case SortByCheckIn:
		less = func(a, b Booking) bool { return a.StartDate.Before(b.StartDate) }
	case SortByAmount:
		less = func(a, b Booking) bool { return a.TotalAmount < b.TotalAmount }
	case SortByCustomer:
		less = func(a, b Booking) bool {
			return strings.ToLower(a.CustomerName) < strings.ToLower(b.CustomerName)
		}
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		if s.Order == SortDesc {
			return less(result[j], result[i])
		}
		return less(result[i], result[j])
	})
	return result
}
