package domain

import (
	"fmt"
	"time"
)

// Booking is a customer reservation for one of the provider's services
type Booking struct {
	ID            int           `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	ServiceName   string        `json:"serviceName"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	Guests        int           `json:"guests"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	BookedAt      time.Time     `json:"bookingDate"`
}

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every status in display order
var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCompleted,
	BookingCancelled,
}

// String returns the display string
func (s BookingStatus) String() string {
	return string(s)
}

// Label returns the capitalised label shown in menus
func (s BookingStatus) Label() string {
	switch s {
	case BookingPending:
		return "Pending"
	case BookingConfirmed:
		return "Confirmed"
	case BookingCompleted:
		return "Completed"
	case BookingCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// PaymentStatus is the payment state of a booking
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentPending  PaymentStatus = "pending"
	PaymentRefunded PaymentStatus = "refunded"
)

// String returns the display string
func (p PaymentStatus) String() string {
	return string(p)
}

// Actionable reports whether the provider can still accept or decline it
func (b Booking) Actionable() bool {
	return b.Status == BookingPending
}

// Nights returns the number of nights covered by the booking, at least 1
func (b Booking) Nights() int {
	if b.EndDate.IsZero() || !b.EndDate.After(b.StartDate) {
		return 1
	}
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// UpdateStatus returns a copy of bookings with the booking matching id moved
// to status. It returns ErrNotFound if no booking has that id and
// ErrInvalidTransition if the booking is no longer pending.
func UpdateStatus(bookings []Booking, id int, status BookingStatus) ([]Booking, error) {
	out := make([]Booking, len(bookings))
	copy(out, bookings)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		if !out[i].Actionable() {
			return bookings, &BookingError{ID: id, From: out[i].Status, To: status, Err: ErrInvalidTransition}
		}
		out[i].Status = status
		return out, nil
	}
	return bookings, &BookingError{ID: id, To: status, Err: ErrNotFound}
}

// Refund returns a copy of bookings with the paid booking matching id marked
// refunded. Only paid bookings can be refunded.
func Refund(bookings []Booking, id int) ([]Booking, error) {
	out := make([]Booking, len(bookings))
	copy(out, bookings)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		if out[i].PaymentStatus != PaymentPaid {
			return bookings, &BookingError{ID: id, Err: fmt.Errorf("payment %s cannot be refunded: %w", out[i].PaymentStatus, ErrInvalidTransition)}
		}
		out[i].PaymentStatus = PaymentRefunded
		return out, nil
	}
	return bookings, &BookingError{ID: id, Err: ErrNotFound}
}
