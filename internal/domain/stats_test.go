package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(MockBookings())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[BookingConfirmed])
	assert.Equal(t, 2, stats.ByStatus[BookingPending])
	assert.InDelta(t, 1344.0, stats.Revenue, 0.001)
	assert.InDelta(t, 953.0, stats.Pending, 0.001)
	assert.InDelta(t, 574.25, stats.AvgAmount, 0.001)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.AvgAmount)
	assert.Zero(t, stats.ConfirmationRate())
}

func TestBookingStats_ConfirmationRate(t *testing.T) {
	tests := []struct {
		name     string
		statuses []BookingStatus
		want     float64
	}{
		{"only pending", []BookingStatus{BookingPending}, 0},
		{"all confirmed", []BookingStatus{BookingConfirmed, BookingCompleted}, 100},
		{"mixed", []BookingStatus{BookingConfirmed, BookingCancelled, BookingPending, BookingCompleted}, 200.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := make([]Booking, 0, len(tt.statuses))
			for i, s := range tt.statuses {
				bookings = append(bookings, Booking{ID: i, Status: s})
			}
			assert.InDelta(t, tt.want, ComputeStats(bookings).ConfirmationRate(), 0.001)
		})
	}
}

func TestComputeStats_Refunded(t *testing.T) {
	bookings, err := Refund(MockBookings(), 1)
	if err != nil {
		t.Fatal(err)
	}
	stats := ComputeStats(bookings)

	assert.InDelta(t, 447.0, stats.Revenue, 0.001)
	assert.InDelta(t, 897.0, stats.Refunded, 0.001)
}
