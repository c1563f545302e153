package domain

// BookingStats summarises a set of bookings for the overview page
type BookingStats struct {
	Total     int
	ByStatus  map[BookingStatus]int
	Revenue   float64 // sum of paid bookings
	Pending   float64 // sum of bookings awaiting payment
	Refunded  float64
	AvgAmount float64
}

// ComputeStats derives BookingStats from bookings
func ComputeStats(bookings []Booking) BookingStats {
	stats := BookingStats{
		Total:    len(bookings),
		ByStatus: make(map[BookingStatus]int, len(BookingStatuses)),
	}

	var sum float64
	for _, b := range bookings {
		stats.ByStatus[b.Status]++
		sum += b.TotalAmount
		switch b.PaymentStatus {
		case PaymentPaid:
			stats.Revenue += b.TotalAmount
		case PaymentPending:
			stats.Pending += b.TotalAmount
		case PaymentRefunded:
			stats.Refunded += b.TotalAmount
		}
	}
	if stats.Total > 0 {
		stats.AvgAmount = sum / float64(stats.Total)
	}
	return stats
}

// ConfirmationRate is the percentage of decided bookings that were
// confirmed or completed rather than cancelled. Pending bookings are
// excluded. Returns 0 when nothing has been decided yet.
func (s BookingStats) ConfirmationRate() float64 {
	accepted := s.ByStatus[BookingConfirmed] + s.ByStatus[BookingCompleted]
	decided := accepted + s.ByStatus[BookingCancelled]
	if decided == 0 {
		return 0
	}
	return float64(accepted) / float64(decided) * 100
}
