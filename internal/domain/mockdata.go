package domain

import "time"

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// MockUser is the sample provider used by the mock login
func MockUser() User {
	return User{
		ID:           1,
		Name:         "John Smith",
		Email:        "john@example.com",
		ServiceType:  ServiceHotel,
		BusinessName: "Grand Vista Hotel",
		Phone:        "+1234567890",
		Address:      "123 Paradise Street, Miami, FL",
		Rating:       4.5,
		TotalReviews: 234,
		JoinedDate:   "2023-01-15",
	}
}

// MockBookings returns a fresh copy of the sample bookings
func MockBookings() []Booking {
	return []Booking{
		{
			ID:            1,
			CustomerName:  "Alice Johnson",
			CustomerEmail: "alice@example.com",
			ServiceName:   "Deluxe Ocean View Room",
			StartDate:     date("2024-02-15"),
			EndDate:       date("2024-02-18"),
			Guests:        2,
			TotalAmount:   897,
			Status:        BookingConfirmed,
			PaymentStatus: PaymentPaid,
			BookedAt:      date("2024-01-20"),
		},
		{
			ID:            2,
			CustomerName:  "Bob Wilson",
			CustomerEmail: "bob@example.com",
			ServiceName:   "Miami Beach Sunset Tour",
			StartDate:     date("2024-02-10"),
			Guests:        4,
			TotalAmount:   356,
			Status:        BookingPending,
			PaymentStatus: PaymentPending,
			BookedAt:      date("2024-02-05"),
		},
		{
			ID:            3,
			CustomerName:  "Carol Davis",
			CustomerEmail: "carol@example.com",
			ServiceName:   "Luxury Sedan Rental",
			StartDate:     date("2024-02-20"),
			EndDate:       date("2024-02-22"),
			Guests:        1,
			TotalAmount:   447,
			Status:        BookingConfirmed,
			PaymentStatus: PaymentPaid,
			BookedAt:      date("2024-02-01"),
		},
		{
			ID:            4,
			CustomerName:  "David Lee",
			CustomerEmail: "david@example.com",
			ServiceName:   "Everglades Adventure",
			StartDate:     date("2024-03-02"),
			Guests:        3,
			TotalAmount:   597,
			Status:        BookingPending,
			PaymentStatus: PaymentPending,
			BookedAt:      date("2024-02-12"),
		},
	}
}
