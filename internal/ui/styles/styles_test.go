package styles

import (
	"testing"

	"github.com/journeyq/dashboard/internal/domain"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestBookingStatus(t *testing.T) {
	s := New()

	tests := []struct {
		status domain.BookingStatus
		name   string
	}{
		{domain.BookingPending, "pending"},
		{domain.BookingConfirmed, "confirmed"},
		{domain.BookingCompleted, "completed"},
		{domain.BookingCancelled, "cancelled"},
		{domain.BookingStatus("archived"), "unknown status falls back"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := s.BookingStatus(tt.status).Render(string(tt.status))
			if len(rendered) == 0 {
				t.Error("BookingStatus rendered empty string")
			}
		})
	}
}

func TestPaymentStatus(t *testing.T) {
	s := New()

	for _, status := range []domain.PaymentStatus{domain.PaymentPaid, domain.PaymentPending, domain.PaymentRefunded, "other"} {
		if rendered := s.PaymentStatus(status).Render(string(status)); len(rendered) == 0 {
			t.Errorf("PaymentStatus(%q) rendered empty string", status)
		}
	}
}
