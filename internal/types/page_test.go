package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_String(t *testing.T) {
	tests := []struct {
		page Page
		want string
	}{
		{PageOverview, "Overview"},
		{PageBookings, "Bookings"},
		{PagePayments, "Payments"},
		{PageSettings, "Settings"},
		{Page(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.String())
		})
	}
}

func TestPage_Cycle(t *testing.T) {
	assert.Equal(t, PageBookings, PageOverview.Next())
	assert.Equal(t, PagePayments, PageBookings.Next())
	assert.Equal(t, PageSettings, PagePayments.Next())
	assert.Equal(t, PageOverview, PageSettings.Next())

	assert.Equal(t, PageSettings, PageOverview.Prev())
	assert.Equal(t, PageOverview, PageBookings.Prev())
}
