package domain

import (
	"testing"
	"time"
)

func TestSort_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		initial   Sort
		toggleTo  SortField
		wantField SortField
		wantOrder SortOrder
	}{
		{
			name:      "toggle to new field sets asc",
			initial:   Sort{Field: SortByAmount, Order: SortDesc},
			toggleTo:  SortByCustomer,
			wantField: SortByCustomer,
			wantOrder: SortAsc,
		},
		{
			name:      "toggle same field asc to desc",
			initial:   Sort{Field: SortByAmount, Order: SortAsc},
			toggleTo:  SortByAmount,
			wantField: SortByAmount,
			wantOrder: SortDesc,
		},
		{
			name:      "toggle same field desc to asc",
			initial:   Sort{Field: SortByAmount, Order: SortDesc},
			toggleTo:  SortByAmount,
			wantField: SortByAmount,
			wantOrder: SortAsc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.initial
			s.Toggle(tt.toggleTo)

			if s.Field != tt.wantField {
				t.Errorf("Toggle() field = %v, want %v", s.Field, tt.wantField)
			}
			if s.Order != tt.wantOrder {
				t.Errorf("Toggle() order = %v, want %v", s.Order, tt.wantOrder)
			}
		})
	}
}

func TestSort_Next(t *testing.T) {
	s := DefaultSort()

	var got []SortField
	for range SortFields {
		s.Next()
		got = append(got, s.Field)
	}

	want := []SortField{SortByCheckIn, SortByAmount, SortByCustomer, SortByBooked}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Next() step %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Order != SortAsc {
		t.Errorf("Next() should reset order to asc, got %v", s.Order)
	}
}

func TestSort_String(t *testing.T) {
	if got := (Sort{Field: SortByAmount, Order: SortDesc}).String(); got != "amount ↓" {
		t.Errorf("String() = %q", got)
	}
	if got := (Sort{Field: SortByCustomer}).String(); got != "customer ↑" {
		t.Errorf("String() = %q", got)
	}
}

func TestSort_Apply_Amount(t *testing.T) {
	bookings := []Booking{
		{ID: 1, TotalAmount: 450},
		{ID: 2, TotalAmount: 150},
		{ID: 3, TotalAmount: 450},
		{ID: 4, TotalAmount: 900},
	}

	t.Run("ascending keeps ties stable", func(t *testing.T) {
		result := Sort{Field: SortByAmount, Order: SortAsc}.Apply(bookings)
		assertIDs(t, result, []int{2, 1, 3, 4})
	})

	t.Run("descending keeps ties stable", func(t *testing.T) {
		result := Sort{Field: SortByAmount, Order: SortDesc}.Apply(bookings)
		assertIDs(t, result, []int{4, 1, 3, 2})
	})

	if bookings[0].ID != 1 || bookings[1].ID != 2 {
		t.Error("Apply() modified its input")
	}
}

func TestSort_Apply_Dates(t *testing.T) {
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	bookings := []Booking{
		{ID: 1, BookedAt: base.AddDate(0, 0, 3), StartDate: base.AddDate(0, 1, 0)},
		{ID: 2, BookedAt: base, StartDate: base.AddDate(0, 0, 10)},
		{ID: 3, BookedAt: base.AddDate(0, 0, 7), StartDate: base.AddDate(0, 0, 5)},
	}

	assertIDs(t, DefaultSort().Apply(bookings), []int{3, 1, 2})
	assertIDs(t, Sort{Field: SortByCheckIn}.Apply(bookings), []int{3, 2, 1})
}

func TestSort_Apply_Customer(t *testing.T) {
	bookings := []Booking{
		{ID: 1, CustomerName: "mike Johnson"},
		{ID: 2, CustomerName: "Alice Brown"},
		{ID: 3, CustomerName: "Emma Wilson"},
	}

	assertIDs(t, Sort{Field: SortByCustomer}.Apply(bookings), []int{2, 3, 1})
}

func TestSort_Apply_Empty(t *testing.T) {
	if got := DefaultSort().Apply(nil); len(got) != 0 {
		t.Errorf("Apply(nil) = %v, want empty", got)
	}
}

func assertIDs(t *testing.T, bookings []Booking, want []int) {
	t.Helper()
	if len(bookings) != len(want) {
		t.Fatalf("got %d bookings, want %d", len(bookings), len(want))
	}
	for i, b := range bookings {
		if b.ID != want[i] {
			t.Errorf("[%d] = %d, want %d", i, b.ID, want[i])
		}
	}
}
