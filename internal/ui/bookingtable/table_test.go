package bookingtable

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

func TestNew(t *testing.T) {
	table := New(domain.MockBookings(), 100, styles.New())

	if len(table.bookings) != 4 {
		t.Errorf("Expected 4 bookings, got %d", len(table.bookings))
	}
	if table.Cursor() != 0 {
		t.Errorf("Expected cursor at 0, got %d", table.Cursor())
	}
}

func TestSetCursor(t *testing.T) {
	table := New(domain.MockBookings(), 100, styles.New())

	tests := []struct {
		name     string
		index    int
		expected int
	}{
		{"Normal position", 2, 2},
		{"Negative position", -1, 0},
		{"Beyond end", 10, 3},
		{"At end", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table.SetCursor(tt.index)
			if table.Cursor() != tt.expected {
				t.Errorf("SetCursor(%d) = %d, want %d", tt.index, table.Cursor(), tt.expected)
			}
		})
	}
}

func TestSetCursor_Empty(t *testing.T) {
	table := New(nil, 100, styles.New())
	table.SetCursor(3)

	if table.Cursor() != 0 {
		t.Errorf("Expected cursor 0 on empty table, got %d", table.Cursor())
	}
}

func TestRender(t *testing.T) {
	table := New(domain.MockBookings(), 110, styles.New())
	result := table.Render()
	lines := strings.Split(result, "\n")

	// Header + separator + 4 rows
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d", len(lines))
	}

	for _, want := range []string{"Customer", "Service", "Check-in", "Amount", "Payment"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("Header should contain %q", want)
		}
	}
	for _, want := range []string{"Alice Johnson", "Deluxe Ocean View Room", "2024-02-15", "$897.00", "Confirmed", "paid"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("First row should contain %q, got %q", want, lines[2])
		}
	}
	if !strings.Contains(lines[2], "▶") {
		t.Error("Cursor row should have an indicator")
	}
	if strings.Contains(lines[3], "▶") {
		t.Error("Only the cursor row should have an indicator")
	}
}

func TestRender_Empty(t *testing.T) {
	result := New(nil, 100, styles.New()).Render()

	if !strings.Contains(result, EmptyMessage) {
		t.Errorf("Expected empty message, got %q", result)
	}
}

func TestRender_NarrowKeepsOneLinePerRow(t *testing.T) {
	bookings := domain.MockBookings()
	bookings[0].ServiceName = strings.Repeat("Very Long Service Name ", 5)

	result := New(bookings, 40, styles.New()).Render()

	if h := lipgloss.Height(result); h != 6 {
		t.Errorf("Expected 6 lines, got %d", h)
	}
	if !strings.Contains(result, "…") {
		t.Error("Expected long service name to be truncated")
	}
}

func TestRender_RowsShareWidth(t *testing.T) {
	result := New(domain.MockBookings(), 100, styles.New()).Render()
	lines := strings.Split(result, "\n")

	want := lipgloss.Width(lines[0])
	for i, line := range lines[2:] {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("Row %d width %d, header width %d", i, w, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"Short", 10, "Short"},
		{"Exactly10!", 10, "Exactly10!"},
		{"This is longer", 10, "This is l…"},
		{"ab", 1, "…"},
		{"ab", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := truncate(tt.input, tt.width); got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	if got := Money(897); got != "$897.00" {
		t.Errorf("Money(897) = %q", got)
	}
}
