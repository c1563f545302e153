// Package bookingtable renders bookings as a table with a cursor row.
package bookingtable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

// EmptyMessage is shown when there are no bookings to list
const EmptyMessage = "No bookings match the current filters"

// Fixed column widths. The service column takes the rest.
const (
	colNumber   = 5
	colCustomer = 16
	colCheckIn  = 11
	colGuests   = 7
	colAmount   = 10
	colStatus   = 12
	colPayment  = 9
	fixedWidth  = colNumber + colCustomer + colCheckIn + colGuests + colAmount + colStatus + colPayment
	minService  = 10
)

// Table is a table view over a slice of bookings
type Table struct {
	bookings []domain.Booking
	cursor   int
	styles   *styles.Styles
	width    int
}

// New creates a Table with the given bookings and width
func New(bookings []domain.Booking, width int, s *styles.Styles) *Table {
	return &Table{
		bookings: bookings,
		styles:   s,
		width:    width,
	}
}

// SetCursor sets the cursor row, clamped to the bookings
func (t *Table) SetCursor(index int) {
	switch {
	case index >= len(t.bookings):
		t.cursor = max(0, len(t.bookings)-1)
	case index < 0:
		t.cursor = 0
	default:
		t.cursor = index
	}
}

// Cursor returns the cursor row
func (t *Table) Cursor() int {
	return t.cursor
}

func (t *Table) serviceWidth() int {
	return max(minService, t.width-fixedWidth)
}

// Render renders the header, a separator and one line per booking
func (t *Table) Render() string {
	if len(t.bookings) == 0 {
		return t.styles.Muted.Render(EmptyMessage)
	}

	lines := make([]string, 0, len(t.bookings)+2)
	lines = append(lines, t.renderHeader(), t.styles.Muted.Render(strings.Repeat("─", fixedWidth+t.serviceWidth())))
	for i, b := range t.bookings {
		lines = append(lines, t.renderRow(i, b))
	}
	return strings.Join(lines, "\n")
}

func (t *Table) renderHeader() string {
	h := t.styles.Muted.Bold(true)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell(h, colNumber, "#"),
		cell(h, colCustomer, "Customer"),
		cell(h, t.serviceWidth(), "Service"),
		cell(h, colCheckIn, "Check-in"),
		cell(h.Align(lipgloss.Right), colGuests-1, "Guests")+" ",
		cell(h.Align(lipgloss.Right), colAmount-1, "Amount")+" ",
		cell(h, colStatus, "Status"),
		cell(h, colPayment, "Payment"),
	)
}

func (t *Table) renderRow(index int, b domain.Booking) string {
	active := index == t.cursor
	row := t.styles.Row
	indicator := "  "
	if active {
		row = t.styles.RowActive
		indicator = "▶ "
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell(row, colNumber, fmt.Sprintf("%s%d", indicator, b.ID)),
		cell(row, colCustomer, b.CustomerName),
		cell(row, t.serviceWidth(), b.ServiceName),
		cell(row, colCheckIn, b.StartDate.Format("2006-01-02")),
		cell(row.Align(lipgloss.Right), colGuests-1, fmt.Sprintf("%d", b.Guests))+" ",
		cell(t.styles.Amount.Align(lipgloss.Right), colAmount-1, Money(b.TotalAmount))+" ",
		t.renderStatus(b.Status),
		cell(t.styles.PaymentStatus(b.PaymentStatus), colPayment, string(b.PaymentStatus)),
	)
}

func (t *Table) renderStatus(status domain.BookingStatus) string {
	badge := t.styles.BookingStatus(status).Render(status.Label())
	return badge + strings.Repeat(" ", max(0, colStatus-lipgloss.Width(badge)))
}

// cell renders text in a column of the given width, truncating so it
// never wraps
func cell(style lipgloss.Style, width int, text string) string {
	return style.Width(width).MaxHeight(1).Render(truncate(text, width-1))
}

// Money formats an amount in dollars
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// truncate shortens s to at most width runes, ending in "…" when cut
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
