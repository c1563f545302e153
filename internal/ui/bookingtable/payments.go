package bookingtable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/domain"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

// EmptyPaymentsMessage is shown when there are no payments to list
const EmptyPaymentsMessage = "No payments yet"

const (
	payColCustomer = 18
	payColBooked   = 11
	payColPayment  = 10
	payFixedWidth  = colNumber + payColCustomer + payColBooked + colAmount + payColPayment
)

// PaymentTable lists the payment side of each booking
type PaymentTable struct {
	bookings []domain.Booking
	cursor   int
	styles   *styles.Styles
	width    int
}

// NewPayments creates a PaymentTable with the given bookings and width
func NewPayments(bookings []domain.Booking, width int, s *styles.Styles) *PaymentTable {
	return &PaymentTable{
		bookings: bookings,
		styles:   s,
		width:    width,
	}
}

// SetCursor sets the cursor row, clamped to the bookings
func (t *PaymentTable) SetCursor(index int) {
	t.cursor = max(0, min(index, len(t.bookings)-1))
}

// Cursor returns the cursor row
func (t *PaymentTable) Cursor() int {
	return t.cursor
}

func (t *PaymentTable) serviceWidth() int {
	return max(minService, t.width-payFixedWidth)
}

// Render renders the header, a separator and one line per payment
func (t *PaymentTable) Render() string {
	if len(t.bookings) == 0 {
		return t.styles.Muted.Render(EmptyPaymentsMessage)
	}

	h := t.styles.Muted.Bold(true)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cell(h, colNumber, "#"),
		cell(h, payColCustomer, "Customer"),
		cell(h, t.serviceWidth(), "Service"),
		cell(h, payColBooked, "Booked"),
		cell(h.Align(lipgloss.Right), colAmount-1, "Amount")+" ",
		cell(h, payColPayment, "Payment"),
	)

	lines := make([]string, 0, len(t.bookings)+2)
	lines = append(lines, header, t.styles.Muted.Render(strings.Repeat("─", payFixedWidth+t.serviceWidth())))
	for i, b := range t.bookings {
		row := t.styles.Row
		indicator := "  "
		if i == t.cursor {
			row = t.styles.RowActive
			indicator = "▶ "
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			cell(row, colNumber, fmt.Sprintf("%s%d", indicator, b.ID)),
			cell(row, payColCustomer, b.CustomerName),
			cell(row, t.serviceWidth(), b.ServiceName),
			cell(row, payColBooked, b.BookedAt.Format("2006-01-02")),
			cell(t.styles.Amount.Align(lipgloss.Right), colAmount-1, Money(b.TotalAmount))+" ",
			cell(t.styles.PaymentStatus(b.PaymentStatus), payColPayment, string(b.PaymentStatus)),
		))
	}
	return strings.Join(lines, "\n")
}
