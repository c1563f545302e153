// Package types contains shared types used across the application.
package types

// Page is one of the dashboard's top-level screens
type Page int

const (
	PageOverview Page = iota
	PageBookings
	PagePayments
	PageSettings
)

// Pages lists every page in tab order
var Pages = []Page{PageOverview, PageBookings, PagePayments, PageSettings}

// String returns the tab label of the page
func (p Page) String() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PageBookings:
		return "Bookings"
	case PagePayments:
		return "Payments"
	case PageSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Next returns the page after p, wrapping around
func (p Page) Next() Page {
	return Pages[(int(p)+1)%len(Pages)]
}

// Prev returns the page before p, wrapping around
func (p Page) Prev() Page {
	return Pages[(int(p)+len(Pages)-1)%len(Pages)]
}
