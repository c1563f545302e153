package statusbar

import "github.com/journeyq/dashboard/internal/types"

// GetHints returns the keybinding hints for the given page
func GetHints(page types.Page) string {
	switch page {
	case types.PageOverview:
		return "Tab: pages  d: dismiss toast  ?: help  q: quit"
	case types.PageBookings:
		return "j/k: bookings  f: status  /: search  s: sort  c: confirm  x: cancel"
	case types.PagePayments:
		return "j/k: payments  r: refund"
	case types.PageSettings:
		return "Enter: service type  Ctrl+S: save  L: log out"
	default:
		return ""
	}
}

// SearchHints are shown while the search box has focus
const SearchHints = "Type to search  Enter: confirm  Esc: clear"
