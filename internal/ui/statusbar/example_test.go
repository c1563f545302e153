package statusbar_test

import (
	"fmt"

	"github.com/journeyq/dashboard/internal/types"
	"github.com/journeyq/dashboard/internal/ui/statusbar"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	style := styles.New()

	sb := statusbar.New(types.PageOverview, 80, style)

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	fmt.Println(len(rendered) > 0)
	// Output: true
}

// ExampleGetHints shows how to get hints for a page
func ExampleGetHints() {
	fmt.Println(statusbar.GetHints(types.PageOverview))
	// Output: Tab: pages  d: dismiss toast  ?: help  q: quit
}
