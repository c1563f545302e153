// Package toaster renders the toast queue as a stack of boxes.
package toaster

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/journeyq/dashboard/internal/toast"
	"github.com/journeyq/dashboard/internal/ui/styles"
)

const (
	maxToastWidth = 42
	minToastWidth = 20
)

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles     *styles.Styles
	maxVisible int
}

// New creates a Renderer showing at most maxVisible toasts (0 = unlimited)
func New(styles *styles.Styles, maxVisible int) *Renderer {
	return &Renderer{
		styles:     styles,
		maxVisible: maxVisible,
	}
}

// Render renders the toasts stacked top to bottom, oldest first.
// When there are more than maxVisible only the newest are shown.
// Returns empty string if there is nothing to display.
func (r *Renderer) Render(toasts []toast.Notification, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	if r.maxVisible > 0 && len(toasts) > r.maxVisible {
		toasts = toasts[len(toasts)-r.maxVisible:]
	}

	toastWidth := width / 3
	if toastWidth > maxToastWidth {
		toastWidth = maxToastWidth
	}
	if toastWidth < minToastWidth {
		toastWidth = minToastWidth
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, r.renderOne(t, toastWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func (r *Renderer) renderOne(t toast.Notification, width int) string {
	var lines []string
	if t.Title != "" {
		lines = append(lines, r.styles.ToastTitle.Render(t.Title))
	}
	if t.Description != "" {
		lines = append(lines, t.Description)
	}
	if len(lines) == 0 {
		lines = append(lines, " ")
	}

	return r.styleForVariant(t.Variant).Width(width).Render(strings.Join(lines, "\n"))
}

// styleForVariant returns the appropriate style for a toast variant
func (r *Renderer) styleForVariant(v toast.Variant) lipgloss.Style {
	if v == toast.VariantDestructive {
		return r.styles.ToastDestructive
	}
	return r.styles.ToastDefault
}
