package ux

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Display styles for status badges and emphasis
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// FormatDate renders a backend timestamp as a short human date. Unparseable
// or empty values pass through unchanged.
func FormatDate(value string) string {
	if value == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return value
}

// FormatPrice renders a rupee amount, dropping trailing zeros
func FormatPrice(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// FormatDiscount renders a plan price with an applied discount, showing
// both the original and the discounted amount
func FormatDiscount(price, discount float64) string {
	if discount == 0 {
		return FormatPrice(price)
	}
	discounted := price - (price * discount / 100)
	return fmt.Sprintf("%s (%s, -%s%%)",
		FormatPrice(discounted), FormatPrice(price), strconv.FormatFloat(discount, 'f', -1, 64))
}

// StatusBadge colors a submission status for terminal display
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "completed":
		return successStyle.Render(status)
	case "processing":
		return infoStyle.Render(status)
	case "pending":
		return warningStyle.Render(status)
	case "cancelled":
		return errorStyle.Render(status)
	default:
		return mutedStyle.Render(status)
	}
}

// ActiveBadge renders an is_active flag
func ActiveBadge(active bool) string {
	if active {
		return successStyle.Render("active")
	}
	return mutedStyle.Render("inactive")
}

// YesNo renders a boolean as yes/no
func YesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Truncate shortens a string for table cells. Cuts on rune boundaries so
// multibyte text never turns into invalid UTF-8.
func Truncate(s string, max int) string {
	if max <= 3 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
