package trellis

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter groups integer digits the locale-aware way (1234567 ->
// "1,234,567" for English).
var numberPrinter = message.NewPrinter(language.English)

// ellipsis marks a truncated axis label.
const ellipsis = "…"

// TruncateLabel shortens s to at most max runes, appending an ellipsis when
// truncation occurred. A string of exactly max runes is returned unchanged.
func TruncateLabel(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ellipsis
}

// FormatCurrency renders v as a currency amount: the fixed 3-letter currency
// code, a space, and the locale-grouped integer value with no decimal places.
// The value is rounded half away from zero.
func FormatCurrency(code string, v float64) string {
	return code + " " + FormatNumber(v)
}

// FormatNumber renders v as a locale-grouped integer (no decimal places),
// rounded half away from zero.
func FormatNumber(v float64) string {
	return numberPrinter.Sprintf("%d", int64(math.Round(v)))
}
