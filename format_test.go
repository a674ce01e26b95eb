package trellis

import (
	"strings"
	"testing"
)

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "Rent", 15, "Rent"},
		{"exactly max", "ExactlyFifteen!", 15, "ExactlyFifteen!"},
		{"one over max", "SixteenCharsLong", 15, "SixteenCharsLon" + ellipsis},
		{"much longer", "Subscriptions & memberships", 15, "Subscriptions &" + ellipsis},
		{"empty", "", 15, ""},
		{"multibyte runes", strings.Repeat("é", 17), 15, strings.Repeat("é", 15) + ellipsis},
		{"zero max", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateLabel(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateLabel(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		code string
		in   float64
		want string
	}{
		{"USD", 1234.7, "USD 1,235"},
		{"USD", 1234.4, "USD 1,234"},
		{"EUR", 0, "EUR 0"},
		{"GBP", 999, "GBP 999"},
		{"USD", 1000000, "USD 1,000,000"},
		{"USD", -2500.5, "USD -2,501"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.code, tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%q, %v) = %q, want %q", tt.code, tt.in, got, tt.want)
		}
	}
}

func TestFormatNumberGrouping(t *testing.T) {
	if got, want := FormatNumber(1234567), "1,234,567"; got != want {
		t.Errorf("FormatNumber(1234567) = %q, want %q", got, want)
	}
	if got, want := FormatNumber(42), "42"; got != want {
		t.Errorf("FormatNumber(42) = %q, want %q", got, want)
	}
}
