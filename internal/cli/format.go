// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a dollar amount to two decimals with a $ prefix.
// e.g., 4014.26 -> "$4014.26", -12.5 -> "-$12.50"
// Rounding is half away from zero on the shortest decimal form of v, so
// 1.005 shows as "$1.01" where rounding the exact binary value would give "$1.00".
func FormatCurrency(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatMoney formats a dollar amount with thousands separators.
// e.g., 92517.48 -> "$92,517.48"
func FormatMoney(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// FormatMoneyShort formats large amounts compactly for cards and axes.
// e.g., 92517.48 -> "$92.5K"
func FormatMoneyShort(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	default:
		return FormatMoney(v)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-100 percentage.
// e.g., 97 -> "97%", 33.3 -> "33.3%"
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatFactor formats a 0-1 fraction as a whole percentage.
func FormatFactor(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatUnits renders a patient count with its unit multiplier.
// e.g., (5, 2) -> "5 x2"
func FormatUnits(patients, units int) string {
	if units == 1 {
		return FormatNumber(int64(patients))
	}
	return FormatNumber(int64(patients)) + " x" + strconv.Itoa(units)
}

// PadRight pads s with spaces to width w.
func PadRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
