package model

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumber converts free-form input to a number.
// Blank or unparseable input yields 0, as do NaN and infinities.
// Unsigned integer literals with 0x, 0o and 0b prefixes are accepted;
// digit separators, hex floats and signed prefixed literals are not.
func CoerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0
	}

	if hasRadixPrefix(strings.TrimLeft(s, "+-")) {
		if s[0] == '+' || s[0] == '-' {
			return 0
		}
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0
		}
		return float64(n)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return finiteOrZero(f)
	}
	return 0
}

func hasRadixPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1]))
}

// CoerceCount coerces input to a whole count, rounding half away from zero.
func CoerceCount(s string) int {
	return RoundCount(CoerceNumber(s))
}

// RoundCount rounds an already-parsed value to a whole count.
// NaN and infinities count as 0.
func RoundCount(f float64) int {
	return int(math.Round(finiteOrZero(f)))
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
