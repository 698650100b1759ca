package model

import (
	"math"
	"strconv"
	"strings"
)

// ValidAmount reports whether v is finite and not negative
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// ParseAmount parses user-entered text into a finite number.
// Surrounding whitespace is ignored. Empty, unparsable and non-finite input is rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseNonNegativeAmount parses a finite amount that must also be at least zero
func ParseNonNegativeAmount(s string) (float64, error) {
	v, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatRawAmount renders an amount the way a numeric input field holds it
func FormatRawAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
