package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a numeric cell, tolerating thousands separators and
// surrounding whitespace. Empty or non-numeric cells report false.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseCount parses a numeric cell as a whole count; fractional values are
// truncated and invalid cells yield 0.
func ParseCount(s string) int {
	d, ok := ParseAmount(s)
	if !ok {
		return 0
	}
	return int(d.IntPart())
}
