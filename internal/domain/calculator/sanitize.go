package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SanitizePrice normalizes human-entered price text: everything except
// digits and a single decimal point is stripped, extra decimal points
// collapse to the first, and fractional digits are truncated to two.
func SanitizePrice(raw string) string {
	var b strings.Builder
	seenPoint := false
	fracDigits := 0

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if seenPoint {
				if fracDigits >= 2 {
					continue
				}
				fracDigits++
			}
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ParsePrice sanitizes and parses price text. Empty or all-garbage input
// parses to zero rather than an error; a bare trailing point is tolerated.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := SanitizePrice(raw)
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
