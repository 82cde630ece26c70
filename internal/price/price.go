// Package price parses the formatted price text stored on vehicle records
// ("$12,345.00") into an exact decimal for bound checks and sorting.
package price

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse strips currency formatting and returns the numeric value. ok is false
// when the text does not contain a usable number; callers decide whether that
// excludes the record (bound active) or merely skips the comparison.
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// InBounds reports whether the parsed value of s falls inside the inclusive
// [min, max] window; nil bounds are unbounded. The second result is false when
// s is unparseable, in which case the first result is meaningless.
func InBounds(s string, min, max *float64) (bool, bool) {
	d, ok := Parse(s)
	if !ok {
		return false, false
	}
	if min != nil && d.LessThan(decimal.NewFromFloat(*min)) {
		return false, true
	}
	if max != nil && d.GreaterThan(decimal.NewFromFloat(*max)) {
		return false, true
	}
	return true, true
}
