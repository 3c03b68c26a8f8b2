// Package numeric provides exact-decimal helpers used across the adapter.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal string into a decimal value.
// On failure, it returns (zero, false).
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// MulStrings multiplies two decimal strings exactly and returns the product as
// a decimal string. Either operand being empty or malformed yields "".
// Financial cost fields (price × amount) must flow through here rather than
// float64 multiplication.
func MulStrings(a, b string) string {
	da, ok := Parse(a)
	if !ok {
		return ""
	}
	db, ok := Parse(b)
	if !ok {
		return ""
	}
	return da.Mul(db).String()
}

// AddStrings adds two decimal strings exactly. Empty operands count as zero;
// both empty yields "".
func AddStrings(a, b string) string {
	da, aok := Parse(a)
	db, bok := Parse(b)
	switch {
	case !aok && !bok:
		return ""
	case !aok:
		return db.String()
	case !bok:
		return da.String()
	}
	return da.Add(db).String()
}

// Float converts a decimal string into a float64 pointer for simple field
// extraction. Returns nil when the input is empty or malformed.
func Float(s string) *float64 {
	d, ok := Parse(s)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

// ScaleFromStep derives the effective fractional precision from a decimal
// "step" string such as a price tick.
func ScaleFromStep(step string) int {
	step = strings.TrimSpace(step)
	if step == "" {
		return 0
	}
	idx := strings.IndexByte(step, '.')
	if idx < 0 {
		return 0
	}
	frac := strings.TrimRight(step[idx+1:], "0")
	return len(frac)
}
