// Package money provides parsing, formatting and rounding helpers for
// toman amounts entered on the POS. Amounts are kept as decimals end to
// end; float64 is never used for currency values.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// POS keyboards produce Persian (and occasionally Arabic-Indic) digits.
var digitTable = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// Normalize strips thousands separators and whitespace and converts
// Persian/Arabic-Indic digits to ASCII.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r == ',' || r == '٬' || r == ' ' || r == '\t':
			continue
		default:
			if d, ok := digitTable[r]; ok {
				b.WriteRune(d)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Parse converts a merchant-entered amount to a decimal. Blank input
// parses as zero (the item has not been priced yet); negative amounts
// are rejected.
func Parse(raw string) (decimal.Decimal, error) {
	s := Normalize(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q is negative", raw)
	}
	return d, nil
}

// RoundWhole rounds to the nearest whole toman. Displayed and
// transmitted values never carry fractional units.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Format renders a whole-unit amount with thousands separators.
func Format(d decimal.Decimal) string {
	s := RoundWhole(d).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// ToMinorUnits converts a toman amount to the rial integer string the
// payment terminal expects (1 toman = 10 rial).
func ToMinorUnits(d decimal.Decimal) string {
	return RoundWhole(d).Mul(decimal.NewFromInt(10)).String()
}
