// Package iban validates Iranian settlement destination identifiers
// (sheba numbers) against the ISO 13616 mod-97 check.
package iban

import (
	"strings"
	"unicode"
)

const (
	countryPrefix = "IR"
	shebaLength   = 26
)

// IBAN is a validated destination identifier in both its wire form and
// its display form (blocks of four separated by single spaces).
type IBAN struct {
	Clean     string
	Formatted string
}

// Clean strips all whitespace and uppercases the identifier.
func Clean(raw string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))
}

// Format groups a cleaned identifier into blocks of four for display.
func Format(raw string) string {
	c := Clean(raw)
	var b strings.Builder
	for i, r := range c {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate checks structure and checksum of a destination identifier.
// Input may carry spaces and mixed case.
func Validate(raw string) (*IBAN, error) {
	c := Clean(raw)
	if c == "" {
		return nil, ErrEmpty
	}
	if !strings.HasPrefix(c, countryPrefix) {
		return nil, ErrBadPrefix
	}
	if len(c) != shebaLength {
		return nil, ErrBadLength
	}
	for _, r := range c[2:] {
		if r < '0' || r > '9' {
			return nil, ErrBadDigits
		}
	}
	if mod97(c) != 1 {
		return nil, ErrChecksum
	}
	return &IBAN{Clean: c, Formatted: Format(c)}, nil
}

// mod97 computes the ISO 13616 remainder: move the first four
// characters to the end, expand letters (A=10..Z=35) and reduce the
// resulting number modulo 97 digit by digit.
func mod97(s string) int {
	rearranged := s[4:] + s[:4]
	rem := 0
	for _, r := range rearranged {
		if r >= 'A' && r <= 'Z' {
			n := int(r-'A') + 10
			rem = (rem*10 + n/10) % 97
			rem = (rem*10 + n%10) % 97
		} else {
			rem = (rem*10 + int(r-'0')) % 97
		}
	}
	return rem
}
