package iban

import "errors"

// Validation errors
var (
	ErrEmpty     = errors.New("identifier is empty")
	ErrBadPrefix = errors.New("identifier must start with IR")
	ErrBadLength = errors.New("identifier must be 26 characters")
	ErrBadDigits = errors.New("identifier must be 24 digits after the country code")
	ErrChecksum  = errors.New("identifier checksum mismatch")
)
