package allocation

import "errors"

// Allocation errors
var (
	ErrInvalidAmount        = errors.New("invalid line item amount")
	ErrInvalidCreditBalance = errors.New("invalid credit balance")
)
