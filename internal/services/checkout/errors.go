package checkout

import "errors"

// Service errors
var (
	ErrNoPricedItems   = errors.New("no priced line items selected")
	ErrInvalidLineID   = errors.New("invalid line item id")
	ErrPaymentDeclined = errors.New("payment declined by terminal")
	ErrPersistFailed   = errors.New("failed to persist transaction")
)
