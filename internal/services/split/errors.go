package split

import "errors"

// Calculator errors
var (
	ErrInvalidPayable     = errors.New("invalid payable amount")
	ErrInvalidDestination = errors.New("invalid settlement destination")
)
