package split

import "github.com/shopspring/decimal"

// CreditOption is the merchant's choice for the customer's balance in
// this transaction.
type CreditOption string

const (
	OptionUseCredit    CreditOption = "useCredit"
	OptionSaveForLater CreditOption = "saveForLater"
)

// Config carries the settlement split policy. The threshold, both
// percentage levels and the platform destination are business policy
// and are injected from configuration, never hard-coded at call sites.
type Config struct {
	// Payable amounts above Threshold get the reduced platform share.
	Threshold     decimal.Decimal
	AbovePercent  int
	BelowPercent  int
	PlatformSheba string
}

// DefaultConfig returns the current production policy.
func DefaultConfig() Config {
	return Config{
		Threshold:     decimal.NewFromInt(3_000_000),
		AbovePercent:  1,
		BelowPercent:  3,
		PlatformSheba: "IR170180000000000306824171",
	}
}

// Split is the settlement instruction for a two-party tashim charge.
// A party at zero percent has an empty destination and must not be
// transmitted to the terminal.
type Split struct {
	PlatformPercent int
	MerchantPercent int
	PlatformSheba   string
	MerchantSheba   string
}
