// Package split derives the settlement percentage split between the
// platform and the merchant for the final payable amount of a charge.
package split

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sanjab/internal/services/iban"
)

// Calculate is a pure function of its inputs. Under saveForLater the
// platform funds no credit this transaction, so it withholds nothing:
// platform 0%, merchant 100%. Otherwise the platform share is
// cfg.AbovePercent when payable exceeds cfg.Threshold and
// cfg.BelowPercent at or below it; the merchant takes the rest. The two
// shares always sum to 100.
//
// The merchant destination is validated whenever the merchant share is
// positive; on failure the charge must not reach the terminal. A party
// at zero percent has its destination left empty.
func Calculate(payable decimal.Decimal, option CreditOption, merchantSheba string, cfg Config) (*Split, error) {
	if payable.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayable, payable)
	}

	platform := 0
	if option != OptionSaveForLater {
		if payable.GreaterThan(cfg.Threshold) {
			platform = cfg.AbovePercent
		} else {
			platform = cfg.BelowPercent
		}
	}

	s := &Split{
		PlatformPercent: platform,
		MerchantPercent: 100 - platform,
	}
	if s.PlatformPercent > 0 {
		s.PlatformSheba = cfg.PlatformSheba
	}
	if s.MerchantPercent > 0 {
		dest, err := iban.Validate(merchantSheba)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
		}
		s.MerchantSheba = dest.Clean
	}
	return s, nil
}
