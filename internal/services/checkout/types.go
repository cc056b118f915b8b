package checkout

import (
	"github.com/shopspring/decimal"

	"sanjab/internal/models"
	"sanjab/internal/services/allocation"
	"sanjab/internal/services/split"
	"sanjab/internal/services/terminal"
)

// Request is everything the POS screens have gathered by the time the
// merchant confirms the charge. Credit is the customer balance fetched
// at transaction start; the allocator treats it as a fresh starting
// balance on every run.
type Request struct {
	MerchantID    uint
	BranchID      uint
	CardNumber    string
	Items         []allocation.LineItem
	Credit        decimal.Decimal
	CreditOption  split.CreditOption
	MerchantSheba string
}

// Receipt is returned to the caller once the pipeline completes.
// Terminal is nil when credit covered the full amount and no card was
// swiped; Split is nil in the same case.
type Receipt struct {
	Transaction *models.Transaction
	Allocation  *allocation.Result
	Split       *split.Split
	Terminal    *terminal.Result
}

// Config holds checkout policy.
type Config struct {
	Split split.Config
	// PaymentMethod is the fixed label recorded on every settlement line.
	PaymentMethod string
}

// DefaultPaymentMethod matches the label the settlement system expects
// for charges captured on the blue POS devices.
const DefaultPaymentMethod = "پوز - پوز آبی"
