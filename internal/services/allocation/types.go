package allocation

import "github.com/shopspring/decimal"

// LineItem is one billable service selected for the transaction in
// progress. Amount is the raw merchant-entered price and may carry
// thousands separators or Persian digits; blank or zero means the item
// has not been priced yet.
type LineItem struct {
	ID     string
	Title  string
	Amount string
}

// ItemAllocation reports how much of one priced line item is covered by
// the customer's credit balance.
type ItemAllocation struct {
	LineID        string
	Title         string
	Amount        decimal.Decimal
	CreditApplied decimal.Decimal
	Remainder     decimal.Decimal
}

// Result is the outcome of one allocation pass. It is derived fresh on
// every recomputation and never persisted independently of its inputs.
type Result struct {
	Items              []ItemAllocation
	TotalAmount        decimal.Decimal
	TotalCreditApplied decimal.Decimal
	Payable            decimal.Decimal
}
