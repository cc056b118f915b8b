// Package allocation distributes a customer's credit balance across the
// line items of a transaction in progress.
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sanjab/internal/services/money"
)

// Allocate runs a single greedy pass over items in selection order:
// each item consumes min(amount, remaining balance), so first-selected
// items are funded from credit before later ones. The input order is
// never re-sorted. Unpriced items (blank or zero amount) are excluded
// from both the allocation and the payable total.
//
// availableCredit is treated as a fresh starting balance on every call;
// neither it nor items are mutated. With useCredit false every item
// gets zero credit and the payable equals the priced total.
func Allocate(items []LineItem, availableCredit decimal.Decimal, useCredit bool) (*Result, error) {
	if availableCredit.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCreditBalance, availableCredit)
	}

	remaining := decimal.Zero
	if useCredit {
		remaining = availableCredit
	}

	res := &Result{
		TotalAmount:        decimal.Zero,
		TotalCreditApplied: decimal.Zero,
	}

	for _, item := range items {
		amount, err := money.Parse(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: line %s: %v", ErrInvalidAmount, item.ID, err)
		}
		if amount.IsZero() {
			continue
		}

		used := decimal.Min(amount, remaining)
		remaining = remaining.Sub(used)

		res.Items = append(res.Items, ItemAllocation{
			LineID:        item.ID,
			Title:         item.Title,
			Amount:        amount,
			CreditApplied: used,
			Remainder:     amount.Sub(used),
		})
		res.TotalAmount = res.TotalAmount.Add(amount)
		res.TotalCreditApplied = res.TotalCreditApplied.Add(used)
	}

	res.Payable = res.TotalAmount.Sub(res.TotalCreditApplied)
	return res, nil
}
