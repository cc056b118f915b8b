package terminal

import "context"

// Driver submits card-present charges to a payment terminal. The
// settlement calculators must have finished before either method is
// called; retry and timeout policy lives behind this interface, never
// in the calculators.
type Driver interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*Result, error)
	PurchaseSplit(ctx context.Context, req SplitPurchaseRequest) (*Result, error)
}
