package terminal

// Result is the completed outcome of a terminal transaction, mapped
// from the device's asynchronous result event into a plain value.
type Result struct {
	Succeeded bool
	Code      string
	Raw       string
}

// PurchaseRequest is a plain single-destination charge. Amount is in
// rial (minor units) as an integer string.
type PurchaseRequest struct {
	Amount    string
	Reference string
}

// SplitPurchaseRequest is a two-destination tashim charge. A slot with
// zero percent carries an empty sheba and is not transmitted.
type SplitPurchaseRequest struct {
	Amount    string
	Reference string
	Percent1  int
	Percent2  int
	Sheba1    string
	Sheba2    string
}
