// Package checkout runs the settlement pipeline for one POS charge:
// credit allocation, split derivation, terminal capture, persistence.
package checkout

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"sanjab/internal/models"
	"sanjab/internal/services/allocation"
	"sanjab/internal/services/money"
	"sanjab/internal/services/split"
	"sanjab/internal/services/terminal"
)

type Service struct {
	store    Store
	terminal terminal.Driver
	cfg      Config
}

func NewService(store Store, driver terminal.Driver, cfg Config) *Service {
	if store == nil {
		panic("store is required")
	}
	if driver == nil {
		panic("terminal driver is required")
	}
	if cfg.PaymentMethod == "" {
		cfg.PaymentMethod = DefaultPaymentMethod
	}
	return &Service{store: store, terminal: driver, cfg: cfg}
}

// Checkout executes the full pipeline. Both calculators run to
// completion before the terminal is touched; an invalid merchant
// destination aborts before any money moves. When credit covers the
// whole amount the terminal is skipped and the transaction settles from
// credit alone.
func (s *Service) Checkout(ctx context.Context, req Request) (*Receipt, error) {
	useCredit := req.CreditOption != split.OptionSaveForLater

	alloc, err := allocation.Allocate(req.Items, req.Credit, useCredit)
	if err != nil {
		return nil, err
	}
	if len(alloc.Items) == 0 {
		return nil, ErrNoPricedItems
	}

	lines, err := s.buildLines(alloc)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		Reference:     fmt.Sprintf("TX-%s", uuid.NewString()),
		MerchantID:    req.MerchantID,
		BranchID:      req.BranchID,
		CardNumber:    req.CardNumber,
		CreditOption:  string(req.CreditOption),
		TotalAmount:   money.RoundWhole(alloc.TotalAmount),
		CreditUsed:    money.RoundWhole(alloc.TotalCreditApplied),
		PayableAmount: money.RoundWhole(alloc.Payable),
		Status:        models.TransactionStatusPending,
		Lines:         lines,
	}

	receipt := &Receipt{Transaction: tx, Allocation: alloc}

	if alloc.Payable.IsPositive() {
		spl, err := split.Calculate(alloc.Payable, req.CreditOption, req.MerchantSheba, s.cfg.Split)
		if err != nil {
			return nil, err
		}
		receipt.Split = spl
		tx.PlatformPercent = spl.PlatformPercent
		tx.MerchantPercent = spl.MerchantPercent

		result, err := s.charge(ctx, tx.Reference, alloc, spl)
		if err != nil {
			return nil, err
		}
		receipt.Terminal = result
		tx.ResultCode = result.Code

		if !result.Succeeded {
			tx.Status = models.TransactionStatusDeclined
			if saveErr := s.store.SaveTransaction(ctx, tx); saveErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrPersistFailed, saveErr)
			}
			return receipt, fmt.Errorf("%w: code %s", ErrPaymentDeclined, result.Code)
		}
	}

	tx.Status = models.TransactionStatusCompleted
	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return receipt, nil
}

func (s *Service) charge(ctx context.Context, ref string, alloc *allocation.Result, spl *split.Split) (*terminal.Result, error) {
	amount := money.ToMinorUnits(alloc.Payable)
	if spl.PlatformPercent == 0 {
		// single-destination charge, no withholding this transaction
		return s.terminal.Purchase(ctx, terminal.PurchaseRequest{
			Amount:    amount,
			Reference: ref,
		})
	}
	return s.terminal.PurchaseSplit(ctx, terminal.SplitPurchaseRequest{
		Amount:    amount,
		Reference: ref,
		Percent1:  spl.PlatformPercent,
		Percent2:  spl.MerchantPercent,
		Sheba1:    spl.PlatformSheba,
		Sheba2:    spl.MerchantSheba,
	})
}

func (s *Service) buildLines(alloc *allocation.Result) ([]models.TransactionLine, error) {
	lines := make([]models.TransactionLine, 0, len(alloc.Items))
	for _, it := range alloc.Items {
		lineID, err := strconv.Atoi(it.LineID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLineID, it.LineID)
		}
		lines = append(lines, models.TransactionLine{
			LineID:        lineID,
			LineTitle:     it.Title,
			Price:         money.RoundWhole(it.Amount).String(),
			PayFromCredit: money.RoundWhole(it.CreditApplied).IntPart(),
			Description:   "",
			PaymentMethod: s.cfg.PaymentMethod,
		})
	}
	return lines, nil
}
