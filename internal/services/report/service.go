// Package report builds merchant transaction reports. The amounts it
// sums come back from storage; cashback computed by the remote
// settlement system is out of scope here.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"sanjab/internal/models"
	"sanjab/internal/repositories"
)

// Summary aggregates a filtered listing.
type Summary struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	TotalAmount  decimal.Decimal      `json:"total_amount"`
	TotalCredit  decimal.Decimal      `json:"total_credit"`
}

type Service interface {
	MerchantReport(ctx context.Context, merchantID uint, filter repositories.ReportFilter) (*Summary, error)
}

type service struct {
	transactions repositories.TransactionRepository
}

func NewService(transactions repositories.TransactionRepository) Service {
	return &service{transactions: transactions}
}

func (s *service) MerchantReport(ctx context.Context, merchantID uint, filter repositories.ReportFilter) (*Summary, error) {
	transactions, total, err := s.transactions.GetMerchantTransactions(ctx, merchantID, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Transactions: transactions,
		Total:        total,
		TotalAmount:  decimal.Zero,
		TotalCredit:  decimal.Zero,
	}
	for _, tx := range transactions {
		if tx.Status != models.TransactionStatusCompleted {
			continue
		}
		summary.TotalAmount = summary.TotalAmount.Add(tx.TotalAmount)
		summary.TotalCredit = summary.TotalCredit.Add(tx.CreditUsed)
	}
	return summary, nil
}
