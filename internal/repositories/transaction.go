package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sanjab/internal/models"
)

// ReportFilter narrows transaction listings for the reports screen.
type ReportFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
	Limit  int
	Offset int
}

type TransactionRepository interface {
	SaveTransaction(ctx context.Context, tx *models.Transaction) error
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)
	GetMerchantTransactions(ctx context.Context, merchantID uint, filter ReportFilter) ([]models.Transaction, int64, error)
}

type transactionRepository struct {
	db        *gorm.DB
	customers CustomerRepository
}

func NewTransactionRepository(db *gorm.DB, customers CustomerRepository) TransactionRepository {
	return &transactionRepository{db: db, customers: customers}
}

// SaveTransaction persists the transaction with its lines and, for
// completed transactions that consumed credit, deducts the consumed
// amount from the customer balance in the same database transaction.
func (r *transactionRepository) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(dtx *gorm.DB) error {
		if err := dtx.Create(tx).Error; err != nil {
			return err
		}
		if tx.Status == models.TransactionStatusCompleted && tx.CreditUsed.IsPositive() {
			return r.customers.DeductCredit(ctx, dtx, tx.CardNumber, tx.BranchID, tx.CreditUsed.String())
		}
		return nil
	})
}

func (r *transactionRepository) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("reference = ?", reference).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) GetMerchantTransactions(ctx context.Context, merchantID uint, filter ReportFilter) ([]models.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("merchant_id = ?", merchantID)
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var transactions []models.Transaction
	err := q.Preload("Lines").
		Order("created_at DESC").
		Limit(limit).Offset(filter.Offset).
		Find(&transactions).Error
	return transactions, total, err
}
