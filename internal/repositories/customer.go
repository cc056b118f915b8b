package repositories

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"sanjab/internal/models"
	"sanjab/internal/repositories/cache"
)

var ErrInsufficientCredit = errors.New("insufficient customer credit")

type CustomerRepository interface {
	// GetByCard returns the customer's credit record for a branch.
	// The result feeds the allocator as an immutable balance snapshot.
	GetByCard(ctx context.Context, cardNumber string, branchID uint) (*models.Customer, error)
	DeductCredit(ctx context.Context, tx *gorm.DB, cardNumber string, branchID uint, amount string) error
}

type customerRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewCustomerRepository(db *gorm.DB, cacheService *cache.CacheService) CustomerRepository {
	return &customerRepository{db: db, cache: cacheService}
}

func (r *customerRepository) GetByCard(ctx context.Context, cardNumber string, branchID uint) (*models.Customer, error) {
	if r.cache != nil {
		if customer, found, err := r.cache.GetCustomer(ctx, cardNumber, branchID); err == nil && found {
			return customer, nil
		}
	}

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("card_number = ? AND branch_id = ?", cardNumber, branchID).
		First(&customer).Error
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheCustomer(ctx, &customer); err != nil {
			log.Printf("failed to cache customer %s: %v", cardNumber, err)
		}
	}
	return &customer, nil
}

// DeductCredit lowers the stored balance by the credit consumed in a
// completed transaction. Runs inside the caller's gorm transaction and
// invalidates the cached snapshot afterwards.
func (r *customerRepository) DeductCredit(ctx context.Context, tx *gorm.DB, cardNumber string, branchID uint, amount string) error {
	res := tx.WithContext(ctx).Model(&models.Customer{}).
		Where("card_number = ? AND branch_id = ? AND credit >= ?", cardNumber, branchID, amount).
		Update("credit", gorm.Expr("credit - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientCredit
	}
	if r.cache != nil {
		if err := r.cache.InvalidateCustomer(ctx, cardNumber, branchID); err != nil {
			log.Printf("failed to invalidate customer cache %s: %v", cardNumber, err)
		}
	}
	return nil
}
