package repositories

import (
	"errors"

	"gorm.io/gorm"

	"sanjab/internal/models"
)

type MerchantRepository interface {
	GetByID(id uint) (*models.Merchant, error)
	GetByPhone(phone string) (*models.Merchant, error)
	GetOrCreateByPhone(phone string) (*models.Merchant, error)
	Update(merchant *models.Merchant) error
	IncrementTokenVersion(id uint) error
	GetTokenVersion(id uint) (int, error)
}

type merchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) GetByID(id uint) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.First(&merchant, id).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (r *merchantRepository) GetByPhone(phone string) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.Where("phone = ?", phone).First(&merchant).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

// GetOrCreateByPhone registers a merchant on first OTP login.
func (r *merchantRepository) GetOrCreateByPhone(phone string) (*models.Merchant, error) {
	merchant, err := r.GetByPhone(phone)
	if err == nil {
		return merchant, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	merchant = &models.Merchant{Phone: phone}
	if err := r.db.Create(merchant).Error; err != nil {
		return nil, err
	}
	return merchant, nil
}

func (r *merchantRepository) Update(merchant *models.Merchant) error {
	return r.db.Save(merchant).Error
}

func (r *merchantRepository) IncrementTokenVersion(id uint) error {
	return r.db.Model(&models.Merchant{}).
		Where("id = ?", id).
		Update("token_version", gorm.Expr("token_version + 1")).Error
}

func (r *merchantRepository) GetTokenVersion(id uint) (int, error) {
	var merchant models.Merchant
	if err := r.db.Select("token_version").First(&merchant, id).Error; err != nil {
		return 0, err
	}
	return merchant.TokenVersion, nil
}
