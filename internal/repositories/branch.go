package repositories

import (
	"context"

	"gorm.io/gorm"

	"sanjab/internal/models"
)

type BranchRepository interface {
	GetBranches(ctx context.Context) ([]models.Branch, error)
	GetBranch(ctx context.Context, id uint) (*models.Branch, error)
	GetLinesDropdown(ctx context.Context, branchID uint) ([]models.ServiceLine, error)
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) GetBranches(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&branches).Error
	return branches, err
}

func (r *branchRepository) GetBranch(ctx context.Context, id uint) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.WithContext(ctx).First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) GetLinesDropdown(ctx context.Context, branchID uint) ([]models.ServiceLine, error) {
	var lines []models.ServiceLine
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND active = ?", branchID, true).
		Order("id").
		Find(&lines).Error
	return lines, err
}
