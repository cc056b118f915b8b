package models

import "time"

// Merchant is a POS operator account. SettlementSheba is the
// destination for the merchant share of split charges and must pass
// sheba validation before any money moves.
type Merchant struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Phone           string    `gorm:"uniqueIndex;not null" json:"phone"`
	Name            string    `json:"name"`
	BranchID        uint      `gorm:"index" json:"branch_id"`
	SettlementSheba string    `json:"settlement_sheba"`
	TokenVersion    int       `gorm:"default:0" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
