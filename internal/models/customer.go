package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a loyalty customer identified by card number (the phone
// number entered at the POS). Credit is the balance available to offset
// charges; it is fetched once at transaction start and treated as an
// immutable input by the allocator.
type Customer struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	CardNumber string          `gorm:"index:idx_customer_card_branch,unique" json:"card_number"`
	BranchID   uint            `gorm:"index:idx_customer_card_branch,unique" json:"branch_id"`
	FullName   string          `json:"full_name"`
	Credit     decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"credit"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
