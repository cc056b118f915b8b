package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusDeclined  = "declined"
)

// Credit options as recorded on the transaction
const (
	CreditOptionUse  = "useCredit"
	CreditOptionSave = "saveForLater"
)

// Transaction is one completed (or declined) POS charge, including the
// credit allocation outcome and the terminal result.
type Transaction struct {
	ID              uint              `gorm:"primarykey" json:"id"`
	Reference       string            `gorm:"uniqueIndex;not null" json:"reference"`
	MerchantID      uint              `gorm:"index;not null" json:"merchant_id"`
	BranchID        uint              `gorm:"index" json:"branch_id"`
	CardNumber      string            `gorm:"index" json:"card_number"`
	CreditOption    string            `json:"credit_option"`
	TotalAmount     decimal.Decimal   `gorm:"type:numeric;not null" json:"total_amount"`
	CreditUsed      decimal.Decimal   `gorm:"type:numeric;not null;default:0" json:"credit_used"`
	PayableAmount   decimal.Decimal   `gorm:"type:numeric;not null" json:"payable_amount"`
	PlatformPercent int               `json:"platform_percent"`
	MerchantPercent int               `json:"merchant_percent"`
	Status          string            `gorm:"not null;default:'pending'" json:"status"`
	ResultCode      string            `json:"result_code"`
	Lines           []TransactionLine `gorm:"foreignKey:TransactionID" json:"lines"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// TransactionLine is the per-service settlement record submitted with a
// transaction. Price carries no thousands separators; PayFromCredit is
// rounded to whole units.
type TransactionLine struct {
	ID            uint   `gorm:"primarykey" json:"-"`
	TransactionID uint   `gorm:"index;not null" json:"-"`
	LineID        int    `gorm:"not null" json:"lineId"`
	LineTitle     string `json:"lineTitle"`
	Price         string `gorm:"not null" json:"price"`
	PayFromCredit int64  `gorm:"not null;default:0" json:"payFromCredit"`
	Description   string `json:"description"`
	PaymentMethod string `json:"PaymentMethod"`
}
