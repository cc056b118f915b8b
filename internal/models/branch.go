package models

import "time"

// Branch is a physical location the merchant operates in.
type Branch struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Code      string    `gorm:"uniqueIndex" json:"code"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceLine is a billable service offered at a branch. The mobile
// client shows these in the selection dropdown.
type ServiceLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	BranchID  uint      `gorm:"index;not null" json:"branch_id"`
	Title     string    `gorm:"not null" json:"title"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
