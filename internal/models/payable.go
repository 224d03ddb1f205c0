package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payable is money the user owes to a third party.
type Payable struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"-"`
	Name        string          `gorm:"size:128;not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"size:255;not null" json:"description"`
	DueDate     time.Time       `gorm:"index;not null" json:"dueDate"`
	IsPaid      bool            `gorm:"not null;default:false" json:"isPaid"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Payable) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
