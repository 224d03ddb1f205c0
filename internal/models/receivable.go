package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receivable is money owed to the user.
type Receivable struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"-"`
	Name        string          `gorm:"size:128;not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"size:255;not null" json:"description"`
	DueDate     time.Time       `gorm:"index;not null" json:"dueDate"`
	IsReceived  bool            `gorm:"not null;default:false" json:"isReceived"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (r *Receivable) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
