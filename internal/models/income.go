package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a single credit entry in the user's ledger.
type Income struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"-"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Category    string          `gorm:"size:64;not null" json:"category"`
	Date        time.Time       `gorm:"index;not null" json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
