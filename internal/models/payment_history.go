package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentHistory is the append-only audit trail of paidAmount changes
// on a project. Amount is the signed delta applied; PreviousTotal and
// NewTotal bracket it. Rows are only ever written inside the project
// payment transaction and are never edited or deleted by users.
type PaymentHistory struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	UserID        uint            `gorm:"index;not null" json:"-"`
	ProjectID     string          `gorm:"size:36;index;not null" json:"projectId"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PreviousTotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"previousTotal"`
	NewTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"newTotal"`
	Description   string          `gorm:"size:255" json:"description"`
	PaymentDate   time.Time       `gorm:"index;not null" json:"paymentDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (h *PaymentHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.PaymentDate.IsZero() {
		h.PaymentDate = time.Now()
	}
	return nil
}
