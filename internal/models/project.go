package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project lifecycle states.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusDue        = "due"
	ProjectStatusCompleted  = "completed"
)

// Project priorities.
const (
	ProjectPriorityLow    = "low"
	ProjectPriorityMedium = "medium"
	ProjectPriorityHigh   = "high"
)

// ValidProjectStatus reports whether s is one of the known lifecycle states.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusDue, ProjectStatusCompleted:
		return true
	}
	return false
}

// ValidProjectPriority reports whether p is one of the known priorities.
func ValidProjectPriority(p string) bool {
	switch p {
	case ProjectPriorityLow, ProjectPriorityMedium, ProjectPriorityHigh:
		return true
	}
	return false
}

// Project is a budgeted engagement tracked over its lifecycle. Once
// completed it may generate a single derived Income record from its
// budget/cost margin; IncomeGenerated guards against doing that twice.
type Project struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	UserID          uint            `gorm:"index;not null" json:"-"`
	Name            string          `gorm:"size:128;not null" json:"name"`
	Description     string          `gorm:"size:512;not null" json:"description"`
	Category        string          `gorm:"size:64" json:"category"`
	Status          string          `gorm:"size:16;index;not null" json:"status"`
	Priority        string          `gorm:"size:16;not null" json:"priority"`
	StartDate       time.Time       `gorm:"not null" json:"startDate"`
	EndDate         time.Time       `gorm:"not null" json:"endDate"`
	Budget          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"budget"`
	Cost            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"paidAmount"`
	Progress        int             `gorm:"not null;default:0" json:"progress"` // 0-100
	AgentName       string          `gorm:"size:128" json:"agentName,omitempty"`
	PhoneNumber     string          `gorm:"size:32" json:"phoneNumber,omitempty"`
	IncomeGenerated bool            `gorm:"not null;default:false" json:"incomeGenerated"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
