package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category labels Income/Expense/Project records. Name is unique per
// user and type; deleting a category does not touch records that still
// reference its name.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_categories_user_type_name;not null" json:"-"`
	Name      string    `gorm:"size:64;uniqueIndex:idx_categories_user_type_name;not null" json:"name"`
	Type      string    `gorm:"size:16;uniqueIndex:idx_categories_user_type_name;not null" json:"type"` // income / expense / project
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
