package database

import (
	"fmt"

	"github.com/morshedkoli/personal-finance/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Income{},
		&models.Expense{},
		&models.Payable{},
		&models.Receivable{},
		&models.Category{},
		&models.Project{},
		&models.PaymentHistory{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
