package finance

import (
	"fmt"

	"github.com/morshedkoli/personal-finance/internal/models"
)

// Category assigned to income derived from completed projects.
const ProjectIncomeCategory = "Project Income"

// generateProjectIncome recognizes a completed project's margin
// (budget - cost) as income, at most once per project. The
// IncomeGenerated flag is set only after the income record lands, so a
// failed create leaves the project eligible for retry. A margin of zero
// or less creates nothing and leaves the flag clear.
func (s *Service) generateProjectIncome(p *models.Project) error {
	if p.IncomeGenerated || !p.Budget.IsPositive() || !p.Cost.IsPositive() {
		return nil
	}
	revenue := p.Budget.Sub(p.Cost)
	if !revenue.IsPositive() {
		return nil
	}

	income := models.Income{
		UserID:   p.UserID,
		Amount:   revenue,
		Category: ProjectIncomeCategory,
		Description: fmt.Sprintf("Project Revenue: %s (Budget: $%s - Cost: $%s)",
			p.Name, p.Budget.String(), p.Cost.String()),
		Date: s.now(),
	}
	if err := s.db.Create(&income).Error; err != nil {
		return err
	}
	if err := s.db.Model(p).Update("income_generated", true).Error; err != nil {
		return err
	}
	p.IncomeGenerated = true
	return nil
}
