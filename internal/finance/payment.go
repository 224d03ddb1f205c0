package finance

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/morshedkoli/personal-finance/internal/models"
)

// GetProject fetches one project owned by the user.
func (s *Service) GetProject(userID uint, id string) (*models.Project, error) {
	var project models.Project
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "project"}
		}
		return nil, err
	}
	return &project, nil
}

// CreateProject validates and persists a new project. A project created
// directly in completed state goes through the income generation rule
// right away.
func (s *Service) CreateProject(userID uint, in ProjectInput) (*models.Project, error) {
	rec, err := ValidateProject(in)
	if err != nil {
		return nil, err
	}
	project := models.Project{
		UserID:      userID,
		Name:        rec.Name,
		Description: rec.Description,
		Category:    rec.Category,
		Status:      rec.Status,
		Priority:    rec.Priority,
		StartDate:   rec.StartDate,
		EndDate:     rec.EndDate,
		Budget:      rec.Budget,
		Cost:        rec.Cost,
		PaidAmount:  rec.PaidAmount,
		Progress:    rec.Progress,
		AgentName:   rec.AgentName,
		PhoneNumber: rec.PhoneNumber,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	if project.Status == models.ProjectStatusCompleted {
		if err := s.generateProjectIncome(&project); err != nil {
			// secondary effect: the project itself is already saved
			log.Printf("generate income for project %s: %v", project.ID, err)
		}
	}
	return &project, nil
}

// UpdateProject applies a partial update. When the update changes
// paidAmount, the project write and the payment-history insert run in
// one transaction: either both land or neither does. Any other update
// is a plain write with no history side effect.
func (s *Service) UpdateProject(userID uint, id string, upd ProjectUpdate) (*models.Project, error) {
	existing, err := s.GetProject(userID, id)
	if err != nil {
		return nil, err
	}

	if existing.Status == models.ProjectStatusCompleted && upd.touchesOtherThanPayment() {
		return nil, ValidationErrors{{Field: "status", Detail: "completed projects only accept payment updates"}}
	}

	fields, err := upd.Fields()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return existing, nil
	}

	isPaymentUpdate := upd.PaidAmount != nil && !upd.PaidAmount.Decimal.Equal(existing.PaidAmount)
	// on a completed project, status may only ride along with an actual
	// payment change; a no-op paidAmount does not unlock it
	if existing.Status == models.ProjectStatusCompleted && upd.Status != nil && !isPaymentUpdate {
		return nil, ValidationErrors{{Field: "status", Detail: "completed projects only accept payment updates"}}
	}
	if !isPaymentUpdate {
		if err := s.db.Model(existing).Updates(fields).Error; err != nil {
			return nil, err
		}
		return s.GetProject(userID, id)
	}

	newPaid := upd.PaidAmount.Decimal

	// a payment may move the project between due and in-progress unless
	// the caller pinned the status explicitly
	if upd.Status == nil {
		switch {
		case existing.Status == models.ProjectStatusInProgress && newPaid.LessThan(existing.Budget):
			fields["status"] = models.ProjectStatusDue
		case existing.Status == models.ProjectStatusDue && newPaid.GreaterThanOrEqual(existing.Budget):
			fields["status"] = models.ProjectStatusInProgress
		}
	}

	history := models.PaymentHistory{
		UserID:        userID,
		ProjectID:     existing.ID,
		Amount:        newPaid.Sub(existing.PaidAmount),
		PreviousTotal: existing.PaidAmount,
		NewTotal:      newPaid,
		Description:   "Payment update: " + existing.Name,
		PaymentDate:   s.now(),
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields).Error; err != nil {
			return err
		}
		return tx.Create(&history).Error
	})
	if txErr != nil {
		return nil, &TransactionFailure{Err: txErr}
	}
	return s.GetProject(userID, id)
}

// CompleteProject transitions a project to completed. The transition is
// refused while the project is underpaid; on success progress jumps to
// 100 and the income generation rule runs as a best-effort follow-up.
func (s *Service) CompleteProject(userID uint, id string) (*models.Project, error) {
	project, err := s.GetProject(userID, id)
	if err != nil {
		return nil, err
	}

	if project.PaidAmount.LessThan(project.Budget) {
		return nil, &PaymentRequiredError{
			Remaining: project.Budget.Sub(project.PaidAmount),
			Budget:    project.Budget,
		}
	}

	if err := s.db.Model(project).Updates(map[string]interface{}{
		"status":   models.ProjectStatusCompleted,
		"progress": 100,
	}).Error; err != nil {
		return nil, err
	}
	project.Status = models.ProjectStatusCompleted
	project.Progress = 100

	if err := s.generateProjectIncome(project); err != nil {
		// income generation is outside the completion write: report it,
		// keep the status change
		log.Printf("generate income for project %s: %v", project.ID, err)
	}
	return project, nil
}

// DeleteProject removes a project. Its payment history is retained as
// an orphaned audit trail.
func (s *Service) DeleteProject(userID uint, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "project"}
	}
	return nil
}
