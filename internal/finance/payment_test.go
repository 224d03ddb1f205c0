package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morshedkoli/personal-finance/internal/models"
)

func createProject(t *testing.T, s *Service, userID uint, status, budget, paid string) *models.Project {
	t.Helper()
	in := ProjectInput{
		Name:        "Website redesign",
		Description: "Client site rebuild",
		Category:    "web",
		Status:      status,
		Priority:    models.ProjectPriorityMedium,
		StartDate:   "2024-01-01",
		EndDate:     "2024-06-30",
		Budget:      decPtr(budget),
		Cost:        lenientPtr("400"),
		PaidAmount:  lenientPtr(paid),
	}
	p, err := s.CreateProject(userID, in)
	require.NoError(t, err)
	return p
}

func historyFor(t *testing.T, s *Service, projectID string) []models.PaymentHistory {
	t.Helper()
	var rows []models.PaymentHistory
	require.NoError(t, s.db.Where("project_id = ?", projectID).
		Order("created_at ASC").Find(&rows).Error)
	return rows
}

func TestUpdateProjectPaymentRecordsHistory(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "200")

	updated, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("500")})
	require.NoError(t, err)
	assert.True(t, updated.PaidAmount.Equal(dec("500")))

	rows := historyFor(t, s, p.ID)
	require.Len(t, rows, 1)
	h := rows[0]
	assert.True(t, h.Amount.Equal(dec("300")))
	assert.True(t, h.PreviousTotal.Equal(dec("200")))
	assert.True(t, h.NewTotal.Equal(dec("500")))
	assert.Equal(t, "Payment update: Website redesign", h.Description)
	assert.Equal(t, uint(1), h.UserID)
	assert.True(t, h.PaymentDate.Equal(testNow))
}

func TestUpdateProjectNonPaymentNoHistory(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "200")

	updated, err := s.UpdateProject(1, p.ID, ProjectUpdate{Name: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Empty(t, historyFor(t, s, p.ID))
}

func TestUpdateProjectSamePaidAmountNoHistory(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "200")

	_, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("200")})
	require.NoError(t, err)
	assert.Empty(t, historyFor(t, s, p.ID))
}

func TestUpdateProjectSecondPaymentDelta(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "0")

	_, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("600")})
	require.NoError(t, err)
	// corrections may lower the running total; the delta goes negative
	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("450")})
	require.NoError(t, err)

	rows := historyFor(t, s, p.ID)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Amount.Equal(dec("600")))
	assert.True(t, rows[1].Amount.Equal(dec("-150")))
	assert.True(t, rows[1].PreviousTotal.Equal(dec("600")))
	assert.True(t, rows[1].NewTotal.Equal(dec("450")))
}

func TestPaymentDerivesStatus(t *testing.T) {
	s := newTestService(t)

	t.Run("in-progress goes due when underpaid", func(t *testing.T) {
		p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "0")
		updated, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("300")})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusDue, updated.Status)
	})

	t.Run("due goes in-progress when paid up", func(t *testing.T) {
		p := createProject(t, s, 1, models.ProjectStatusDue, "1000", "300")
		updated, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("1000")})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusInProgress, updated.Status)
	})

	t.Run("explicit status wins over derivation", func(t *testing.T) {
		p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "0")
		updated, err := s.UpdateProject(1, p.ID, ProjectUpdate{
			PaidAmount: lenientPtr("300"),
			Status:     strPtr(models.ProjectStatusPlanning),
		})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusPlanning, updated.Status)
	})

	t.Run("planning status is left alone", func(t *testing.T) {
		p := createProject(t, s, 1, models.ProjectStatusPlanning, "1000", "0")
		updated, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("300")})
		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusPlanning, updated.Status)
	})
}

func TestCompletedProjectRejectsNonPaymentEdits(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "1000")
	_, err := s.CompleteProject(1, p.ID)
	require.NoError(t, err)

	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{Name: strPtr("New name")})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	// payment corrections stay allowed after completion
	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("1100")})
	require.NoError(t, err)
	assert.Len(t, historyFor(t, s, p.ID), 1)
}

func TestCompletedProjectLifecycleLocked(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "1000")
	_, err := s.CompleteProject(1, p.ID)
	require.NoError(t, err)

	var verrs ValidationErrors

	// status cannot be reverted on its own to reopen the project
	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{Status: strPtr(models.ProjectStatusInProgress)})
	require.ErrorAs(t, err, &verrs)

	// the income flag cannot be reset
	cleared := false
	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{IncomeGenerated: &cleared})
	require.ErrorAs(t, err, &verrs)

	// progress is locked at 100
	progress := LenientInt(10)
	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{Progress: &progress})
	require.ErrorAs(t, err, &verrs)

	// a no-op paidAmount does not smuggle a status revert through
	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{
		PaidAmount: lenientPtr("1000"),
		Status:     strPtr(models.ProjectStatusInProgress),
	})
	require.ErrorAs(t, err, &verrs)

	// re-completing never doubles the derived income
	_, err = s.CompleteProject(1, p.ID)
	require.NoError(t, err)
	assert.Len(t, incomesFor(t, s, 1), 1)

	got, err := s.GetProject(1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, got.Status)
	assert.True(t, got.IncomeGenerated)

	// status may still ride along with a payment correction
	_, err = s.UpdateProject(1, p.ID, ProjectUpdate{
		PaidAmount: lenientPtr("1100"),
		Status:     strPtr(models.ProjectStatusCompleted),
	})
	require.NoError(t, err)
	assert.Len(t, historyFor(t, s, p.ID), 1)
}

func TestUpdateProjectPaymentRollsBackOnFailure(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "200")

	// with the history table gone the insert fails after the project write
	require.NoError(t, s.db.Migrator().DropTable(&models.PaymentHistory{}))

	_, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("500")})
	var txf *TransactionFailure
	require.ErrorAs(t, err, &txf)

	got, err := s.GetProject(1, p.ID)
	require.NoError(t, err)
	assert.True(t, got.PaidAmount.Equal(dec("200")), "project write must roll back with the history insert")
	assert.Equal(t, models.ProjectStatusInProgress, got.Status)
}

func TestCompleteProjectIncomeFailureKeepsFlagClear(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "1000")
	require.NoError(t, s.db.Migrator().DropTable(&models.Income{}))

	done, err := s.CompleteProject(1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, done.Status)
	assert.False(t, done.IncomeGenerated, "flag only set after the income row lands")

	// once the store recovers, retrying the completion realizes the income
	require.NoError(t, s.db.Migrator().CreateTable(&models.Income{}))
	done, err = s.CompleteProject(1, p.ID)
	require.NoError(t, err)
	assert.True(t, done.IncomeGenerated)
	assert.Len(t, incomesFor(t, s, 1), 1)
}

func TestCompleteProjectUnderpaid(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "750")

	_, err := s.CompleteProject(1, p.ID)
	var payErr *PaymentRequiredError
	require.ErrorAs(t, err, &payErr)
	assert.True(t, payErr.Remaining.Equal(dec("250")))
	assert.True(t, payErr.Budget.Equal(dec("1000")))

	// the project stays untouched
	got, err := s.GetProject(1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusInProgress, got.Status)
}

func TestCompleteProjectSetsProgress(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "1000")

	done, err := s.CompleteProject(1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, done.Status)
	assert.Equal(t, 100, done.Progress)
}

func TestProjectCrossUserAccess(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "0")

	var nfErr *NotFoundError
	_, err := s.GetProject(2, p.ID)
	require.ErrorAs(t, err, &nfErr)

	_, err = s.UpdateProject(2, p.ID, ProjectUpdate{Name: strPtr("hijack")})
	require.ErrorAs(t, err, &nfErr)

	err = s.DeleteProject(2, p.ID)
	require.ErrorAs(t, err, &nfErr)

	// owner still sees the original record
	got, err := s.GetProject(1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website redesign", got.Name)
}

func TestDeleteProjectKeepsHistory(t *testing.T) {
	s := newTestService(t)
	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "0")
	_, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("100")})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(1, p.ID))

	var nfErr *NotFoundError
	_, err = s.GetProject(1, p.ID)
	require.ErrorAs(t, err, &nfErr)
	assert.Len(t, historyFor(t, s, p.ID), 1, "history outlives its project")

	// double delete reports not found
	err = s.DeleteProject(1, p.ID)
	require.ErrorAs(t, err, &nfErr)
}
