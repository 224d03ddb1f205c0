package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morshedkoli/personal-finance/internal/models"
)

func seedLedger(t *testing.T, s *Service, userID uint) {
	t.Helper()
	require.NoError(t, s.db.Create(&models.Income{
		UserID: userID, Amount: dec("1000"), Description: "Monthly salary",
		Category: "Salary", Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, s.db.Create(&models.Expense{
		UserID: userID, Amount: dec("300"), Description: "Groceries",
		Category: "Food", Date: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
	}).Error)
}

func TestDashboardTotals(t *testing.T) {
	s := newTestService(t)
	const userID = 1
	seedLedger(t, s, userID)

	require.NoError(t, s.db.Create(&models.Payable{
		UserID: userID, Name: "Rent", Amount: dec("500"), Description: "March rent",
		DueDate: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, s.db.Create(&models.Payable{
		UserID: userID, Name: "Internet", Amount: dec("200"), Description: "Paid already",
		DueDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), IsPaid: true,
	}).Error)
	require.NoError(t, s.db.Create(&models.Receivable{
		UserID: userID, Name: "Invoice 7", Amount: dec("400"), Description: "Consulting",
		DueDate: time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, s.db.Create(&models.Receivable{
		UserID: userID, Name: "Invoice 5", Amount: dec("100"), Description: "Settled",
		DueDate: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), IsReceived: true,
	}).Error)

	// one completed and one active project
	require.NoError(t, s.db.Create(&models.Project{
		UserID: userID, Name: "Done deal", Description: "finished", Status: models.ProjectStatusCompleted,
		Priority: models.ProjectPriorityMedium, StartDate: testNow.AddDate(0, -2, 0), EndDate: testNow.AddDate(0, -1, 0),
		Budget: dec("1000"), Cost: dec("400"), PaidAmount: dec("1000"), Progress: 100,
	}).Error)
	require.NoError(t, s.db.Create(&models.Project{
		UserID: userID, Name: "Ongoing", Description: "active", Status: models.ProjectStatusInProgress,
		Priority: models.ProjectPriorityHigh, StartDate: testNow.AddDate(0, -1, 0), EndDate: testNow.AddDate(0, 2, 0),
		Budget: dec("2000"), Cost: dec("100"), PaidAmount: dec("50"), Progress: 30,
	}).Error)

	d, err := s.Dashboard(context.Background(), userID)
	require.NoError(t, err)

	st := d.Stats
	// ledger income plus completed-project margin
	assert.True(t, st.TotalIncome.Equal(dec("1600")), "got %s", st.TotalIncome)
	assert.True(t, st.TotalExpenses.Equal(dec("300")))
	assert.True(t, st.TotalPayables.Equal(dec("500")), "paid payables must not count")
	assert.True(t, st.TotalReceivables.Equal(dec("400")), "received receivables must not count")

	assert.Equal(t, 2, st.TotalProjects)
	assert.Equal(t, 1, st.ActiveProjects)
	assert.Equal(t, 1, st.CompletedProjects)
	assert.Equal(t, 0, st.PlanningProjects)
	assert.Equal(t, 0, st.DueProjects)
	assert.True(t, st.TotalProjectBudget.Equal(dec("2000")), "completed budget excluded from active budget")
	assert.True(t, st.TotalProjectCost.Equal(dec("500")))
	assert.True(t, st.TotalProjectRevenue.Equal(dec("600")))
	assert.True(t, st.TotalProjectPaidAmount.Equal(dec("1050")))
}

func TestDashboardIgnoresOtherUsers(t *testing.T) {
	s := newTestService(t)
	seedLedger(t, s, 1)
	seedLedger(t, s, 2)

	d, err := s.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, d.Stats.TotalIncome.Equal(dec("1000")))
}

func TestMonthlySeries(t *testing.T) {
	s := newTestService(t)
	const userID = 1
	seedLedger(t, s, userID) // January records, inside the window

	// seven months before testNow: outside the window
	require.NoError(t, s.db.Create(&models.Income{
		UserID: userID, Amount: dec("9999"), Description: "Old bonus",
		Category: "Bonus", Date: time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	d, err := s.Dashboard(context.Background(), userID)
	require.NoError(t, err)

	m := d.MonthlyData
	require.Len(t, m.Labels, 6)
	require.Len(t, m.Income, 6)
	require.Len(t, m.Expenses, 6)
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, m.Labels)

	// January sits at index 3, oldest first
	assert.True(t, m.Income[3].Equal(dec("1000")))
	assert.True(t, m.Expenses[3].Equal(dec("300")))

	windowTotal := dec("0")
	for _, v := range m.Income {
		windowTotal = windowTotal.Add(v)
	}
	// the out-of-window income is excluded from the series
	assert.True(t, windowTotal.Equal(dec("1000")), "got %s", windowTotal)
	// but still counted in the all-time total
	assert.True(t, d.Stats.TotalIncome.Equal(dec("10999")))
}

func TestMonthlySeriesEmpty(t *testing.T) {
	s := newTestService(t)

	d, err := s.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, d.MonthlyData.Labels, 6)
	for i := 0; i < 6; i++ {
		assert.True(t, d.MonthlyData.Income[i].IsZero())
		assert.True(t, d.MonthlyData.Expenses[i].IsZero())
	}
}

func TestMonthBoundariesInclusive(t *testing.T) {
	s := newTestService(t)
	const userID = 1

	// first and last day of a window month both land in that bucket
	require.NoError(t, s.db.Create(&models.Income{
		UserID: userID, Amount: dec("10"), Description: "first day",
		Category: "Misc", Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, s.db.Create(&models.Income{
		UserID: userID, Amount: dec("20"), Description: "last day",
		Category: "Misc", Date: time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC),
	}).Error)

	d, err := s.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, d.MonthlyData.Income[4].Equal(dec("30")), "got %s", d.MonthlyData.Income[4])
}

func TestUnifiedFeedOrdering(t *testing.T) {
	s := newTestService(t)
	const userID = 1

	dates := []time.Time{
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.db.Create(&models.Income{
		UserID: userID, Amount: dec("1"), Description: "in", Category: "x", Date: dates[0],
	}).Error)
	require.NoError(t, s.db.Create(&models.Expense{
		UserID: userID, Amount: dec("2"), Description: "ex", Category: "x", Date: dates[2],
	}).Error)
	// payable orders by due date, not creation time
	require.NoError(t, s.db.Create(&models.Payable{
		UserID: userID, Name: "bill", Amount: dec("3"), Description: "pay", DueDate: dates[1],
	}).Error)

	feed, err := s.AllTransactions(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, TxExpense, feed[0].Type)
	assert.Equal(t, TxPayable, feed[1].Type)
	assert.Equal(t, TxIncome, feed[2].Type)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Date.After(feed[i-1].Date), "feed must be newest first")
	}
}

func TestLatestTransactionsIsPrefix(t *testing.T) {
	s := newTestService(t)
	const userID = 1

	for i := 0; i < 8; i++ {
		require.NoError(t, s.db.Create(&models.Income{
			UserID: userID, Amount: dec("10"), Description: "entry", Category: "x",
			Date: time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC),
		}).Error)
	}

	d, err := s.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	feed, err := s.AllTransactions(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, d.LatestTransactions, 5)
	for i, tx := range d.LatestTransactions {
		assert.Equal(t, feed[i].ID, tx.ID)
	}
}

func TestDashboardFetchFailureAborts(t *testing.T) {
	s := newTestService(t)
	seedLedger(t, s, 1)
	require.NoError(t, s.db.Migrator().DropTable(&models.Expense{}))

	_, err := s.Dashboard(context.Background(), 1)
	var agg *AggregationError
	require.ErrorAs(t, err, &agg)
	assert.Equal(t, "expense", agg.Entity)

	_, err = s.AllTransactions(context.Background(), 1)
	require.ErrorAs(t, err, &agg)
}

func TestPayableToggleAffectsTotal(t *testing.T) {
	s := newTestService(t)
	const userID = 1

	payable := models.Payable{
		UserID: userID, Name: "Loan", Amount: dec("500"), Description: "installment",
		DueDate: time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.db.Create(&payable).Error)

	d, err := s.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, d.Stats.TotalPayables.Equal(dec("500")))

	require.NoError(t, s.db.Model(&payable).Update("is_paid", true).Error)
	d, err = s.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, d.Stats.TotalPayables.IsZero())

	require.NoError(t, s.db.Model(&payable).Update("is_paid", false).Error)
	d, err = s.Dashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, d.Stats.TotalPayables.Equal(dec("500")))
}
