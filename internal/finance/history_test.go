package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morshedkoli/personal-finance/internal/models"
)

// seedHistory puts one record of each feed type plus one payment into
// the store and returns the project.
func seedHistory(t *testing.T, s *Service) *models.Project {
	t.Helper()
	require.NoError(t, s.db.Create(&models.Income{
		UserID: 1, Amount: dec("1000"), Description: "Salary", Category: "Salary",
		Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, s.db.Create(&models.Expense{
		UserID: 1, Amount: dec("50"), Description: "Coffee beans", Category: "Food",
		Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, s.db.Create(&models.Payable{
		UserID: 1, Name: "Rent", Amount: dec("500"), Description: "March rent",
		DueDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, s.db.Create(&models.Receivable{
		UserID: 1, Name: "Invoice 12", Amount: dec("300"), Description: "Consulting",
		DueDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}).Error)

	p := createProject(t, s, 1, models.ProjectStatusInProgress, "1000", "0")
	_, err := s.UpdateProject(1, p.ID, ProjectUpdate{PaidAmount: lenientPtr("250")})
	require.NoError(t, err)
	return p
}

func TestHistoryIncludesPayments(t *testing.T) {
	s := newTestService(t)
	seedHistory(t, s)

	feed, err := s.History(context.Background(), 1, HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, feed, 5)

	var payment *Transaction
	for i := range feed {
		if feed[i].Type == TxProject {
			payment = &feed[i]
		}
	}
	require.NotNil(t, payment, "payment entry missing from history")
	assert.Equal(t, SubTypePayment, payment.SubType)
	assert.Equal(t, "Payment: Website redesign", payment.Name)
	assert.True(t, payment.Amount.Equal(dec("250")))
	require.NotNil(t, payment.PreviousTotal)
	require.NotNil(t, payment.NewTotal)
	assert.True(t, payment.PreviousTotal.IsZero())
	assert.True(t, payment.NewTotal.Equal(dec("250")))
	assert.True(t, payment.Date.Equal(testNow))
}

func TestHistoryOrphanedPaymentLabel(t *testing.T) {
	s := newTestService(t)
	p := seedHistory(t, s)
	require.NoError(t, s.DeleteProject(1, p.ID))

	feed, err := s.History(context.Background(), 1, HistoryQuery{Type: "project"})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Payment: Unknown Project", feed[0].Name)
}

func TestHistoryFilterByType(t *testing.T) {
	s := newTestService(t)
	seedHistory(t, s)

	for _, tc := range []struct {
		typ  string
		want TxType
	}{
		{"income", TxIncome},
		{"expense", TxExpense},
		{"payable", TxPayable},
		{"receivable", TxReceivable},
		{"project", TxProject},
	} {
		feed, err := s.History(context.Background(), 1, HistoryQuery{Type: tc.typ})
		require.NoError(t, err, tc.typ)
		require.Len(t, feed, 1, tc.typ)
		assert.Equal(t, tc.want, feed[0].Type)
	}

	all, err := s.History(context.Background(), 1, HistoryQuery{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestHistoryUnknownTypeRejected(t *testing.T) {
	s := newTestService(t)
	_, err := s.History(context.Background(), 1, HistoryQuery{Type: "loans"})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "type", verrs[0].Field)
}

func TestHistorySortByDate(t *testing.T) {
	s := newTestService(t)
	seedHistory(t, s)

	feed, err := s.History(context.Background(), 1, HistoryQuery{SortBy: SortByDate})
	require.NoError(t, err)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Date.After(feed[i-1].Date), "default order is newest first")
	}

	feed, err = s.History(context.Background(), 1, HistoryQuery{SortBy: SortByDate, Ascending: true})
	require.NoError(t, err)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Date.Before(feed[i-1].Date))
	}
}

func TestHistorySortByAmount(t *testing.T) {
	s := newTestService(t)
	seedHistory(t, s)

	feed, err := s.History(context.Background(), 1, HistoryQuery{SortBy: SortByAmount, Ascending: true})
	require.NoError(t, err)
	for i := 1; i < len(feed); i++ {
		assert.True(t, feed[i-1].Amount.LessThanOrEqual(feed[i].Amount))
	}
}

func TestHistorySortByName(t *testing.T) {
	s := newTestService(t)
	seedHistory(t, s)

	feed, err := s.History(context.Background(), 1, HistoryQuery{SortBy: SortByName, Ascending: true})
	require.NoError(t, err)

	// ledger records sort under their description when they carry no name
	names := make([]string, 0, len(feed))
	for _, tx := range feed {
		name := tx.Name
		if name == "" {
			name = tx.Description
		}
		names = append(names, name)
	}
	assert.Equal(t, []string{"Coffee beans", "Invoice 12", "Payment: Website redesign", "Rent", "Salary"}, names)
}

func TestHistorySortStability(t *testing.T) {
	s := newTestService(t)
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, desc := range []string{"first", "second", "third"} {
		require.NoError(t, s.db.Create(&models.Income{
			UserID: 1, Amount: dec("10"), Description: desc, Category: "x", Date: date,
		}).Error)
	}

	feed, err := s.History(context.Background(), 1, HistoryQuery{SortBy: SortByAmount, Ascending: true})
	require.NoError(t, err)
	require.Len(t, feed, 3)
	// equal amounts keep the underlying feed order
	assert.Equal(t, "first", feed[0].Description)
	assert.Equal(t, "second", feed[1].Description)
	assert.Equal(t, "third", feed[2].Description)
}
