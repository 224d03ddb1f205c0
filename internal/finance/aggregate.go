package finance

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/morshedkoli/personal-finance/internal/models"
)

const monthlyWindow = 6

// Dashboard computes the dashboard read result: totals, project
// statistics, the six-month series and the latest-5 transaction slice.
func (s *Service) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	set, err := s.fetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	feed := buildFeed(set)
	latest := feed
	if len(latest) > 5 {
		latest = latest[:5]
	}
	return &Dashboard{
		Stats:              computeStats(set),
		MonthlyData:        monthlySeries(set.incomes, set.expenses, s.now()),
		LatestTransactions: latest,
	}, nil
}

// AllTransactions returns the full unified feed, newest first.
func (s *Service) AllTransactions(ctx context.Context, userID uint) ([]Transaction, error) {
	set, err := s.fetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildFeed(set), nil
}

func computeStats(set *entitySet) Stats {
	st := Stats{
		TotalIncome:            decimal.Zero,
		TotalExpenses:          decimal.Zero,
		TotalPayables:          decimal.Zero,
		TotalReceivables:       decimal.Zero,
		TotalProjectBudget:     decimal.Zero,
		TotalProjectCost:       decimal.Zero,
		TotalProjectRevenue:    decimal.Zero,
		TotalProjectPaidAmount: decimal.Zero,
	}

	for _, in := range set.incomes {
		st.TotalIncome = st.TotalIncome.Add(in.Amount)
	}
	for _, ex := range set.expenses {
		st.TotalExpenses = st.TotalExpenses.Add(ex.Amount)
	}
	// paid payables and received receivables contribute nothing
	for _, p := range set.payables {
		if !p.IsPaid {
			st.TotalPayables = st.TotalPayables.Add(p.Amount)
		}
	}
	for _, r := range set.receivables {
		if !r.IsReceived {
			st.TotalReceivables = st.TotalReceivables.Add(r.Amount)
		}
	}

	st.TotalProjects = len(set.projects)
	for _, p := range set.projects {
		st.TotalProjectCost = st.TotalProjectCost.Add(p.Cost)
		st.TotalProjectPaidAmount = st.TotalProjectPaidAmount.Add(p.PaidAmount)
		switch p.Status {
		case models.ProjectStatusPlanning:
			st.PlanningProjects++
		case models.ProjectStatusDue:
			st.DueProjects++
		case models.ProjectStatusCompleted:
			st.CompletedProjects++
			// revenue is recognized only on completion
			st.TotalProjectRevenue = st.TotalProjectRevenue.Add(p.Budget.Sub(p.Cost))
		}
		if p.Status != models.ProjectStatusCompleted {
			st.ActiveProjects++
			// completed projects drop out of the active budget
			st.TotalProjectBudget = st.TotalProjectBudget.Add(p.Budget)
		}
	}

	st.TotalIncome = st.TotalIncome.Add(st.TotalProjectRevenue)
	return st
}

// monthlySeries buckets income and expenses into the six calendar
// months ending at now's month, oldest first. Months without activity
// stay zero.
func monthlySeries(incomes []models.Income, expenses []models.Expense, now time.Time) MonthlyData {
	data := MonthlyData{
		Labels:   make([]string, 0, monthlyWindow),
		Income:   make([]decimal.Decimal, 0, monthlyWindow),
		Expenses: make([]decimal.Decimal, 0, monthlyWindow),
	}
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := monthlyWindow - 1; i >= 0; i-- {
		start := currentMonth.AddDate(0, -i, 0)
		next := start.AddDate(0, 1, 0)

		inSum := decimal.Zero
		for _, r := range incomes {
			if inMonth(r.Date, start, next) {
				inSum = inSum.Add(r.Amount)
			}
		}
		exSum := decimal.Zero
		for _, r := range expenses {
			if inMonth(r.Date, start, next) {
				exSum = exSum.Add(r.Amount)
			}
		}

		data.Labels = append(data.Labels, start.Format("Jan"))
		data.Income = append(data.Income, inSum)
		data.Expenses = append(data.Expenses, exSum)
	}
	return data
}

func inMonth(t, start, next time.Time) bool {
	return !t.Before(start) && t.Before(next)
}

// buildFeed merges the four record kinds into one list ordered by
// effective date, newest first. Ledger entries order by their own date;
// payables and receivables by due date, falling back to creation time.
// Ties keep insertion order.
func buildFeed(set *entitySet) []Transaction {
	feed := make([]Transaction, 0,
		len(set.incomes)+len(set.expenses)+len(set.payables)+len(set.receivables))

	for _, r := range set.incomes {
		feed = append(feed, Transaction{
			ID:          r.ID,
			Type:        TxIncome,
			Description: r.Description,
			Category:    r.Category,
			Amount:      r.Amount,
			Date:        effectiveDate(r.Date, r.CreatedAt),
		})
	}
	for _, r := range set.expenses {
		feed = append(feed, Transaction{
			ID:          r.ID,
			Type:        TxExpense,
			Description: r.Description,
			Category:    r.Category,
			Amount:      r.Amount,
			Date:        effectiveDate(r.Date, r.CreatedAt),
		})
	}
	for _, r := range set.payables {
		feed = append(feed, Transaction{
			ID:          r.ID,
			Type:        TxPayable,
			Name:        r.Name,
			Description: r.Description,
			Amount:      r.Amount,
			Date:        effectiveDate(r.DueDate, r.CreatedAt),
		})
	}
	for _, r := range set.receivables {
		feed = append(feed, Transaction{
			ID:          r.ID,
			Type:        TxReceivable,
			Name:        r.Name,
			Description: r.Description,
			Amount:      r.Amount,
			Date:        effectiveDate(r.DueDate, r.CreatedAt),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	return feed
}

func effectiveDate(primary, fallback time.Time) time.Time {
	if primary.IsZero() {
		return fallback
	}
	return primary
}
