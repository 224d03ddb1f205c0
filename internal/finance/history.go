package finance

import (
	"context"
	"sort"
	"strings"

	"github.com/morshedkoli/personal-finance/internal/models"
)

// HistorySort is the closed set of sort keys for the history view.
type HistorySort string

const (
	SortByDate   HistorySort = "date"
	SortByAmount HistorySort = "amount"
	SortByName   HistorySort = "name"
)

// HistoryQuery selects and orders the transaction history. Zero value
// means everything, newest first.
type HistoryQuery struct {
	Type      string // "", "all" or one of the TxType values
	SortBy    HistorySort
	Ascending bool
}

// History returns the unified feed extended with payment-history
// entries, filtered and sorted per the query. Filtering and sorting are
// pure and stable: ties keep their original relative order.
func (s *Service) History(ctx context.Context, userID uint, q HistoryQuery) ([]Transaction, error) {
	set, err := s.fetchAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	var payments []models.PaymentHistory
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		return nil, &AggregationError{Entity: "payment_history", Err: err}
	}

	projectNames := make(map[string]string, len(set.projects))
	for _, p := range set.projects {
		projectNames[p.ID] = p.Name
	}

	feed := buildFeed(set)
	for _, ph := range payments {
		name := projectNames[ph.ProjectID]
		if name == "" {
			// history outlives its project; keep the row readable
			name = "Unknown Project"
		}
		prev, next := ph.PreviousTotal, ph.NewTotal
		feed = append(feed, Transaction{
			ID:            ph.ID,
			Type:          TxProject,
			SubType:       SubTypePayment,
			Name:          "Payment: " + name,
			Description:   ph.Description,
			Amount:        ph.Amount,
			Date:          ph.PaymentDate,
			PreviousTotal: &prev,
			NewTotal:      &next,
		})
	}

	feed, err = filterByType(feed, q.Type)
	if err != nil {
		return nil, err
	}
	sortFeed(feed, q.SortBy, q.Ascending)
	return feed, nil
}

func filterByType(feed []Transaction, typ string) ([]Transaction, error) {
	if typ == "" || typ == "all" {
		return feed, nil
	}
	want, ok := ParseTxType(typ)
	if !ok {
		return nil, ValidationErrors{{Field: "type", Detail: "unknown transaction type"}}
	}
	out := feed[:0]
	for _, tx := range feed {
		if tx.Type == want {
			out = append(out, tx)
		}
	}
	return out, nil
}

func sortFeed(feed []Transaction, by HistorySort, ascending bool) {
	var less func(a, b Transaction) bool
	switch by {
	case SortByAmount:
		less = func(a, b Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByName:
		less = func(a, b Transaction) bool {
			return strings.ToLower(displayName(a)) < strings.ToLower(displayName(b))
		}
	case SortByDate, "":
		less = func(a, b Transaction) bool { return a.Date.Before(b.Date) }
	default:
		less = func(a, b Transaction) bool { return a.Date.Before(b.Date) }
	}
	sort.SliceStable(feed, func(i, j int) bool {
		if ascending {
			return less(feed[i], feed[j])
		}
		return less(feed[j], feed[i])
	})
}

// displayName picks the label a feed row sorts and renders under, the
// way the history table titles rows.
func displayName(tx Transaction) string {
	if tx.Name != "" {
		return tx.Name
	}
	return tx.Description
}
