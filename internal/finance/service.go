package finance

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/morshedkoli/personal-finance/internal/models"
)

// Service is the finance core: validation, payment derivation, income
// generation and dashboard aggregation over the user's records. All
// queries are scoped by user id; a record belonging to someone else is
// reported as not found.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// NewServiceWithClock injects a fixed clock for deterministic monthly
// bucketing in tests.
func NewServiceWithClock(db *gorm.DB, now func() time.Time) *Service {
	return &Service{db: db, now: now}
}

// entitySet is one consistent snapshot of the user's records, fetched
// for aggregation.
type entitySet struct {
	incomes     []models.Income
	expenses    []models.Expense
	payables    []models.Payable
	receivables []models.Receivable
	projects    []models.Project
}

// fetchAll loads the five entity lists concurrently. The queries are
// read-only and independent, so they fan out; any failure aborts the
// whole aggregation.
func (s *Service) fetchAll(ctx context.Context, userID uint) (*entitySet, error) {
	set := &entitySet{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&set.incomes).Error; err != nil {
			return &AggregationError{Entity: "income", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&set.expenses).Error; err != nil {
			return &AggregationError{Entity: "expense", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&set.payables).Error; err != nil {
			return &AggregationError{Entity: "payable", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&set.receivables).Error; err != nil {
			return &AggregationError{Entity: "receivable", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&set.projects).Error; err != nil {
			return &AggregationError{Entity: "project", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}
