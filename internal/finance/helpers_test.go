package finance

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/morshedkoli/personal-finance/internal/database"
)

// fixed clock for deterministic monthly bucketing
var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// shared in-memory DB lives as long as one connection is open
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewServiceWithClock(newTestDB(t), func() time.Time { return testNow })
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func lenientPtr(s string) *LenientDecimal {
	return &LenientDecimal{Decimal: dec(s)}
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
