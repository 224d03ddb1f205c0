package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the closed set of entry types in the unified transaction
// feed. Keep switches over it exhaustive; ParseTxType is the only way
// client strings enter.
type TxType string

const (
	TxIncome     TxType = "income"
	TxExpense    TxType = "expense"
	TxPayable    TxType = "payable"
	TxReceivable TxType = "receivable"
	TxProject    TxType = "project" // synthetic: payment-history entries
)

// SubTypePayment marks payment-history entries within TxProject.
const SubTypePayment = "payment"

// ParseTxType maps a client string onto the closed type set.
func ParseTxType(s string) (TxType, bool) {
	switch t := TxType(s); t {
	case TxIncome, TxExpense, TxPayable, TxReceivable, TxProject:
		return t, true
	default:
		return "", false
	}
}

// Transaction is one entry of the unified feed: a ledger record, an
// open obligation, or a reinterpreted payment-history row. Date is the
// effective date used for ordering.
type Transaction struct {
	ID            string           `json:"id"`
	Type          TxType           `json:"type"`
	SubType       string           `json:"subType,omitempty"`
	Name          string           `json:"name,omitempty"`
	Description   string           `json:"description,omitempty"`
	Category      string           `json:"category,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	Date          time.Time        `json:"date"`
	PreviousTotal *decimal.Decimal `json:"previousTotal,omitempty"`
	NewTotal      *decimal.Decimal `json:"newTotal,omitempty"`
}

// Stats is the dashboard totals block. Every field is always present,
// zero-valued when the user has no data.
type Stats struct {
	TotalIncome            decimal.Decimal `json:"totalIncome"` // ledger income plus completed-project revenue
	TotalExpenses          decimal.Decimal `json:"totalExpenses"`
	TotalPayables          decimal.Decimal `json:"totalPayables"`    // unpaid only
	TotalReceivables       decimal.Decimal `json:"totalReceivables"` // unreceived only
	TotalProjects          int             `json:"totalProjects"`
	ActiveProjects         int             `json:"activeProjects"` // any status other than completed
	CompletedProjects      int             `json:"completedProjects"`
	PlanningProjects       int             `json:"planningProjects"`
	DueProjects            int             `json:"dueProjects"`
	TotalProjectBudget     decimal.Decimal `json:"totalProjectBudget"` // non-completed projects only
	TotalProjectCost       decimal.Decimal `json:"totalProjectCost"`
	TotalProjectRevenue    decimal.Decimal `json:"totalProjectRevenue"`
	TotalProjectPaidAmount decimal.Decimal `json:"totalProjectPaidAmount"`
}

// MonthlyData holds the six-month series, oldest month first. The three
// slices are parallel and always six entries long.
type MonthlyData struct {
	Labels   []string          `json:"labels"`
	Income   []decimal.Decimal `json:"income"`
	Expenses []decimal.Decimal `json:"expenses"`
}

// Dashboard is the full dashboard read result.
type Dashboard struct {
	Stats              Stats         `json:"stats"`
	MonthlyData        MonthlyData   `json:"monthlyData"`
	LatestTransactions []Transaction `json:"latestTransactions"`
}
