package handler

import (
	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated dashboard and the transaction
// history view.
type DashboardHandler struct {
	Finance *finance.Service
}

func NewDashboardHandler(svc *finance.Service) *DashboardHandler {
	return &DashboardHandler{Finance: svc}
}

// Get returns {stats, monthlyData, latestTransactions}, or with
// ?allTransactions=true the full feed as {allTransactions}.
func (h *DashboardHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if c.Query("allTransactions") == "true" {
		feed, err := h.Finance.AllTransactions(c.Request.Context(), user.ID)
		if err != nil {
			writeFinanceError(c, err)
			return
		}
		util.Success(c, util.Response{"allTransactions": feed})
		return
	}

	dashboard, err := h.Finance.Dashboard(c.Request.Context(), user.ID)
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	util.Success(c, util.Response{
		"stats":              dashboard.Stats,
		"monthlyData":        dashboard.MonthlyData,
		"latestTransactions": dashboard.LatestTransactions,
	})
}

// History returns the unified feed extended with payment-history
// entries. Query params: type (income/expense/payable/receivable/
// project/all), sort (date/amount/name), order (asc/desc).
func (h *DashboardHandler) History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	q := finance.HistoryQuery{
		Type:      c.DefaultQuery("type", "all"),
		SortBy:    finance.HistorySort(c.DefaultQuery("sort", "date")),
		Ascending: c.Query("order") == "asc",
	}
	feed, err := h.Finance.History(c.Request.Context(), user.ID, q)
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	util.Success(c, util.Response{"transactions": feed})
}
