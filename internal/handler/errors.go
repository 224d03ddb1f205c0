package handler

import (
	"errors"
	"net/http"

	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
)

// writeFinanceError maps core error types onto the response envelope.
func writeFinanceError(c *gin.Context, err error) {
	var (
		verrs finance.ValidationErrors
		nf    *finance.NotFoundError
		pay   *finance.PaymentRequiredError
		agg   *finance.AggregationError
		txf   *finance.TransactionFailure
	)
	switch {
	case errors.As(err, &verrs):
		util.ErrorDetail(c, http.StatusBadRequest, util.CodeInvalidParam, "validation failed", verrs.Details())
	case errors.As(err, &nf):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, nf.Error())
	case errors.As(err, &pay):
		util.ErrorDetail(c, http.StatusBadRequest, util.CodePaymentRequired, "cannot complete project before full payment", gin.H{
			"remaining": pay.Remaining,
			"budget":    pay.Budget,
		})
	case errors.As(err, &agg):
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load financial data")
	case errors.As(err, &txf):
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "payment update failed")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}
