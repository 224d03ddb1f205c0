package handler

import (
	"net/http"

	"github.com/morshedkoli/personal-finance/internal/models"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentHistoryHandler serves the read-only payment audit trail.
type PaymentHistoryHandler struct {
	DB *gorm.DB
}

func NewPaymentHistoryHandler(db *gorm.DB) *PaymentHistoryHandler {
	return &PaymentHistoryHandler{DB: db}
}

// List returns the user's payment history, newest first, optionally
// restricted to one project via ?projectId=.
func (h *PaymentHistoryHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	q := h.DB.Where("user_id = ?", user.ID)
	if projectID := c.Query("projectId"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var history []models.PaymentHistory
	if err := q.Order("payment_date DESC").Find(&history).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query payment history")
		return
	}
	util.Success(c, util.Response{"items": history})
}
