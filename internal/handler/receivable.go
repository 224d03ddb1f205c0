package handler

import (
	"net/http"

	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/models"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReceivableHandler serves receivable CRUD, including the isReceived
// toggle.
type ReceivableHandler struct {
	DB *gorm.DB
}

func NewReceivableHandler(db *gorm.DB) *ReceivableHandler {
	return &ReceivableHandler{DB: db}
}

func (h *ReceivableHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var in finance.PayableInput
	if err := c.ShouldBindJSON(&in); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	rec, err := finance.ValidatePayable(in)
	if err != nil {
		writeFinanceError(c, err)
		return
	}

	receivable := models.Receivable{
		UserID:      user.ID,
		Name:        rec.Name,
		Amount:      rec.Amount,
		Description: rec.Description,
		DueDate:     rec.DueDate,
	}
	if err := h.DB.Create(&receivable).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save receivable")
		return
	}
	util.Success(c, util.Response{"receivable": receivable})
}

func (h *ReceivableHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var receivables []models.Receivable
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("due_date ASC").
		Find(&receivables).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query receivables")
		return
	}
	util.Success(c, util.Response{"items": receivables})
}

func (h *ReceivableHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var receivable models.Receivable
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&receivable).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "receivable not found")
		return
	}
	util.Success(c, util.Response{"receivable": receivable})
}

type receivableUpdateReq struct {
	finance.PayableUpdate
	IsReceived *bool `json:"isReceived"`
}

func (h *ReceivableHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var receivable models.Receivable
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&receivable).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "receivable not found")
		return
	}

	var upd receivableUpdateReq
	if err := c.ShouldBindJSON(&upd); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	fields, err := upd.Fields()
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	if upd.IsReceived != nil {
		fields["is_received"] = *upd.IsReceived
	}
	if len(fields) > 0 {
		if err := h.DB.Model(&receivable).Updates(fields).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save receivable")
			return
		}
	}
	util.Success(c, util.Response{"receivable": receivable})
}

func (h *ReceivableHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Receivable{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete receivable")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "receivable not found")
		return
	}
	util.Success(c, util.Response{"message": "receivable deleted"})
}
