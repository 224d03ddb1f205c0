package handler

import (
	"net/http"

	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/models"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PayableHandler serves payable CRUD, including the isPaid toggle.
type PayableHandler struct {
	DB *gorm.DB
}

func NewPayableHandler(db *gorm.DB) *PayableHandler {
	return &PayableHandler{DB: db}
}

func (h *PayableHandler) Create(c *gin.Context) {
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

	payable := models.Payable{
		UserID:      user.ID,
		Name:        rec.Name,
		Amount:      rec.Amount,
		Description: rec.Description,
		DueDate:     rec.DueDate,
	}
	if err := h.DB.Create(&payable).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save payable")
		return
	}
	util.Success(c, util.Response{"payable": payable})
}

func (h *PayableHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var payables []models.Payable
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("due_date ASC").
		Find(&payables).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query payables")
		return
	}
	util.Success(c, util.Response{"items": payables})
}

func (h *PayableHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var payable models.Payable
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&payable).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "payable not found")
		return
	}
	util.Success(c, util.Response{"payable": payable})
}

type payableUpdateReq struct {
	finance.PayableUpdate
	IsPaid *bool `json:"isPaid"`
}

func (h *PayableHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var payable models.Payable
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&payable).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "payable not found")
		return
	}

	var upd payableUpdateReq
	if err := c.ShouldBindJSON(&upd); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	fields, err := upd.Fields()
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	if upd.IsPaid != nil {
		fields["is_paid"] = *upd.IsPaid
	}
	if len(fields) > 0 {
		if err := h.DB.Model(&payable).Updates(fields).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save payable")
			return
		}
	}
	util.Success(c, util.Response{"payable": payable})
}

func (h *PayableHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Payable{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete payable")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "payable not found")
		return
	}
	util.Success(c, util.Response{"message": "payable deleted"})
}
