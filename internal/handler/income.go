package handler

import (
	"net/http"

	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/models"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IncomeHandler serves income CRUD.
type IncomeHandler struct {
	DB *gorm.DB
}

func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{DB: db}
}

func (h *IncomeHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var in finance.LedgerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	rec, err := finance.ValidateLedger(in)
	if err != nil {
		writeFinanceError(c, err)
		return
	}

	income := models.Income{
		UserID:      user.ID,
		Amount:      rec.Amount,
		Description: rec.Description,
		Category:    rec.Category,
		Date:        rec.Date,
	}
	if err := h.DB.Create(&income).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save income")
		return
	}
	util.Success(c, util.Response{"income": income})
}

func (h *IncomeHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var incomes []models.Income
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query income")
		return
	}
	util.Success(c, util.Response{"items": incomes})
}

func (h *IncomeHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var income models.Income
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&income).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income not found")
		return
	}
	util.Success(c, util.Response{"income": income})
}

func (h *IncomeHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var income models.Income
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&income).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income not found")
		return
	}

	var upd finance.LedgerUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	fields, err := upd.Fields()
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	if len(fields) > 0 {
		if err := h.DB.Model(&income).Updates(fields).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save income")
			return
		}
	}
	util.Success(c, util.Response{"income": income})
}

func (h *IncomeHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Income{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete income")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "income not found")
		return
	}
	util.Success(c, util.Response{"message": "income deleted"})
}
