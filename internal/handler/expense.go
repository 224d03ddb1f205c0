package handler

import (
	"net/http"

	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/models"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler serves expense CRUD.
type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
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

	expense := models.Expense{
		UserID:      user.ID,
		Amount:      rec.Amount,
		Description: rec.Description,
		Category:    rec.Category,
		Date:        rec.Date,
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save expense")
		return
	}
	util.Success(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query expenses")
		return
	}
	util.Success(c, util.Response{"items": expenses})
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var expense models.Expense
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&expense).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "expense not found")
		return
	}
	util.Success(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var expense models.Expense
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&expense).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "expense not found")
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
		if err := h.DB.Model(&expense).Updates(fields).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save expense")
			return
		}
	}
	util.Success(c, util.Response{"expense": expense})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Expense{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete expense")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "expense not found")
		return
	}
	util.Success(c, util.Response{"message": "expense deleted"})
}
