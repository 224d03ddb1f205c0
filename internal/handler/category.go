package handler

import (
	"net/http"
	"strings"

	"github.com/morshedkoli/personal-finance/internal/models"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves the user's category list. Categories only
// label records; deleting one leaves records referencing its name
// untouched.
type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

// List returns the user's categories, optionally filtered by
// ?type=income|expense|project.
func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	q := h.DB.Where("user_id = ?", user.ID)
	if typ := c.Query("type"); typ != "" {
		if !validCategoryType(typ) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown category type")
			return
		}
		q = q.Where("type = ?", typ)
	}

	var categories []models.Category
	if err := q.Order("name ASC").Find(&categories).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query categories")
		return
	}
	util.Success(c, util.Response{"items": categories})
}

type createCategoryReq struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "name is required")
		return
	}
	if !validCategoryType(req.Type) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown category type")
		return
	}

	// unique per user and type
	var count int64
	if err := h.DB.Model(&models.Category{}).
		Where("user_id = ? AND type = ? AND name = ?", user.ID, req.Type, req.Name).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query categories")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "category already exists")
		return
	}

	category := models.Category{
		UserID: user.ID,
		Name:   req.Name,
		Type:   req.Type,
	}
	if err := h.DB.Create(&category).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save category")
		return
	}
	util.Success(c, util.Response{"category": category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Category{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete category")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		return
	}
	util.Success(c, util.Response{"message": "category deleted"})
}

func validCategoryType(t string) bool {
	switch t {
	case "income", "expense", "project":
		return true
	}
	return false
}
