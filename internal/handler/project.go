package handler

import (
	"net/http"

	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/models"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProjectHandler serves project CRUD. Writes that touch paidAmount or
// completion route through the finance service, which owns the
// payment-history and income-generation rules.
type ProjectHandler struct {
	DB      *gorm.DB
	Finance *finance.Service
}

func NewProjectHandler(db *gorm.DB, svc *finance.Service) *ProjectHandler {
	return &ProjectHandler{DB: db, Finance: svc}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var in finance.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	project, err := h.Finance.CreateProject(user.ID, in)
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	util.Success(c, util.Response{"project": project})
}

func (h *ProjectHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var projects []models.Project
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query projects")
		return
	}
	util.Success(c, util.Response{"items": projects})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.Finance.GetProject(user.ID, c.Param("id"))
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	util.Success(c, util.Response{"project": project})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var upd finance.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	project, err := h.Finance.UpdateProject(user.ID, c.Param("id"), upd)
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	util.Success(c, util.Response{"project": project})
}

// Complete marks a project completed. Fails while the project is
// underpaid.
func (h *ProjectHandler) Complete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.Finance.CompleteProject(user.ID, c.Param("id"))
	if err != nil {
		writeFinanceError(c, err)
		return
	}
	util.Success(c, util.Response{"project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Finance.DeleteProject(user.ID, c.Param("id")); err != nil {
		writeFinanceError(c, err)
		return
	}
	util.Success(c, util.Response{"message": "project deleted"})
}
