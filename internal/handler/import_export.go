package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exports the unified transaction feed.
type ExportHandler struct {
	Finance *finance.Service
}

func NewExportHandler(svc *finance.Service) *ExportHandler {
	return &ExportHandler{Finance: svc}
}

var exportHeader = []string{"Date", "Type", "Name", "Description", "Category", "Amount"}

func exportRow(tx finance.Transaction) []string {
	return []string{
		tx.Date.Format("2006-01-02"),
		string(tx.Type),
		tx.Name,
		tx.Description,
		tx.Category,
		tx.Amount.String(),
	}
}

// ExportCSV streams the full feed as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	feed, err := h.Finance.AllTransactions(c.Request.Context(), user.ID)
	if err != nil {
		writeFinanceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	_ = writer.Write(exportHeader)
	for _, tx := range feed {
		_ = writer.Write(exportRow(tx))
	}
}

// ExportXLSX writes the full feed as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	feed, err := h.Finance.AllTransactions(c.Request.Context(), user.ID)
	if err != nil {
		writeFinanceError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build workbook")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for row, tx := range feed {
		for col, value := range exportRow(tx) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
		return
	}
}
