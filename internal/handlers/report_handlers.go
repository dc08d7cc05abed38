package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"kampala_finance_backend/internal/models"
	"kampala_finance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// DownloadDailyReport serves the daily report for ?date= (default today) as a file.
func (h *ReportHandler) DownloadDailyReport(c *gin.Context) {
	var params models.ReportRequestParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	report, err := h.reportService.DailyReport(c.Request.Context(), params.Date, params.Notes)
	if err != nil {
		respondStoreError(c, err, "generate daily report")
		return
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		respondStoreError(c, err, "generate daily report")
		return
	}
	day, _ := time.Parse(models.DateLayout, report.Date)
	attachment(c, services.ReportFilename(day), data)
}

// GetDashboardSummary provides a summary of key metrics for the dashboard.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.reportService.DashboardSummary(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
