package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sakshidhaba/pos-api/internal/application/service"
	"github.com/sakshidhaba/pos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles analytics and export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
	exportService *service.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, exportService *service.ExportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService}
}

// Dashboard handles the analytics dashboard for a date range
func (h *ReportHandler) Dashboard(c *gin.Context) {
	dashboard := h.reportService.GetDashboard(rangeFromQuery(c))
	response.OK(c, "Dashboard retrieved successfully", dashboard)
}

// ExportCSV handles downloading the bill export for a date range
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	data, filename, err := h.exportService.BillsCSV(rangeFromQuery(c))
	if err != nil {
		response.InternalServerError(c, "Failed to render export")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(200, "text/csv", data)
}

// ExportPDF handles downloading the business report for a date range
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	data, filename, err := h.exportService.ReportPDF(rangeFromQuery(c))
	if err != nil {
		response.InternalServerError(c, "Failed to render report")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(200, "application/pdf", data)
}
