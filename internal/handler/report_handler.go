package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexasta/internal/export"
	"lexasta/internal/service"
)

// ReportHandler handles unified report endpoints.
type ReportHandler struct {
	batchService service.BatchService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(batchService service.BatchService) *ReportHandler {
	return &ReportHandler{batchService: batchService}
}

func parseFormat(c *gin.Context) (export.Format, bool) {
	f, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be one of: json, html, txt, csv, xlsx")
		return "", false
	}
	return f, true
}

// Download handles GET /api/v1/batches/:id/report
// @Summary Download the unified report
// @Description Render the unified record of the last completed run
// @Tags reports
// @Produce json,html,plain,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Batch ID (UUID)"
// @Param format query string false "Report format" Enums(json, html, txt, csv, xlsx) default(json)
// @Success 200 {object} NoticeRecord "Unified record (format=json); other formats return the rendered file"
// @Failure 400 {object} ErrorResponseBody "Invalid format"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Failure 409 {object} ErrorResponseBody "No unified report yet"
// @Router /batches/{id}/report [get]
func (h *ReportHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	rep, err := h.batchService.Report(c.Request.Context(), id, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, rep.Filename))
	c.Data(http.StatusOK, rep.ContentType, rep.Body)
}

// Archive handles POST /api/v1/batches/:id/report/archive
// @Summary Archive the unified report
// @Description Upload the rendered report to object storage and return a presigned download URL
// @Tags reports
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Param format query string false "Report format" Enums(json, html, txt, csv, xlsx) default(json)
// @Success 200 {object} Response{data=service.ArchiveResult} "Archived report"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Failure 409 {object} ErrorResponseBody "No unified report yet"
// @Failure 503 {object} ErrorResponseBody "Archiving not configured"
// @Router /batches/{id}/report/archive [post]
func (h *ReportHandler) Archive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	res, err := h.batchService.Archive(c.Request.Context(), id, format)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}
