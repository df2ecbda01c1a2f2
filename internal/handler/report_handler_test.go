package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lexasta/internal/domain"
	"lexasta/internal/export"
	"lexasta/internal/handler"
	"lexasta/internal/service"
	"lexasta/mocks"
)

func TestReportHandler_Download(t *testing.T) {
	svc := new(mocks.MockBatchService)
	h := handler.NewReportHandler(svc)
	id := uuid.New()

	svc.On("Report", mock.Anything, id, export.FormatCSV).Return(&service.RenderedReport{
		Filename:    "LexAsta_Report_2026-03-14.csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        []byte("Categoria,Campo,Valore\n"),
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/batches/"+id.String()+"/report?format=csv", nil, gin.Params{{Key: "id", Value: id.String()}})
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="LexAsta_Report_2026-03-14.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Categoria,Campo,Valore\n", w.Body.String())
}

func TestReportHandler_Download_InvalidFormat(t *testing.T) {
	h := handler.NewReportHandler(new(mocks.MockBatchService))
	id := uuid.New()

	c, w := newContext(http.MethodGet, "/api/v1/batches/"+id.String()+"/report?format=pdf", nil, gin.Params{{Key: "id", Value: id.String()}})
	h.Download(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FORMAT", decode(t, w).Error.Code)
}

func TestReportHandler_Download_NotReady(t *testing.T) {
	svc := new(mocks.MockBatchService)
	h := handler.NewReportHandler(svc)
	id := uuid.New()
	svc.On("Report", mock.Anything, id, export.FormatJSON).Return(nil, domain.ErrNoReport)

	c, w := newContext(http.MethodGet, "/api/v1/batches/"+id.String()+"/report", nil, gin.Params{{Key: "id", Value: id.String()}})
	h.Download(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "REPORT_NOT_READY", decode(t, w).Error.Code)
}

func TestReportHandler_Archive(t *testing.T) {
	svc := new(mocks.MockBatchService)
	h := handler.NewReportHandler(svc)
	id := uuid.New()
	svc.On("Archive", mock.Anything, id, export.FormatHTML).Return(&service.ArchiveResult{
		Key: "reports/x/report.html", URL: "https://signed", ExpiresIn: 3600,
	}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/batches/"+id.String()+"/report/archive?format=html", nil, gin.Params{{Key: "id", Value: id.String()}})
	h.Archive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "https://signed", data["url"])
}

func TestReportHandler_Archive_Disabled(t *testing.T) {
	svc := new(mocks.MockBatchService)
	h := handler.NewReportHandler(svc)
	id := uuid.New()
	svc.On("Archive", mock.Anything, id, export.FormatJSON).Return(nil, domain.ErrArchiveDisabled)

	c, w := newContext(http.MethodPost, "/api/v1/batches/"+id.String()+"/report/archive", nil, gin.Params{{Key: "id", Value: id.String()}})
	h.Archive(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "ARCHIVE_DISABLED", decode(t, w).Error.Code)
}
