package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/service"
)

// multipartOverhead allows for part headers and boundaries on top of the file bytes.
const multipartOverhead = 1 << 20

// BatchHandler handles batch intake and analysis endpoints.
type BatchHandler struct {
	batchService service.BatchService
	maxFileSize  int64
	maxBodySize  int64
}

// NewBatchHandler creates a new BatchHandler. Uploads are bounded by the
// per-file size limit and by max_files times that limit per request.
func NewBatchHandler(batchService service.BatchService, upload config.UploadConfig) *BatchHandler {
	h := &BatchHandler{batchService: batchService}
	if upload.MaxFileSizeMB > 0 {
		h.maxFileSize = upload.MaxFileSizeMB << 20
		if upload.MaxFiles > 0 {
			h.maxBodySize = int64(upload.MaxFiles)*h.maxFileSize + multipartOverhead
		}
	}
	return h
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("invalid %s", param))
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/batches
// @Summary Create a batch
// @Description Create an empty batch of notice documents
// @Tags batches
// @Produce json
// @Success 201 {object} Response{data=domain.BatchSnapshot} "Batch created"
// @Router /batches [post]
func (h *BatchHandler) Create(c *gin.Context) {
	RespondCreated(c, h.batchService.Create(c.Request.Context()))
}

// Get handles GET /api/v1/batches/:id
// @Summary Get a batch
// @Description Get the batch state, its documents with their status, the per-document records and the unified record
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} Response{data=domain.BatchSnapshot} "Batch snapshot"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Router /batches/{id} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	snap, err := h.batchService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snap)
}

// Delete handles DELETE /api/v1/batches/:id
// @Summary Delete a batch
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Batch deleted"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Failure 409 {object} ErrorResponseBody "Analysis in progress"
// @Router /batches/{id} [delete]
func (h *BatchHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.batchService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "batch deleted"})
}

// AddFiles handles POST /api/v1/batches/:id/files
// @Summary Add files to a batch
// @Description Upload one or more notice documents (txt, pdf, doc, docx, jpg, jpeg, png). Files whose name is already in the batch are dropped as duplicates.
// @Tags batches
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Param files formData file true "Files to add (repeat the field for many)"
// @Success 200 {object} Response{data=service.AddFilesResult} "Intake result"
// @Failure 400 {object} ErrorResponseBody "Missing files"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Failure 409 {object} ErrorResponseBody "Analysis in progress"
// @Failure 413 {object} ErrorResponseBody "Request too large"
// @Router /batches/{id}/files [post]
func (h *BatchHandler) AddFiles(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if h.maxBodySize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodySize)
	}
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(c, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE",
				fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
	}
	if err != nil || len(form.File["files"]) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "files field is required")
		return
	}

	inputs := make([]service.FileInput, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		// Files the service will reject are passed without their bytes.
		if _, err := domain.KindForName(fh.Filename); err != nil || (h.maxFileSize > 0 && fh.Size > h.maxFileSize) {
			inputs = append(inputs, service.FileInput{Name: fh.Filename, Size: fh.Size})
			continue
		}
		f, err := fh.Open()
		if err != nil {
			HandleError(c, fmt.Errorf("open upload %s: %w", fh.Filename, err))
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			HandleError(c, fmt.Errorf("read upload %s: %w", fh.Filename, err))
			return
		}
		inputs = append(inputs, service.FileInput{
			Name:   fh.Filename,
			Size:   fh.Size,
			Source: domain.BytesSource(data),
		})
	}

	res, err := h.batchService.AddFiles(c.Request.Context(), id, inputs)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// RemoveFile handles DELETE /api/v1/batches/:id/files/:fileId
// @Summary Remove a file from a batch
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Param fileId path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "File removed"
// @Failure 404 {object} ErrorResponseBody "Batch or document not found"
// @Failure 409 {object} ErrorResponseBody "Analysis in progress"
// @Router /batches/{id}/files/{fileId} [delete]
func (h *BatchHandler) RemoveFile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fileID, ok := parseID(c, "fileId")
	if !ok {
		return
	}
	if err := h.batchService.RemoveFile(c.Request.Context(), id, fileID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "file removed"})
}

// Reset handles POST /api/v1/batches/:id/reset
// @Summary Reset a batch
// @Description Discard every document and derived record
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Batch reset"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Failure 409 {object} ErrorResponseBody "Analysis in progress"
// @Router /batches/{id}/reset [post]
func (h *BatchHandler) Reset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.batchService.Reset(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "batch reset"})
}

// Analyze handles POST /api/v1/batches/:id/analyze
// @Summary Analyze a batch
// @Description Queue a full analysis run. Poll GET /batches/{id} for progress.
// @Tags batches
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Param X-Model-API-Key header string false "Model API key for this run"
// @Success 202 {object} Response{data=MessageResponse} "Analysis queued"
// @Failure 400 {object} ErrorResponseBody "Empty batch or malformed key"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Failure 409 {object} ErrorResponseBody "Analysis already queued or in progress"
// @Failure 503 {object} ErrorResponseBody "Queue full"
// @Router /batches/{id}/analyze [post]
func (h *BatchHandler) Analyze(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.batchService.Analyze(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c, MessageResponse{Message: "analysis queued"})
}
