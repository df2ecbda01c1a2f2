package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBatchNotFound       = errors.New("batch not found")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrDuplicateDocument   = errors.New("a document with this name is already in the batch")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrTooManyFiles        = errors.New("batch holds the maximum number of files")
	ErrEmptyBatch          = errors.New("batch has no documents")
	ErrBatchBusy           = errors.New("batch analysis already in progress")
	ErrNoDocumentAnalyzed  = errors.New("no document could be analyzed")
	ErrNoReport            = errors.New("batch has no unified report")
	ErrArchiveDisabled     = errors.New("report archiving is not configured")
	ErrInvalidCredential   = errors.New("invalid model API key format")
	ErrQueueFull           = errors.New("analysis queue is full")
	ErrInvalidTransition   = errors.New("invalid document status transition")
)

// ReadError reports that a document's byte source could not be read.
type ReadError struct {
	Document string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Document, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ExtractionError reports a failed model call or an unusable model reply for one document.
type ExtractionError struct {
	Document string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Document, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ReconciliationError reports a failed model-assisted reconciliation. It is
// always absorbed by falling back to the deterministic merge.
type ReconciliationError struct {
	Documents int
	Err       error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciling %d records: %v", e.Documents, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }
