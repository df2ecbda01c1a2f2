package domain

import (
	"path/filepath"
	"strings"
)

// DocumentKind is the declared kind of an input file.
type DocumentKind string

const (
	KindPlainText    DocumentKind = "plain_text"
	KindImage        DocumentKind = "image"
	KindOpaqueBinary DocumentKind = "opaque_binary"
)

// AllowedExtensions maps file extensions (without dot) to DocumentKind.
var AllowedExtensions = map[string]DocumentKind{
	"txt":  KindPlainText,
	"png":  KindImage,
	"jpg":  KindImage,
	"jpeg": KindImage,
	"pdf":  KindOpaqueBinary,
	"doc":  KindOpaqueBinary,
	"docx": KindOpaqueBinary,
}

// ImageMediaTypes maps image extensions to their MIME type.
var ImageMediaTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// Extension returns the lower-case extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// KindForName resolves the DocumentKind of a file name.
func KindForName(name string) (DocumentKind, error) {
	kind, ok := AllowedExtensions[Extension(name)]
	if !ok {
		return "", ErrUnsupportedFileType
	}
	return kind, nil
}

// DocumentStatus is the lifecycle of a document within a run.
type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentProcessing DocumentStatus = "processing"
	DocumentDone       DocumentStatus = "done"
	DocumentError      DocumentStatus = "error"
)

var documentTransitions = map[DocumentStatus][]DocumentStatus{
	DocumentPending:    {DocumentProcessing},
	DocumentProcessing: {DocumentDone, DocumentError},
}

// CanTransition reports whether a document may move from one status to another.
func (s DocumentStatus) CanTransition(to DocumentStatus) bool {
	for _, next := range documentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// BatchState is the phase of the analysis pipeline over a batch.
type BatchState string

const (
	BatchIdle        BatchState = "idle"
	BatchReading     BatchState = "reading"
	BatchExtracting  BatchState = "extracting"
	BatchReconciling BatchState = "reconciling"
	BatchDone        BatchState = "done"
	BatchFailed      BatchState = "failed"
)

// Running reports whether a pipeline run is in progress.
func (s BatchState) Running() bool {
	return s == BatchReading || s == BatchExtracting || s == BatchReconciling
}
