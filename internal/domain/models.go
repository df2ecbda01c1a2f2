package domain

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexasta/internal/schema"
)

// ByteSource yields the raw bytes of an uploaded file.
type ByteSource interface {
	Open() (io.ReadCloser, error)
}

// BytesSource is an in-memory ByteSource.
type BytesSource []byte

func (b BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

// FileSource is a ByteSource backed by a path on disk.
type FileSource string

func (f FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

// Image is a base64-encoded image forwarded to the model as vision input.
type Image struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// Content is the recovered payload of a document: text, or an image.
type Content struct {
	Text  string `json:"text,omitempty"`
	Image *Image `json:"image,omitempty"`
}

// TextContent wraps s as text content.
func TextContent(s string) Content { return Content{Text: s} }

// IsImage reports whether the content is a vision payload.
func (c Content) IsImage() bool { return c.Image != nil }

// Len returns the number of characters of text content, or of base64 image data.
func (c Content) Len() int {
	if c.Image != nil {
		return len(c.Image.Data)
	}
	return len([]rune(c.Text))
}

// Document is one user-supplied file under analysis.
type Document struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Size       int64          `json:"size"`
	Kind       DocumentKind   `json:"kind"`
	Status     DocumentStatus `json:"status"`
	Content    *Content       `json:"-"`
	ContentLen int            `json:"content_length,omitempty"`
	Error      string         `json:"error,omitempty"`
	Source     ByteSource     `json:"-"`
}

// NewDocumentInput carries the intake data of one file.
type NewDocumentInput struct {
	Name   string
	Size   int64
	Kind   DocumentKind
	Source ByteSource
}

// Result is one successful per-document extraction.
type Result struct {
	DocumentID uuid.UUID      `json:"document_id"`
	Name       string         `json:"name"`
	Record     *schema.Record `json:"record"`
}

// BatchSnapshot is a consistent, read-only copy of a batch.
type BatchSnapshot struct {
	ID                uuid.UUID      `json:"id"`
	State             BatchState     `json:"state"`
	Documents         []Document     `json:"documents"`
	Results           []Result       `json:"results,omitempty"`
	Unified           *schema.Record `json:"unified,omitempty"`
	ReconciledByModel bool           `json:"reconciled_by_model"`
	Error             string         `json:"error,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Batch is an ordered set of documents plus the records derived from them.
// It is safe for concurrent readers while a single pipeline run mutates it.
type Batch struct {
	mu                sync.RWMutex
	id                uuid.UUID
	documents         []*Document
	results           []Result
	unified           *schema.Record
	state             BatchState
	reconciledByModel bool
	lastError         string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewBatch creates an empty, idle batch.
func NewBatch() *Batch {
	now := time.Now().UTC()
	return &Batch{id: uuid.New(), state: BatchIdle, createdAt: now, updatedAt: now}
}

func (b *Batch) ID() uuid.UUID { return b.id }

func (b *Batch) touch() { b.updatedAt = time.Now().UTC() }

// Add appends a pending document. A document whose name is already in the
// batch is dropped with ErrDuplicateDocument; a running batch rejects it with
// ErrBatchBusy.
func (b *Batch) Add(in NewDocumentInput) (Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state.Running() {
		return Document{}, ErrBatchBusy
	}
	for _, d := range b.documents {
		if d.Name == in.Name {
			return Document{}, ErrDuplicateDocument
		}
	}
	doc := &Document{
		ID:     uuid.New(),
		Name:   in.Name,
		Size:   in.Size,
		Kind:   in.Kind,
		Status: DocumentPending,
		Source: in.Source,
	}
	b.documents = append(b.documents, doc)
	b.touch()
	return *doc, nil
}

// Len returns the number of documents.
func (b *Batch) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.documents)
}

// Remove drops a document by ID.
func (b *Batch) Remove(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state.Running() {
		return ErrBatchBusy
	}
	for i, d := range b.documents {
		if d.ID == id {
			b.documents = append(b.documents[:i], b.documents[i+1:]...)
			b.touch()
			return nil
		}
	}
	return ErrDocumentNotFound
}

// Reset discards every document and derived record and returns the batch to idle.
func (b *Batch) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state.Running() {
		return ErrBatchBusy
	}
	b.documents = nil
	b.results = nil
	b.unified = nil
	b.reconciledByModel = false
	b.lastError = ""
	b.state = BatchIdle
	b.touch()
	return nil
}

// BeginRun prepares the batch for a pipeline run: derived records are
// discarded, every document returns to pending and the state becomes reading.
func (b *Batch) BeginRun() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state.Running() {
		return ErrBatchBusy
	}
	if len(b.documents) == 0 {
		return ErrEmptyBatch
	}
	for _, d := range b.documents {
		d.Status = DocumentPending
		d.Content = nil
		d.ContentLen = 0
		d.Error = ""
	}
	b.results = nil
	b.unified = nil
	b.reconciledByModel = false
	b.lastError = ""
	b.state = BatchReading
	b.touch()
	return nil
}

// State returns the current pipeline state.
func (b *Batch) State() BatchState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// SetState moves the batch to the given pipeline state.
func (b *Batch) SetState(s BatchState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = s
	b.touch()
}

// SetStatus moves a document along its lifecycle. Backward moves are rejected.
func (b *Batch) SetStatus(id uuid.UUID, status DocumentStatus, reason string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.find(id)
	if d == nil {
		return ErrDocumentNotFound
	}
	if !d.Status.CanTransition(status) {
		return ErrInvalidTransition
	}
	d.Status = status
	d.Error = reason
	b.touch()
	return nil
}

// SetContent stores the recovered content of a document.
func (b *Batch) SetContent(id uuid.UUID, c Content) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.find(id)
	if d == nil {
		return ErrDocumentNotFound
	}
	d.Content = &c
	d.ContentLen = c.Len()
	b.touch()
	return nil
}

// AddResult appends a successful per-document record.
func (b *Batch) AddResult(r Result) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results = append(b.results, r)
	b.touch()
}

// Complete stores the unified record and marks the batch done.
func (b *Batch) Complete(unified *schema.Record, byModel bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unified = unified
	b.reconciledByModel = byModel
	b.state = BatchDone
	b.touch()
}

// Fail marks the batch failed without a unified record.
func (b *Batch) Fail(reason string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unified = nil
	b.lastError = reason
	b.state = BatchFailed
	b.touch()
}

// Documents returns copies of the documents in batch order.
func (b *Batch) Documents() []Document {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Document, len(b.documents))
	for i, d := range b.documents {
		out[i] = *d
	}
	return out
}

// Results returns the successful records in batch order.
func (b *Batch) Results() []Result {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Result(nil), b.results...)
}

// Unified returns the unified record, or nil.
func (b *Batch) Unified() *schema.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.unified
}

// Snapshot returns a consistent copy of the batch.
func (b *Batch) Snapshot() BatchSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	docs := make([]Document, len(b.documents))
	for i, d := range b.documents {
		docs[i] = *d
	}
	return BatchSnapshot{
		ID:                b.id,
		State:             b.state,
		Documents:         docs,
		Results:           append([]Result(nil), b.results...),
		Unified:           b.unified,
		ReconciledByModel: b.reconciledByModel,
		Error:             b.lastError,
		CreatedAt:         b.createdAt,
		UpdatedAt:         b.updatedAt,
	}
}

func (b *Batch) find(id uuid.UUID) *Document {
	for _, d := range b.documents {
		if d.ID == id {
			return d
		}
	}
	return nil
}
