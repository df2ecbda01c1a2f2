package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/export"
	"lexasta/internal/logger"
	"lexasta/internal/port"
)

// Runner executes one pipeline run over a batch.
type Runner interface {
	Run(ctx context.Context, batch *domain.Batch) error
}

// FileInput is one uploaded file offered to a batch.
type FileInput struct {
	Name   string
	Size   int64
	Source domain.ByteSource
}

// RejectedFile is a file refused at intake.
type RejectedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// AddFilesResult reports what happened to each offered file.
type AddFilesResult struct {
	Accepted   []domain.Document `json:"accepted"`
	Duplicates []string          `json:"duplicates"`
	Rejected   []RejectedFile    `json:"rejected"`
}

// RenderedReport is an exported report ready to be served.
type RenderedReport struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ArchiveResult describes an archived report.
type ArchiveResult struct {
	Key       string `json:"key"`
	Location  string `json:"location"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

// BatchService manages the in-memory batches and their analysis.
type BatchService interface {
	Create(ctx context.Context) domain.BatchSnapshot
	Get(ctx context.Context, id uuid.UUID) (domain.BatchSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddFiles(ctx context.Context, id uuid.UUID, files []FileInput) (*AddFilesResult, error)
	RemoveFile(ctx context.Context, id, fileID uuid.UUID) error
	Reset(ctx context.Context, id uuid.UUID) error
	// Analyze queues a run. The model credential on ctx, if any, travels with it.
	Analyze(ctx context.Context, id uuid.UUID) error
	// Run executes a run synchronously.
	Run(ctx context.Context, id uuid.UUID) error
	Report(ctx context.Context, id uuid.UUID, format export.Format) (*RenderedReport, error)
	Archive(ctx context.Context, id uuid.UUID, format export.Format) (*ArchiveResult, error)
}

type batchService struct {
	runner    Runner
	queue     *AnalysisQueue
	storage   port.ObjectStorage
	upload    config.UploadConfig
	presignIn int64
	log       *slog.Logger

	mu      sync.RWMutex
	batches map[uuid.UUID]*domain.Batch
	queued  map[uuid.UUID]bool
}

// NewBatchService creates a BatchService. storage may be a disabled sink.
func NewBatchService(runner Runner, queue *AnalysisQueue, storage port.ObjectStorage,
	upload config.UploadConfig, s3cfg config.S3Config, log *slog.Logger) BatchService {
	if log == nil {
		log = slog.Default()
	}
	return &batchService{
		runner:    runner,
		queue:     queue,
		storage:   storage,
		upload:    upload,
		presignIn: s3cfg.PresignExpiry,
		log:       log,
		batches:   make(map[uuid.UUID]*domain.Batch),
		queued:    make(map[uuid.UUID]bool),
	}
}

func (s *batchService) Create(ctx context.Context) domain.BatchSnapshot {
	b := domain.NewBatch()
	s.mu.Lock()
	s.batches[b.ID()] = b
	s.mu.Unlock()

	logger.WithContext(ctx, s.log).Info("batch.created", "batch_id", b.ID())
	return b.Snapshot()
}

func (s *batchService) batch(id uuid.UUID) (*domain.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.batches[id]
	if !ok {
		return nil, domain.ErrBatchNotFound
	}
	return b, nil
}

// busy reports whether a run is queued or in progress.
func (s *batchService) busy(b *domain.Batch) bool {
	s.mu.RLock()
	queued := s.queued[b.ID()]
	s.mu.RUnlock()
	return queued || b.State().Running()
}

func (s *batchService) Get(_ context.Context, id uuid.UUID) (domain.BatchSnapshot, error) {
	b, err := s.batch(id)
	if err != nil {
		return domain.BatchSnapshot{}, err
	}
	return b.Snapshot(), nil
}

func (s *batchService) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.batch(id)
	if err != nil {
		return err
	}
	if s.busy(b) {
		return domain.ErrBatchBusy
	}
	s.mu.Lock()
	delete(s.batches, id)
	s.mu.Unlock()

	logger.WithContext(ctx, s.log).Info("batch.deleted", "batch_id", id)
	return nil
}

func (s *batchService) AddFiles(ctx context.Context, id uuid.UUID, files []FileInput) (*AddFilesResult, error) {
	b, err := s.batch(id)
	if err != nil {
		return nil, err
	}
	if s.busy(b) {
		return nil, domain.ErrBatchBusy
	}

	maxSize := s.upload.MaxFileSizeMB * 1024 * 1024
	res := &AddFilesResult{
		Accepted:   []domain.Document{},
		Duplicates: []string{},
		Rejected:   []RejectedFile{},
	}
	for _, f := range files {
		kind, err := domain.KindForName(f.Name)
		if err != nil {
			res.Rejected = append(res.Rejected, RejectedFile{Name: f.Name, Reason: err.Error()})
			continue
		}
		if maxSize > 0 && f.Size > maxSize {
			res.Rejected = append(res.Rejected, RejectedFile{Name: f.Name, Reason: domain.ErrFileTooLarge.Error()})
			continue
		}
		if s.upload.MaxFiles > 0 && b.Len() >= s.upload.MaxFiles {
			res.Rejected = append(res.Rejected, RejectedFile{Name: f.Name, Reason: domain.ErrTooManyFiles.Error()})
			continue
		}
		doc, err := b.Add(domain.NewDocumentInput{Name: f.Name, Size: f.Size, Kind: kind, Source: f.Source})
		if errors.Is(err, domain.ErrDuplicateDocument) {
			res.Duplicates = append(res.Duplicates, f.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
		res.Accepted = append(res.Accepted, doc)
	}

	logger.WithContext(ctx, s.log).Info("batch.files.added",
		"batch_id", id,
		"accepted", len(res.Accepted),
		"duplicates", len(res.Duplicates),
		"rejected", len(res.Rejected),
	)
	return res, nil
}

func (s *batchService) RemoveFile(_ context.Context, id, fileID uuid.UUID) error {
	b, err := s.batch(id)
	if err != nil {
		return err
	}
	if s.busy(b) {
		return domain.ErrBatchBusy
	}
	return b.Remove(fileID)
}

func (s *batchService) Reset(ctx context.Context, id uuid.UUID) error {
	b, err := s.batch(id)
	if err != nil {
		return err
	}
	if s.busy(b) {
		return domain.ErrBatchBusy
	}
	if err := b.Reset(); err != nil {
		return err
	}
	logger.WithContext(ctx, s.log).Info("batch.reset", "batch_id", id)
	return nil
}

func (s *batchService) Analyze(ctx context.Context, id uuid.UUID) error {
	b, err := s.batch(id)
	if err != nil {
		return err
	}
	if b.Len() == 0 {
		return domain.ErrEmptyBatch
	}

	s.mu.Lock()
	if s.queued[id] || b.State().Running() {
		s.mu.Unlock()
		return domain.ErrBatchBusy
	}
	s.queued[id] = true
	s.mu.Unlock()

	job := AnalysisJob{
		BatchID:   id,
		APIKey:    port.APIKeyFromContext(ctx, ""),
		RequestID: logger.RequestIDFromContext(ctx),
	}
	if err := s.queue.Push(job); err != nil {
		s.clearQueued(id)
		return err
	}
	logger.WithContext(ctx, s.log).Info("batch.analysis.queued", "batch_id", id, "documents", b.Len())
	return nil
}

func (s *batchService) clearQueued(id uuid.UUID) {
	s.mu.Lock()
	delete(s.queued, id)
	s.mu.Unlock()
}

func (s *batchService) Run(ctx context.Context, id uuid.UUID) error {
	b, err := s.batch(id)
	if err != nil {
		s.clearQueued(id)
		return err
	}
	// The runner marks the batch running before the queued mark drops.
	defer s.clearQueued(id)
	return s.runner.Run(ctx, b)
}

func (s *batchService) Report(_ context.Context, id uuid.UUID, format export.Format) (*RenderedReport, error) {
	b, err := s.batch(id)
	if err != nil {
		return nil, err
	}
	rep, err := export.NewReport(b.Snapshot())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if format == export.FormatJSON {
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep.Record); err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
	} else if err := export.Render(&buf, format, rep); err != nil {
		return nil, fmt.Errorf("render %s report: %w", format, err)
	}

	return &RenderedReport{
		Filename:    export.BuildFilename(reportBase(rep), format, rep.GeneratedAt),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// reportBase names a report after its case number when one was extracted.
func reportBase(rep export.Report) string {
	if rge := rep.Record.Procedure.CaseNumber; rge.IsScalar() {
		return "LexAsta_RGE_" + rge.String()
	}
	return "LexAsta_Report"
}

func (s *batchService) Archive(ctx context.Context, id uuid.UUID, format export.Format) (*ArchiveResult, error) {
	if !s.storage.Enabled() {
		return nil, domain.ErrArchiveDisabled
	}
	rendered, err := s.Report(ctx, id, format)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/%s/%d_%s", id, time.Now().Unix(), rendered.Filename)
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Key:         key,
		Body:        bytes.NewReader(rendered.Body),
		ContentType: rendered.ContentType,
		Size:        int64(len(rendered.Body)),
	})
	if err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, key, s.presignIn)
	if err != nil {
		return nil, fmt.Errorf("presign archived report: %w", err)
	}

	logger.WithContext(ctx, s.log).Info("batch.report.archived", "batch_id", id, "key", key, "format", format)
	return &ArchiveResult{Key: key, Location: out.Location, URL: url, ExpiresIn: s.presignIn}, nil
}
