package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/logger"
	"lexasta/internal/port"
)

// AnalysisJob is one queued batch run.
type AnalysisJob struct {
	BatchID   uuid.UUID
	APIKey    string
	RequestID string
}

// AnalysisQueue is a bounded FIFO of analysis jobs.
type AnalysisQueue struct {
	jobs chan AnalysisJob
}

// NewAnalysisQueue creates a queue holding at most size jobs.
func NewAnalysisQueue(size int) *AnalysisQueue {
	if size < 1 {
		size = 1
	}
	return &AnalysisQueue{jobs: make(chan AnalysisJob, size)}
}

// Push enqueues a job without blocking. It returns domain.ErrQueueFull when
// the queue is at capacity.
func (q *AnalysisQueue) Push(job AnalysisJob) error {
	select {
	case q.jobs <- job:
		return nil
	default:
		return domain.ErrQueueFull
	}
}

// Len returns the number of waiting jobs.
func (q *AnalysisQueue) Len() int { return len(q.jobs) }

// AnalysisWorker consumes queued jobs and runs them through the BatchService.
type AnalysisWorker struct {
	queue *AnalysisQueue
	svc   BatchService
	cfg   config.WorkerConfig
	log   *slog.Logger
	wg    sync.WaitGroup
}

// NewAnalysisWorker creates a new AnalysisWorker.
func NewAnalysisWorker(queue *AnalysisQueue, svc BatchService, cfg config.WorkerConfig, log *slog.Logger) *AnalysisWorker {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &AnalysisWorker{queue: queue, svc: svc, cfg: cfg, log: log}
}

// Start consumes jobs until ctx is canceled. It blocks until all in-flight
// runs have finished.
func (w *AnalysisWorker) Start(ctx context.Context) {
	sem := make(chan struct{}, w.cfg.Concurrency)

	w.log.Info("analysis_worker.started",
		"concurrency", w.cfg.Concurrency,
		"run_timeout_secs", w.cfg.RunTimeoutSecs,
	)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("analysis_worker.draining")
			w.wg.Wait()
			w.log.Info("analysis_worker.stopped")
			return
		case job := <-w.queue.jobs:
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				w.log.Warn("analysis_worker.job_dropped", "batch_id", job.BatchID)
				w.wg.Wait()
				return
			}
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				defer func() { <-sem }()
				w.run(job)
			}()
		}
	}
}

func (w *AnalysisWorker) run(job AnalysisJob) {
	// In-flight runs outlive the worker context so shutdown does not cut them.
	ctx := context.Background()
	if w.cfg.RunTimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(w.cfg.RunTimeoutSecs)*time.Second)
		defer cancel()
	}
	ctx = port.WithAPIKey(ctx, job.APIKey)
	if job.RequestID != "" {
		ctx = logger.WithRequestID(ctx, job.RequestID)
	}
	ctx = logger.WithBatchID(ctx, job.BatchID.String())
	log := logger.WithContext(ctx, w.log)

	start := time.Now()
	err := w.svc.Run(ctx, job.BatchID)
	switch {
	case err == nil:
		log.Info("analysis_worker.run.done", "duration_ms", time.Since(start).Milliseconds())
	case errors.Is(err, domain.ErrNoDocumentAnalyzed):
		log.Warn("analysis_worker.run.failed", "error", err)
	default:
		log.Error("analysis_worker.run.error", "error", err)
	}
}
