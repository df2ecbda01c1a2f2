// Package pipeline runs a batch through reading, extraction and
// reconciliation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lexasta/internal/domain"
	"lexasta/internal/logger"
	"lexasta/internal/reconcile"
	"lexasta/internal/schema"
)

// Recoverer extracts content from a document's bytes.
type Recoverer interface {
	Recover(ctx context.Context, doc domain.Document) (domain.Content, error)
}

// Extractor turns content into a structured record.
type Extractor interface {
	Extract(ctx context.Context, content domain.Content, filename string) (*schema.Record, error)
}

// Reconciler merges the successful records of a batch.
type Reconciler interface {
	Reconcile(ctx context.Context, sources []reconcile.Source) (*reconcile.Outcome, error)
}

// ReadFailure returns the content used for a document whose bytes could not be read.
func ReadFailure(name string) string {
	return fmt.Sprintf("[Impossibile estrarre testo da %s]", name)
}

// Orchestrator drives a batch through its phases. Documents are processed
// one at a time, in batch order.
type Orchestrator struct {
	recoverer  Recoverer
	extractor  Extractor
	reconciler Reconciler
	observer   Observer
	log        *slog.Logger
}

// NewOrchestrator creates an Orchestrator. A nil observer logs transitions.
func NewOrchestrator(r Recoverer, e Extractor, rc Reconciler, obs Observer, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	if obs == nil {
		obs = LogObserver{Log: log}
	}
	return &Orchestrator{
		recoverer:  r,
		extractor:  e,
		reconciler: rc,
		observer:   obs,
		log:        log,
	}
}

// Run executes one full run over the batch. It returns domain.ErrBatchBusy or
// domain.ErrEmptyBatch when the run cannot start, and
// domain.ErrNoDocumentAnalyzed when every extraction failed. Per-document
// failures are recorded on the documents and never abort the run.
func (o *Orchestrator) Run(ctx context.Context, batch *domain.Batch) error {
	if err := batch.BeginRun(); err != nil {
		return err
	}
	ctx = logger.WithBatchID(ctx, batch.ID().String())
	log := logger.WithContext(ctx, o.log)

	docs := batch.Documents()
	total := len(docs)
	log.Info("pipeline.run.started", "documents", total)
	o.observer.StateChanged(batch.ID(), domain.BatchReading, readingStart)

	contents := make([]domain.Content, total)
	for i, doc := range docs {
		o.setStatus(batch, doc, domain.DocumentProcessing, "", phaseProgress(readingStart, extractingStart, i, total))

		content, err := o.recoverer.Recover(ctx, doc)
		if err != nil {
			log.Warn("pipeline.read_failed", "document", doc.Name, "error", err)
			content = domain.TextContent(ReadFailure(doc.Name))
		}
		contents[i] = content
		if err := batch.SetContent(doc.ID, content); err != nil {
			return fmt.Errorf("store content of %s: %w", doc.Name, err)
		}
	}

	batch.SetState(domain.BatchExtracting)
	o.observer.StateChanged(batch.ID(), domain.BatchExtracting, extractingStart)

	var sources []reconcile.Source
	for i, doc := range docs {
		progress := phaseProgress(extractingStart, reconcilingStart, i+1, total)

		rec, err := o.extractor.Extract(ctx, contents[i], doc.Name)
		if err != nil {
			o.setStatus(batch, doc, domain.DocumentError, errorReason(err), progress)
			continue
		}
		o.setStatus(batch, doc, domain.DocumentDone, "", progress)
		batch.AddResult(domain.Result{DocumentID: doc.ID, Name: doc.Name, Record: rec})
		sources = append(sources, reconcile.Source{Name: doc.Name, Record: rec})
	}

	if len(sources) == 0 {
		batch.Fail(domain.ErrNoDocumentAnalyzed.Error())
		o.observer.StateChanged(batch.ID(), domain.BatchFailed, complete)
		log.Warn("pipeline.run.failed", "reason", domain.ErrNoDocumentAnalyzed)
		return domain.ErrNoDocumentAnalyzed
	}

	batch.SetState(domain.BatchReconciling)
	o.observer.StateChanged(batch.ID(), domain.BatchReconciling, reconcilingStart)

	outcome, err := o.reconciler.Reconcile(ctx, sources)
	if err != nil {
		batch.Fail(err.Error())
		o.observer.StateChanged(batch.ID(), domain.BatchFailed, complete)
		return fmt.Errorf("reconcile: %w", err)
	}

	batch.Complete(outcome.Record, outcome.ByModel)
	o.observer.StateChanged(batch.ID(), domain.BatchDone, complete)
	log.Info("pipeline.run.completed",
		"documents", total,
		"succeeded", len(sources),
		"reconciled_by_model", outcome.ByModel,
	)
	return nil
}

func (o *Orchestrator) setStatus(batch *domain.Batch, doc domain.Document, status domain.DocumentStatus, reason string, progress int) {
	if err := batch.SetStatus(doc.ID, status, reason); err != nil {
		o.log.Error("pipeline.status_rejected", "document", doc.Name, "status", status, "error", err)
		return
	}
	doc.Status = status
	doc.Error = reason
	o.observer.DocumentChanged(batch.ID(), doc, progress)
}

// errorReason is the message shown on a failed document: the innermost
// cause of an ExtractionError, since the document name is already known.
func errorReason(err error) string {
	var exErr *domain.ExtractionError
	if errors.As(err, &exErr) && exErr.Err != nil {
		return exErr.Err.Error()
	}
	return err.Error()
}
