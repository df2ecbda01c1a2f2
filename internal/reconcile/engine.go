// Package reconcile merges the per-document records of a batch into one
// unified record.
package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/logger"
	"lexasta/internal/port"
	"lexasta/internal/schema"
)

// ErrNoRecords is returned when Reconcile is called without records.
var ErrNoRecords = errors.New("reconcile: no records")

const systemPrompt = "Sei un avvocato esperto in diritto immobiliare. Restituisci SOLO JSON valido, nessun testo aggiuntivo."

// Source is one successful per-document record with the name of its document.
type Source struct {
	Name   string
	Record *schema.Record
}

// Outcome is the unified record and the path that produced it.
type Outcome struct {
	Record *schema.Record
	// ByModel is true when the model-assisted reconciliation produced Record.
	ByModel bool
	// Provenance is set when the deterministic merge produced Record.
	Provenance Provenance
}

// Engine reconciles records, preferring the model-assisted path when enabled.
type Engine struct {
	client       port.ModelClient
	modelEnabled bool
	maxTokens    int
	log          *slog.Logger
}

// NewEngine creates an Engine. A nil client disables the model path.
func NewEngine(client port.ModelClient, cfg config.ReconcileConfig, extraction config.ExtractionConfig, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		client:       client,
		modelEnabled: cfg.ModelEnabled && client != nil,
		maxTokens:    extraction.MaxTokens,
		log:          log,
	}
}

// Reconcile produces the unified record. It fails only on empty input: a
// failed model reconciliation is logged and replaced by the deterministic merge.
func (e *Engine) Reconcile(ctx context.Context, sources []Source) (*Outcome, error) {
	if len(sources) == 0 {
		return nil, ErrNoRecords
	}
	if len(sources) == 1 {
		rec, prov := MergeSources(sources)
		return &Outcome{Record: rec, Provenance: prov}, nil
	}

	if e.modelEnabled {
		rec, err := e.viaModel(ctx, sources)
		if err == nil {
			return &Outcome{Record: rec, ByModel: true}, nil
		}
		logger.WithContext(ctx, e.log).Warn("reconcile.model_fallback",
			"error", &domain.ReconciliationError{Documents: len(sources), Err: err},
		)
	}

	rec, prov := MergeSources(sources)
	return &Outcome{Record: rec, Provenance: prov}, nil
}

func (e *Engine) viaModel(ctx context.Context, sources []Source) (*schema.Record, error) {
	prompt, err := MergePrompt(sources)
	if err != nil {
		return nil, err
	}
	resp, err := e.client.Complete(ctx, port.ModelRequest{
		System:    systemPrompt,
		Prompt:    prompt,
		MaxTokens: e.maxTokens,
	})
	if err != nil {
		return nil, err
	}
	return schema.Decode(resp.Text, logger.WithContext(ctx, e.log))
}

// MergePrompt lists every per-document record and asks for one unified record.
func MergePrompt(sources []Source) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hai analizzato %d documenti relativi alla stessa procedura esecutiva immobiliare.\n", len(sources))
	b.WriteString("Di seguito i dati estratti da ciascun documento:\n\n")
	for i, s := range sources {
		data, err := json.MarshalIndent(s.Record, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode record %s: %w", s.Name, err)
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- Documento %d: %s ---\n%s", i+1, s.Name, data)
	}
	b.WriteString("\n\nProduci un JSON unificato con la stessa struttura, compensando i dati mancanti da un documento con quelli presenti negli altri. ")
	b.WriteString("Se ci sono contraddizioni, scegli il dato più affidabile e segnalalo. ")
	b.WriteString(`Aggiorna il campo "giudizio.sintesi" per riflettere l'analisi complessiva di tutti i documenti.`)
	b.WriteString("\n\nRestituisci SOLO il JSON valido.")
	return b.String(), nil
}
