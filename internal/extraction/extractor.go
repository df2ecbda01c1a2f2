// Package extraction turns one document's content into a structured record
// through a single model call.
package extraction

import (
	"context"
	"log/slog"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/logger"
	"lexasta/internal/port"
	"lexasta/internal/schema"
)

// Extractor runs the per-document extraction.
type Extractor struct {
	client         port.ModelClient
	maxPromptChars int
	maxTokens      int
	log            *slog.Logger
}

// New creates an Extractor.
func New(client port.ModelClient, cfg config.ExtractionConfig, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{
		client:         client,
		maxPromptChars: cfg.MaxPromptChars,
		maxTokens:      cfg.MaxTokens,
		log:            log,
	}
}

// Extract makes exactly one model call for the content and decodes the reply.
// Every failure is returned as a *domain.ExtractionError.
func (e *Extractor) Extract(ctx context.Context, content domain.Content, filename string) (*schema.Record, error) {
	log := logger.WithContext(ctx, e.log).With("document", filename)

	req := port.ModelRequest{
		System:    SystemPrompt(),
		MaxTokens: e.maxTokens,
	}
	if content.IsImage() {
		req.Image = content.Image
		req.Prompt = ImagePrompt(filename)
	} else {
		req.Prompt = TextPrompt(filename, content.Text, e.maxPromptChars)
	}

	resp, err := e.client.Complete(ctx, req)
	if err != nil {
		log.Warn("extraction.model_call_failed", "error", err)
		return nil, &domain.ExtractionError{Document: filename, Err: err}
	}

	rec, err := schema.Decode(resp.Text, log)
	if err != nil {
		log.Warn("extraction.invalid_reply", "error", err, "raw", preview(resp.Text, 500))
		return nil, &domain.ExtractionError{Document: filename, Err: err}
	}

	log.Debug("extraction.completed", "model", resp.Model)
	return rec, nil
}

// preview shortens a reply for logging without splitting a character.
func preview(s string, maxChars int) string {
	if t := truncateRunes(s, maxChars); t != s {
		return t + "..."
	}
	return s
}
