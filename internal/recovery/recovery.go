// Package recovery turns the raw bytes of an uploaded document into content
// the model can read.
package recovery

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/logger"
)

// Unreadable returns the placeholder used when no usable text survives the
// binary scrape.
func Unreadable(name string) string {
	return fmt.Sprintf("[Testo non estraibile da %s: fornisci il contenuto come .txt]", name)
}

// Recoverer extracts content from documents.
type Recoverer struct {
	minLineLength int
	minTextChars  int
	log           *slog.Logger
}

// New builds a Recoverer from the recovery thresholds.
func New(cfg config.RecoveryConfig, log *slog.Logger) *Recoverer {
	if log == nil {
		log = slog.Default()
	}
	return &Recoverer{
		minLineLength: cfg.MinLineLength,
		minTextChars:  cfg.MinTextChars,
		log:           log,
	}
}

// Recover reads the document's byte source and returns its content. Only a
// failure to read the bytes is an error; an unreadable binary yields the
// placeholder text.
func (r *Recoverer) Recover(ctx context.Context, doc domain.Document) (domain.Content, error) {
	if doc.Source == nil {
		return domain.Content{}, &domain.ReadError{Document: doc.Name, Err: fmt.Errorf("no byte source")}
	}
	rc, err := doc.Source.Open()
	if err != nil {
		return domain.Content{}, &domain.ReadError{Document: doc.Name, Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.Content{}, &domain.ReadError{Document: doc.Name, Err: err}
	}

	switch doc.Kind {
	case domain.KindPlainText:
		return domain.TextContent(string(data)), nil

	case domain.KindImage:
		mediaType, ok := domain.ImageMediaTypes[domain.Extension(doc.Name)]
		if !ok {
			mediaType = "image/jpeg"
		}
		return domain.Content{Image: &domain.Image{
			MediaType: mediaType,
			Data:      base64.StdEncoding.EncodeToString(data),
		}}, nil

	default:
		text := ScrapeBinary(data, r.minLineLength)
		if len(text) > r.minTextChars {
			return domain.TextContent(text), nil
		}
		logger.WithContext(ctx, r.log).Warn("recovery.binary.unreadable",
			"document", doc.Name,
			"recovered_chars", len(text),
		)
		return domain.TextContent(Unreadable(doc.Name)), nil
	}
}
