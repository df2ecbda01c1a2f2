package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"lexasta/internal/domain"
)

// Progress bounds of each phase, in percent.
const (
	readingStart     = 0
	extractingStart  = 30
	reconcilingStart = 80
	complete         = 100
)

// Observer receives every state and document status transition of a run,
// with the overall progress in percent.
type Observer interface {
	StateChanged(batchID uuid.UUID, state domain.BatchState, progress int)
	DocumentChanged(batchID uuid.UUID, doc domain.Document, progress int)
}

// LogObserver reports transitions through slog.
type LogObserver struct {
	Log *slog.Logger
}

func (o LogObserver) logger() *slog.Logger {
	if o.Log == nil {
		return slog.Default()
	}
	return o.Log
}

func (o LogObserver) StateChanged(batchID uuid.UUID, state domain.BatchState, progress int) {
	o.logger().Info("pipeline.state",
		"batch_id", batchID,
		"state", state,
		"progress", progress,
	)
}

func (o LogObserver) DocumentChanged(batchID uuid.UUID, doc domain.Document, progress int) {
	attrs := []any{
		"batch_id", batchID,
		"document", doc.Name,
		"status", doc.Status,
		"progress", progress,
	}
	if doc.Error != "" {
		attrs = append(attrs, "error", doc.Error)
	}
	o.logger().Info("pipeline.document", attrs...)
}

// phaseProgress maps step done of total within [from, to).
func phaseProgress(from, to, done, total int) int {
	if total == 0 {
		return to
	}
	return from + (to-from)*done/total
}
