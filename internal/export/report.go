package export

import (
	"fmt"
	"io"
	"time"

	"lexasta/internal/domain"
	"lexasta/internal/schema"
)

// Disclaimer closes every human-readable report.
const Disclaimer = "Report generato da LexAsta — Strumento di supporto all'analisi. Non costituisce consulenza legale ex L. 247/2012."

// Report is everything a renderer needs.
type Report struct {
	Record      *schema.Record
	Documents   []domain.Document
	Analyzed    int
	GeneratedAt time.Time
}

// NewReport builds a Report from a finished batch. It returns
// domain.ErrNoReport when the batch has no unified record.
func NewReport(snap domain.BatchSnapshot) (Report, error) {
	if snap.Unified == nil {
		return Report{}, domain.ErrNoReport
	}
	return Report{
		Record:      snap.Unified.Clone().Normalize(),
		Documents:   snap.Documents,
		Analyzed:    len(snap.Results),
		GeneratedAt: time.Now(),
	}, nil
}

// Format is an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatHTML, FormatText, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}

// Render writes the report in format f. JSON is handled by the caller.
func Render(w io.Writer, f Format, rep Report) error {
	switch f {
	case FormatHTML:
		return HTML(w, rep)
	case FormatText:
		return Text(w, rep)
	case FormatCSV:
		return CSV(w, rep.Record)
	case FormatXLSX:
		return XLSX(w, rep)
	default:
		return fmt.Errorf("format %q has no renderer", f)
	}
}
