package export

import (
	"encoding/csv"
	"io"

	"lexasta/internal/schema"
)

// BOM is the UTF-8 byte order mark, written first so Excel detects the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var columns = []string{"Categoria", "Campo", "Valore"}

// Writer wraps csv.Writer for exporting the field table.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRows writes one CSV line per table row.
func (w *Writer) WriteRows(rows []Row) error {
	for _, r := range rows {
		if err := w.csv.Write([]string{r.Category, r.Label, r.Value}); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// CSV writes the BOM, the header and the field table of rec.
func CSV(w io.Writer, rec *schema.Record) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteRows(Rows(rec)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
