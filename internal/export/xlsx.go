package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	dataSheet      = "Dati"
	documentsSheet = "Documenti"
)

// XLSX writes a workbook with the field table on "Dati" and the analyzed
// documents on "Documenti".
func XLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// NewFile starts with "Sheet1".
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if index, _ := f.GetSheetIndex(documentsSheet); index == -1 {
		if _, err := f.NewSheet(documentsSheet); err != nil {
			return fmt.Errorf("create sheet: %w", err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(dataSheet)
	f.SetActiveSheet(activeIndex)

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	writeRow := func(sheet string, row int, values ...any) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	writeRow(dataSheet, 1, "Categoria", "Campo", "Valore")
	_ = f.SetCellStyle(dataSheet, "A1", "C1", bold)
	for i, r := range Rows(rep.Record) {
		writeRow(dataSheet, i+2, r.Category, r.Label, r.Value)
	}
	_ = f.SetColWidth(dataSheet, "A", "A", 22)
	_ = f.SetColWidth(dataSheet, "B", "B", 34)
	_ = f.SetColWidth(dataSheet, "C", "C", 80)

	writeRow(documentsSheet, 1, "File", "Tipo", "Dimensione (byte)", "Stato", "Errore")
	_ = f.SetCellStyle(documentsSheet, "A1", "E1", bold)
	for i, d := range rep.Documents {
		writeRow(documentsSheet, i+2, d.Name, string(d.Kind), d.Size, string(d.Status), d.Error)
	}
	_ = f.SetColWidth(documentsSheet, "A", "A", 40)
	_ = f.SetColWidth(documentsSheet, "B", "D", 16)
	_ = f.SetColWidth(documentsSheet, "E", "E", 60)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
