package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"spendtrack/internal/core"
)

// csvHeader fixes the exported column order.
var csvHeader = []string{"id", "date", "category", "amount", "description"}

// ExportCSV writes the full collection to w as comma-separated rows with a
// header, one row per expense, in insertion order.
func ExportCSV(col core.Collection, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range col {
		row := []string{e.ID, e.Date.String(), e.Category, e.Amount.String(), e.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportFile exports the collection to the destination path. Write failures
// propagate to the caller.
func ExportFile(col core.Collection, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := ExportCSV(col, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
