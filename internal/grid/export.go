package grid

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jdlms/gcz-explorer/internal/columns"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/types"
)

// ExportTimeLayout stamps export file names.
const ExportTimeLayout = "20060102-150405"

// WriteCSV writes the displayed rows (every page) under the visible
// columns, headed by the column header names.
func (m *Model) WriteCSV(w io.Writer) error {
	return writeDelimited(w, ',', m.cols, m.Displayed())
}

// WriteTSV writes the selected rows under the visible columns, the shape
// spreadsheets accept from the clipboard.
func (m *Model) WriteTSV(w io.Writer) error {
	return writeDelimited(w, '\t', m.cols, m.SelectedRows())
}

// ExportPath is dir/<moduleID>-<timestamp>.csv.
func ExportPath(dir, moduleID string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.csv", moduleID, now.Format(ExportTimeLayout)))
}

// ExportFile writes WriteCSV output to ExportPath and returns the path.
func (m *Model) ExportFile(dir, moduleID string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := ExportPath(dir, moduleID, now)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := m.WriteCSV(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}

// WriteRows writes rows under defs' visible columns as CSV. The headless
// search command uses it without a Model.
func WriteRows(w io.Writer, defs []columns.Descriptor, rows []types.Row) error {
	return writeDelimited(w, ',', columns.VisibleDescriptors(defs), rows)
}

func writeDelimited(w io.Writer, comma rune, cols []columns.Descriptor, rows []types.Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	record := make([]string, len(cols))
	for i, c := range cols {
		record[i] = c.Header
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		for i, c := range cols {
			record[i] = render.ToString(row[c.Field])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
