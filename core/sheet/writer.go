package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Writer streams rows into a single-sheet workbook.
type Writer struct {
	file   *excelize.File
	stream *excelize.StreamWriter
	row    int
}

// NewWriter creates a workbook whose only sheet is named sheetName.
func NewWriter(sheetName string) (*Writer, error) {
	f := excelize.NewFile()
	if sheetName != "" && sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
	} else {
		sheetName = "Sheet1"
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open stream writer: %w", err)
	}

	return &Writer{file: f, stream: sw}, nil
}

// WriteRow appends a row. The first row written is usually the header.
func (w *Writer) WriteRow(values ...any) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.stream.SetRow(cell, values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", w.row, err)
	}
	return nil
}

// WriteTo flushes the sheet and writes the workbook to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if err := w.stream.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush sheet: %w", err)
	}
	return w.file.WriteTo(out)
}

// Close releases the workbook.
func (w *Writer) Close() error {
	return w.file.Close()
}
