package sheet

import (
	"math"
	"strconv"
	"strings"
)

// Cell is the raw value of a spreadsheet cell.
type Cell string

// Text returns the cell content as written.
func (c Cell) Text() string {
	return string(c)
}

// Number parses the cell as a finite number.
func (c Cell) Number() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(c)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Row is one non-empty data row of a sheet.
type Row struct {
	// Number is the 1-based row number in the sheet.
	Number int

	header *Header
	cells  []string
}

// NewRow binds raw cell values to a header.
func NewRow(number int, header *Header, cells []string) Row {
	return Row{Number: number, header: header, cells: cells}
}

// Header returns the sheet header the row belongs to.
func (r Row) Header() *Header {
	return r.header
}

// Lookup returns the cell at col. present is false for a missing or empty cell.
func (r Row) Lookup(col int) (cell Cell, present bool) {
	if col < 0 || col >= len(r.cells) || r.cells[col] == "" {
		return "", false
	}
	return Cell(r.cells[col]), true
}

// Values returns the present cells keyed by their original header text.
func (r Row) Values() map[string]Cell {
	values := make(map[string]Cell)
	if r.header == nil {
		return values
	}
	for col, name := range r.header.names {
		if cell, ok := r.Lookup(col); ok {
			values[name] = cell
		}
	}
	return values
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
