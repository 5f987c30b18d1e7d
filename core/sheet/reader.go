package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnreadable is returned when the input is not a readable spreadsheet.
var ErrUnreadable = errors.New("unreadable spreadsheet")

// Iterator streams the data rows of a single sheet. It is finite and cannot be
// restarted.
type Iterator interface {
	// Next advances to the next non-empty data row.
	Next() bool
	// Row returns the current row.
	Row() Row
	// Err returns the error that stopped iteration, if any.
	Err() error
	// Close releases the underlying file.
	Close() error
}

// source yields raw records, returning io.EOF after the last one.
type source interface {
	next() ([]string, error)
	close() error
}

type reader struct {
	src    source
	header *Header
	line   int
	row    Row
	err    error
	done   bool
}

func newReader(src source) *reader {
	return &reader{src: src}
}

func (r *reader) Next() bool {
	if r.done {
		return false
	}
	for {
		cells, err := r.src.next()
		if err == io.EOF {
			r.done = true
			return false
		}
		if err != nil {
			r.err = fmt.Errorf("%w: row %d: %v", ErrUnreadable, r.line+1, err)
			r.done = true
			return false
		}
		r.line++

		if isBlank(cells) {
			continue
		}
		if r.header == nil {
			r.header = NewHeader(cells)
			continue
		}
		r.row = NewRow(r.line, r.header, cells)
		return true
	}
}

func (r *reader) Row() Row     { return r.row }
func (r *reader) Err() error   { return r.err }
func (r *reader) Close() error { return r.src.close() }

// Open picks the reader from the file name: ".csv" files are read as CSV,
// everything else as a workbook.
func Open(r io.Reader, filename string) (Iterator, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return OpenCSV(r), nil
	}
	return OpenWorkbook(r)
}

// OpenWorkbook reads the first sheet of an .xlsx workbook. Cell values are
// read raw, so date cells arrive as day serials.
func OpenWorkbook(r io.Reader) (Iterator, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	return newReader(&workbookSource{file: f, rows: rows}), nil
}

type workbookSource struct {
	file *excelize.File
	rows *excelize.Rows
}

func (s *workbookSource) next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns(excelize.Options{RawCellValue: true})
}

func (s *workbookSource) close() error {
	rowsErr := s.rows.Close()
	if err := s.file.Close(); err != nil {
		return err
	}
	return rowsErr
}

// OpenCSV reads comma separated values. A UTF-8 byte order mark is dropped.
func OpenCSV(r io.Reader) Iterator {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return newReader(&csvSource{reader: cr})
}

type csvSource struct {
	reader *csv.Reader
	seen   bool
}

func (s *csvSource) next() ([]string, error) {
	record, err := s.reader.Read()
	if err != nil {
		return nil, err
	}
	if !s.seen && len(record) > 0 {
		record[0] = strings.TrimPrefix(record[0], "\ufeff")
	}
	s.seen = true
	return record, nil
}

func (s *csvSource) close() error { return nil }
