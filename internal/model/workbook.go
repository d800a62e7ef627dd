package model

import (
	"strings"
	"time"
)

// Cell is a single spreadsheet cell. A cell read from a date-styled
// spreadsheet column carries the native time in addition to the display
// value; everything else is plain text. A zero Cell is an empty cell.
type Cell struct {
	Value string
	Time  *time.Time // non-nil when the source cell was date-styled
}

// TextCell returns a Cell holding a plain string value.
func TextCell(value string) Cell {
	return Cell{Value: value}
}

// DateCell returns a Cell holding a native date value.
func DateCell(t time.Time) Cell {
	return Cell{Value: t.Format("2006-01-02"), Time: &t}
}

// IsEmpty reports whether the cell is missing or holds only whitespace.
func (c Cell) IsEmpty() bool {
	return c.Time == nil && strings.TrimSpace(c.Value) == ""
}

// String returns the trimmed display value.
func (c Cell) String() string {
	return strings.TrimSpace(c.Value)
}

// Sheet is one worksheet: the first spreadsheet row becomes the column
// headers, the remaining rows become data rows. Rows may be ragged.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]Cell
}

// Cell returns the cell at (row, col), or an empty Cell when the
// coordinates fall outside the sheet.
func (s *Sheet) Cell(row, col int) Cell {
	if s == nil || row < 0 || row >= len(s.Rows) {
		return Cell{}
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// IsEmpty reports whether the sheet has no headers and no data rows.
func (s *Sheet) IsEmpty() bool {
	return s == nil || (len(s.Columns) == 0 && len(s.Rows) == 0)
}

// Workbook is an ordered collection of sheets as parsed from one upload.
type Workbook struct {
	Sheets []*Sheet
}

// Sheet returns the sheet with the given name, or nil.
func (w *Workbook) Sheet(name string) *Sheet {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
