package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cbcr-dev/cbcrgen/internal/model"
)

// ExcelParser parses Excel workbooks. It claims both spreadsheet
// extensions the upload form accepts; a legacy binary .xls payload fails
// at open time and surfaces as a parse fault upstream.
type ExcelParser struct{}

// Extensions returns the file extensions this parser handles.
func (p *ExcelParser) Extensions() []string { return []string{".xlsx", ".xls"} }

// Parse reads every sheet of the workbook. The first spreadsheet row of
// each sheet becomes the column headers, the rest become data rows.
// Date-styled numeric cells are carried as native times so downstream
// formatting does not have to guess the display format.
func (p *ExcelParser) Parse(r io.Reader) (*model.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	wb := &model.Workbook{}
	for _, name := range f.GetSheetList() {
		sheet, err := p.parseSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

func (p *ExcelParser) parseSheet(f *excelize.File, name string) (*model.Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	sheet := &model.Sheet{Name: name}
	if len(rows) > 0 {
		sheet.Columns = make([]string, len(rows[0]))
		for i, v := range rows[0] {
			sheet.Columns[i] = strings.TrimSpace(v)
		}
	}
	for ri := 1; ri < len(rows); ri++ {
		cells := make([]model.Cell, len(rows[ri]))
		for ci, display := range rows[ri] {
			cells[ci] = p.cell(f, name, ri, ci, display)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}

// cell builds one model.Cell, preferring the native time for date-styled
// cells over whatever display string the number format produced.
func (p *ExcelParser) cell(f *excelize.File, sheet string, row, col int, display string) model.Cell {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return model.TextCell(display)
	}
	if t, ok := dateValue(f, sheet, axis); ok {
		return model.DateCell(t)
	}
	return model.TextCell(display)
}

// dateValue reports the native time of a cell whose style uses one of the
// built-in date/time number formats.
func dateValue(f *excelize.File, sheet, axis string) (t time.Time, ok bool) {
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return t, false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil || !isDateNumFmt(style.NumFmt) {
		return t, false
	}
	raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil || strings.TrimSpace(raw) == "" {
		return t, false
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return t, false
	}
	parsed, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return t, false
	}
	return parsed, true
}

// isDateNumFmt reports whether a built-in number format ID renders dates
// or times (ECMA-376 part 1, 18.8.30).
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}
