package importer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes an in-memory xlsx with the given sheets, each a
// grid of string rows.
func buildWorkbook(t *testing.T, sheets map[string][][]string, order []string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for ri, row := range sheets[name] {
			for ci, val := range row {
				axis, err := excelize.CoordinatesToCellName(ci+1, ri+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, axis, val))
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestExcelParser_Parse(t *testing.T) {
	r := buildWorkbook(t, map[string][][]string{
		"General Information": {
			{"Ultimate Parent Name", "Acme Group"},
			{"Reporting Currency", "EUR"},
		},
		"Country-by-Country Overview": {
			{"Tax Jurisdiction", "Country Code", "Revenues"},
			{"IE", "IE", "1000000"},
		},
	}, []string{"General Information", "Country-by-Country Overview"})

	p := &ExcelParser{}
	wb, err := p.Parse(r)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)

	general := wb.Sheet("General Information")
	require.NotNil(t, general)
	assert.Equal(t, []string{"Ultimate Parent Name", "Acme Group"}, general.Columns)
	require.Len(t, general.Rows, 1)
	assert.Equal(t, "Reporting Currency", general.Cell(0, 0).String())

	overview := wb.Sheet("Country-by-Country Overview")
	require.NotNil(t, overview)
	assert.Equal(t, "Revenues", overview.Columns[2])
	assert.Equal(t, "1000000", overview.Cell(0, 2).String())
}

func TestExcelParser_SheetOrderPreserved(t *testing.T) {
	order := []string{"Omitted Information", "General Information", "Overview"}
	r := buildWorkbook(t, map[string][][]string{
		"Omitted Information": {{"None"}},
		"General Information": {{"Field", "Value"}},
		"Overview":            {{"Tax Jurisdiction"}},
	}, order)

	wb, err := (&ExcelParser{}).Parse(r)
	require.NoError(t, err)
	assert.Equal(t, order, wb.SheetNames())
}

func TestExcelParser_DateStyledCell(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "General Information"))
	require.NoError(t, f.SetCellValue("General Information", "A1", "Field"))
	require.NoError(t, f.SetCellValue("General Information", "B1", "Value"))
	require.NoError(t, f.SetCellValue("General Information", "A2", "Financial Year Start Date"))
	require.NoError(t, f.SetCellValue("General Information", "B2", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	wb, err := (&ExcelParser{}).Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	cell := wb.Sheet("General Information").Cell(0, 1)
	require.NotNil(t, cell.Time, "date-styled cell should carry a native time")
	assert.Equal(t, "2025-01-01", cell.Time.Format("2006-01-02"))
}

func TestExcelParser_EmptySheet(t *testing.T) {
	r := buildWorkbook(t, map[string][][]string{"Blank": nil}, []string{"Blank"})
	wb, err := (&ExcelParser{}).Parse(r)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	assert.True(t, wb.Sheets[0].IsEmpty())
}

func TestExcelParser_GarbageInput(t *testing.T) {
	_, err := (&ExcelParser{}).Parse(strings.NewReader("this is not a zip archive"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}
