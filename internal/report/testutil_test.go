package report

import "github.com/cbcr-dev/cbcrgen/internal/model"

// textSheet builds a sheet from plain string rows; the first row becomes
// the column headers, matching what the importer produces.
func textSheet(name string, rows ...[]string) *model.Sheet {
	s := &model.Sheet{Name: name}
	if len(rows) > 0 {
		s.Columns = rows[0]
		for _, row := range rows[1:] {
			cells := make([]model.Cell, len(row))
			for i, v := range row {
				cells[i] = model.TextCell(v)
			}
			s.Rows = append(s.Rows, cells)
		}
	}
	return s
}

func workbook(sheets ...*model.Sheet) *model.Workbook {
	return &model.Workbook{Sheets: sheets}
}

// conformantWorkbook is the end-to-end fixture: four sheets, one country
// row, one subsidiary row.
func conformantWorkbook() *model.Workbook {
	return workbook(
		textSheet("General Information",
			[]string{"Ultimate Parent Name", "Acme Group"},
			[]string{"Country of Registered Office", "IE"},
			[]string{"Financial Year Start Date", "2025-01-01"},
			[]string{"Financial Year End Date", "2025-12-31"},
			[]string{"Reporting Currency", "EUR"},
			[]string{"OECD Instructions Used", "Yes"},
		),
		textSheet("Country-by-Country Overview",
			[]string{"Tax Jurisdiction", "Country Code", "Revenues", "Profit (Loss) Before Tax", "Income Tax Paid", "Income Tax Accrued", "Accumulated Earnings", "Number of Employees"},
			[]string{"IE", "IE", "1000000", "200000", "50000", "45000", "150000", "120"},
		),
		textSheet("Subsidiaries and Activities",
			[]string{"Tax Jurisdiction", "Country Code", "Subsidiary Name", "Nature of Activities"},
			[]string{"IE", "IE", "Acme Sub Ltd", "Manufacturing"},
		),
		textSheet("Omitted Information",
			[]string{"Omitted Information"},
			[]string{"None"},
		),
	)
}
