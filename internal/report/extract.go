package report

import (
	"iter"
	"strings"

	"github.com/cbcr-dev/cbcrgen/internal/model"
)

// Sections holds the per-role sheet assignment for one workbook. A role
// with no matching sheet is nil.
type Sections struct {
	GeneralInfo     *model.Sheet
	CountryOverview *model.Sheet
	Subsidiaries    *model.Sheet
	OmittedInfo     *model.Sheet
}

// ClassifySheets assigns each sheet a role by name. The first sheet in
// workbook order to match a role claims it; later matches are ignored.
func ClassifySheets(wb *model.Workbook) Sections {
	var s Sections
	for _, sheet := range wb.Sheets {
		switch model.ClassifySheetName(sheet.Name) {
		case model.RoleGeneralInfo:
			if s.GeneralInfo == nil {
				s.GeneralInfo = sheet
			}
		case model.RoleCountryOverview:
			if s.CountryOverview == nil {
				s.CountryOverview = sheet
			}
		case model.RoleSubsidiaries:
			if s.Subsidiaries == nil {
				s.Subsidiaries = sheet
			}
		case model.RoleOmittedInfo:
			if s.OmittedInfo == nil {
				s.OmittedInfo = sheet
			}
		}
	}
	return s
}

// Labels matched against the first column of the general-info sheet.
const (
	labelUltimateParent = "ultimate parent"
	labelCountryOffice  = "country of registered office"
	labelFYStart        = "financial year start"
	labelFYEnd          = "financial year end"
	labelCurrency       = "reporting currency"
	labelOECD           = "oecd"
)

// ExtractGeneralInfo reads (label, value) pairs from the first two columns
// of the general-information sheet. Labels are matched by substring;
// unmatched rows are ignored. The column headers are considered as a pair
// too, since the first field of a human-authored sheet often lands there.
func ExtractGeneralInfo(sheet *model.Sheet) model.GeneralInfo {
	var info model.GeneralInfo
	if sheet == nil {
		return info
	}

	if len(sheet.Columns) >= 2 {
		applyGeneralPair(&info, model.TextCell(sheet.Columns[0]), model.TextCell(sheet.Columns[1]))
	}
	for i := range sheet.Rows {
		applyGeneralPair(&info, sheet.Cell(i, 0), sheet.Cell(i, 1))
	}
	return info
}

func applyGeneralPair(info *model.GeneralInfo, key, value model.Cell) {
	k := strings.ToLower(key.String())
	switch {
	case strings.Contains(k, labelUltimateParent):
		info.UltimateParent = value.String()
	case strings.Contains(k, labelCountryOffice):
		info.CountryOffice = value.String()
	case strings.Contains(k, labelFYStart):
		info.FYStart = value
	case strings.Contains(k, labelFYEnd):
		info.FYEnd = value
	case strings.Contains(k, labelCurrency):
		info.Currency = value.String()
	case strings.Contains(k, labelOECD):
		info.OECDInstructions = parseBool(value.String())
	}
}

// parseBool interprets the yes/no style answers found in spreadsheets.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

// Positional column bindings for the overview and subsidiary tables.
const (
	colJurisdiction = 0
	colCountryCode  = 1
	colRevenues     = 2
	colProfit       = 3
	colTaxPaid      = 4
	colTaxAccrued   = 5
	colEarnings     = 6
	colEmployees    = 7

	colSubName       = 2
	colSubActivities = 3
)

// CountryRows streams the validated rows of the country-overview sheet in
// order, skipping any row whose first cell is empty. The sequence is
// single-pass and finite; a nil sheet yields nothing.
func CountryRows(sheet *model.Sheet) iter.Seq[model.CountryRow] {
	return func(yield func(model.CountryRow) bool) {
		if sheet == nil {
			return
		}
		for i := range sheet.Rows {
			if sheet.Cell(i, colJurisdiction).IsEmpty() {
				continue
			}
			row := model.CountryRow{
				Jurisdiction:        sheet.Cell(i, colJurisdiction),
				CountryCode:         sheet.Cell(i, colCountryCode),
				Revenues:            sheet.Cell(i, colRevenues),
				ProfitBeforeTax:     sheet.Cell(i, colProfit),
				TaxPaid:             sheet.Cell(i, colTaxPaid),
				TaxAccrued:          sheet.Cell(i, colTaxAccrued),
				AccumulatedEarnings: sheet.Cell(i, colEarnings),
				EmployeeCount:       sheet.Cell(i, colEmployees),
			}
			if !yield(row) {
				return
			}
		}
	}
}

// SubsidiaryRows streams the validated rows of the subsidiaries sheet,
// with the same skip rule as CountryRows.
func SubsidiaryRows(sheet *model.Sheet) iter.Seq[model.SubsidiaryRow] {
	return func(yield func(model.SubsidiaryRow) bool) {
		if sheet == nil {
			return
		}
		for i := range sheet.Rows {
			if sheet.Cell(i, colJurisdiction).IsEmpty() {
				continue
			}
			row := model.SubsidiaryRow{
				Jurisdiction: sheet.Cell(i, colJurisdiction),
				CountryCode:  sheet.Cell(i, colCountryCode),
				Name:         sheet.Cell(i, colSubName),
				Activities:   sheet.Cell(i, colSubActivities),
			}
			if !yield(row) {
				return
			}
		}
	}
}

// defaultOmittedText is rendered when the omitted-information sheet is
// absent or has no usable cell.
const defaultOmittedText = "No information omitted"

// OmittedText returns the omitted-information disclosure: the first data
// cell of the sheet, falling back to the first column header (a one-cell
// sheet parses as a lone header), then to the fixed default.
func OmittedText(sheet *model.Sheet) string {
	if sheet == nil {
		return defaultOmittedText
	}
	if c := sheet.Cell(0, 0); !c.IsEmpty() {
		return c.String()
	}
	if len(sheet.Columns) > 0 && strings.TrimSpace(sheet.Columns[0]) != "" {
		return strings.TrimSpace(sheet.Columns[0])
	}
	return defaultOmittedText
}

// ReportingContextFrom derives the shared XBRL context values from the
// extracted general information, applying the fixed fallbacks for any
// missing field.
func ReportingContextFrom(info model.GeneralInfo) model.ReportingContext {
	ctx := model.ReportingContext{
		StartDate: model.DefaultFYStart,
		EndDate:   model.DefaultFYEnd,
		Currency:  model.DefaultCurrency,
	}
	if !info.FYStart.IsEmpty() {
		ctx.StartDate = FormatDate(info.FYStart)
	}
	if !info.FYEnd.IsEmpty() {
		ctx.EndDate = FormatDate(info.FYEnd)
	}
	if info.Currency != "" {
		ctx.Currency = info.Currency
	}
	return ctx
}
