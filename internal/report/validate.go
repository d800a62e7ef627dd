package report

import (
	"fmt"
	"strings"

	"github.com/cbcr-dev/cbcrgen/internal/model"
)

// RequiredSections are the four worksheet sections a conformant upload
// must contain, matched as case-insensitive substrings of sheet names.
var RequiredSections = []string{
	"General Information",
	"Country-by-Country Overview",
	"Subsidiaries and Activities",
	"Omitted Information",
}

// RequiredGeneralFields are the labels that must appear in the general
// information sheet, either as a column header or in the first column.
var RequiredGeneralFields = []string{
	"Ultimate Parent Name",
	"Country of Registered Office",
	"Financial Year Start Date",
	"Financial Year End Date",
	"Reporting Currency",
	"OECD Instructions Used",
}

// RequiredCountryFields are the column headers the country-by-country
// overview sheet must carry.
var RequiredCountryFields = []string{
	"Tax Jurisdiction",
	"Country Code",
	"Revenues",
	"Profit (Loss) Before Tax",
	"Income Tax Paid",
	"Income Tax Accrued",
	"Accumulated Earnings",
	"Number of Employees",
}

// ValidateSections returns the required section labels with no matching
// sheet name. Validation is advisory: it collects labels, never fails.
func ValidateSections(wb *model.Workbook) []string {
	var missing []string
	names := wb.SheetNames()
	for _, section := range RequiredSections {
		if !anyContains(names, section) {
			missing = append(missing, section)
		}
	}
	return missing
}

// ValidateGeneralInfo returns the required general-information labels not
// found in the sheet's column headers or first-column values. A nil or
// empty sheet is missing every field.
func ValidateGeneralInfo(sheet *model.Sheet) []string {
	if sheet.IsEmpty() {
		return append([]string(nil), RequiredGeneralFields...)
	}

	var firstCol []string
	for i := range sheet.Rows {
		if c := sheet.Cell(i, 0); !c.IsEmpty() {
			firstCol = append(firstCol, c.String())
		}
	}

	var missing []string
	for _, field := range RequiredGeneralFields {
		if anyContains(sheet.Columns, field) || anyContains(firstCol, field) {
			continue
		}
		missing = append(missing, field)
	}
	return missing
}

// ValidateCountryData returns the required overview labels not found in
// the sheet's column headers. A nil or empty sheet is missing every field.
func ValidateCountryData(sheet *model.Sheet) []string {
	if sheet.IsEmpty() {
		return append([]string(nil), RequiredCountryFields...)
	}

	var missing []string
	for _, field := range RequiredCountryFields {
		if !anyContains(sheet.Columns, field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// Validate runs the full structural validation and returns every problem
// as a human-readable message, in detection order. Missing sections take
// precedence: when any section is absent the field-level checks are not
// attempted.
func Validate(wb *model.Workbook) []string {
	if missing := ValidateSections(wb); len(missing) > 0 {
		msgs := make([]string, 0, len(missing))
		for _, section := range missing {
			msgs = append(msgs, fmt.Sprintf("missing required section: %s", section))
		}
		return msgs
	}

	sections := ClassifySheets(wb)

	var msgs []string
	for _, field := range ValidateGeneralInfo(sections.GeneralInfo) {
		msgs = append(msgs, fmt.Sprintf("missing field in General Information: %s", field))
	}
	for _, field := range ValidateCountryData(sections.CountryOverview) {
		msgs = append(msgs, fmt.Sprintf("missing field in Country-by-Country Overview: %s", field))
	}
	return msgs
}

// anyContains reports whether any candidate contains label as a
// case-insensitive substring.
func anyContains(candidates []string, label string) bool {
	label = strings.ToLower(label)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), label) {
			return true
		}
	}
	return false
}
