package model

import "strings"

// SectionRole identifies which report section a worksheet feeds.
type SectionRole int

const (
	RoleUnrecognized SectionRole = iota
	RoleGeneralInfo
	RoleCountryOverview
	RoleSubsidiaries
	RoleOmittedInfo
)

// String returns the role name.
func (r SectionRole) String() string {
	switch r {
	case RoleGeneralInfo:
		return "general-info"
	case RoleCountryOverview:
		return "country-overview"
	case RoleSubsidiaries:
		return "subsidiaries"
	case RoleOmittedInfo:
		return "omitted-info"
	default:
		return "unrecognized"
	}
}

// ClassifySheetName maps a free-text sheet name to a SectionRole by
// case-insensitive substring match. The match order is fixed: general,
// country/overview, subsid/activities, omit.
func ClassifySheetName(name string) SectionRole {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "general"):
		return RoleGeneralInfo
	case strings.Contains(n, "country") || strings.Contains(n, "overview"):
		return RoleCountryOverview
	case strings.Contains(n, "subsid") || strings.Contains(n, "activities"):
		return RoleSubsidiaries
	case strings.Contains(n, "omit"):
		return RoleOmittedInfo
	default:
		return RoleUnrecognized
	}
}

// GeneralInfo holds the fields extracted from the general-information
// sheet. Date fields stay as Cells so native spreadsheet dates survive
// until formatting.
type GeneralInfo struct {
	UltimateParent   string
	CountryOffice    string
	FYStart          Cell
	FYEnd            Cell
	Currency         string
	OECDInstructions bool
}

// CountryRow is one data row of the country-by-country overview table,
// positionally bound to its eight columns.
type CountryRow struct {
	Jurisdiction        Cell
	CountryCode         Cell
	Revenues            Cell
	ProfitBeforeTax     Cell
	TaxPaid             Cell
	TaxAccrued          Cell
	AccumulatedEarnings Cell
	EmployeeCount       Cell
}

// SubsidiaryRow is one data row of the subsidiaries table, positionally
// bound to its four columns.
type SubsidiaryRow struct {
	Jurisdiction Cell
	CountryCode  Cell
	Name         Cell
	Activities   Cell
}

// Reporting period and currency fallbacks applied when the general
// information sheet leaves them blank.
const (
	DefaultFYStart  = "2025-01-01"
	DefaultFYEnd    = "2025-12-31"
	DefaultCurrency = "EUR"
)

// ReportingContext is the XBRL context data shared by every tagged fact:
// entity reporting period plus the reporting currency.
type ReportingContext struct {
	StartDate string
	EndDate   string
	Currency  string
}
