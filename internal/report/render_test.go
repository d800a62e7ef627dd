package report

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbcr-dev/cbcrgen/internal/id"
	"github.com/cbcr-dev/cbcrgen/internal/model"
)

func renderFixed(wb *model.Workbook) string {
	return newFixedRenderer("entity_00000001").Render(wb)
}

// requireWellFormed parses the rendered document, skipping the DOCTYPE
// directive, and fails the test on any XML error.
func requireWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			require.Contains(t, err.Error(), "EOF", "document is not well-formed XML")
			return
		}
	}
}

func TestRender_WellFormed(t *testing.T) {
	requireWellFormed(t, renderFixed(conformantWorkbook()))
}

func TestRender_Idempotent(t *testing.T) {
	wb := conformantWorkbook()
	r := newFixedRenderer("entity_00000001")
	assert.Equal(t, r.Render(wb), r.Render(wb))
}

func TestRender_FreshEntityIDPerRender(t *testing.T) {
	wb := conformantWorkbook()
	a := NewRenderer().Render(wb)
	b := NewRenderer().Render(wb)
	assert.NotEqual(t, a, b)
	assert.True(t, id.IsEntityID(extractIdentifier(t, a)))
}

func extractIdentifier(t *testing.T, doc string) string {
	t.Helper()
	_, rest, ok := strings.Cut(doc, `scheme="http://www.company-registry.eu">`)
	require.True(t, ok)
	entity, _, ok := strings.Cut(rest, "</xbrli:identifier>")
	require.True(t, ok)
	return entity
}

func TestRender_Namespaces(t *testing.T) {
	doc := renderFixed(conformantWorkbook())
	for _, ns := range []string{nsXHTML, nsIX, nsIXT, nsXSI, nsXBRLI, nsCBCR, nsISO4217} {
		assert.Contains(t, doc, `"`+ns+`"`)
	}
	assert.Contains(t, doc, `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"`)
}

func TestRender_HeaderContextAndUnits(t *testing.T) {
	doc := renderFixed(conformantWorkbook())
	assert.Contains(t, doc, `<xbrli:context id="duration">`)
	assert.Contains(t, doc, "<xbrli:startDate>2025-01-01</xbrli:startDate>")
	assert.Contains(t, doc, "<xbrli:endDate>2025-12-31</xbrli:endDate>")
	assert.Contains(t, doc, "<xbrli:measure>iso4217:EUR</xbrli:measure>")
	assert.Contains(t, doc, "<xbrli:measure>xbrli:pure</xbrli:measure>")
}

func TestRender_TitleEmbedsParent(t *testing.T) {
	doc := renderFixed(conformantWorkbook())
	assert.Contains(t, doc, "<title>Country-by-Country Report - Acme Group</title>")
}

func TestRender_GeneralInfoFacts(t *testing.T) {
	doc := renderFixed(conformantWorkbook())
	assert.Contains(t, doc, `<ix:nonNumeric name="cbcr:NameOfUltimateParentOfGroupOfStandaloneCompany" contextRef="duration">Acme Group</ix:nonNumeric>`)
	assert.Contains(t, doc, `<ix:nonNumeric name="cbcr:CountryOfRegisteredOfficeOfUltimateParentUndertaking" contextRef="duration">IE</ix:nonNumeric>`)
	assert.Contains(t, doc, `<ix:nonNumeric name="cbcr:ReportingCurrency" contextRef="duration">EUR</ix:nonNumeric>`)
	assert.Contains(t, doc, `<ix:nonNumeric name="cbcr:ApplicationOfOptionToReportInAccordanceWithTaxationReportingInstructions" contextRef="duration">Yes</ix:nonNumeric>`)
}

func TestRender_CountryOverviewFacts(t *testing.T) {
	doc := renderFixed(conformantWorkbook())
	assert.Contains(t, doc, `<ix:nonFraction name="cbcr:Revenues" contextRef="duration" unitRef="currency" decimals="0" scale="0">1000000</ix:nonFraction>`)
	assert.Contains(t, doc, `<ix:nonFraction name="cbcr:IncomeTaxPaidOnCashBasis" contextRef="duration" unitRef="currency" decimals="0" scale="0">50000</ix:nonFraction>`)
	assert.Contains(t, doc, `<ix:nonFraction name="cbcr:NumberOfEmployees" contextRef="duration" unitRef="pure" decimals="0" scale="0">120</ix:nonFraction>`)
	// Exactly one data row.
	assert.Equal(t, 1, strings.Count(doc, `name="cbcr:Revenues"`))
}

func TestRender_RowSkipRule(t *testing.T) {
	wb := conformantWorkbook()
	wb.Sheets[1] = textSheet("Country-by-Country Overview",
		[]string{"Tax Jurisdiction", "Country Code", "Revenues", "Profit (Loss) Before Tax", "Income Tax Paid", "Income Tax Accrued", "Accumulated Earnings", "Number of Employees"},
		[]string{"IE", "IE", "100", "20", "5", "4", "15", "12"},
		[]string{"", "ZZ", "31337", "1", "1", "1", "1", "1"},
		[]string{"FR", "FR", "200", "40", "10", "8", "30", "24"},
	)
	doc := renderFixed(wb)
	assert.Equal(t, 2, strings.Count(doc, `name="cbcr:Revenues"`))
	assert.NotContains(t, doc, "31337")
	assert.NotContains(t, doc, "ZZ")
}

func TestRender_EscapesSpreadsheetText(t *testing.T) {
	wb := conformantWorkbook()
	wb.Sheets[2] = textSheet("Subsidiaries and Activities",
		[]string{"Tax Jurisdiction", "Country Code", "Subsidiary Name", "Nature of Activities"},
		[]string{"IE", "IE", `Acme <Holdings> & Sons`, "R&D"},
	)
	doc := renderFixed(wb)
	assert.Contains(t, doc, "Acme &lt;Holdings&gt; &amp; Sons")
	assert.Contains(t, doc, "R&amp;D")
	assert.NotContains(t, doc, "<Holdings>")
	requireWellFormed(t, doc)
}

func TestRender_MissingSheetsDegradeToDefaults(t *testing.T) {
	doc := renderFixed(workbook())
	// Title and section 1 fall back to the canonical default.
	assert.Contains(t, doc, "<title>Country-by-Country Report - N/A</title>")
	assert.Contains(t, doc, `<ix:nonNumeric name="cbcr:NameOfUltimateParentOfGroupOfStandaloneCompany" contextRef="duration">N/A</ix:nonNumeric>`)
	// Reporting period and currency fall back.
	assert.Contains(t, doc, "<xbrli:startDate>2025-01-01</xbrli:startDate>")
	assert.Contains(t, doc, "<xbrli:measure>iso4217:EUR</xbrli:measure>")
	// Tables 2 and 3 render with empty bodies.
	assert.Zero(t, strings.Count(doc, "<ix:nonFraction"))
	// Section 4 default text.
	assert.Contains(t, doc, ">No information omitted</ix:nonNumeric>")
	requireWellFormed(t, doc)
}

func TestRender_FixedSections(t *testing.T) {
	doc := renderFixed(conformantWorkbook())
	assert.Contains(t, doc, "Section 5: Explanations for Material Discrepancies")
	assert.Contains(t, doc, ">No material discrepancies identified</ix:nonNumeric>")
	assert.Contains(t, doc, "Commission Implementing Regulation (EU) 2024/2952")
}

func TestRender_NAForMissingRowCells(t *testing.T) {
	wb := conformantWorkbook()
	wb.Sheets[2] = textSheet("Subsidiaries and Activities",
		[]string{"Tax Jurisdiction", "Country Code", "Subsidiary Name", "Nature of Activities"},
		[]string{"IE", "", "Acme Sub Ltd"},
	)
	doc := renderFixed(wb)
	assert.Contains(t, doc, `<ix:nonNumeric name="cbcr:CountryCodeOfMemberStateOrTaxJurisdiction" contextRef="duration">N/A</ix:nonNumeric>`)
	assert.Contains(t, doc, `name="cbcr:DescriptionOfNatureOfActivitiesOfSubsidiaryUndertakingsInMemberStateOrTaxJurisdictionExplanatory" contextRef="duration">N/A</ix:nonNumeric>`)
}
