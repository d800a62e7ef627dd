package report

import (
	"fmt"
	"strings"

	"github.com/cbcr-dev/cbcrgen/internal/id"
	"github.com/cbcr-dev/cbcrgen/internal/model"
)

// Namespace URIs declared on the document root. The first six are
// required by the taxonomy; iso4217 is declared so the prefixed currency
// measure resolves as a QName.
const (
	nsXHTML   = "http://www.w3.org/1999/xhtml"
	nsIX      = "http://www.xbrl.org/2013/inlineXBRL"
	nsIXT     = "http://www.xbrl.org/inlineXBRL/transformation/2020-02-12"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	nsXBRLI   = "http://www.xbrl.org/2003/instance"
	nsCBCR    = "http://xbrl.ifrs.org/taxonomy/2024-03-14/ifrs-cbcr"
	nsISO4217 = "http://www.xbrl.org/2003/iso4217"
)

// Fully-qualified taxonomy element names. These identify facts to XBRL
// processors and must be reproduced exactly.
const (
	elemUltimateParent = "cbcr:NameOfUltimateParentOfGroupOfStandaloneCompany"
	elemCountryOffice  = "cbcr:CountryOfRegisteredOfficeOfUltimateParentUndertaking"
	elemFYStart        = "cbcr:DateOfStartOfFinancialYear"
	elemFYEnd          = "cbcr:DateOfEndOfFinancialYear"
	elemCurrency       = "cbcr:ReportingCurrency"
	elemOECD           = "cbcr:ApplicationOfOptionToReportInAccordanceWithTaxationReportingInstructions"

	elemJurisdiction = "cbcr:TaxJurisdiction"
	elemCountryCode  = "cbcr:CountryCodeOfMemberStateOrTaxJurisdiction"
	elemRevenues     = "cbcr:Revenues"
	elemProfit       = "cbcr:ProfitLossBeforeTax"
	elemTaxPaid      = "cbcr:IncomeTaxPaidOnCashBasis"
	elemTaxAccrued   = "cbcr:IncomeTaxAccrued"
	elemEarnings     = "cbcr:AccumulatedEarnings"
	elemEmployees    = "cbcr:NumberOfEmployees"

	elemSubsidiaryNames = "cbcr:DisclosureOfNamesOfSubsidiaryUndertakingsConsolidatedInFinancialStatementsOfUltimateParentUndertakingExplanatory"
	elemSubsidiaryActs  = "cbcr:DescriptionOfNatureOfActivitiesOfSubsidiaryUndertakingsInMemberStateOrTaxJurisdictionExplanatory"
	elemOmittedInfo     = "cbcr:DisclosureOfTypeOfInformationOmittedExplanatory"
	elemDiscrepancies   = "cbcr:ExplanationOfAnyMaterialDiscrepanciesBetweenIncomeTaxPaidAndAccruedExplanatory"
)

const (
	contextRef     = "duration"
	unitCurrency   = "currency"
	unitPure       = "pure"
	entityScheme   = "http://www.company-registry.eu"
	textFallback   = "N/A"
	discrepancyMsg = "No material discrepancies identified"
	complianceMsg  = "This report was generated in compliance with Commission Implementing Regulation (EU) 2024/2952."
)

// Renderer assembles the final document. Renders are stateless per call;
// the only non-determinism is the entity identifier source, which tests
// replace with a fixed one.
type Renderer struct {
	entityID func() string
}

// NewRenderer returns a Renderer minting a fresh entity ID per render.
func NewRenderer() *Renderer {
	return &Renderer{entityID: id.NewEntityID}
}

// newFixedRenderer pins the entity identifier; used by tests that assert
// byte-identical output.
func newFixedRenderer(entityID string) *Renderer {
	return &Renderer{entityID: func() string { return entityID }}
}

// Render produces the complete XHTML document for a workbook that has
// already passed Validate. It never fails: a missing sheet renders as an
// empty table or the section default, never as an error.
func (r *Renderer) Render(wb *model.Workbook) string {
	sections := ClassifySheets(wb)
	info := ExtractGeneralInfo(sections.GeneralInfo)
	ctx := ReportingContextFrom(info)
	entityID := r.entityID()

	parent := info.UltimateParent
	if parent == "" {
		parent = textFallback
	}

	var b strings.Builder
	r.writeHead(&b, parent, entityID, ctx)
	b.WriteString("<body>\n")
	b.WriteString("    <h1>Country-by-Country Report</h1>\n")
	r.writeGeneralInfo(&b, info, ctx, parent)
	r.writeCountryOverview(&b, sections.CountryOverview)
	r.writeSubsidiaries(&b, sections.Subsidiaries)
	r.writeOmittedInfo(&b, sections.OmittedInfo)
	r.writeDiscrepancies(&b)
	fmt.Fprintf(&b, "    <hr/>\n    <p><em>%s</em></p>\n", complianceMsg)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (r *Renderer) writeHead(b *strings.Builder, parent, entityID string, ctx model.ReportingContext) {
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">` + "\n")
	fmt.Fprintf(b, "<html xmlns=%q\n", nsXHTML)
	fmt.Fprintf(b, "      xmlns:ix=%q\n", nsIX)
	fmt.Fprintf(b, "      xmlns:ixt=%q\n", nsIXT)
	fmt.Fprintf(b, "      xmlns:xsi=%q\n", nsXSI)
	fmt.Fprintf(b, "      xmlns:xbrli=%q\n", nsXBRLI)
	fmt.Fprintf(b, "      xmlns:iso4217=%q\n", nsISO4217)
	fmt.Fprintf(b, "      xmlns:cbcr=%q>\n", nsCBCR)
	b.WriteString("<head>\n")
	b.WriteString(`    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />` + "\n")
	fmt.Fprintf(b, "    <title>Country-by-Country Report - %s</title>\n", EscapeText(parent))
	b.WriteString("    <ix:header>\n")
	b.WriteString("        <ix:references>\n")
	fmt.Fprintf(b, "            <ix:relationship fromDocument=%q />\n", nsCBCR)
	b.WriteString("        </ix:references>\n")
	b.WriteString("        <ix:resources>\n")
	fmt.Fprintf(b, "            <xbrli:context id=%q>\n", contextRef)
	b.WriteString("                <xbrli:entity>\n")
	fmt.Fprintf(b, "                    <xbrli:identifier scheme=%q>%s</xbrli:identifier>\n", entityScheme, EscapeText(entityID))
	b.WriteString("                </xbrli:entity>\n")
	b.WriteString("                <xbrli:period>\n")
	fmt.Fprintf(b, "                    <xbrli:startDate>%s</xbrli:startDate>\n", EscapeText(ctx.StartDate))
	fmt.Fprintf(b, "                    <xbrli:endDate>%s</xbrli:endDate>\n", EscapeText(ctx.EndDate))
	b.WriteString("                </xbrli:period>\n")
	b.WriteString("            </xbrli:context>\n")
	fmt.Fprintf(b, "            <xbrli:unit id=%q>\n", unitCurrency)
	fmt.Fprintf(b, "                <xbrli:measure>iso4217:%s</xbrli:measure>\n", EscapeText(ctx.Currency))
	b.WriteString("            </xbrli:unit>\n")
	fmt.Fprintf(b, "            <xbrli:unit id=%q>\n", unitPure)
	b.WriteString("                <xbrli:measure>xbrli:pure</xbrli:measure>\n")
	b.WriteString("            </xbrli:unit>\n")
	b.WriteString("        </ix:resources>\n")
	b.WriteString("    </ix:header>\n")
	b.WriteString("</head>\n")
}

func (r *Renderer) writeGeneralInfo(b *strings.Builder, info model.GeneralInfo, ctx model.ReportingContext, parent string) {
	office := info.CountryOffice
	if office == "" {
		office = textFallback
	}
	oecd := "No"
	if info.OECDInstructions {
		oecd = "Yes"
	}

	b.WriteString("    <h2>Section 1: General Information</h2>\n")
	b.WriteString("    <table border=\"1\">\n")
	writeLabeledFact(b, "Name of Ultimate Parent Undertaking:", elemUltimateParent, parent)
	writeLabeledFact(b, "Country of Registered Office:", elemCountryOffice, office)
	writeLabeledFact(b, "Financial Year Start Date:", elemFYStart, ctx.StartDate)
	writeLabeledFact(b, "Financial Year End Date:", elemFYEnd, ctx.EndDate)
	writeLabeledFact(b, "Reporting Currency:", elemCurrency, ctx.Currency)
	writeLabeledFact(b, "OECD Instructions Used:", elemOECD, oecd)
	b.WriteString("    </table>\n")
}

func (r *Renderer) writeCountryOverview(b *strings.Builder, sheet *model.Sheet) {
	b.WriteString("    <h2>Section 2: Overview of Information on a Country-by-Country Basis</h2>\n")
	b.WriteString("    <table border=\"1\">\n")
	b.WriteString("        <thead>\n            <tr>\n")
	for _, h := range RequiredCountryFields {
		fmt.Fprintf(b, "                <th>%s</th>\n", EscapeText(h))
	}
	b.WriteString("            </tr>\n        </thead>\n        <tbody>\n")
	for row := range CountryRows(sheet) {
		b.WriteString("            <tr>\n")
		writeTextFact(b, elemJurisdiction, textOr(row.Jurisdiction))
		writeTextFact(b, elemCountryCode, textOr(row.CountryCode))
		writeNumericFact(b, elemRevenues, unitCurrency, CoerceInt(row.Revenues))
		writeNumericFact(b, elemProfit, unitCurrency, CoerceInt(row.ProfitBeforeTax))
		writeNumericFact(b, elemTaxPaid, unitCurrency, CoerceInt(row.TaxPaid))
		writeNumericFact(b, elemTaxAccrued, unitCurrency, CoerceInt(row.TaxAccrued))
		writeNumericFact(b, elemEarnings, unitCurrency, CoerceInt(row.AccumulatedEarnings))
		writeNumericFact(b, elemEmployees, unitPure, CoerceInt(row.EmployeeCount))
		b.WriteString("            </tr>\n")
	}
	b.WriteString("        </tbody>\n    </table>\n")
}

// subsidiaryHeaders are the fixed column labels of the section 3 table.
var subsidiaryHeaders = []string{
	"Tax Jurisdiction",
	"Country Code",
	"Subsidiary Name",
	"Nature of Activities",
}

func (r *Renderer) writeSubsidiaries(b *strings.Builder, sheet *model.Sheet) {
	b.WriteString("    <h2>Section 3: List of Subsidiaries and Activities</h2>\n")
	b.WriteString("    <table border=\"1\">\n")
	b.WriteString("        <thead>\n            <tr>\n")
	for _, h := range subsidiaryHeaders {
		fmt.Fprintf(b, "                <th>%s</th>\n", EscapeText(h))
	}
	b.WriteString("            </tr>\n        </thead>\n        <tbody>\n")
	for row := range SubsidiaryRows(sheet) {
		b.WriteString("            <tr>\n")
		writeTextFact(b, elemJurisdiction, textOr(row.Jurisdiction))
		writeTextFact(b, elemCountryCode, textOr(row.CountryCode))
		writeTextFact(b, elemSubsidiaryNames, textOr(row.Name))
		writeTextFact(b, elemSubsidiaryActs, textOr(row.Activities))
		b.WriteString("            </tr>\n")
	}
	b.WriteString("        </tbody>\n    </table>\n")
}

func (r *Renderer) writeOmittedInfo(b *strings.Builder, sheet *model.Sheet) {
	b.WriteString("    <h2>Section 4: Omitted Information</h2>\n")
	b.WriteString("    <div>\n")
	b.WriteString("        <p><strong>Information Omitted:</strong></p>\n")
	fmt.Fprintf(b, "        <ix:nonNumeric name=%q contextRef=%q>%s</ix:nonNumeric>\n",
		elemOmittedInfo, contextRef, EscapeText(OmittedText(sheet)))
	b.WriteString("    </div>\n")
}

func (r *Renderer) writeDiscrepancies(b *strings.Builder) {
	b.WriteString("    <h2>Section 5: Explanations for Material Discrepancies</h2>\n")
	b.WriteString("    <div>\n")
	fmt.Fprintf(b, "        <ix:nonNumeric name=%q contextRef=%q>%s</ix:nonNumeric>\n",
		elemDiscrepancies, contextRef, EscapeText(discrepancyMsg))
	b.WriteString("    </div>\n")
}

// writeLabeledFact emits one section 1 row: label cell plus a non-numeric
// fact cell.
func writeLabeledFact(b *strings.Builder, label, elem, value string) {
	b.WriteString("        <tr>\n")
	fmt.Fprintf(b, "            <td>%s</td>\n", EscapeText(label))
	fmt.Fprintf(b, "            <td><ix:nonNumeric name=%q contextRef=%q>%s</ix:nonNumeric></td>\n",
		elem, contextRef, EscapeText(value))
	b.WriteString("        </tr>\n")
}

// writeTextFact emits a table cell holding a non-numeric fact.
func writeTextFact(b *strings.Builder, elem, value string) {
	fmt.Fprintf(b, "                <td><ix:nonNumeric name=%q contextRef=%q>%s</ix:nonNumeric></td>\n",
		elem, contextRef, EscapeText(value))
}

// writeNumericFact emits a table cell holding a numeric fact with zero
// decimals and zero scale. CoerceInt guarantees the content is digits
// (with an optional leading minus), so no escaping is needed.
func writeNumericFact(b *strings.Builder, elem, unitRef string, v int64) {
	fmt.Fprintf(b, "                <td><ix:nonFraction name=%q contextRef=%q unitRef=%q decimals=\"0\" scale=\"0\">%d</ix:nonFraction></td>\n",
		elem, contextRef, unitRef, v)
}

// textOr returns the cell text or the canonical fallback for empty cells.
func textOr(c model.Cell) string {
	if c.IsEmpty() {
		return textFallback
	}
	return c.String()
}
