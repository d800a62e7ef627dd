// Package report implements the country-by-country reporting pipeline:
// workbook validation, section extraction, value normalization, and
// rendering of the final XHTML document with inline XBRL markup.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cbcr-dev/cbcrgen/internal/model"
)

// canonicalDateFormat is the date layout required by the taxonomy.
const canonicalDateFormat = "2006-01-02"

// dateFormats are tried in order against text cells; first match wins.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
}

// FormatDate normalizes a cell to YYYY-MM-DD. Native date cells format
// directly; text cells are tried against each supported layout in order.
// Unparseable input is returned verbatim, never an error.
func FormatDate(c model.Cell) string {
	if c.Time != nil {
		return c.Time.Format(canonicalDateFormat)
	}
	raw := c.String()
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(canonicalDateFormat)
		}
	}
	return raw
}

// CoerceInt converts a cell to an integer for a numeric fact. Missing
// cells and anything that fails the digits guard coerce to 0; fractional
// values truncate toward zero. Spreadsheet content is untrusted, so this
// never fails.
func CoerceInt(c model.Cell) int64 {
	if c.IsEmpty() {
		return 0
	}
	raw := c.String()
	if !looksNumeric(raw) {
		return 0
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

// looksNumeric reports whether s is all digits after removing at most one
// decimal point and at most one leading minus sign.
func looksNumeric(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

// EscapeText escapes s for use as XML element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes s for use inside a double-quoted XML attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
