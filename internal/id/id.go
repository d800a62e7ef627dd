// Package id mints the identifiers the report pipeline needs: the
// per-render XBRL entity identifier and the download filename.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

const entityPrefix = "entity_"

// NewEntityID returns a fresh entity identifier like "entity_3f9a01bc".
// The identifier is random and never persisted; each rendered document
// gets its own.
func NewEntityID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms
		return entityPrefix + "00000000"
	}
	return entityPrefix + hex.EncodeToString(b[:])
}

// IsEntityID reports whether s has the entity identifier shape.
func IsEntityID(s string) bool {
	rest, ok := strings.CutPrefix(s, entityPrefix)
	if !ok || len(rest) != 8 {
		return false
	}
	_, err := hex.DecodeString(rest)
	return err == nil
}

// ReportFilename returns the proposed download name for a document
// generated at t, like "country_by_country_report_20250131_094500.xhtml".
func ReportFilename(t time.Time) string {
	return "country_by_country_report_" + t.Format("20060102_150405") + ".xhtml"
}
