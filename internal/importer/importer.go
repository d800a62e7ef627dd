// Package importer turns uploaded spreadsheet files into model.Workbook
// values for the report pipeline.
package importer

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cbcr-dev/cbcrgen/internal/model"
)

// Parser converts a spreadsheet stream into a Workbook.
type Parser interface {
	Parse(r io.Reader) (*model.Workbook, error)
	Extensions() []string
}

// Registry holds parsers keyed by file extension.
type Registry struct {
	byExt map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Parser)}
}

// Register adds a parser for each of its extensions. Panics on duplicate.
func (r *Registry) Register(p Parser) {
	for _, ext := range p.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.byExt[key]; ok {
			panic("duplicate parser extension: " + key)
		}
		r.byExt[key] = p
	}
}

// ForFilename returns the parser for the file's extension, or nil.
func (r *Registry) ForFilename(name string) Parser {
	return r.byExt[strings.ToLower(filepath.Ext(name))]
}

// Extensions returns the sorted-insertion set of registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ExcelParser{})
	return r
}
