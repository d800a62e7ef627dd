package report

import "github.com/cbcr-dev/cbcrgen/internal/model"

// Convert is the core entrypoint: it validates the workbook and, only
// when no problems are found, renders the report document. The returned
// problems are ordered, human-readable, and collected eagerly; a non-empty
// list means no document was produced. No partial output is ever returned.
func Convert(wb *model.Workbook) (doc string, problems []string) {
	if problems = Validate(wb); len(problems) > 0 {
		return "", problems
	}
	return NewRenderer().Render(wb), nil
}
