package lint

import (
	"fmt"

	"github.com/petrarca/catlint/internal/types"
)

func init() {
	Register(&headingHierarchyRule{})
}

// headingHierarchyRule flags documents whose heading structure breaks
// the catalog convention: exactly one top-level heading, first, with no
// skipped levels below it.
type headingHierarchyRule struct{}

func (r *headingHierarchyRule) ID() string                      { return "heading-hierarchy" }
func (r *headingHierarchyRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *headingHierarchyRule) Description() string {
	return "Headings must start at level one and never skip a level"
}

func (r *headingHierarchyRule) Check(ctx *Context) []types.Finding {
	var findings []types.Finding
	for _, doc := range ctx.Catalog.AllDocuments() {
		if len(doc.Headings) == 0 {
			findings = append(findings, types.Finding{
				Path:    doc.Path,
				Line:    1,
				Message: "document has no headings",
			})
			continue
		}

		previous := 0
		sawTitle := false
		for _, h := range doc.Headings {
			switch {
			case h.Level == 1 && !sawTitle:
				sawTitle = true
			case h.Level == 1:
				findings = append(findings, types.Finding{
					Path:    doc.Path,
					Line:    h.Line,
					Message: fmt.Sprintf("duplicate top-level heading %q", h.Text),
				})
			case !sawTitle:
				findings = append(findings, types.Finding{
					Path:    doc.Path,
					Line:    h.Line,
					Message: fmt.Sprintf("heading %q appears before the document title", h.Text),
				})
			case h.Level > previous+1:
				findings = append(findings, types.Finding{
					Path: doc.Path,
					Line: h.Line,
					Message: fmt.Sprintf("heading %q skips from level %d to %d",
						h.Text, previous, h.Level),
				})
			}
			previous = h.Level
		}
	}
	return findings
}
