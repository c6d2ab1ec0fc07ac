package lint

import (
	"fmt"

	"github.com/petrarca/catlint/internal/types"
)

func init() {
	Register(&entryLabelsRule{})
	Register(&entrySnippetRule{})
}

// entryLabelsRule flags entries missing the required bold labels.
type entryLabelsRule struct{}

func (r *entryLabelsRule) ID() string                      { return "entry-labels" }
func (r *entryLabelsRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *entryLabelsRule) Description() string {
	return "Entries must carry the required bold labels"
}

func (r *entryLabelsRule) Check(ctx *Context) []types.Finding {
	var findings []types.Finding
	for _, doc := range ctx.Catalog.Documents {
		for _, cat := range doc.Categories {
			for _, entry := range cat.Entries {
				for _, required := range ctx.Config.RequiredLabels {
					value, ok := entry.Label(required)
					switch {
					case !ok:
						findings = append(findings, types.Finding{
							Path:    doc.Path,
							Line:    entry.Line,
							Message: fmt.Sprintf("entry %q is missing label %q", entry.Name, required),
						})
					case value == "":
						findings = append(findings, types.Finding{
							Path:    doc.Path,
							Line:    entry.Line,
							Message: fmt.Sprintf("entry %q has an empty %q label", entry.Name, required),
						})
					}
				}
			}
		}
	}
	return findings
}

// entrySnippetRule flags entries without a usage snippet.
type entrySnippetRule struct{}

func (r *entrySnippetRule) ID() string                      { return "entry-snippet" }
func (r *entrySnippetRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *entrySnippetRule) Description() string {
	return "Entries should include at least one code snippet"
}

func (r *entrySnippetRule) Check(ctx *Context) []types.Finding {
	var findings []types.Finding
	for _, doc := range ctx.Catalog.Documents {
		for _, cat := range doc.Categories {
			for _, entry := range cat.Entries {
				if len(entry.Snippets) > 0 {
					continue
				}
				findings = append(findings, types.Finding{
					Path:    doc.Path,
					Line:    entry.Line,
					Message: fmt.Sprintf("entry %q has no code snippet", entry.Name),
				})
			}
		}
	}
	return findings
}
