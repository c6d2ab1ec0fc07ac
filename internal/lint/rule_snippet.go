package lint

import (
	"fmt"

	"github.com/petrarca/catlint/internal/types"
)

func init() {
	Register(&snippetLanguageRule{})
}

// snippetLanguageRule flags fenced snippets without a language tag or
// with a tag the linguist database does not know.
type snippetLanguageRule struct{}

func (r *snippetLanguageRule) ID() string                      { return "snippet-language" }
func (r *snippetLanguageRule) DefaultSeverity() types.Severity { return types.SeverityError }
func (r *snippetLanguageRule) Description() string {
	return "Code fences must carry a recognized language tag"
}

func (r *snippetLanguageRule) Check(ctx *Context) []types.Finding {
	var findings []types.Finding
	for _, doc := range ctx.Catalog.AllDocuments() {
		for _, cat := range doc.Categories {
			for _, entry := range cat.Entries {
				for _, snippet := range entry.Snippets {
					if snippet.Language == "" {
						findings = append(findings, types.Finding{
							Path:    doc.Path,
							Line:    snippet.Line,
							Message: fmt.Sprintf("snippet in entry %q has no language tag", entry.Name),
						})
						continue
					}
					if _, ok := ctx.Languages.Recognize(snippet.Language); ok {
						continue
					}
					findings = append(findings, types.Finding{
						Path:       doc.Path,
						Line:       snippet.Line,
						Message:    fmt.Sprintf("unknown snippet language %q", snippet.Language),
						Suggestion: ctx.Languages.Suggest(snippet.Language),
					})
				}
			}
		}
	}
	return findings
}
