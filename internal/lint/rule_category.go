package lint

import (
	"fmt"
	"strings"

	"github.com/petrarca/catlint/internal/types"
)

func init() {
	Register(&categoryMinEntriesRule{})
	Register(&duplicateEntryRule{})
}

// categoryMinEntriesRule flags categories that hold fewer entries than
// the configured minimum. Index sections are navigation, not categories,
// so only ecosystem documents are checked.
type categoryMinEntriesRule struct{}

func (r *categoryMinEntriesRule) ID() string                      { return "category-min-entries" }
func (r *categoryMinEntriesRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *categoryMinEntriesRule) Description() string {
	return "Categories must contain a minimum number of entries"
}

func (r *categoryMinEntriesRule) Check(ctx *Context) []types.Finding {
	min := ctx.Config.MinCategoryEntries
	if min <= 0 {
		return nil
	}

	var findings []types.Finding
	for _, doc := range ctx.Catalog.Documents {
		for _, cat := range doc.Categories {
			if len(cat.Entries) >= min {
				continue
			}
			findings = append(findings, types.Finding{
				Path: doc.Path,
				Line: cat.Line,
				Message: fmt.Sprintf("category %q has %d entries, expected at least %d",
					cat.Name, len(cat.Entries), min),
			})
		}
	}
	return findings
}

// duplicateEntryRule flags entry names that appear more than once in the
// same document, ignoring case.
type duplicateEntryRule struct{}

func (r *duplicateEntryRule) ID() string                      { return "duplicate-entry" }
func (r *duplicateEntryRule) DefaultSeverity() types.Severity { return types.SeverityError }
func (r *duplicateEntryRule) Description() string {
	return "Entry names must be unique within a document"
}

func (r *duplicateEntryRule) Check(ctx *Context) []types.Finding {
	var findings []types.Finding
	for _, doc := range ctx.Catalog.AllDocuments() {
		firstSeen := make(map[string]int)
		for _, cat := range doc.Categories {
			for _, entry := range cat.Entries {
				key := strings.ToLower(entry.Name)
				if line, dup := firstSeen[key]; dup {
					findings = append(findings, types.Finding{
						Path: doc.Path,
						Line: entry.Line,
						Message: fmt.Sprintf("entry %q already defined at line %d",
							entry.Name, line),
					})
					continue
				}
				firstSeen[key] = entry.Line
			}
		}
	}
	return findings
}
