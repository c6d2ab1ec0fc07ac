package lint

import (
	"fmt"
	"path"
	"strings"

	"github.com/petrarca/catlint/internal/types"
)

func init() {
	Register(&relativeLinkRule{})
	Register(&indexCoverageRule{})
}

// relativeLinkRule flags relative links to missing files and fragments
// that resolve to no heading.
type relativeLinkRule struct{}

func (r *relativeLinkRule) ID() string                      { return "relative-link" }
func (r *relativeLinkRule) DefaultSeverity() types.Severity { return types.SeverityError }
func (r *relativeLinkRule) Description() string {
	return "Relative links must point at existing files and anchors"
}

func (r *relativeLinkRule) Check(ctx *Context) []types.Finding {
	byPath := make(map[string]*types.Document)
	for _, doc := range ctx.Catalog.AllDocuments() {
		byPath[doc.Path] = doc
	}

	var findings []types.Finding
	for _, doc := range ctx.Catalog.AllDocuments() {
		for _, link := range doc.Links {
			if isExternal(link.Destination) {
				continue
			}

			target, fragment := splitFragment(link.Destination)
			if target == "" {
				if fragment != "" && !hasAnchor(doc, fragment) {
					findings = append(findings, types.Finding{
						Path:    doc.Path,
						Line:    link.Line,
						Message: fmt.Sprintf("anchor %q does not match any heading", "#"+fragment),
					})
				}
				continue
			}

			resolved := resolveTarget(doc.Path, target)
			exists, err := ctx.Provider.Exists(resolved)
			if err != nil || !exists {
				findings = append(findings, types.Finding{
					Path:    doc.Path,
					Line:    link.Line,
					Message: fmt.Sprintf("link target %q does not exist", link.Destination),
				})
				continue
			}

			if fragment == "" {
				continue
			}
			targetDoc, known := byPath[resolved]
			if known && !hasAnchor(targetDoc, fragment) {
				findings = append(findings, types.Finding{
					Path: doc.Path,
					Line: link.Line,
					Message: fmt.Sprintf("anchor %q does not match any heading in %s",
						"#"+fragment, resolved),
				})
			}
		}
	}
	return findings
}

// indexCoverageRule flags ecosystem documents the top-level README never
// links to.
type indexCoverageRule struct{}

func (r *indexCoverageRule) ID() string                      { return "index-coverage" }
func (r *indexCoverageRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *indexCoverageRule) Description() string {
	return "Every ecosystem document must be linked from the index"
}

func (r *indexCoverageRule) Check(ctx *Context) []types.Finding {
	index := ctx.Catalog.Index
	if index == nil {
		return nil
	}

	linked := make(map[string]bool)
	for _, link := range index.Links {
		if isExternal(link.Destination) {
			continue
		}
		target, _ := splitFragment(link.Destination)
		if target == "" {
			continue
		}
		linked[resolveTarget(index.Path, target)] = true
	}

	var findings []types.Finding
	for _, doc := range ctx.Catalog.Documents {
		if linked[doc.Path] || linked[path.Dir(doc.Path)] {
			continue
		}
		findings = append(findings, types.Finding{
			Path:    index.Path,
			Line:    1,
			Message: fmt.Sprintf("document %s is not linked from the index", doc.Path),
		})
	}
	return findings
}

// isExternal reports whether a link leaves the catalog.
func isExternal(dest string) bool {
	return strings.Contains(dest, "://") ||
		strings.HasPrefix(dest, "mailto:") ||
		strings.HasPrefix(dest, "//")
}

// splitFragment separates the path and anchor parts of a destination.
func splitFragment(dest string) (target, fragment string) {
	target, fragment, _ = strings.Cut(dest, "#")
	return target, fragment
}

// resolveTarget resolves a link target against the linking document's
// directory, normalized to a catalog-relative path.
func resolveTarget(docPath, target string) string {
	resolved := path.Clean(path.Join(path.Dir(docPath), target))
	return strings.TrimSuffix(resolved, "/")
}

// hasAnchor reports whether the fragment matches a heading anchor,
// compared case-insensitively the way GitHub resolves them.
func hasAnchor(doc *types.Document, fragment string) bool {
	want := strings.ToLower(fragment)
	for _, h := range doc.Headings {
		if h.Anchor == want {
			return true
		}
	}
	return false
}
