// Package toc generates the table of contents for the catalog index.
package toc

import (
	"fmt"
	"strings"
	"time"

	"github.com/petrarca/catlint/internal/git"
	"github.com/petrarca/catlint/internal/types"
)

// Markers delimit the generated block inside a README.
const (
	StartMarker = "<!-- toc -->"
	EndMarker   = "<!-- tocstop -->"
)

// Options controls TOC generation.
type Options struct {
	// Depth limits nesting: 1 lists documents, 2 adds categories,
	// 3 adds entries. Zero means 2.
	Depth int

	// Freshness appends each document's last commit date.
	Freshness bool

	// RepoPath is the catalog root, used for git lookups when
	// Freshness is set.
	RepoPath string
}

// Generate renders the catalog TOC as a nested Markdown list.
func Generate(cat *types.Catalog, opts Options) string {
	depth := opts.Depth
	if depth <= 0 {
		depth = 2
	}

	var b strings.Builder
	for _, doc := range cat.Documents {
		title := doc.Ecosystem
		if title == "" {
			title = doc.Path
		}

		fmt.Fprintf(&b, "- [%s](%s)%s\n", title, doc.Path, freshnessSuffix(doc, opts))

		if depth < 2 {
			continue
		}
		anchors := anchorsByLine(doc)
		for _, cat := range doc.Categories {
			writeItem(&b, 1, cat.Name, doc.Path, anchors[cat.Line])
			if depth < 3 {
				continue
			}
			for _, entry := range cat.Entries {
				writeItem(&b, 2, entry.Name, doc.Path, anchors[entry.Line])
			}
		}
	}
	return b.String()
}

// Insert replaces the block between the TOC markers with the generated
// content. Returns the updated source and whether markers were found.
func Insert(source []byte, toc string) ([]byte, bool) {
	text := string(source)

	start := strings.Index(text, StartMarker)
	if start < 0 {
		return source, false
	}
	end := strings.Index(text[start:], EndMarker)
	if end < 0 {
		return source, false
	}
	end += start

	var b strings.Builder
	b.WriteString(text[:start])
	b.WriteString(StartMarker)
	b.WriteString("\n\n")
	b.WriteString(toc)
	b.WriteString("\n")
	b.WriteString(text[end:])
	return []byte(b.String()), true
}

// writeItem writes one indented list item with an anchor link.
func writeItem(b *strings.Builder, indent int, text, docPath, anchor string) {
	b.WriteString(strings.Repeat("  ", indent))
	if anchor != "" {
		fmt.Fprintf(b, "- [%s](%s#%s)\n", text, docPath, anchor)
	} else {
		fmt.Fprintf(b, "- %s\n", text)
	}
}

// anchorsByLine maps heading lines to their parsed anchors, so TOC links
// agree with the anchors the parser computed (including duplicates).
func anchorsByLine(doc *types.Document) map[int]string {
	anchors := make(map[int]string, len(doc.Headings))
	for _, h := range doc.Headings {
		anchors[h.Line] = h.Anchor
	}
	return anchors
}

// freshnessSuffix renders the last-commit date annotation for a document.
func freshnessSuffix(doc *types.Document, opts Options) string {
	if !opts.Freshness || opts.RepoPath == "" {
		return ""
	}
	when := git.LastCommitTime(opts.RepoPath, doc.Path)
	if when.IsZero() {
		return ""
	}
	return fmt.Sprintf(" (updated %s)", when.Format(time.DateOnly))
}
