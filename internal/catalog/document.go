package catalog

import (
	"strings"

	"github.com/petrarca/catlint/internal/markdown"
	"github.com/petrarca/catlint/internal/types"
)

// useCasesLabel is the label whose value is the bullet list that follows it.
const useCasesLabel = "Common Use Cases"

// ParseDocument assembles one ecosystem document from its Markdown source,
// following the catalog convention: `#` ecosystem, `##` category,
// `###` entry, bold labels, fenced snippet.
func ParseDocument(path string, source []byte) *types.Document {
	file := markdown.Parse(path, source)

	doc := &types.Document{
		Path:     path,
		Headings: file.Headings,
		Links:    file.Links,
	}

	var (
		category     *types.Category
		entry        *types.Entry
		intro        []string
		wantUseCases bool
	)

	flushEntry := func() {
		if entry != nil && category != nil {
			category.Entries = append(category.Entries, *entry)
		}
		entry = nil
		wantUseCases = false
	}
	flushCategory := func() {
		flushEntry()
		if category != nil {
			doc.Categories = append(doc.Categories, *category)
		}
		category = nil
	}

	for _, block := range file.Blocks {
		switch block.Kind {
		case markdown.BlockHeading:
			switch {
			case block.Heading.Level == 1:
				if doc.Ecosystem == "" {
					doc.Ecosystem = block.Heading.Text
				}
			case block.Heading.Level == 2:
				flushCategory()
				category = &types.Category{Name: block.Heading.Text, Line: block.Heading.Line}
			case block.Heading.Level >= 3:
				flushEntry()
				if category != nil {
					entry = &types.Entry{Name: block.Heading.Text, Line: block.Heading.Line}
				}
			}

		case markdown.BlockLabel:
			if entry == nil {
				continue
			}
			entry.Labels = append(entry.Labels, block.Label)
			switch block.Label.Name {
			case "Use":
				entry.Use = block.Label.Value
			case "Description":
				entry.Description = block.Label.Value
			case useCasesLabel:
				wantUseCases = block.Label.Value == ""
				if !wantUseCases {
					entry.UseCases = splitInline(block.Label.Value)
				}
			}

		case markdown.BlockList:
			if entry != nil && wantUseCases {
				entry.UseCases = block.Items
				wantUseCases = false
			}

		case markdown.BlockCode:
			if entry != nil {
				entry.Snippets = append(entry.Snippets, types.Snippet{
					Language: block.Code.Language,
					Body:     block.Code.Body,
					Line:     block.Code.Line,
				})
			}

		case markdown.BlockProse:
			if category == nil && entry == nil {
				intro = append(intro, block.Text)
			}
		}
	}
	flushCategory()

	doc.Intro = strings.Join(intro, "\n")
	return doc
}

// splitInline splits a comma-separated use-case value written on the
// label line instead of as a bullet list.
func splitInline(value string) []string {
	parts := strings.Split(value, ",")
	cases := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cases = append(cases, p)
		}
	}
	return cases
}
