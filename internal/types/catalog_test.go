package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() *Catalog {
	return &Catalog{
		Root:  "/catalog",
		Index: &Document{Path: "README.md"},
		Documents: []*Document{
			{
				Path: "react/README.md",
				Categories: []Category{
					{Name: "State", Entries: []Entry{
						{Name: "Zustand", Snippets: []Snippet{{Language: "javascript"}}},
						{Name: "Redux Toolkit"},
					}},
				},
			},
			{
				Path: "php/README.md",
				Categories: []Category{
					{Name: "Frameworks", Entries: []Entry{
						{Name: "Laravel", Snippets: []Snippet{{Language: "php"}, {Language: "bash"}}},
					}},
				},
			},
		},
	}
}

func TestDocumentCounts(t *testing.T) {
	cat := testCatalog()
	assert.Equal(t, 2, cat.Documents[0].EntryCount())
	assert.Equal(t, 1, cat.Documents[0].SnippetCount())
	assert.Equal(t, 2, cat.Documents[1].SnippetCount())
}

func TestCatalogTotals(t *testing.T) {
	docs, categories, entries, snippets := testCatalog().Totals()
	assert.Equal(t, 2, docs)
	assert.Equal(t, 2, categories)
	assert.Equal(t, 3, entries)
	assert.Equal(t, 3, snippets)
}

func TestAllDocumentsIncludesIndexFirst(t *testing.T) {
	cat := testCatalog()
	all := cat.AllDocuments()
	assert.Len(t, all, 3)
	assert.Equal(t, "README.md", all[0].Path)

	cat.Index = nil
	assert.Len(t, cat.AllDocuments(), 2)
}

func TestEntryLabelLookup(t *testing.T) {
	e := Entry{Labels: []Label{{Name: "Use", Value: "state"}}}

	v, ok := e.Label("Use")
	assert.True(t, ok)
	assert.Equal(t, "state", v)

	_, ok = e.Label("Description")
	assert.False(t, ok)
}

func TestNormalizeLanguageTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JavaScript", "javascript"},
		{" js ", "js"},
		{"js {highlight: [1]}", "js"},
		{"python title=app.py", "python"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLanguageTag(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguageTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
