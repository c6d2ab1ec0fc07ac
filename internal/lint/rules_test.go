package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrarca/catlint/internal/catalog"
	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/provider"
	"github.com/petrarca/catlint/internal/types"
)

const cleanIndex = `# Catalog

- [React](react/README.md)
`

const cleanEcosystem = `# React

## State Management

### Zustand

**Use**: Small global state.

**Description**: Minimal stores.

` + "```javascript\nconst x = 1\n```" + `
`

// loadTestCatalog parses a catalog out of in-memory files.
func loadTestCatalog(t *testing.T, files map[string]string) (*types.Catalog, *provider.FakeProvider) {
	t.Helper()
	p := provider.NewFakeProvider()
	for path, content := range files {
		p.AddFile(path, content)
	}
	cat, err := catalog.NewLoader(p, nil, nil).Load()
	require.NoError(t, err)
	return cat, p
}

func newTestContext(cat *types.Catalog, p types.Provider) *Context {
	return &Context{
		Catalog:   cat,
		Provider:  p,
		Config:    config.DefaultLintConfig(),
		Languages: NewLanguageIndex(nil),
	}
}

func TestCleanCatalogHasNoFindings(t *testing.T) {
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": cleanEcosystem,
	})

	engine := NewEngine(config.DefaultLintConfig(), nil, nil)
	findings := engine.Run(newTestContext(cat, p))
	assert.Empty(t, findings)
}

func TestCategoryMinEntries(t *testing.T) {
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": "# React\n\n## Empty Category\n",
	})

	ctx := newTestContext(cat, p)
	ctx.Config.MinCategoryEntries = 2

	findings := (&categoryMinEntriesRule{}).Check(ctx)
	require.Len(t, findings, 1)
	assert.Equal(t, "react/README.md", findings[0].Path)
	assert.Contains(t, findings[0].Message, `category "Empty Category" has 0 entries`)
}

func TestCategoryMinEntriesDisabledByZero(t *testing.T) {
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": "# React\n\n## Empty Category\n",
	})

	ctx := newTestContext(cat, p)
	ctx.Config.MinCategoryEntries = 0

	assert.Empty(t, (&categoryMinEntriesRule{}).Check(ctx))
}

func TestDuplicateEntry(t *testing.T) {
	doc := "# React\n\n## State\n\n### Zustand\n\n### Other\n\n## Fetching\n\n### zustand\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&duplicateEntryRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `entry "zustand" already defined at line 5`)
}

func TestEntryLabels(t *testing.T) {
	doc := "# React\n\n## State\n\n### Zustand\n\n**Use**: \n\n```javascript\nx\n```\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&entryLabelsRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0].Message, `has an empty "Use" label`)
	assert.Contains(t, findings[1].Message, `is missing label "Description"`)
}

func TestEntrySnippet(t *testing.T) {
	doc := "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&entrySnippetRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `entry "Zustand" has no code snippet`)
}

func TestSnippetLanguageUnknownTag(t *testing.T) {
	doc := "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n\n```javascrpt\nx\n```\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&snippetLanguageRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `unknown snippet language "javascrpt"`)
	assert.Equal(t, "javascript", findings[0].Suggestion)
}

func TestSnippetLanguageMissingTag(t *testing.T) {
	doc := "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n\n```\nx\n```\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&snippetLanguageRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "has no language tag")
}

func TestSnippetLanguageExtraLanguages(t *testing.T) {
	doc := "# React\n\n## State\n\n### Zustand\n\n**Use**: state\n\n**Description**: stores\n\n```pseudocode\nx\n```\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	ctx := newTestContext(cat, p)
	ctx.Languages = NewLanguageIndex([]string{"pseudocode"})

	assert.Empty(t, (&snippetLanguageRule{}).Check(ctx))
}

func TestRelativeLinkMissingFile(t *testing.T) {
	index := "# Catalog\n\n- [React](react/README.md)\n- [Gone](missing/README.md)\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       index,
		"react/README.md": cleanEcosystem,
	})

	findings := (&relativeLinkRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Equal(t, "README.md", findings[0].Path)
	assert.Contains(t, findings[0].Message, `link target "missing/README.md" does not exist`)
}

func TestRelativeLinkAnchors(t *testing.T) {
	doc := cleanEcosystem + "\nSee [state](#state-management) and [nope](#does-not-exist).\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&relativeLinkRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `anchor "#does-not-exist" does not match any heading`)
}

func TestRelativeLinkCrossDocumentAnchor(t *testing.T) {
	index := "# Catalog\n\n- [React state](react/README.md#state-management)\n- [Bad](react/README.md#no-such-section)\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       index,
		"react/README.md": cleanEcosystem,
	})

	findings := (&relativeLinkRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `anchor "#no-such-section" does not match any heading in react/README.md`)
}

func TestRelativeLinkIgnoresExternal(t *testing.T) {
	doc := cleanEcosystem + "\nVisit [site](https://example.com) or [mail](mailto:a@b.c).\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	assert.Empty(t, (&relativeLinkRule{}).Check(newTestContext(cat, p)))
}

func TestIndexCoverage(t *testing.T) {
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":        cleanIndex,
		"react/README.md":  cleanEcosystem,
		"nodejs/README.md": "# Node.js\n\n## Frameworks\n\n### Express\n\n**Use**: HTTP.\n\n**Description**: Minimal.\n\n```javascript\nx\n```\n",
	})

	findings := (&indexCoverageRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Equal(t, "README.md", findings[0].Path)
	assert.Contains(t, findings[0].Message, "nodejs/README.md is not linked from the index")
}

func TestIndexCoverageAcceptsDirectoryLinks(t *testing.T) {
	index := "# Catalog\n\n- [React](react/)\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       index,
		"react/README.md": cleanEcosystem,
	})

	assert.Empty(t, (&indexCoverageRule{}).Check(newTestContext(cat, p)))
}

func TestHeadingHierarchy(t *testing.T) {
	doc := "# React\n\n#### Deep\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&headingHierarchyRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `heading "Deep" skips from level 1 to 4`)
}

func TestHeadingHierarchyDuplicateTitle(t *testing.T) {
	doc := "# React\n\n# React Again\n\n## State\n"
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": doc,
	})

	findings := (&headingHierarchyRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `duplicate top-level heading "React Again"`)
}

func TestHeadingHierarchyNoHeadings(t *testing.T) {
	cat, p := loadTestCatalog(t, map[string]string{
		"README.md":       cleanIndex,
		"react/README.md": "just prose\n",
	})

	findings := (&headingHierarchyRule{}).Check(newTestContext(cat, p))
	require.Len(t, findings, 1)
	assert.Equal(t, "document has no headings", findings[0].Message)
}
