package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrarca/catlint/internal/provider"
)

const testIndex = `# Catalog

- [React](react/README.md)
- [Node.js](nodejs/README.md)
`

const testEcosystem = `# React

## State Management

### Zustand

**Use**: Small global state.

**Description**: Minimal stores.

` + "```javascript\nconst x = 1\n```" + `
`

func TestLoaderLoad(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("README.md", testIndex)
	p.AddFile("react/README.md", testEcosystem)
	p.AddFile("nodejs/README.md", "# Node.js\n\n## Frameworks\n\n### Express\n\n**Use**: HTTP services.\n\n**Description**: Minimal framework.\n\n```javascript\napp.listen(3000)\n```\n")

	cat, err := NewLoader(p, nil, nil).Load()
	require.NoError(t, err)

	require.NotNil(t, cat.Index)
	assert.Equal(t, "Catalog", cat.Index.Ecosystem)
	require.Len(t, cat.Documents, 2)
	assert.Equal(t, "nodejs/README.md", cat.Documents[0].Path)
	assert.Equal(t, "react/README.md", cat.Documents[1].Path)

	docs, categories, entries, snippets := cat.Totals()
	assert.Equal(t, 2, docs)
	assert.Equal(t, 2, categories)
	assert.Equal(t, 2, entries)
	assert.Equal(t, 2, snippets)
}

func TestLoaderRequiresIndex(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("react/README.md", testEcosystem)

	_, err := NewLoader(p, nil, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no top-level README.md")
}

func TestLoaderSkipsHiddenAndUnderscoreDirs(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("README.md", testIndex)
	p.AddFile("react/README.md", testEcosystem)
	p.AddFile(".github/README.md", "# CI\n")
	p.AddFile("_drafts/README.md", "# Drafts\n")

	cat, err := NewLoader(p, nil, nil).Load()
	require.NoError(t, err)
	require.Len(t, cat.Documents, 1)
	assert.Equal(t, "react/README.md", cat.Documents[0].Path)
}

func TestLoaderSkipsDirsWithoutReadme(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("README.md", testIndex)
	p.AddFile("react/README.md", testEcosystem)
	p.AddFile("assets/logo.svg", "<svg/>")

	cat, err := NewLoader(p, nil, nil).Load()
	require.NoError(t, err)
	require.Len(t, cat.Documents, 1)
}

func TestLoaderExcludePatterns(t *testing.T) {
	p := provider.NewFakeProvider()
	p.AddFile("README.md", testIndex)
	p.AddFile("react/README.md", testEcosystem)
	p.AddFile("archive/README.md", "# Archive\n")

	cat, err := NewLoader(p, []string{"archive"}, nil).Load()
	require.NoError(t, err)
	require.Len(t, cat.Documents, 1)
	assert.Equal(t, "react/README.md", cat.Documents[0].Path)
}
