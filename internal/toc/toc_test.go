package toc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrarca/catlint/internal/catalog"
	"github.com/petrarca/catlint/internal/types"
)

const reactDoc = `# React

## State Management

### zustand

**Use**: Small global stores

## Data Fetching

### swr

**Use**: Cache-first remote data
`

func testCatalog(t *testing.T) *types.Catalog {
	t.Helper()
	doc := catalog.ParseDocument("react/README.md", []byte(reactDoc))
	require.Equal(t, "React", doc.Ecosystem)
	return &types.Catalog{Documents: []*types.Document{doc}}
}

func TestGenerate_DefaultDepth(t *testing.T) {
	out := Generate(testCatalog(t), Options{})

	assert.Contains(t, out, "- [React](react/README.md)\n")
	assert.Contains(t, out, "  - [State Management](react/README.md#state-management)\n")
	assert.Contains(t, out, "  - [Data Fetching](react/README.md#data-fetching)\n")
	assert.NotContains(t, out, "zustand", "entries should not appear at depth 2")
}

func TestGenerate_EntryDepth(t *testing.T) {
	out := Generate(testCatalog(t), Options{Depth: 3})

	assert.Contains(t, out, "    - [zustand](react/README.md#zustand)\n")
	assert.Contains(t, out, "    - [swr](react/README.md#swr)\n")
}

func TestGenerate_DocumentDepth(t *testing.T) {
	out := Generate(testCatalog(t), Options{Depth: 1})

	assert.Equal(t, "- [React](react/README.md)\n", out)
}

func TestGenerate_FallsBackToPathWithoutTitle(t *testing.T) {
	cat := &types.Catalog{Documents: []*types.Document{{Path: "misc/README.md"}}}

	out := Generate(cat, Options{})
	assert.Contains(t, out, "- [misc/README.md](misc/README.md)\n")
}

func TestInsert_ReplacesBetweenMarkers(t *testing.T) {
	source := []byte("# Catalog\n\n<!-- toc -->\nstale\n<!-- tocstop -->\n\ntrailing\n")

	updated, ok := Insert(source, "- [React](react/README.md)\n")
	require.True(t, ok)

	text := string(updated)
	assert.NotContains(t, text, "stale")
	assert.Contains(t, text, "<!-- toc -->\n\n- [React](react/README.md)\n\n<!-- tocstop -->")
	assert.True(t, strings.HasSuffix(text, "trailing\n"), "content after markers must survive")
}

func TestInsert_NoMarkers(t *testing.T) {
	source := []byte("# Catalog\n")

	updated, ok := Insert(source, "- item\n")
	assert.False(t, ok)
	assert.Equal(t, source, updated)
}

func TestInsert_Idempotent(t *testing.T) {
	source := []byte("<!-- toc -->\n<!-- tocstop -->\n")
	toc := "- [React](react/README.md)\n"

	once, ok := Insert(source, toc)
	require.True(t, ok)
	twice, ok := Insert(once, toc)
	require.True(t, ok)

	assert.Equal(t, string(once), string(twice))
}
