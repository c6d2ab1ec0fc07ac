package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrarca/catlint/internal/types"
)

const sampleDoc = `# React

Libraries for React.

## State Management

### Zustand

**Use**: Small global state.

**Common Use Cases**:

- Sharing UI state
- Replacing Redux

` + "```javascript\nconst x = 1\n```" + `

See [the index](../README.md#react) or [Zustand](#zustand).
`

func TestParseHeadings(t *testing.T) {
	f := Parse("react/README.md", []byte(sampleDoc))

	require.Len(t, f.Headings, 3)
	assert.Equal(t, types.Heading{Level: 1, Text: "React", Anchor: "react", Line: 1}, f.Headings[0])
	assert.Equal(t, 2, f.Headings[1].Level)
	assert.Equal(t, "State Management", f.Headings[1].Text)
	assert.Equal(t, "state-management", f.Headings[1].Anchor)
	assert.Equal(t, 5, f.Headings[1].Line)
	assert.Equal(t, 3, f.Headings[2].Level)
	assert.Equal(t, "zustand", f.Headings[2].Anchor)
}

func TestParseLabels(t *testing.T) {
	f := Parse("doc.md", []byte(sampleDoc))

	var labels []types.Label
	for _, b := range f.Blocks {
		if b.Kind == BlockLabel {
			labels = append(labels, b.Label)
		}
	}

	require.Len(t, labels, 2)
	assert.Equal(t, "Use", labels[0].Name)
	assert.Equal(t, "Small global state.", labels[0].Value)
	assert.Equal(t, "Common Use Cases", labels[1].Name)
	assert.Equal(t, "", labels[1].Value)
}

func TestParseLabelColonInsideBold(t *testing.T) {
	f := Parse("doc.md", []byte("**Description:** a linter\n"))

	require.Len(t, f.Blocks, 1)
	require.Equal(t, BlockLabel, f.Blocks[0].Kind)
	assert.Equal(t, "Description", f.Blocks[0].Label.Name)
	assert.Equal(t, "a linter", f.Blocks[0].Label.Value)
}

func TestParseFence(t *testing.T) {
	f := Parse("doc.md", []byte(sampleDoc))

	var code []CodeBlock
	for _, b := range f.Blocks {
		if b.Kind == BlockCode {
			code = append(code, b.Code)
		}
	}

	require.Len(t, code, 1)
	assert.Equal(t, "javascript", code[0].Language)
	assert.Equal(t, "const x = 1\n", code[0].Body)
	assert.Equal(t, 16, code[0].Line)
}

func TestParseFenceWithoutTag(t *testing.T) {
	f := Parse("doc.md", []byte("intro\n\n```\nplain\n```\n"))

	var code []CodeBlock
	for _, b := range f.Blocks {
		if b.Kind == BlockCode {
			code = append(code, b.Code)
		}
	}

	require.Len(t, code, 1)
	assert.Equal(t, "", code[0].Language)
	assert.Equal(t, 3, code[0].Line)
}

func TestParseLinks(t *testing.T) {
	f := Parse("doc.md", []byte(sampleDoc))

	require.Len(t, f.Links, 2)
	assert.Equal(t, "../README.md#react", f.Links[0].Destination)
	assert.Equal(t, "the index", f.Links[0].Text)
	assert.Equal(t, "#zustand", f.Links[1].Destination)
	assert.Equal(t, 20, f.Links[0].Line)
}

func TestParseList(t *testing.T) {
	f := Parse("doc.md", []byte(sampleDoc))

	var items []string
	for _, b := range f.Blocks {
		if b.Kind == BlockList {
			items = b.Items
		}
	}
	assert.Equal(t, []string{"Sharing UI state", "Replacing Redux"}, items)
}

func TestHeadingByAnchor(t *testing.T) {
	f := Parse("doc.md", []byte(sampleDoc))

	h, ok := f.HeadingByAnchor("state-management")
	require.True(t, ok)
	assert.Equal(t, "State Management", h.Text)

	_, ok = f.HeadingByAnchor("missing")
	assert.False(t, ok)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"State Management", "state-management"},
		{"Node.js", "nodejs"},
		{"C++ Libraries", "c-libraries"},
		{"already-slugged", "already-slugged"},
		{"Flask / Django", "flask--django"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.text); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDuplicateHeadingsGetSuffixedAnchors(t *testing.T) {
	src := "# Doc\n\n## Setup\n\n## Setup\n\n## Setup\n"
	f := Parse("doc.md", []byte(src))

	require.Len(t, f.Headings, 4)
	assert.Equal(t, "setup", f.Headings[1].Anchor)
	assert.Equal(t, "setup-1", f.Headings[2].Anchor)
	assert.Equal(t, "setup-2", f.Headings[3].Anchor)
}
