package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPatternsFromGitignore(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name: "basic patterns",
			content: `# Comment
.venv/
node_modules
dist/
build/
*.log
`,
			expected: []string{".venv", "node_modules", "dist", "build", "*.log"},
		},
		{
			name: "with empty lines and comments",
			content: `# Python
__pycache__/
*.pyc

# Node.js
node_modules

# Build outputs
dist/
build/
`,
			expected: []string{"__pycache__", "*.pyc", "node_modules", "dist", "build"},
		},
		{
			name: "with negation patterns (should be skipped)",
			content: `# Ignore everything
*
# But not this file
!.gitignore
# And not this config
!config.json
`,
			expected: []string{"*"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, ".gitignore")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			patterns, err := loadPatternsFromGitignore(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, patterns)
		})
	}
}

func TestIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	content := "drafts/\n*.tmp\ndrafts/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0644))

	patterns := IgnorePatterns(dir)

	// Duplicates collapse, order preserved
	assert.Equal(t, []string{"drafts", "*.tmp"}, patterns)
}

func TestIgnorePatterns_NoGitignore(t *testing.T) {
	patterns := IgnorePatterns(t.TempDir())
	assert.Empty(t, patterns)
}

func TestMatchesIgnore(t *testing.T) {
	patterns := []string{"drafts", "*.tmp", "**/archive"}

	assert.True(t, MatchesIgnore(patterns, "drafts"))
	assert.True(t, MatchesIgnore(patterns, "react/notes.tmp"), "base name should match *.tmp")
	assert.True(t, MatchesIgnore(patterns, "react/archive"))
	assert.False(t, MatchesIgnore(patterns, "react/README.md"))
	assert.False(t, MatchesIgnore(nil, "react/README.md"))
}

func TestDeduplicatePatterns(t *testing.T) {
	result := deduplicatePatterns([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, result)

	assert.Equal(t, []string{}, deduplicatePatterns(nil))
}
