// Package catalog discovers and parses the catalog's Markdown documents.
package catalog

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/petrarca/catlint/internal/progress"
	"github.com/petrarca/catlint/internal/types"
)

// IndexFile is the name every catalog document must have.
const IndexFile = "README.md"

// Loader discovers ecosystem documents under a catalog root.
type Loader struct {
	provider types.Provider
	exclude  []string
	progress *progress.Progress
}

// NewLoader creates a loader over the given provider.
func NewLoader(p types.Provider, excludePatterns []string, prog *progress.Progress) *Loader {
	if prog == nil {
		prog = progress.New(false, progress.NewNullHandler())
	}
	return &Loader{provider: p, exclude: excludePatterns, progress: prog}
}

// Load parses the top-level README and every ecosystem subdirectory
// README into a Catalog.
func (l *Loader) Load() (*types.Catalog, error) {
	start := time.Now()
	root := l.provider.GetBasePath()
	l.progress.LoadStart(root, l.exclude)

	cat := &types.Catalog{Root: root}

	index, err := l.parseDocument(IndexFile)
	if err != nil {
		return nil, fmt.Errorf("catalog has no top-level %s: %w", IndexFile, err)
	}
	cat.Index = index

	entries, err := l.provider.ListDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog root: %w", err)
	}

	for _, e := range entries {
		if e.Type != "dir" {
			continue
		}
		if strings.HasPrefix(e.Name, ".") || strings.HasPrefix(e.Name, "_") {
			l.progress.Skipped(e.Path, "hidden directory")
			continue
		}
		if reason, excluded := l.isExcluded(e.Path); excluded {
			l.progress.Skipped(e.Path, reason)
			continue
		}

		docPath := path.Join(e.Path, IndexFile)
		exists, err := l.provider.Exists(docPath)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", docPath, err)
		}
		if !exists {
			l.progress.Skipped(e.Path, "no "+IndexFile)
			continue
		}

		l.progress.DocumentFound(docPath)
		doc, err := l.parseDocument(docPath)
		if err != nil {
			return nil, err
		}
		cat.Documents = append(cat.Documents, doc)
	}

	docs, _, docEntries, _ := cat.Totals()
	l.progress.LoadComplete(docs, docEntries, time.Since(start))
	return cat, nil
}

// parseDocument reads and assembles one document.
func (l *Loader) parseDocument(docPath string) (*types.Document, error) {
	source, err := l.provider.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", docPath, err)
	}

	doc := ParseDocument(docPath, source)
	doc.Source = source
	l.progress.DocumentParsed(docPath, len(doc.Categories), doc.EntryCount())
	return doc, nil
}

// isExcluded matches a catalog-relative path against the exclude globs.
func (l *Loader) isExcluded(relPath string) (string, bool) {
	for _, pattern := range l.exclude {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return fmt.Sprintf("matches %q", pattern), true
		}
	}
	return "", false
}
