// Package snippetstats provides code statistics over catalog snippets
// (lines of code, comments, blanks, complexity)
package snippetstats

import (
	"sort"
	"strings"
	"sync"

	"github.com/boyter/scc/v3/processor"
	"github.com/go-enry/go-enry/v2"
	"github.com/go-enry/go-enry/v2/data"

	"github.com/petrarca/catlint/internal/types"
)

var initOnce sync.Once

// Stats holds code statistics for a language, type or total
type Stats struct {
	Lines      int64 `json:"lines" yaml:"lines"`
	Code       int64 `json:"code" yaml:"code"`
	Comments   int64 `json:"comments" yaml:"comments"`
	Blanks     int64 `json:"blanks" yaml:"blanks"`
	Complexity int64 `json:"complexity" yaml:"complexity"`
	Snippets   int   `json:"snippets" yaml:"snippets"`
}

// LanguageStats holds stats for a specific language (includes language name for sorted output)
type LanguageStats struct {
	Language   string `json:"language" yaml:"language"`
	Lines      int64  `json:"lines" yaml:"lines"`
	Code       int64  `json:"code" yaml:"code"`
	Comments   int64  `json:"comments" yaml:"comments"`
	Blanks     int64  `json:"blanks" yaml:"blanks"`
	Complexity int64  `json:"complexity" yaml:"complexity"`
	Snippets   int    `json:"snippets" yaml:"snippets"`
}

// TypeStats holds stats aggregated by linguist language type
// (programming, data, markup, prose)
type TypeStats struct {
	Type     string `json:"type" yaml:"type"`
	Lines    int64  `json:"lines" yaml:"lines"`
	Code     int64  `json:"code" yaml:"code"`
	Snippets int    `json:"snippets" yaml:"snippets"`
}

// DocumentStats holds per-document snippet totals
type DocumentStats struct {
	Path     string `json:"path" yaml:"path"`
	Lines    int64  `json:"lines" yaml:"lines"`
	Code     int64  `json:"code" yaml:"code"`
	Snippets int    `json:"snippets" yaml:"snippets"`
}

// SnippetStats holds the aggregated statistics for a catalog
type SnippetStats struct {
	Total      Stats           `json:"total" yaml:"total"`
	ByLanguage []LanguageStats `json:"by_language" yaml:"by_language"` // Sorted by lines descending
	ByType     []TypeStats     `json:"by_type,omitempty" yaml:"by_type,omitempty"`
	ByDocument []DocumentStats `json:"by_document,omitempty" yaml:"by_document,omitempty"`
}

// Collector aggregates snippet statistics using boyter/scc
type Collector struct {
	mu         sync.Mutex
	total      Stats
	byLanguage map[string]*Stats
	byType     map[string]*Stats
	byDocument map[string]*Stats
	docOrder   []string
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{
		byLanguage: make(map[string]*Stats),
		byType:     make(map[string]*Stats),
		byDocument: make(map[string]*Stats),
	}
}

// ProcessDocument counts every snippet in the document
func (c *Collector) ProcessDocument(doc *types.Document) {
	for _, cat := range doc.Categories {
		for _, entry := range cat.Entries {
			for _, snippet := range entry.Snippets {
				c.ProcessSnippet(doc.Path, snippet.Language, snippet.Body)
			}
		}
	}
}

// ProcessSnippet counts one fenced snippet. The language is the fence
// tag; untagged snippets are counted under "text" with line totals only.
func (c *Collector) ProcessSnippet(docPath, language, body string) {
	if body == "" {
		return
	}

	lang := canonicalLanguage(language)

	// Initialize SCC language definitions once
	initOnce.Do(func() {
		processor.ProcessConstants()
	})

	// SCC parses by filename, so give the snippet a synthetic one with
	// the extension linguist records for its language
	filename := syntheticFilename(lang)
	sccLangs, _ := processor.DetectLanguage(filename)
	sccLang := ""
	if len(sccLangs) > 0 {
		sccLang = sccLangs[0]
	}

	content := []byte(body)
	filejob := &processor.FileJob{
		Filename: filename,
		Language: sccLang,
		Content:  content,
		Bytes:    int64(len(content)),
	}

	if sccLang != "" {
		processor.CountStats(filejob)
	} else {
		// SCC can't parse this language, fall back to raw line counts
		filejob.Lines = int64(countLines(body))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.addUnsafe(docPath, lang, filejob)
}

// addUnsafe aggregates one file job (caller must hold mutex)
func (c *Collector) addUnsafe(docPath, lang string, filejob *processor.FileJob) {
	add := func(s *Stats) {
		s.Lines += filejob.Lines
		s.Code += filejob.Code
		s.Comments += filejob.Comment
		s.Blanks += filejob.Blank
		s.Complexity += filejob.Complexity
		s.Snippets++
	}

	add(&c.total)

	if _, ok := c.byLanguage[lang]; !ok {
		c.byLanguage[lang] = &Stats{}
	}
	add(c.byLanguage[lang])

	typeName := types.LanguageTypeToString(enry.GetLanguageType(lang))
	if typeName != "unknown" {
		if _, ok := c.byType[typeName]; !ok {
			c.byType[typeName] = &Stats{}
		}
		add(c.byType[typeName])
	}

	if _, ok := c.byDocument[docPath]; !ok {
		c.byDocument[docPath] = &Stats{}
		c.docOrder = append(c.docOrder, docPath)
	}
	add(c.byDocument[docPath])
}

// Stats returns the aggregated statistics
func (c *Collector) Stats() *SnippetStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	byLanguage := make([]LanguageStats, 0, len(c.byLanguage))
	for lang, stats := range c.byLanguage {
		byLanguage = append(byLanguage, LanguageStats{
			Language: lang, Lines: stats.Lines, Code: stats.Code,
			Comments: stats.Comments, Blanks: stats.Blanks,
			Complexity: stats.Complexity, Snippets: stats.Snippets,
		})
	}
	sort.Slice(byLanguage, func(i, j int) bool {
		if byLanguage[i].Lines != byLanguage[j].Lines {
			return byLanguage[i].Lines > byLanguage[j].Lines
		}
		return byLanguage[i].Language < byLanguage[j].Language
	})

	byType := make([]TypeStats, 0, len(c.byType))
	for typeName, stats := range c.byType {
		byType = append(byType, TypeStats{
			Type: typeName, Lines: stats.Lines, Code: stats.Code, Snippets: stats.Snippets,
		})
	}
	sort.Slice(byType, func(i, j int) bool { return byType[i].Lines > byType[j].Lines })

	byDocument := make([]DocumentStats, 0, len(c.byDocument))
	for _, path := range c.docOrder {
		stats := c.byDocument[path]
		byDocument = append(byDocument, DocumentStats{
			Path: path, Lines: stats.Lines, Code: stats.Code, Snippets: stats.Snippets,
		})
	}

	return &SnippetStats{
		Total:      c.total,
		ByLanguage: byLanguage,
		ByType:     byType,
		ByDocument: byDocument,
	}
}

// Collect runs a collector over every document in the catalog
func Collect(cat *types.Catalog) *SnippetStats {
	c := NewCollector()
	for _, doc := range cat.AllDocuments() {
		c.ProcessDocument(doc)
	}
	return c.Stats()
}

// canonicalLanguage resolves a fence tag to its linguist language name
func canonicalLanguage(tag string) string {
	normalized := types.NormalizeLanguageTag(tag)
	if normalized == "" {
		return "text"
	}
	if lang, ok := enry.GetLanguageByAlias(normalized); ok {
		return lang
	}
	return normalized
}

// syntheticFilename builds a plausible filename for a snippet so SCC can
// pick comment and complexity rules for its language
func syntheticFilename(lang string) string {
	if exts, ok := data.ExtensionsByLanguage[lang]; ok && len(exts) > 0 {
		return "snippet" + exts[0]
	}
	return "snippet.txt"
}

// countLines counts newline-delimited lines the way SCC does for files
func countLines(body string) int {
	n := strings.Count(body, "\n")
	if !strings.HasSuffix(body, "\n") {
		n++
	}
	return n
}
