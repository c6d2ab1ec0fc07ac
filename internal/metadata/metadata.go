package metadata

import (
	"path/filepath"
	"time"

	"github.com/petrarca/catlint/internal/git"
	"github.com/petrarca/catlint/internal/license"
)

// ReportMetadata contains information about the lint or stats run
type ReportMetadata struct {
	Format        string            `json:"format" yaml:"format"` // Report kind: "lint", "stats" or "toc"
	Timestamp     string            `json:"timestamp" yaml:"timestamp"`
	CatalogPath   string            `json:"catalog_path" yaml:"catalog_path"`
	CatalogID     string            `json:"catalog_id,omitempty" yaml:"catalog_id,omitempty"`
	SpecVersion   string            `json:"specVersion" yaml:"specVersion"` // Output format specification version
	DurationMs    int64             `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
	DocumentCount int               `json:"document_count,omitempty" yaml:"document_count,omitempty"`
	CategoryCount int               `json:"category_count,omitempty" yaml:"category_count,omitempty"`
	EntryCount    int               `json:"entry_count,omitempty" yaml:"entry_count,omitempty"`
	SnippetCount  int               `json:"snippet_count,omitempty" yaml:"snippet_count,omitempty"`
	Git           *git.GitInfo      `json:"git,omitempty" yaml:"git,omitempty"`
	Licenses      []license.License `json:"licenses,omitempty" yaml:"licenses,omitempty"`
}

// NewReportMetadata creates a new report metadata instance
func NewReportMetadata(catalogPath string, version string) *ReportMetadata {
	absPath, _ := filepath.Abs(catalogPath)

	return &ReportMetadata{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		CatalogPath: absPath,
		SpecVersion: version,
	}
}

// SetDuration sets the run duration in milliseconds
func (m *ReportMetadata) SetDuration(duration time.Duration) {
	m.DurationMs = duration.Milliseconds()
}

// SetCounts sets the catalog totals
func (m *ReportMetadata) SetCounts(documents, categories, entries, snippets int) {
	m.DocumentCount = documents
	m.CategoryCount = categories
	m.EntryCount = entries
	m.SnippetCount = snippets
}

// SetFormat sets the report kind
func (m *ReportMetadata) SetFormat(format string) {
	m.Format = format
}

// Enrich fills in git information, the catalog id and detected licenses
// for the catalog directory.
func (m *ReportMetadata) Enrich(catalogPath string) {
	m.Git = git.GetGitInfo(catalogPath)

	if id := git.GenerateCatalogIDFromGit(catalogPath); id != "" {
		m.CatalogID = id
	} else {
		m.CatalogID = git.GenerateCatalogIDFromPath(m.CatalogPath)
	}

	m.Licenses = license.NewLicenseDetector().DetectLicensesInDirectory(catalogPath)
}
