package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/petrarca/catlint/internal/catalog"
	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/progress"
	"github.com/petrarca/catlint/internal/provider"
	"github.com/petrarca/catlint/internal/types"
)

var docsFormat string
var docsOutput string

var docsCmd = &cobra.Command{
	Use:   "docs [path]",
	Short: "List the documents of a catalog",
	Long:  `List every ecosystem document in a catalog with its category, entry and snippet counts.`,
	Args:  cobra.MaximumNArgs(1),
	Run:   runDocs,
}

func init() {
	setupOutputFlags(docsCmd, &docsFormat, &docsOutput)
}

// DocumentInfo summarizes one catalog document
type DocumentInfo struct {
	Path       string `json:"path" yaml:"path"`
	Ecosystem  string `json:"ecosystem" yaml:"ecosystem"`
	Categories int    `json:"categories" yaml:"categories"`
	Entries    int    `json:"entries" yaml:"entries"`
	Snippets   int    `json:"snippets" yaml:"snippets"`
}

// DocsResult is the output for the docs command
type DocsResult struct {
	Documents []DocumentInfo `json:"documents" yaml:"documents"`
	Totals    DocumentInfo   `json:"totals" yaml:"totals"`
}

func (r *DocsResult) ToJSON() interface{} {
	return r
}

func (r *DocsResult) ToText(w io.Writer) {
	fmt.Fprintf(w, "%-32s %-24s %10s %8s %9s\n",
		"PATH", "ECOSYSTEM", "CATEGORIES", "ENTRIES", "SNIPPETS")
	for _, d := range r.Documents {
		fmt.Fprintf(w, "%-32s %-24s %10d %8d %9d\n",
			d.Path, d.Ecosystem, d.Categories, d.Entries, d.Snippets)
	}
	fmt.Fprintf(w, "\nTotal: %d documents, %d categories, %d entries, %d snippets\n",
		len(r.Documents), r.Totals.Categories, r.Totals.Entries, r.Totals.Snippets)
}

func runDocs(cmd *cobra.Command, args []string) {
	logger := settings.ConfigureLogger()
	absPath := resolveCatalogPath(args, logger)

	lintCfg, err := config.LoadLintConfig(absPath)
	if err != nil {
		logger.Error("Failed to load catalog config", "error", err)
		os.Exit(1)
	}

	prog := progress.New(settings.Verbose, progress.NewSimpleHandler(os.Stderr))
	loader := catalog.NewLoader(provider.NewFSProvider(absPath), lintCfg.Exclude, prog)
	cat, err := loader.Load()
	if err != nil {
		logger.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	OutputToFile(buildDocsResult(cat), docsFormat, docsOutput)
}

func buildDocsResult(cat *types.Catalog) *DocsResult {
	result := &DocsResult{}
	for _, doc := range cat.Documents {
		result.Documents = append(result.Documents, DocumentInfo{
			Path:       doc.Path,
			Ecosystem:  doc.Ecosystem,
			Categories: len(doc.Categories),
			Entries:    doc.EntryCount(),
			Snippets:   doc.SnippetCount(),
		})
	}

	_, categories, entries, snippets := cat.Totals()
	result.Totals = DocumentInfo{
		Categories: categories,
		Entries:    entries,
		Snippets:   snippets,
	}
	return result
}
