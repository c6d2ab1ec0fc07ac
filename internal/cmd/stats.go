package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/petrarca/catlint/internal/catalog"
	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/metadata"
	"github.com/petrarca/catlint/internal/progress"
	"github.com/petrarca/catlint/internal/provider"
	"github.com/petrarca/catlint/internal/snippetstats"
	"github.com/petrarca/catlint/internal/spec"
)

var (
	statsFormat string
	statsOutput string
)

var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Report code statistics over catalog snippets",
	Long: `Stats counts lines, code, comments and complexity across every fenced
snippet in the catalog, grouped by language, language type and document.

Examples:
  catlint stats /path/to/catalog
  catlint stats --format json -o snippet-stats.json /path/to/catalog`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	setupOutputFlags(statsCmd, &statsFormat, &statsOutput)
}

// StatsReport wraps snippet statistics for output
type StatsReport struct {
	Metadata *metadata.ReportMetadata   `json:"metadata" yaml:"metadata"`
	Stats    *snippetstats.SnippetStats `json:"stats" yaml:"stats"`
}

func (r *StatsReport) ToJSON() interface{} {
	return r
}

func (r *StatsReport) ToText(w io.Writer) {
	fmt.Fprintf(w, "%-24s %8s %8s %10s %8s %10s\n",
		"LANGUAGE", "SNIPPETS", "LINES", "CODE", "COMMENTS", "COMPLEXITY")
	for _, ls := range r.Stats.ByLanguage {
		fmt.Fprintf(w, "%-24s %8d %8d %10d %8d %10d\n",
			ls.Language, ls.Snippets, ls.Lines, ls.Code, ls.Comments, ls.Complexity)
	}

	t := r.Stats.Total
	fmt.Fprintf(w, "\nTotal: %d snippets, %d lines (%d code, %d comments, %d blanks)\n",
		t.Snippets, t.Lines, t.Code, t.Comments, t.Blanks)

	if len(r.Stats.ByDocument) > 0 {
		fmt.Fprintln(w)
		for _, ds := range r.Stats.ByDocument {
			fmt.Fprintf(w, "%-32s %4d snippets %6d lines\n", ds.Path, ds.Snippets, ds.Lines)
		}
	}
}

func runStats(cmd *cobra.Command, args []string) {
	logger := settings.ConfigureLogger()
	absPath := resolveCatalogPath(args, logger)

	start := time.Now()

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

	stats := snippetstats.Collect(cat)

	meta := metadata.NewReportMetadata(absPath, spec.Version)
	meta.SetFormat("stats")
	meta.SetCounts(cat.Totals())
	meta.SetDuration(time.Since(start))

	OutputToFile(&StatsReport{Metadata: meta, Stats: stats}, statsFormat, statsOutput)
}
