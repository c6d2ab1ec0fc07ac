package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/petrarca/catlint/internal/catalog"
	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/progress"
	"github.com/petrarca/catlint/internal/provider"
	"github.com/petrarca/catlint/internal/toc"
)

var (
	tocDepth     int
	tocWrite     bool
	tocFreshness bool
)

var tocCmd = &cobra.Command{
	Use:   "toc [path]",
	Short: "Generate the catalog table of contents",
	Long: `Toc renders the catalog as a nested Markdown list linking every
ecosystem document and category.

With --write the generated list replaces the block between the
<!-- toc --> and <!-- tocstop --> markers in the top-level README.

Examples:
  catlint toc /path/to/catalog
  catlint toc --depth 3 /path/to/catalog
  catlint toc --write --freshness /path/to/catalog`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTOC,
}

func init() {
	rootCmd.AddCommand(tocCmd)

	tocCmd.Flags().IntVar(&tocDepth, "depth", 2, "Nesting depth: 1 documents, 2 categories, 3 entries")
	tocCmd.Flags().BoolVarP(&tocWrite, "write", "w", false, "Rewrite the TOC block in the top-level README")
	tocCmd.Flags().BoolVar(&tocFreshness, "freshness", false, "Annotate documents with their last commit date")
}

func runTOC(cmd *cobra.Command, args []string) {
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

	content := toc.Generate(cat, toc.Options{
		Depth:     tocDepth,
		Freshness: tocFreshness,
		RepoPath:  absPath,
	})

	if !tocWrite {
		fmt.Print(content)
		return
	}

	indexPath := filepath.Join(absPath, catalog.IndexFile)
	source, err := os.ReadFile(indexPath)
	if err != nil {
		logger.Error("Failed to read index", "path", indexPath, "error", err)
		os.Exit(1)
	}

	updated, ok := toc.Insert(source, content)
	if !ok {
		logger.Error("Index has no TOC markers",
			"path", indexPath, "start", toc.StartMarker, "end", toc.EndMarker)
		os.Exit(1)
	}

	prog.FileWriting(indexPath)
	if err := os.WriteFile(indexPath, updated, 0644); err != nil {
		logger.Error("Failed to write index", "path", indexPath, "error", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "TOC written to %s\n", indexPath)
}
