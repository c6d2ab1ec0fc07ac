package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/petrarca/catlint/internal/catalog"
	"github.com/petrarca/catlint/internal/config"
	"github.com/petrarca/catlint/internal/lint"
	"github.com/petrarca/catlint/internal/metadata"
	"github.com/petrarca/catlint/internal/progress"
	"github.com/petrarca/catlint/internal/provider"
	"github.com/petrarca/catlint/internal/rules"
	"github.com/petrarca/catlint/internal/spec"
	"github.com/petrarca/catlint/internal/types"
)

var (
	settings *config.Settings

	lintFormat   string
	lintRulesDir string
)

var lintCmd = &cobra.Command{
	Use:   "lint [path]",
	Short: "Check a catalog against its structural conventions",
	Long: `Lint loads the catalog (top-level README plus one README per ecosystem
directory) and checks every document against the structure rules.

Examples:
  catlint lint /path/to/catalog
  catlint lint --fail-on warning /path/to/catalog
  catlint lint --format json -o findings.json /path/to/catalog
  catlint lint --exclude drafts --exclude "**/archive" /path/to/catalog
  catlint lint --rules snippet-language,relative-link /path/to/catalog`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	// Initialize settings with defaults and environment variables
	settings = config.LoadSettings()

	// Store environment variable values for flag defaults
	outputFile := settings.OutputFile
	verbose := settings.Verbose
	debug := settings.Debug
	failOn := settings.FailOn
	logLevel := settings.LogLevel.String()
	logFormat := settings.LogFormat
	logFile := settings.LogFile

	// Set up flags with defaults from environment variables
	lintCmd.Flags().StringVarP(&settings.OutputFile, "output", "o", outputFile, "Output file path (default: stdout)")
	lintCmd.Flags().BoolVarP(&settings.Verbose, "verbose", "v", verbose, "Show loading and rule progress")
	lintCmd.Flags().BoolVarP(&settings.Debug, "debug", "d", debug, "Enable debug logging")
	lintCmd.Flags().StringVar(&settings.FailOn, "fail-on", failOn, "Lowest severity that makes lint exit non-zero: error, warning, info, never")

	// Exclude patterns - support multiple flags or comma-separated values
	lintCmd.Flags().StringSliceVar(&settings.ExcludePatterns, "exclude", settings.ExcludePatterns, "Directory patterns to exclude (supports glob patterns, can be specified multiple times)")

	// Rule filtering for debugging
	lintCmd.Flags().StringSliceVar(&settings.FilterRules, "rules", settings.FilterRules, "Only run these rules (comma-separated rule ids, e.g., snippet-language,relative-link)")

	// Manifest overrides
	lintCmd.Flags().StringVar(&lintRulesDir, "rules-dir", "", "Directory with rule manifest overrides (YAML)")

	lintCmd.Flags().StringVarP(&lintFormat, "format", "f", "text", "Output format: json, yaml, or text")

	// Logging flags - use defaults from environment variables
	lintCmd.Flags().String("log-level", logLevel, "Log level: debug, info, warn, error")
	lintCmd.Flags().String("log-format", logFormat, "Log format: text or json")
	lintCmd.Flags().String("log-file", logFile, "Log file path (default: stderr)")
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// configureLogging sets up logging based on command flags
func configureLogging(cmd *cobra.Command) *slog.Logger {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")

	if logLevel != "" {
		if level, err := parseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}
	if settings.Debug {
		settings.LogLevel = slog.LevelDebug
	}
	if logFormat != "" {
		settings.LogFormat = logFormat
	}
	if logFile != "" {
		settings.LogFile = logFile
	}

	return settings.ConfigureLogger()
}

// resolveCatalogPath resolves and validates the catalog path from args
func resolveCatalogPath(args []string, logger *slog.Logger) string {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	path = strings.TrimSpace(path)
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Error("Invalid path", "error", err)
		os.Exit(1)
	}

	fileInfo, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		logger.Error("Path does not exist", "path", absPath)
		os.Exit(1)
	}
	if !fileInfo.IsDir() {
		logger.Error("Catalog path must be a directory", "path", absPath)
		os.Exit(1)
	}
	return absPath
}

// configureExcludePatterns processes exclude patterns from command flags
func configureExcludePatterns(cmd *cobra.Command) {
	excludeList, _ := cmd.Flags().GetStringSlice("exclude")
	for i, pattern := range excludeList {
		excludeList[i] = strings.TrimSpace(pattern)
	}
	settings.ExcludePatterns = excludeList
}

func runLint(cmd *cobra.Command, args []string) {
	logger := configureLogging(cmd)
	absPath := resolveCatalogPath(args, logger)
	configureExcludePatterns(cmd)

	// Handle special case: -o - means stdout
	if settings.OutputFile == "-" {
		settings.OutputFile = ""
	}

	// Validate settings
	if err := settings.Validate(); err != nil {
		logger.Error("Invalid settings", "error", err)
		os.Exit(1)
	}

	report, findings := lintCatalog(absPath, logger)
	OutputToFile(report, lintFormat, settings.OutputFile)

	os.Exit(exitCode(findings, settings.FailOn))
}

// lintCatalog loads and lints a catalog, returning the report and raw findings
func lintCatalog(absPath string, logger *slog.Logger) (*LintReport, []types.Finding) {
	start := time.Now()

	lintCfg, err := config.LoadLintConfig(absPath)
	if err != nil {
		logger.Error("Failed to load catalog config", "error", err)
		os.Exit(1)
	}
	excludes := lintCfg.MergeExcludes(settings.ExcludePatterns)

	prog := progress.New(settings.Verbose, progress.NewSimpleHandler(os.Stderr))
	prov := provider.NewFSProvider(absPath)

	logger.Debug("Loading catalog", "path", absPath, "exclude_patterns", excludes)

	loader := catalog.NewLoader(prov, excludes, prog)
	cat, err := loader.Load()
	if err != nil {
		logger.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	manifests, err := loadManifests(lintRulesDir)
	if err != nil {
		logger.Error("Failed to load rule manifests", "error", err)
		os.Exit(1)
	}

	applyRuleFilter(lintCfg, settings.FilterRules)

	engine := lint.NewEngine(lintCfg, rules.DefaultSeverities(manifests), prog)
	logger.Debug("Running lint", "rules", engine.RuleCount())

	findings := engine.Run(&lint.Context{
		Catalog:  cat,
		Provider: prov,
		Config:   lintCfg,
	})

	meta := metadata.NewReportMetadata(absPath, spec.Version)
	meta.SetFormat("lint")
	meta.SetCounts(cat.Totals())
	meta.SetDuration(time.Since(start))
	meta.Enrich(absPath)

	return NewLintReport(meta, findings), findings
}

// loadManifests loads the embedded manifests plus any overrides from a
// directory, overrides win by rule id.
func loadManifests(overrideDir string) ([]rules.Manifest, error) {
	manifests, err := rules.LoadEmbeddedManifests()
	if err != nil {
		return nil, err
	}
	if overrideDir == "" {
		return manifests, nil
	}

	overrides, err := rules.LoadExternalManifests(overrideDir)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(manifests))
	for i, m := range manifests {
		byID[m.ID] = i
	}
	for _, o := range overrides {
		if i, ok := byID[o.ID]; ok {
			manifests[i] = o
		} else {
			manifests = append(manifests, o)
		}
	}
	return manifests, nil
}

// applyRuleFilter disables every rule not named in the filter list
func applyRuleFilter(cfg *config.LintConfig, filter []string) {
	if len(filter) == 0 {
		return
	}
	keep := make(map[string]bool, len(filter))
	for _, id := range filter {
		keep[strings.TrimSpace(id)] = true
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleSetting)
	}
	for _, r := range lint.Rules() {
		if !keep[r.ID()] {
			setting := cfg.Rules[r.ID()]
			setting.Disabled = true
			cfg.Rules[r.ID()] = setting
		}
	}
	fmt.Fprintf(os.Stderr, "Active rules: %s\n", strings.Join(filter, ", "))
}

// exitCode maps the worst finding severity onto the process exit code
func exitCode(findings []types.Finding, failOn string) int {
	if strings.ToLower(failOn) == "never" {
		return 0
	}
	threshold, err := types.ParseSeverity(failOn)
	if err != nil {
		threshold = types.SeverityError
	}
	if max, any := types.MaxSeverity(findings); any && max >= threshold {
		return 1
	}
	return 0
}
