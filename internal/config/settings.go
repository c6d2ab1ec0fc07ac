package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"log/slog"
)

// Settings holds all linter configuration
type Settings struct {
	// Output settings
	OutputFile  string
	PrettyPrint bool

	// Lint behavior
	ExcludePatterns []string
	Verbose         bool
	Debug           bool
	FailOn          string   // Lowest severity that makes lint exit non-zero
	FilterRules     []string // Only run these rules (for debugging)

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // Optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration
func DefaultSettings() *Settings {
	return &Settings{
		OutputFile:      "",
		PrettyPrint:     true,
		ExcludePatterns: []string{},
		Verbose:         false,
		Debug:           false,
		FailOn:          "error",
		FilterRules:     []string{},
		LogLevel:        slog.LevelError, // Only errors by default
		LogFormat:       "text",
		LogFile:         "", // Empty = stderr
	}
}

// LoadSettings creates settings from defaults and applies environment variable overrides
func LoadSettings() *Settings {
	settings := DefaultSettings()

	// Apply environment variable overrides
	if outputFile := os.Getenv("CATLINT_OUTPUT"); outputFile != "" {
		settings.OutputFile = outputFile
	}

	if excludePatterns := os.Getenv("CATLINT_EXCLUDE_DIRS"); excludePatterns != "" {
		settings.ExcludePatterns = strings.Split(excludePatterns, ",")
		for i, pattern := range settings.ExcludePatterns {
			settings.ExcludePatterns[i] = strings.TrimSpace(pattern)
		}
	}

	if failOn := os.Getenv("CATLINT_FAIL_ON"); failOn != "" {
		settings.FailOn = failOn
	}

	if pretty := os.Getenv("CATLINT_PRETTY"); pretty != "" {
		settings.PrettyPrint = strings.ToLower(pretty) == "true"
	}

	// Logging settings
	if logLevel := os.Getenv("CATLINT_LOG_LEVEL"); logLevel != "" {
		if level, err := parseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("CATLINT_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("CATLINT_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	if verbose := os.Getenv("CATLINT_VERBOSE"); verbose != "" {
		settings.Verbose = strings.ToLower(verbose) == "true"
	}

	if debug := os.Getenv("CATLINT_DEBUG"); debug != "" {
		settings.Debug = strings.ToLower(debug) == "true"
	}

	if filterRules := os.Getenv("CATLINT_FILTER_RULES"); filterRules != "" {
		settings.FilterRules = strings.Split(filterRules, ",")
		for i, rule := range settings.FilterRules {
			settings.FilterRules[i] = strings.TrimSpace(rule)
		}
	}

	return settings
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

// ConfigureLogger sets up the global logger based on settings
func (s *Settings) ConfigureLogger() *slog.Logger {
	var handler slog.Handler

	// Set output destination
	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stderr if file can't be opened
			fmt.Fprintf(os.Stderr, "Warning: Cannot open log file %s: %v\n", s.LogFile, err)
			output = os.Stderr
		} else {
			output = file
		}
	}

	// Set log format and level
	opts := &slog.HandlerOptions{
		Level: s.LogLevel,
	}

	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// Validate checks if settings are valid
func (s *Settings) Validate() error {
	if s.FailOn != "" {
		switch strings.ToLower(s.FailOn) {
		case "error", "warning", "warn", "info", "never":
		default:
			return fmt.Errorf("invalid fail-on value: %s (valid: error, warning, info, never)", s.FailOn)
		}
	}
	return nil
}
