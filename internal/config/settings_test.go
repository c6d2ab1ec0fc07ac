package config

import (
	"os"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, "", settings.OutputFile, "OutputFile should be empty (stdout) by default")
	assert.True(t, settings.PrettyPrint, "PrettyPrint should be true by default")
	assert.Empty(t, settings.ExcludePatterns, "ExcludePatterns should be empty by default")
	assert.Equal(t, "error", settings.FailOn, "FailOn should be error by default")
	assert.Equal(t, slog.LevelError, settings.LogLevel, "LogLevel should be Error by default")
	assert.Equal(t, "text", settings.LogFormat, "LogFormat should be text by default")
}

func TestLoadSettings_WithDefaults(t *testing.T) {
	// Clear any existing environment variables
	clearEnvVars()

	settings := LoadSettings()

	// Should match default settings
	defaultSettings := DefaultSettings()
	assert.Equal(t, defaultSettings.OutputFile, settings.OutputFile)
	assert.Equal(t, defaultSettings.PrettyPrint, settings.PrettyPrint)
	assert.Equal(t, defaultSettings.ExcludePatterns, settings.ExcludePatterns)
	assert.Equal(t, defaultSettings.FailOn, settings.FailOn)
	assert.Equal(t, defaultSettings.LogLevel, settings.LogLevel)
	assert.Equal(t, defaultSettings.LogFormat, settings.LogFormat)
}

func TestLoadSettings_WithEnvironmentVariables(t *testing.T) {
	// Clear any existing environment variables
	clearEnvVars()

	// Set environment variables
	os.Setenv("CATLINT_OUTPUT", "/tmp/findings.json")
	os.Setenv("CATLINT_PRETTY", "false")
	os.Setenv("CATLINT_EXCLUDE_DIRS", "drafts, archive ,tmp")
	os.Setenv("CATLINT_FAIL_ON", "warning")
	os.Setenv("CATLINT_LOG_LEVEL", "debug")
	os.Setenv("CATLINT_LOG_FORMAT", "json")

	defer clearEnvVars()

	settings := LoadSettings()

	assert.Equal(t, "/tmp/findings.json", settings.OutputFile)
	assert.False(t, settings.PrettyPrint)
	assert.Equal(t, []string{"drafts", "archive", "tmp"}, settings.ExcludePatterns)
	assert.Equal(t, "warning", settings.FailOn)
	assert.Equal(t, slog.LevelDebug, settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
}

func TestLoadSettings_InvalidLogLevel(t *testing.T) {
	clearEnvVars()

	os.Setenv("CATLINT_LOG_LEVEL", "loud")
	defer clearEnvVars()

	settings := LoadSettings()

	// Invalid levels keep the default
	assert.Equal(t, slog.LevelError, settings.LogLevel)
}

func TestSettings_Validate(t *testing.T) {
	settings := DefaultSettings()
	assert.NoError(t, settings.Validate())

	settings.FailOn = "never"
	assert.NoError(t, settings.Validate())

	settings.FailOn = "always"
	assert.Error(t, settings.Validate())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"DEBUG", slog.LevelDebug, false},
		{"bogus", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		level, err := parseLogLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q should fail", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q should parse", tt.input)
		assert.Equal(t, tt.expected, level, "input %q", tt.input)
	}
}

// Test that LoadSettings doesn't modify the default settings
func TestLoadSettings_DoesNotModifyDefaults(t *testing.T) {
	// Get default settings first
	defaultSettings := DefaultSettings()

	// Set environment variables
	os.Setenv("CATLINT_PRETTY", "false")
	defer clearEnvVars()

	// Load settings with environment overrides
	settings := LoadSettings()

	// Default settings should remain unchanged
	assert.True(t, defaultSettings.PrettyPrint, "Default settings should not be modified")

	// Loaded settings should have the override
	assert.False(t, settings.PrettyPrint, "Loaded settings should have environment override")
}

func clearEnvVars() {
	envVars := []string{
		"CATLINT_OUTPUT",
		"CATLINT_PRETTY",
		"CATLINT_EXCLUDE_DIRS",
		"CATLINT_FAIL_ON",
		"CATLINT_LOG_LEVEL",
		"CATLINT_LOG_FORMAT",
		"CATLINT_LOG_FILE",
		"CATLINT_VERBOSE",
		"CATLINT_DEBUG",
		"CATLINT_FILTER_RULES",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}
