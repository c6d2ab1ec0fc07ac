package rules

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petrarca/catlint/internal/types"
)

//go:embed all:manifests
var coreManifestsFS embed.FS

// Manifest describes one lint rule: its identity, default severity and
// the rationale shown by `info rules`.
type Manifest struct {
	ID        string `yaml:"id" json:"id"`
	Summary   string `yaml:"summary" json:"summary"`
	Severity  string `yaml:"severity" json:"severity"`
	Rationale string `yaml:"rationale,omitempty" json:"rationale,omitempty"`
}

// LoadEmbeddedManifests loads all rule manifests from the embedded filesystem
func LoadEmbeddedManifests() ([]Manifest, error) {
	var manifests []Manifest

	err := fs.WalkDir(coreManifestsFS, "manifests", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Only load YAML files
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		content, err := coreManifestsFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read manifest file %s: %w", path, err)
		}

		var manifest Manifest
		if err := yaml.Unmarshal(content, &manifest); err != nil {
			return fmt.Errorf("failed to parse manifest file %s: %w", path, err)
		}

		// Derive id from filename if not specified
		if manifest.ID == "" {
			manifest.ID = deriveIDFromPath(path)
		}

		// Validate manifest
		if err := validateManifest(&manifest); err != nil {
			return fmt.Errorf("invalid manifest in %s: %w", path, err)
		}

		manifests = append(manifests, manifest)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded manifests: %w", err)
	}

	return manifests, nil
}

// LoadExternalManifests loads rule manifests from an external directory,
// used to override the embedded defaults.
func LoadExternalManifests(manifestsDir string) ([]Manifest, error) {
	var manifests []Manifest

	err := filepath.WalkDir(manifestsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Only load YAML files
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read manifest file %s: %w", path, err)
		}

		var manifest Manifest
		if err := yaml.Unmarshal(content, &manifest); err != nil {
			return fmt.Errorf("failed to parse manifest file %s: %w", path, err)
		}

		// Derive id from filename if not specified
		if manifest.ID == "" {
			manifest.ID = deriveIDFromPath(path)
		}

		// Validate manifest
		if err := validateManifest(&manifest); err != nil {
			return fmt.Errorf("invalid manifest in %s: %w", path, err)
		}

		manifests = append(manifests, manifest)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk external manifests: %w", err)
	}

	return manifests, nil
}

// DefaultSeverities maps rule ids to the severities their manifests declare
func DefaultSeverities(manifests []Manifest) map[string]types.Severity {
	severities := make(map[string]types.Severity, len(manifests))
	for _, m := range manifests {
		sev, err := types.ParseSeverity(m.Severity)
		if err != nil {
			continue
		}
		severities[m.ID] = sev
	}
	return severities
}

// deriveIDFromPath extracts the rule id from the manifest filename
// e.g., "manifests/snippet-language.yaml" -> "snippet-language"
func deriveIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
}

// validateManifest validates a manifest definition
func validateManifest(manifest *Manifest) error {
	if manifest.ID == "" {
		return fmt.Errorf("id is required")
	}

	if manifest.Summary == "" {
		return fmt.Errorf("summary is required")
	}

	if manifest.Severity == "" {
		return fmt.Errorf("severity is required")
	}

	if _, err := types.ParseSeverity(manifest.Severity); err != nil {
		return err
	}

	return nil
}
