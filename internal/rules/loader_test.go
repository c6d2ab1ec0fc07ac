package rules

import (
	"testing"

	"github.com/petrarca/catlint/internal/types"
)

func TestLoadEmbeddedManifests(t *testing.T) {
	// Test that embedded manifests can be loaded
	manifests, err := LoadEmbeddedManifests()
	if err != nil {
		t.Fatalf("Failed to load embedded manifests: %v", err)
	}

	// Should have loaded some manifests
	if len(manifests) == 0 {
		t.Fatal("No manifests loaded")
	}

	// Check for the snippet-language manifest specifically (since it exists)
	var snippetManifest *Manifest
	for i, m := range manifests {
		if m.ID == "snippet-language" {
			snippetManifest = &manifests[i]
			break
		}
	}

	if snippetManifest == nil {
		t.Fatal("snippet-language manifest not found")
	}

	// Verify the manifest has expected properties
	if snippetManifest.Severity != "error" {
		t.Errorf("Expected snippet-language severity to be 'error', got '%s'", snippetManifest.Severity)
	}

	if snippetManifest.Summary == "" {
		t.Fatal("snippet-language manifest should have a summary")
	}

	t.Logf("✅ snippet-language manifest test passed")
	t.Logf("   - Total manifests loaded: %d", len(manifests))
	t.Logf("   - snippet-language severity: %s", snippetManifest.Severity)
}

func TestManifestStructure(t *testing.T) {
	manifests, err := LoadEmbeddedManifests()
	if err != nil {
		t.Fatalf("Failed to load embedded manifests: %v", err)
	}

	// Test that all manifests have required fields
	for _, m := range manifests {
		if m.ID == "" {
			t.Errorf("Manifest missing id field: %+v", m)
		}
		if m.Summary == "" {
			t.Errorf("Manifest missing summary field: %+v", m)
		}
		if _, err := types.ParseSeverity(m.Severity); err != nil {
			t.Errorf("Manifest %s has invalid severity %q", m.ID, m.Severity)
		}
	}

	t.Logf("✅ Manifest structure validation passed for %d manifests", len(manifests))
}

func TestDefaultSeverities(t *testing.T) {
	manifests, err := LoadEmbeddedManifests()
	if err != nil {
		t.Fatalf("Failed to load embedded manifests: %v", err)
	}

	severities := DefaultSeverities(manifests)

	if len(severities) != len(manifests) {
		t.Fatalf("Expected %d severities, got %d", len(manifests), len(severities))
	}

	if severities["duplicate-entry"] != types.SeverityError {
		t.Errorf("Expected duplicate-entry to default to error, got %s", severities["duplicate-entry"])
	}

	if severities["entry-snippet"] != types.SeverityWarning {
		t.Errorf("Expected entry-snippet to default to warning, got %s", severities["entry-snippet"])
	}
}
