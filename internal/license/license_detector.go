// Package license detects the license the catalog itself is published
// under, for inclusion in report metadata.
package license

import (
	"math"
	"sort"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	"github.com/go-enry/go-license-detector/v4/licensedb/filer"
)

// License is a detected license with metadata
type License struct {
	LicenseName   string  `json:"license_name" yaml:"license_name"`
	DetectionType string  `json:"detection_type" yaml:"detection_type"`
	SourceFile    string  `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	Confidence    float64 `json:"confidence" yaml:"confidence"`
}

// LicenseDetector handles file-based license detection
type LicenseDetector struct{}

// NewLicenseDetector creates a new license detector
func NewLicenseDetector() *LicenseDetector {
	return &LicenseDetector{}
}

// DetectLicensesInDirectory detects licenses from LICENSE files in a directory
// Returns a list of detected licenses with metadata (confidence > 0.9)
func (d *LicenseDetector) DetectLicensesInDirectory(dirPath string) []License {
	// Create a filer for the directory
	fs, err := filer.FromDirectory(dirPath)
	if err != nil {
		return nil
	}

	// Detect licenses
	matches, err := licensedb.Detect(fs)
	if err != nil {
		return nil
	}

	// Extract license matches with high confidence (> 0.9)
	var licenses []License
	for licenseID, match := range matches {
		if match.Confidence > 0.9 {
			licenses = append(licenses, License{
				LicenseName:   licenseID,
				DetectionType: "file_based",
				SourceFile:    match.File,
				Confidence:    math.Round(float64(match.Confidence)*100) / 100,
			})
		}
	}

	sort.Slice(licenses, func(i, j int) bool {
		if licenses[i].Confidence != licenses[j].Confidence {
			return licenses[i].Confidence > licenses[j].Confidence
		}
		return licenses[i].LicenseName < licenses[j].LicenseName
	})

	return licenses
}
