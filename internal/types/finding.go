package types

import (
	"fmt"
	"sort"
	"strings"
)

// Severity classifies a lint finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// MarshalJSON emits the severity as its string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// MarshalYAML emits the severity as its string name.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("invalid severity: %s", s)
	}
}

// Finding is one lint rule violation.
type Finding struct {
	Rule       string   `json:"rule" yaml:"rule"`
	Severity   Severity `json:"severity" yaml:"severity"`
	Path       string   `json:"path" yaml:"path"`
	Line       int      `json:"line,omitempty" yaml:"line,omitempty"`
	Message    string   `json:"message" yaml:"message"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// String renders the finding in the familiar path:line style.
func (f Finding) String() string {
	loc := f.Path
	if f.Line > 0 {
		loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
	}
	msg := fmt.Sprintf("%s: %s: %s [%s]", loc, f.Severity, f.Message, f.Rule)
	if f.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", f.Suggestion)
	}
	return msg
}

// SortFindings orders findings by path, line, then rule id.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Path != findings[j].Path {
			return findings[i].Path < findings[j].Path
		}
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Rule < findings[j].Rule
	})
}

// Summary aggregates finding counts for report output.
type Summary struct {
	Total    int            `json:"total" yaml:"total"`
	Errors   int            `json:"errors" yaml:"errors"`
	Warnings int            `json:"warnings" yaml:"warnings"`
	Infos    int            `json:"infos" yaml:"infos"`
	ByRule   map[string]int `json:"by_rule,omitempty" yaml:"by_rule,omitempty"`
}

// Summarize builds a Summary from a finding list.
func Summarize(findings []Finding) Summary {
	s := Summary{ByRule: make(map[string]int)}
	for _, f := range findings {
		s.Total++
		s.ByRule[f.Rule]++
		switch f.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		default:
			s.Infos++
		}
	}
	if len(s.ByRule) == 0 {
		s.ByRule = nil
	}
	return s
}

// MaxSeverity returns the highest severity present, and whether any
// finding exists at all.
func MaxSeverity(findings []Finding) (Severity, bool) {
	if len(findings) == 0 {
		return SeverityInfo, false
	}
	max := SeverityInfo
	for _, f := range findings {
		if f.Severity > max {
			max = f.Severity
		}
	}
	return max, true
}
