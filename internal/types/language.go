package types

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// LanguageTypeToString converts enry.Type to string (programming, data, markup, prose)
func LanguageTypeToString(t enry.Type) string {
	switch t {
	case enry.Programming:
		return "programming"
	case enry.Data:
		return "data"
	case enry.Markup:
		return "markup"
	case enry.Prose:
		return "prose"
	default:
		return "unknown"
	}
}

// NormalizeLanguageTag lowercases a fence info tag and strips any
// attributes after the language id (e.g. "js {highlight}" -> "js").
func NormalizeLanguageTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, " \t{"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
