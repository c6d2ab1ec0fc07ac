package lint

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/go-enry/go-enry/v2"
	"github.com/go-enry/go-enry/v2/data"

	"github.com/petrarca/catlint/internal/types"
)

// maxSuggestionDistance bounds how far a typo may be from a known tag
// before we stop suggesting anything.
const maxSuggestionDistance = 3

// LanguageIndex answers whether a fence language tag is recognized and
// suggests a close known tag when it is not.
type LanguageIndex struct {
	extras map[string]bool
	known  []string
}

// NewLanguageIndex builds the index from the linguist database plus any
// extra tags allowed by configuration.
func NewLanguageIndex(extraLanguages []string) *LanguageIndex {
	ix := &LanguageIndex{extras: make(map[string]bool)}
	for _, tag := range extraLanguages {
		ix.extras[types.NormalizeLanguageTag(tag)] = true
	}

	seen := make(map[string]bool)
	for _, langs := range data.LanguagesByExtension {
		for _, lang := range langs {
			tag := strings.ToLower(lang)
			if !seen[tag] {
				seen[tag] = true
				ix.known = append(ix.known, tag)
			}
		}
	}
	for tag := range ix.extras {
		if !seen[tag] {
			seen[tag] = true
			ix.known = append(ix.known, tag)
		}
	}
	sort.Strings(ix.known)
	return ix
}

// Recognize reports whether the tag names a known language and returns
// its canonical name.
func (ix *LanguageIndex) Recognize(tag string) (string, bool) {
	normalized := types.NormalizeLanguageTag(tag)
	if normalized == "" {
		return "", false
	}
	if ix.extras[normalized] {
		return normalized, true
	}
	if lang, ok := enry.GetLanguageByAlias(normalized); ok {
		return lang, true
	}
	return "", false
}

// Suggest returns the closest known tag within the suggestion distance,
// or an empty string when nothing is close enough.
func (ix *LanguageIndex) Suggest(tag string) string {
	normalized := types.NormalizeLanguageTag(tag)
	if normalized == "" {
		return ""
	}

	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range ix.known {
		d := levenshtein.ComputeDistance(normalized, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	if bestDistance > maxSuggestionDistance {
		return ""
	}
	return best
}
