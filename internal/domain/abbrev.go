package domain

import (
	"regexp"
	"strings"
)

var (
	// abbreviationRe is the whole dictionary as one case-insensitive alternation
	// in definition order. The regexp engine takes the leftmost match and, at a
	// tie, the earliest alternative.
	abbreviationRe = compileAbbreviations(abbreviations)

	// abbreviationExpansions is keyed by the upper-cased token.
	abbreviationExpansions = indexAbbreviations(abbreviations)
)

func compileAbbreviations(entries []abbreviation) *regexp.Regexp {
	alts := make([]string, 0, len(entries))
	for _, e := range entries {
		alts = append(alts, regexp.QuoteMeta(e.Token))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

func indexAbbreviations(entries []abbreviation) map[string]string {
	idx := make(map[string]string, len(entries))
	for _, e := range entries {
		key := strings.ToUpper(e.Token)
		if _, dup := idx[key]; !dup {
			idx[key] = e.Expansion
		}
	}
	return idx
}

// TranslateAbbreviations expands dictionary words in a single left-to-right
// scan. Only whole words match, in any case, and expanded text is never
// rescanned. The input is not modified.
func TranslateAbbreviations(text string) string {
	return abbreviationRe.ReplaceAllStringFunc(text, func(word string) string {
		if exp, ok := abbreviationExpansions[strings.ToUpper(word)]; ok {
			return exp
		}
		return word
	})
}
