// Package casing splits identifiers into words and renders the four
// canonical case styles used by case-preserving pattern expansion.
package casing

import "unicode"

// Split breaks name into its separator style and constituent words.
//
// An underscore anywhere in name selects underscore splitting: the
// separator is "_" and words are the underscore-split parts, including
// empty ones. Otherwise name is treated as camelCase: a new word starts
// at an uppercase rune when the previous rune is lowercase, or when the
// next rune is lowercase — the second clause is what keeps a run of
// capitals together ("HTTPResponse" -> "HTTP", "Response") while still
// splitting the last capital of such a run off from a following word.
func Split(name string) (sep string, words []string) {
	runes := []rune(name)

	for _, r := range runes {
		if r == '_' {
			return "_", splitUnderscore(runes)
		}
	}

	return "", splitCamel(runes)
}

func splitUnderscore(runes []rune) []string {
	var words []string
	start := 0
	for i, r := range runes {
		if r == '_' {
			words = append(words, string(runes[start:i]))
			start = i + 1
		}
	}
	words = append(words, string(runes[start:]))
	return words
}

func splitCamel(runes []rune) []string {
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}
		prevLower := unicode.IsLower(runes[i-1])
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if prevLower || nextLower {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
