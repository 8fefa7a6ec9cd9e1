package casing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordRe matches the word-like runs that case transforms operate on;
// everything else in the input passes through untouched.
var wordRe = regexp.MustCompile(`\w+`)

// Style names a recognized case style, in the fixed order variant
// generation always produces.
type Style int

const (
	LowerCamel Style = iota
	UpperCamel
	LowerUnderscore
	UpperUnderscore
)

var allStyles = []Style{LowerCamel, UpperCamel, LowerUnderscore, UpperUnderscore}

// Variants returns the four canonical case-style renderings of s, word
// runs transformed in place and everything else left alone, in the
// fixed order LowerCamel, UpperCamel, LowerUnderscore, UpperUnderscore.
func Variants(s string) [4]string {
	var out [4]string
	for i, style := range allStyles {
		out[i] = Transform(s, style)
	}
	return out
}

// Transform rewrites every word-like run of s into the given style.
func Transform(s string, style Style) string {
	return wordRe.ReplaceAllStringFunc(s, func(word string) string {
		return transformWord(word, style)
	})
}

func transformWord(word string, style Style) string {
	_, words := Split(word)
	if len(words) == 0 {
		return word
	}

	switch style {
	case LowerCamel:
		parts := make([]string, len(words))
		parts[0] = strings.ToLower(words[0])
		for i := 1; i < len(words); i++ {
			parts[i] = capitalize(words[i])
		}
		return strings.Join(parts, "")
	case UpperCamel:
		parts := make([]string, len(words))
		for i, w := range words {
			parts[i] = capitalize(w)
		}
		return strings.Join(parts, "")
	case LowerUnderscore:
		parts := make([]string, len(words))
		for i, w := range words {
			parts[i] = strings.ToLower(w)
		}
		return strings.Join(parts, "_")
	case UpperUnderscore:
		parts := make([]string, len(words))
		for i, w := range words {
			parts[i] = strings.ToUpper(w)
		}
		return strings.Join(parts, "_")
	default:
		return word
	}
}

// capitalize uppercases the first rune of w and lowercases the rest,
// using Unicode case mapping throughout.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
