// Package naming derives the casing conventions the output formats need
// from free-text service titles: URL path slugs, exported identifiers, and
// variable names.
//
// All functions are pure and total. An input that is empty after stripping
// yields an empty string rather than an error; callers treat empty results
// as a data-quality issue.
package naming

import (
	"strings"
	"unicode"
)

// PathSlug converts a title to a lowercase hyphenated URL path segment.
// Parentheses are stripped, runs of whitespace collapse to a single
// hyphen, and commas, periods, and apostrophes are dropped.
//
//	PathSlug("Full-Service Restaurants") == "full-service-restaurants"
func PathSlug(s string) string {
	s = stripPunctuation(s)
	fields := strings.Fields(s)
	return strings.ToLower(strings.Join(fields, "-"))
}

// Identifier converts a title to a PascalCase identifier: whitespace,
// parentheses, and separators are removed and each word boundary is
// capitalized.
//
//	Identifier("Full-Service Restaurants") == "FullServiceRestaurants"
func Identifier(s string) string {
	var sb strings.Builder
	newWord := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if newWord {
				sb.WriteRune(unicode.ToUpper(r))
			} else {
				sb.WriteRune(r)
			}
			newWord = false
		case unicode.IsDigit(r):
			sb.WriteRune(r)
			newWord = true
		default:
			// Separators (spaces, hyphens, parens, commas) start a new word.
			newWord = true
		}
	}
	return sb.String()
}

// VariableName converts a title to a camelCase name: Identifier with the
// first character lowercased.
//
//	VariableName("Full-Service Restaurants") == "fullServiceRestaurants"
func VariableName(s string) string {
	id := Identifier(s)
	if id == "" {
		return ""
	}
	r := []rune(id)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// stripPunctuation removes characters that never belong in a path segment.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', ',', '.', '\'':
			return -1
		}
		return r
	}, s)
}
