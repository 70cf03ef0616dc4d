package dataset

import (
	"regexp"
	"strings"
	"unicode"
)

// camelBoundary matches a lowercase letter immediately followed by an
// uppercase one. Replacement runs in a single non-overlapping left-to-right
// pass, so "aBcD" becomes "a Bc D".
var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// NormalizeGPName canonicalizes a raw GP name: split camelCase boundaries,
// replace underscores with spaces, title-case each whitespace-delimited
// token, and trim. The case split must happen before title-casing.
func NormalizeGPName(raw string) string {
	s := camelBoundary.ReplaceAllString(raw, "$1 $2")
	s = strings.ReplaceAll(s, "_", " ")
	s = titleCase(s)
	return strings.TrimSpace(s)
}

// titleCase uppercases the first letter of each whitespace-delimited token
// and lowercases the rest, preserving the original whitespace.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfToken := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfToken = true
			b.WriteRune(r)
			continue
		}
		if startOfToken {
			b.WriteRune(unicode.ToUpper(r))
			startOfToken = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
