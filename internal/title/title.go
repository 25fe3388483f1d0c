// Package title cleans raw EPG programme titles into searchable movie titles.
//
// Broadcast guides decorate titles with parenthesized annotations, quality
// and premiere markers, and release years ("Skazani na Shawshank (1994) HD").
// None of that survives a metadata search, so it is stripped before lookup.
package title

import (
	"regexp"
	"strings"
)

var (
	parenPattern  = regexp.MustCompile(`\(.*?\)`)
	markerPattern = regexp.MustCompile(`(?i)HD|Premiera|TV|\d{4}`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Normalize strips parenthesized substrings, quality/premiere markers and
// 4-digit year tokens from a raw title. Idempotent: normalizing an already
// clean title returns it unchanged.
func Normalize(raw string) string {
	s := parenPattern.ReplaceAllString(raw, "")
	s = markerPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Key returns the cache key for a raw title: normalized and lowercased.
func Key(raw string) string {
	return strings.ToLower(Normalize(raw))
}
