package mimeheader

import "strings"

// MimeTypeMatches reports whether the type/subtype value mimeType matches
// pattern. Comparison is case-insensitive and either half of pattern may be
// "*" to match anything on that side.
func MimeTypeMatches(mimeType, pattern string) bool {
	gotType, gotSub := splitMimeType(mimeType)
	wantType, wantSub := splitMimeType(pattern)
	if wantType != "*" && !strings.EqualFold(gotType, wantType) {
		return false
	}
	if wantSub != "*" && !strings.EqualFold(gotSub, wantSub) {
		return false
	}
	return true
}

// MimeTypeMatchesAny reports whether mimeType matches any pattern in the
// list. An empty list matches nothing.
func MimeTypeMatchesAny(mimeType string, patterns []string) bool {
	for _, p := range patterns {
		if MimeTypeMatches(mimeType, p) {
			return true
		}
	}
	return false
}

func splitMimeType(s string) (string, string) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
