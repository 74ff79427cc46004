package mimeheader

import "strings"

// HeaderParameter extracts a value from a ;-separated RFC 2045 header such
// as `multipart/mixed; boundary="x"`. An empty name returns the bare value
// before the first ';', trimmed. Lookup is case-insensitive and double
// quotes around a value are stripped. The empty string stands in for an
// absent header, name or value. A segment without '=' (a bare token like
// `filename`) never matches a named lookup and never fails.
//
// Known limitation, kept on purpose: a parenthetical comment trailing a
// parameter value, as in `charset=utf-8 (Plain text)`, stays part of the
// value.
func HeaderParameter(header, name string) string {
	if header == "" {
		return ""
	}
	segments := splitUnquoted(header, ';')
	if name == "" {
		return strings.TrimSpace(segments[0])
	}
	for _, seg := range segments[1:] {
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(seg[:eq]), name) {
			continue
		}
		value := strings.TrimSpace(seg[eq+1:])
		return strings.Trim(value, "\"")
	}
	return ""
}

// splitUnquoted splits s on sep, ignoring separators inside double quotes.
func splitUnquoted(s string, sep byte) []string {
	var parts []string
	quoted := false
	last := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			quoted = !quoted
		case s[i] == sep && !quoted:
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}
	return append(parts, s[last:])
}
