package mimeheader

import "strings"

// maxLineLength is the width budget for one physical header line.
const maxLineLength = 76

// Unfold collapses header continuation lines: every CRLF followed by one or
// more horizontal whitespace characters becomes a single space. Input with
// no fold sequence is returned as-is without allocating.
func Unfold(s string) string {
	start := foldIndex(s, 0)
	if start < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for start >= 0 {
		b.WriteString(s[pos:start])
		b.WriteByte(' ')
		pos = start + 2
		for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
			pos++
		}
		start = foldIndex(s, pos)
	}
	b.WriteString(s[pos:])
	return b.String()
}

// foldIndex returns the index of the next CRLF+WSP sequence at or after pos,
// or -1. A bare CRLF with no continuation whitespace is not a fold.
func foldIndex(s string, pos int) int {
	for {
		i := strings.Index(s[pos:], "\r\n")
		if i < 0 {
			return -1
		}
		i += pos
		if i+2 < len(s) && (s[i+2] == ' ' || s[i+2] == '\t') {
			return i
		}
		pos = i + 2
	}
}

// Fold breaks s into continuation lines no longer than maxLineLength
// columns, with used columns already consumed on the first line by the
// header label. Breaks happen at whitespace only; the break character is
// replaced by CRLF plus a single space. Input that already fits is returned
// as-is without allocating. A token longer than the whole budget is emitted
// unbroken.
func Fold(s string, used int) string {
	if used+len(s) <= maxLineLength {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for used+len(s) > maxLineLength {
		brk := lastBreak(s, maxLineLength-used)
		if brk < 0 {
			break
		}
		b.WriteString(s[:brk])
		b.WriteString("\r\n ")
		s = s[brk+1:]
		used = 1
	}
	b.WriteString(s)
	return b.String()
}

// lastBreak returns the rightmost breakable whitespace within limit columns,
// the first one past it when an unbreakable token overruns the budget, or -1
// when s contains no whitespace at all.
func lastBreak(s string, limit int) int {
	if limit >= len(s) {
		limit = len(s) - 1
	}
	if limit < 0 {
		limit = 0
	}
	for i := limit; i >= 0; i-- {
		if s[i] == ' ' || s[i] == '\t' {
			return i
		}
	}
	for i := limit + 1; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			return i
		}
	}
	return -1
}
