// Package mimeheader converts between the wire form of MIME headers (folded
// lines, RFC 2047 encoded words) and the logical Unicode text an application
// displays. Decoding degrades gracefully: anything that fails to parse passes
// through byte-for-byte instead of surfacing an error.
package mimeheader

import (
	"strings"
	"unicode/utf8"
)

// envelopeOverhead is the fixed cost of one =?UTF-8?x?...?= envelope.
const envelopeOverhead = len("=?" + EncodeCharset + "?B??=")

// Decode resolves RFC 2047 encoded words in s. Candidate tokens that fail to
// parse or decode are kept byte-for-byte, and a string containing no encoded
// word comes back as-is without allocating. Decodable words separated only
// by spaces or tabs are concatenated with the separator dropped; separators
// still carrying a raw CRLF are kept, since the caller has not unfolded yet.
func Decode(s string) string {
	start := strings.Index(s, "=?")
	if start < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pos := 0     // next byte of s not yet written out
	lastEnd := 0 // end of the previous successfully decoded word
	decodedAny := false
	for start >= 0 {
		decoded, end, ok := decodeWordAt(s, start)
		if !ok {
			start = indexFrom(s, "=?", start+2)
			continue
		}
		sep := s[pos:start]
		// Plain whitespace between two encoded words is fold residue,
		// not text.
		if !(decodedAny && lastEnd == pos && isLinearWhitespace(sep)) {
			b.WriteString(sep)
		}
		b.WriteString(decoded)
		pos = end
		lastEnd = end
		decodedAny = true
		start = indexFrom(s, "=?", end)
	}
	if !decodedAny {
		return s
	}
	b.WriteString(s[pos:])
	return b.String()
}

// decodeWordAt parses and decodes an encoded word beginning at s[start],
// which is known to be "=?". end is the index just past the closing "?=" on
// success.
func decodeWordAt(s string, start int) (decoded string, end int, ok bool) {
	csStart := start + 2
	csEnd := indexFrom(s, "?", csStart)
	if csEnd < 0 || csEnd == csStart {
		return "", 0, false
	}
	encStart := csEnd + 1
	encEnd := indexFrom(s, "?", encStart)
	if encEnd != encStart+1 {
		return "", 0, false
	}
	payloadStart := encEnd + 1
	// The terminator search must begin past the encoding delimiter: a
	// payload starting with =XX forms a "?=" straddling that delimiter.
	payloadEnd := indexFrom(s, "?=", payloadStart)
	if payloadEnd < 0 {
		return "", 0, false
	}
	text, ok := decodeWord(s[csStart:csEnd], s[encStart], s[payloadStart:payloadEnd])
	if !ok {
		return "", 0, false
	}
	return text, payloadEnd + 2, true
}

// UnfoldAndDecode unfolds s and resolves its encoded words. When both stages
// are no-ops the original string comes back untouched.
func UnfoldAndDecode(s string) string {
	return Decode(Unfold(s))
}

// FoldAndEncode encodes s for transmission in a header whose label already
// occupies used columns of the first line. Pure ASCII input is returned
// as-is without allocating. Anything else is packed greedily into UTF-8
// encoded words that fit the line budget, joined by CRLF plus one space.
// Each word carries whole code points only, and picks base64 or
// quoted-printable independently, so a single value may mix both.
func FoldAndEncode(s string, used int) string {
	if IsASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	room := maxLineLength - used
	for len(s) > 0 {
		if b.Len() > 0 {
			b.WriteString("\r\n ")
			room = maxLineLength - 1
		}
		run, enc := packRun(s, room-envelopeOverhead)
		b.WriteString(encodeWord(run, enc))
		s = s[len(run):]
	}
	return b.String()
}

// packRun takes the longest prefix of s whose encoded payload fits in budget
// wire characters, advancing by whole runes so a byte-budget cut never lands
// inside a multi-byte code point. At least one rune is always consumed so a
// degenerate budget still terminates.
func packRun(s string, budget int) (string, byte) {
	enc := chooseEncoding(s)
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end > 0 && encodedLength(s[:end+size], enc) > budget {
			break
		}
		end += size
	}
	return s[:end], enc
}

// IsASCII reports whether s contains 7-bit characters only.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isLinearWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

// indexFrom is strings.Index anchored at pos, returning an absolute index.
func indexFrom(s, substr string, pos int) int {
	if pos >= len(s) {
		return -1
	}
	i := strings.Index(s[pos:], substr)
	if i < 0 {
		return -1
	}
	return i + pos
}
