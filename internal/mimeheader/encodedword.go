package mimeheader

import (
	"encoding/base64"
	"strings"
)

// Transfer encodings allowed inside an encoded word.
const (
	encodingB = 'B' // base64
	encodingQ = 'Q' // quoted-printable, header variant
)

const hexUpper = "0123456789ABCDEF"

// decodeWord decodes the inside of one =?charset?enc?payload?= token. ok is
// false when the token cannot be decoded; callers pass the original text
// through in that case.
func decodeWord(charset string, enc byte, payload string) (string, bool) {
	var raw []byte
	switch enc {
	case 'B', 'b':
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", false
		}
		raw = decoded
	case 'Q', 'q':
		decoded, ok := decodeQ(payload)
		if !ok {
			return "", false
		}
		raw = decoded
	default:
		return "", false
	}
	return DecodeBytes(raw, charset), true
}

// decodeQ decodes the RFC 2047 Q variant of quoted-printable: underscore is
// a space and =XX is a hex-escaped byte. Header words have no soft line
// breaks.
func decodeQ(s string) ([]byte, bool) {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '_':
			buf = append(buf, ' ')
		case '=':
			if i+2 >= len(s) {
				return nil, false
			}
			hi := unhex(s[i+1])
			lo := unhex(s[i+2])
			if hi < 0 || lo < 0 {
				return nil, false
			}
			buf = append(buf, byte(hi<<4|lo))
			i += 2
		default:
			buf = append(buf, c)
		}
	}
	return buf, true
}

func unhex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

// qLiteral reports whether b may appear unescaped in a Q-encoded word.
// Space is handled separately since it maps to underscore.
func qLiteral(b byte) bool {
	return b >= '!' && b <= '~' && b != '=' && b != '?' && b != '_'
}

// encodedLength returns the wire length of s's payload under enc.
func encodedLength(s string, enc byte) int {
	if enc == encodingB {
		return base64.StdEncoding.EncodedLen(len(s))
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == ' ' || qLiteral(c) {
			n++
		} else {
			n += 3
		}
	}
	return n
}

// chooseEncoding picks the smaller transfer encoding for s: quoted-printable
// while the text is mostly ASCII with sparse escapes, base64 once escape
// density makes Q the longer form.
func chooseEncoding(s string) byte {
	if encodedLength(s, encodingQ) <= encodedLength(s, encodingB) {
		return encodingQ
	}
	return encodingB
}

// encodeWord wraps the UTF-8 text s as a single encoded word.
func encodeWord(s string, enc byte) string {
	var b strings.Builder
	b.Grow(len(s)*3 + envelopeOverhead)
	b.WriteString("=?")
	b.WriteString(EncodeCharset)
	b.WriteByte('?')
	b.WriteByte(enc)
	b.WriteByte('?')
	if enc == encodingB {
		b.WriteString(base64.StdEncoding.EncodeToString([]byte(s)))
	} else {
		for i := 0; i < len(s); i++ {
			switch c := s[i]; {
			case c == ' ':
				b.WriteByte('_')
			case qLiteral(c):
				b.WriteByte(c)
			default:
				b.WriteByte('=')
				b.WriteByte(hexUpper[c>>4])
				b.WriteByte(hexUpper[c&0xf])
			}
		}
	}
	b.WriteString("?=")
	return b.String()
}
