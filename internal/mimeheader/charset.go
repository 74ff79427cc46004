package mimeheader

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	// DefaultCharset is the 7-bit fallback assumed when a part declares no
	// charset of its own.
	DefaultCharset = "us-ascii"

	// EncodeCharset is the charset every encoded word we emit is written in.
	EncodeCharset = "UTF-8"
)

// Lookup resolves an IANA charset name or alias (case-insensitive) to its
// encoding. UTF-8 and ASCII need no transform and resolve to nil, as do
// unknown names; callers treat nil as byte-transparent.
func Lookup(name string) encoding.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil
	}
	return enc
}

// DecodeBytes decodes b as the named charset. Lookup or transform failure
// passes the raw bytes through unchanged rather than reporting an error.
func DecodeBytes(b []byte, charset string) string {
	enc := Lookup(charset)
	if enc == nil {
		return string(b)
	}
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}
