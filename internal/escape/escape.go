// Package escape implements the Unicode escape codec: a reversible mapping
// between arbitrary Unicode text and an ASCII-only \uXXXX representation.
//
// The codec works on UTF-16 code units, the unit of the \uXXXX notation.
// Code points beyond the Basic Multilingual Plane are emitted as a surrogate
// pair (two escapes), and Decode recombines adjacent surrogate escapes back
// into a single code point, so Decode(Encode(s)) == s for any string s.
package escape

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Encode returns an ASCII-only representation of text. ASCII characters pass
// through unchanged; every other code point becomes one or two \uXXXX escapes
// with lowercase, zero-padded hex digits.
func Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r <= 0x7F:
			b.WriteByte(byte(r))
		case r <= 0xFFFF:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		}
	}

	return b.String()
}

// Decode replaces every \uXXXX escape (exactly 4 hex digits) in escaped with
// the UTF-16 unit it denotes. A high-surrogate escape immediately followed by
// a low-surrogate escape is combined into one code point. Anything that does
// not match the pattern, including truncated or non-hex escapes, is copied
// through verbatim; Decode never fails.
func Decode(escaped string) string {
	var b strings.Builder
	b.Grow(len(escaped))

	for i := 0; i < len(escaped); {
		u1, ok := parseEscape(escaped, i)
		if !ok {
			b.WriteByte(escaped[i])
			i++

			continue
		}
		i += escapeLen

		if utf16.IsSurrogate(u1) {
			if u2, ok := parseEscape(escaped, i); ok {
				if r := utf16.DecodeRune(u1, u2); r != 0xFFFD {
					b.WriteRune(r)
					i += escapeLen

					continue
				}
			}
		}

		// a non-surrogate unit is the code point itself; an unpaired
		// surrogate has no valid UTF-8 form and becomes U+FFFD
		b.WriteRune(u1)
	}

	return b.String()
}

// escapeLen is the byte length of one \uXXXX escape sequence.
const escapeLen = 6

// parseEscape reports whether s[i:] starts with \u followed by exactly 4 hex
// digits, and returns the decoded UTF-16 unit if so.
func parseEscape(s string, i int) (rune, bool) {
	if i+escapeLen > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, false
	}

	var u rune
	for _, c := range []byte(s[i+2 : i+escapeLen]) {
		switch {
		case c >= '0' && c <= '9':
			u = u<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			u = u<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			u = u<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}

	return u, true
}
