// Package srctext prepares shader source text for embedding in emitted code.
package srctext

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when shader source is not valid UTF-8.
var ErrInvalidEncoding = errors.New("srctext: shader source is not valid UTF-8")

// Normalize collapses every run of whitespace that contains a line break
// into a single '\n'. Whitespace runs without a line break are kept as is,
// so tokens on the same line stay separated exactly as written.
func Normalize(src string) (string, error) {
	if !utf8.ValidString(src) {
		return "", ErrInvalidEncoding
	}

	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !isSpace(r) {
			b.WriteString(src[i : i+size])
			i += size
			continue
		}

		// Scan the whole whitespace run.
		start := i
		newline := false
		for i < len(src) {
			r, size = utf8.DecodeRuneInString(src[i:])
			if !isSpace(r) {
				break
			}
			if r == '\n' {
				newline = true
			}
			i += size
		}
		if newline {
			b.WriteByte('\n')
		} else {
			b.WriteString(src[start:i])
		}
	}
	return b.String(), nil
}

// isSpace reports whether r is whitespace. The information separators
// U+001C..U+001F count as whitespace too.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1c && r <= 0x1f
}

const hexDigits = "0123456789abcdef"

// Quote returns s as a double-quoted string literal. Only printable ASCII
// is written verbatim; control characters and non-ASCII code points are
// escaped as \uXXXX, using surrogate pairs outside the basic plane.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				b.WriteRune(r)
			case r > 0xffff:
				r -= 0x10000
				writeUnicodeEscape(&b, 0xd800|(r>>10)&0x3ff)
				writeUnicodeEscape(&b, 0xdc00|r&0x3ff)
			default:
				writeUnicodeEscape(&b, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[r>>12&0xf])
	b.WriteByte(hexDigits[r>>8&0xf])
	b.WriteByte(hexDigits[r>>4&0xf])
	b.WriteByte(hexDigits[r&0xf])
}
