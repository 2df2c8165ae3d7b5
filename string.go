// string.go — the escape codec for text literals.
//
// A reader turns the body of a text literal into characters with Unescape;
// the printer (and a future writer) goes the other way with Escape. The
// two are inverses over every string Escape can produce.
//
// Control characters without a named escape use caret notation: 0x01-0x1A
// escape to \^a..\^z, 0x1C-0x1F to \^\ \^] \^^ \^_ (0x1B always prints as
// \e), and DEL to \^?. Unescape additionally accepts the uppercase column,
// \^@..\^_, for the full 0x00-0x1F range.

package ginkgo

import (
	"strings"
	"unicode/utf8"
)

// Escape maps every control character, the double quote and the backslash
// in s to its literal escape sequence. All other characters pass through.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == 0x00:
			b.WriteString(`\0`)
		case r == 0x07:
			b.WriteString(`\a`)
		case r == 0x08:
			b.WriteString(`\b`)
		case r == 0x09:
			b.WriteString(`\t`)
		case r == 0x0a:
			b.WriteString(`\n`)
		case r == 0x0b:
			b.WriteString(`\v`)
		case r == 0x0c:
			b.WriteString(`\f`)
		case r == 0x0d:
			b.WriteString(`\r`)
		case r == 0x1b:
			b.WriteString(`\e`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == 0x7f:
			b.WriteString(`\^?`)
		case r >= 0x01 && r <= 0x1a:
			b.WriteString(`\^`)
			b.WriteRune('a' + r - 1)
		case r >= 0x1c && r <= 0x1f:
			b.WriteString(`\^`)
			b.WriteRune('A' + r - 1)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Unescape is the inverse of Escape, extended with \uXXXX and \UXXXXXXXX
// unicode escapes (exactly 4 or 8 hex digits, one scalar value). The
// second result is false on a trailing unterminated escape, an unknown
// escape character, an invalid caret target, a non-hex digit in a unicode
// escape, or a hex value that is not a valid scalar.
func Unescape(s string) (string, bool) {
	var b strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' {
			b.WriteRune(rs[i])
			continue
		}
		i++
		if i >= len(rs) {
			return "", false
		}
		switch rs[i] {
		case '0':
			b.WriteRune(0x00)
		case 'a':
			b.WriteRune(0x07)
		case 'b':
			b.WriteRune(0x08)
		case 't':
			b.WriteRune(0x09)
		case 'n':
			b.WriteRune(0x0a)
		case 'v':
			b.WriteRune(0x0b)
		case 'f':
			b.WriteRune(0x0c)
		case 'r':
			b.WriteRune(0x0d)
		case 'e':
			b.WriteRune(0x1b)
		case '"':
			b.WriteRune('"')
		case '\\':
			b.WriteRune('\\')
		case '^':
			i++
			if i >= len(rs) {
				return "", false
			}
			switch c := rs[i]; {
			case c == '?':
				b.WriteRune(0x7f)
			case c >= 'a' && c <= 'z':
				b.WriteRune(c - 'a' + 1)
			case c >= '@' && c <= '_': // includes A-Z
				b.WriteRune(c - 'A' + 1)
			default:
				return "", false
			}
		case 'u', 'U':
			n := 4
			if rs[i] == 'U' {
				n = 8
			}
			r, ok := hexRune(rs[i+1:], n)
			if !ok {
				return "", false
			}
			b.WriteRune(r)
			i += n
		default:
			return "", false
		}
	}
	return b.String(), true
}

// hexRune decodes exactly n hex digits from the front of rs into one
// scalar value.
func hexRune(rs []rune, n int) (rune, bool) {
	if len(rs) < n {
		return 0, false
	}
	var code uint32
	for _, c := range rs[:n] {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		code = code*16 + d
	}
	if code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
		return 0, false
	}
	return rune(code), true
}
