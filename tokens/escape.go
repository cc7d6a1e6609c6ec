package tokens

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const replacementChar = '�'

// unescape resolves CSS escapes (“\26 B”, “\:”) in a name.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		i++
		if i >= len(s) {
			b.WriteRune(replacementChar)
			break
		}
		if s[i] == '\n' || s[i] == '\r' || s[i] == '\f' { // line continuation
			if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			i++
			continue
		}
		if isHex(s[i]) {
			j := i
			for j < len(s) && j-i < 6 && isHex(s[j]) {
				j++
			}
			cp, _ := strconv.ParseUint(s[i:j], 16, 32)
			r := rune(cp)
			if cp == 0 || cp > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
				r = replacementChar
			}
			b.WriteRune(r)
			i = j
			if i < len(s) {
				if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
					i += 2
				} else if isWhitespace(s[i]) {
					i++
				}
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// unquote removes the quotes of a string token and resolves its escapes.
func unquote(s string) string {
	if len(s) == 0 {
		return s
	}
	q := s[0]
	if q != '"' && q != '\'' {
		return unescape(s)
	}
	s = s[1:]
	if len(s) > 0 && s[len(s)-1] == q && !escapedAt(s, len(s)-1) {
		s = s[:len(s)-1]
	}
	return unescape(s)
}

// escapedAt reports wether the byte at index i is preceded by an odd number
// of backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// --- Serialization escapes -------------------------------------------------

// EscapeIdent serializes an identifier, following CSSOM §2.1
// “serialize an identifier”.
func EscapeIdent(s string) string {
	var b strings.Builder
	first := rune(-1)
	i := 0
	for _, r := range s {
		switch {
		case r == 0:
			b.WriteRune(replacementChar)
		case (r >= 0x01 && r <= 0x1f) || r == 0x7f:
			writeHexEscape(&b, r)
		case i == 0 && r >= '0' && r <= '9':
			writeHexEscape(&b, r)
		case i == 1 && r >= '0' && r <= '9' && first == '-':
			writeHexEscape(&b, r)
		case i == 0 && r == '-' && utf8.RuneCountInString(s) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' || (r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
		if i == 0 {
			first = r
		}
		i++
	}
	return b.String()
}

// QuoteString serializes a string in double quotes, following CSSOM §2.1
// “serialize a string”.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == 0:
			b.WriteRune(replacementChar)
		case (r >= 0x01 && r <= 0x1f) || r == 0x7f:
			writeHexEscape(&b, r)
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeHexEscape(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}

// FormatNumber renders a number in its shortest form.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
