package lang

import (
	"strconv"
	"strings"
)

// EscapeSpan is one escape sequence inside a quoted string, in character
// offsets relative to the full line.
type EscapeSpan struct {
	Start int
	End   int
	Raw   string
	Value rune
}

// ScanEscapes finds escape sequences in s. base is the character offset of s
// within its line, so reported spans are line-relative.
func ScanEscapes(s string, base int) []EscapeSpan {
	var spans []EscapeSpan
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			continue
		}
		raw := escapeAt(s, i)
		if r, ok := DecodeEscape(raw); ok {
			spans = append(spans, EscapeSpan{
				Start: base + i,
				End:   base + i + len(raw),
				Raw:   raw,
				Value: r,
			})
			i += len(raw) - 1
			continue
		}
		i++ // invalid escape, skip the introducer pair
	}
	return spans
}

// escapeAt slices the full escape sequence starting at s[i] (which must be a
// backslash): \n-style pairs, \uXXXX, or the braced \u{...} form that covers
// codepoints beyond the basic plane.
func escapeAt(s string, i int) string {
	if i+1 >= len(s) {
		return s[i:]
	}
	if s[i+1] != 'u' {
		return s[i : i+2]
	}
	if i+2 < len(s) && s[i+2] == '{' {
		if close := strings.IndexByte(s[i+2:], '}'); close >= 0 {
			return s[i : i+2+close+1]
		}
		return s[i : i+2]
	}
	if i+6 <= len(s) {
		return s[i : i+6]
	}
	return s[i : i+2]
}

// DecodeEscape resolves one escape sequence to its character.
func DecodeEscape(raw string) (rune, bool) {
	if len(raw) < 2 || raw[0] != '\\' {
		return 0, false
	}
	switch raw[1] {
	case 'n':
		return '\n', len(raw) == 2
	case 't':
		return '\t', len(raw) == 2
	case 'r':
		return '\r', len(raw) == 2
	case '\\':
		return '\\', len(raw) == 2
	case '"':
		return '"', len(raw) == 2
	case 'u':
		hex := ""
		switch {
		case len(raw) == 6:
			hex = raw[2:]
		case len(raw) > 4 && raw[2] == '{' && raw[len(raw)-1] == '}':
			hex = raw[3 : len(raw)-1]
		default:
			return 0, false
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || n > 0x10FFFF {
			return 0, false
		}
		return rune(n), true
	}
	return 0, false
}

// UnescapeString resolves every escape sequence in s.
func UnescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		raw := escapeAt(s, i)
		if r, ok := DecodeEscape(raw); ok {
			sb.WriteRune(r)
			i += len(raw) - 1
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// IsPictograph reports whether the rune falls in the emoji and pictograph
// blocks that accessibility descriptions cover.
func IsPictograph(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // misc symbols, emoticons, extended pictographs
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	}
	return false
}
