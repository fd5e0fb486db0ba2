package css

import (
	"fmt"
	"strings"
)

// escapeString applies the only two substitutions valid inside a CSS
// single-quoted string here: a literal apostrophe becomes \', and a
// newline becomes the CSS escape \A (not an actual line break). No other
// character is touched; backslashes are not escaped, so a second pass
// escapes each apostrophe again.
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\A`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeURL backslash-escapes the characters that would otherwise break a
// CSS url(...) token unquoted: parentheses, quotes, and whitespace.
func escapeURL(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isURLMeta(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isURLMeta(r rune) bool {
	switch r {
	case '(', ')', '\'', '"', ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// quotePlus percent-encodes s for embedding in a url(...) token the way a
// query-string value would be: unreserved characters pass through, a space
// becomes '+', everything else is percent-escaped.
func quotePlus(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// quotePath percent-encodes s the way a URL path component would be:
// unreserved characters and '/' pass through unescaped, a space becomes
// %20 (not '+'), everything else is percent-escaped. Used only for the
// svg fragment identifier, which is always a bare basename with no slash
// in practice.
func quotePath(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '_' || c == '.' || c == '-' || c == '~'
}
