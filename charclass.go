package mimesniff

import "strings"

// Byte classes used throughout the package: HTTP token and quoted-string
// code points from RFC 7230 Section 3.2.6 as profiled by the MIME Sniffing
// standard, and the whitespace, binary data, and tag-terminating bytes
// from MIME Sniffing Section 3.

var (
	isTokenChar        [256]bool
	isQuotedStringChar [256]bool
)

func init() {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		isTokenChar[b] = (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
			strings.ContainsRune("!#$%&'*+-.^_`|~", rune(b))
		isQuotedStringChar[b] = b == '\t' || (b >= 0x20 && b <= 0x7E) || b >= 0x80
	}
}

// isWS reports whether b is HTTP whitespace.
func isWS(b byte) bool {
	switch b {
	case '\t', '\n', '\x0c', '\r', ' ':
		return true
	}
	return false
}

// isTT reports whether b is a tag-terminating byte.
func isTT(b byte) bool {
	return b == ' ' || b == '>'
}

// isBinary reports whether b is a binary data byte.
func isBinary(b byte) bool {
	switch {
	case b <= 0x08, b == 0x0B, b >= 0x0E && b <= 0x1A, b >= 0x1C && b <= 0x1F:
		return true
	}
	return false
}

func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isTokenChar[s[i]] {
			return false
		}
	}
	return s != ""
}

func isQuotable(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isQuotedStringChar[s[i]] {
			return false
		}
	}
	return true
}
