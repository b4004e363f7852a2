package mimesniff

import "strings"

// ParseMimeType parses a media type string (MIME Sniffing Section 4.4).
//
// ParseMimeType tolerates most malformed input: whitespace is trimmed,
// unparseable parameters are dropped, and a duplicated parameter name
// keeps its first value. It returns nil only when no valid type/subtype
// pair can be extracted: the input is empty, has no slash, or the type
// or subtype is empty or contains a non-token character.
func ParseMimeType(v string) *MimeType {
	v = trimWS(v)
	slash := strings.IndexByte(v, '/')
	if slash == -1 {
		return nil
	}
	typ := v[:slash]
	if typ == "" || !isToken(typ) {
		return nil
	}
	v = v[slash+1:]
	sub := v
	if semi := strings.IndexByte(v, ';'); semi != -1 {
		sub, v = v[:semi], v[semi:]
	} else {
		v = ""
	}
	sub = trimRightWS(sub)
	if sub == "" || !isToken(sub) {
		return nil
	}
	mt := &MimeType{Type: lowerASCII(typ), Subtype: lowerASCII(sub)}
	for v != "" {
		v = skipWS(v[1:]) // past ';'
		i := 0
		for i < len(v) && v[i] != ';' && v[i] != '=' {
			i++
		}
		name := lowerASCII(v[:i])
		v = v[i:]
		if v == "" {
			break
		}
		if v[0] == ';' {
			continue
		}
		v = v[1:] // past '='
		var value string
		if strings.HasPrefix(v, `"`) {
			value, v = consumeQuoted(v)
			if semi := strings.IndexByte(v, ';'); semi == -1 {
				v = ""
			} else {
				v = v[semi:]
			}
		} else {
			value = v
			if semi := strings.IndexByte(v, ';'); semi != -1 {
				value, v = v[:semi], v[semi:]
			} else {
				v = ""
			}
			value = trimRightWS(value)
			if value == "" {
				continue
			}
		}
		if name != "" && value != "" && isToken(name) && isQuotable(value) &&
			!mt.hasParam(name) {
			mt.Params = append(mt.Params, Param{name, value})
		}
	}
	return mt
}

// consumeQuoted consumes an HTTP quoted string at the start of v, which
// must begin with a double quote, and returns the unescaped value.
// A missing closing quote terminates the string at the end of input;
// a trailing backslash stands for itself.
func consumeQuoted(v string) (value, rest string) {
	b := &strings.Builder{}
	for i := 1; i < len(v); i++ {
		switch v[i] {
		case '\\':
			i++
			if i == len(v) {
				b.WriteByte('\\')
				return b.String(), ""
			}
			b.WriteByte(v[i])
		case '"':
			return b.String(), v[i+1:]
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String(), ""
}

// String serializes mt (MIME Sniffing Section 4.5). Parameter values that
// are not plain tokens are quoted, with any '"' or '\' escaped. For a
// MimeType returned by ParseMimeType, parsing the result yields a
// MimeType equal to mt; values built by hand, such as one with an empty
// parameter value, may not survive the round trip.
func (mt *MimeType) String() string {
	b := &strings.Builder{}
	b.WriteString(mt.Type)
	b.WriteByte('/')
	b.WriteString(mt.Subtype)
	for _, p := range mt.Params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		writeValue(b, p.Value)
	}
	return b.String()
}

func writeValue(b *strings.Builder, s string) {
	if s != "" && isToken(s) {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}

// Minimize reduces mt to the canonical form used in speculative loading:
// "text/javascript" for any JavaScript type, "application/json" for any
// JSON type, "image/svg+xml" for SVG, "application/xml" for any other XML
// type, and the essence of mt otherwise.
func (mt *MimeType) Minimize() string {
	switch {
	case mt.IsJavaScript():
		return "text/javascript"
	case mt.IsJSON():
		return "application/json"
	case mt.is("image", "svg+xml"):
		return "image/svg+xml"
	case mt.IsXML():
		return "application/xml"
	}
	return mt.Essence()
}

// IsValidMimeTypeString reports whether v is a valid MIME type string:
// whether ParseMimeType succeeds on it. A trailing ";" is valid, because
// empty parameters are dropped rather than rejected.
func IsValidMimeTypeString(v string) bool {
	return ParseMimeType(v) != nil
}

// IsValidMimeTypeStringWithNoParameters reports whether v is a valid
// MIME type string that does not contain a ";".
func IsValidMimeTypeStringWithNoParameters(v string) bool {
	return strings.IndexByte(v, ';') == -1 && ParseMimeType(v) != nil
}

func skipWS(v string) string {
	for v != "" && isWS(v[0]) {
		v = v[1:]
	}
	return v
}

func trimRightWS(v string) string {
	for v != "" && isWS(v[len(v)-1]) {
		v = v[:len(v)-1]
	}
	return v
}

func trimWS(v string) string {
	return trimRightWS(skipWS(v))
}

// lowerASCII lowercases only the ASCII letters of s, leaving bytes
// 0x80..0xFF intact, unlike strings.ToLower.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
