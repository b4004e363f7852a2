package mimesniff

import "strings"

// Group membership queries from MIME Sniffing Section 3. Each reports
// whether mt belongs to the named group of MIME types.

// IsImage reports whether mt is an image MIME type.
func (mt *MimeType) IsImage() bool {
	return mt.Type == "image"
}

// IsAudioOrVideo reports whether mt is an audio or video MIME type.
func (mt *MimeType) IsAudioOrVideo() bool {
	return mt.Type == "audio" || mt.Type == "video" || mt.is("application", "ogg")
}

// IsFont reports whether mt is a font MIME type.
func (mt *MimeType) IsFont() bool {
	if mt.Type == "font" {
		return true
	}
	if mt.Type != "application" {
		return false
	}
	switch mt.Subtype {
	case "font-cff", "font-off", "font-sfnt", "font-ttf", "font-woff",
		"vnd.ms-fontobject", "vnd.ms-opentype":
		return true
	}
	return false
}

// IsZipBased reports whether mt is a ZIP-based MIME type.
func (mt *MimeType) IsZipBased() bool {
	return strings.HasSuffix(mt.Subtype, "+zip") || mt.is("application", "zip")
}

// IsArchive reports whether mt is an archive MIME type.
func (mt *MimeType) IsArchive() bool {
	if mt.Type != "application" {
		return false
	}
	switch mt.Subtype {
	case "x-rar-compressed", "zip", "x-gzip":
		return true
	}
	return false
}

// IsXML reports whether mt is an XML MIME type.
func (mt *MimeType) IsXML() bool {
	return strings.HasSuffix(mt.Subtype, "+xml") ||
		mt.is("text", "xml") || mt.is("application", "xml")
}

// IsHTML reports whether mt is the HTML MIME type.
func (mt *MimeType) IsHTML() bool {
	return mt.is("text", "html")
}

// IsScriptable reports whether mt is a scriptable MIME type:
// an XML type, the HTML type, or PDF.
func (mt *MimeType) IsScriptable() bool {
	return mt.IsXML() || mt.IsHTML() || mt.is("application", "pdf")
}

// IsJavaScript reports whether mt is a JavaScript MIME type.
// The essence is matched ASCII case-insensitively, as the standard
// prescribes for this group only.
func (mt *MimeType) IsJavaScript() bool {
	switch {
	case strings.EqualFold(mt.Type, "application"):
		for _, sub := range jsApplicationSubtypes {
			if strings.EqualFold(mt.Subtype, sub) {
				return true
			}
		}
	case strings.EqualFold(mt.Type, "text"):
		for _, sub := range jsTextSubtypes {
			if strings.EqualFold(mt.Subtype, sub) {
				return true
			}
		}
	}
	return false
}

var (
	jsApplicationSubtypes = []string{
		"ecmascript", "javascript", "x-ecmascript", "x-javascript",
	}
	jsTextSubtypes = []string{
		"ecmascript", "javascript", "javascript1.0", "javascript1.1",
		"javascript1.2", "javascript1.3", "javascript1.4", "javascript1.5",
		"jscript", "livescript", "x-ecmascript", "x-javascript",
	}
)

// IsJSON reports whether mt is a JSON MIME type.
func (mt *MimeType) IsJSON() bool {
	return strings.HasSuffix(mt.Subtype, "+json") ||
		mt.is("application", "json") || mt.is("text", "json")
}
