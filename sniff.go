package mimesniff

import (
	"io"
	"net/http"
)

// sniffLen is the maximum number of resource bytes the sniffing
// algorithms consider.
const sniffLen = 1445

// A Resource bundles the inputs and output of one sniffing request.
// Build one with DetermineSuppliedType or ResourceFromHeader, set NoSniff
// according to caller policy, and pass it to SniffMimeType, which fills
// ComputedType.
type Resource struct {
	// SuppliedType is the type supplied with the resource, parsed from
	// its last Content-Type value; nil when absent or unparseable.
	SuppliedType *MimeType

	// CheckForApacheBug is set when the Content-Type value is one of the
	// exact strings that Apache sends for resources it knows nothing
	// about, so that the supplied text/plain cannot be trusted.
	CheckForApacheBug bool

	// NoSniff, as with the X-Content-Type-Options: nosniff response
	// header, makes a supplied type final. When the supplied type is
	// absent or unknown (unknown/unknown, application/unknown, */*), the
	// header is still sniffed, but not for scriptable types.
	NoSniff bool

	// ComputedType is the result of the last SniffMimeType call.
	ComputedType *MimeType
}

// DetermineSuppliedType builds a Resource from the Content-Type values
// associated with a resource, of which the last one wins (MIME Sniffing
// Section 8.1). A nil or empty slice means no type was supplied.
func DetermineSuppliedType(contentTypes []string) *Resource {
	r := &Resource{}
	if len(contentTypes) == 0 {
		return r
	}
	v := contentTypes[len(contentTypes)-1]
	switch v {
	case "text/plain",
		"text/plain; charset=ISO-8859-1",
		"text/plain; charset=iso-8859-1",
		"text/plain; charset=UTF-8":
		r.CheckForApacheBug = true
	}
	r.SuppliedType = ParseMimeType(v)
	return r
}

// ResourceFromHeader builds a Resource from the Content-Type values in h.
func ResourceFromHeader(h http.Header) *Resource {
	return DetermineSuppliedType(h["Content-Type"])
}

// ReadResourceHeader returns the resource header of data: its first
// 1445 bytes at most.
func ReadResourceHeader(data []byte) []byte {
	if len(data) > sniffLen {
		return data[:sniffLen]
	}
	return data
}

// ReadResourceHeaderFrom reads the resource header from r: as many bytes
// as the sniffing algorithms can use. A short read due to end of input is
// not an error.
func ReadResourceHeaderFrom(r io.Reader) ([]byte, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return buf[:n], err
}

// SniffMimeType computes the media type of a resource from its supplied
// metadata and its header bytes (MIME Sniffing Section 7), records it in
// r.ComputedType, and returns it. The result is never nil: with an absent
// supplied type the unknown-type path always computes something, whatever
// the flags.
//
// A supplied HTML or XML type is always returned as is, whatever the
// header bytes: sniffing must not upgrade content to a scriptable type.
func SniffMimeType(r *Resource, header []byte) *MimeType {
	r.ComputedType = sniff(r, header)
	return r.ComputedType
}

func sniff(r *Resource, header []byte) *MimeType {
	supplied := r.SuppliedType
	if supplied != nil && (supplied.IsXML() || supplied.IsHTML()) {
		return supplied
	}
	if supplied == nil || supplied.is("unknown", "unknown") ||
		supplied.is("application", "unknown") || supplied.is("*", "*") {
		return IdentifyUnknownType(header, !r.NoSniff)
	}
	if r.NoSniff {
		return supplied
	}
	if r.CheckForApacheBug {
		return DistinguishTextOrBinary(header)
	}
	if supplied.IsImage() {
		if mt := matchImage(header); mt != nil {
			return mt
		}
	}
	if supplied.IsAudioOrVideo() {
		if mt := matchAudioVideo(header); mt != nil {
			return mt
		}
	}
	return supplied
}

// IdentifyUnknownType computes the media type of a resource that was
// supplied no usable type (MIME Sniffing Section 7.1). When
// sniffScriptable is false, the patterns for HTML, XML and PDF are not
// tried. IdentifyUnknownType always returns a type; the last resort is
// application/octet-stream.
func IdentifyUnknownType(header []byte, sniffScriptable bool) *MimeType {
	if sniffScriptable {
		if mt := matchHTML(header); mt != nil {
			return mt
		}
		if matchPattern(header, patXML, maskXML, httpWS) {
			return mtTextXML
		}
		if matchExact(header, patPDF) {
			return mtPDF
		}
	}
	if matchExact(header, patPostScript) {
		return mtPostScript
	}
	if matchBOM(header) {
		return mtTextPlain
	}
	if mt := matchImage(header); mt != nil {
		return mt
	}
	if mt := matchAudioVideo(header); mt != nil {
		return mt
	}
	if mt := matchArchive(header); mt != nil {
		return mt
	}
	if !containsBinary(header) {
		return mtTextPlain
	}
	return mtOctetStream
}

// DistinguishTextOrBinary computes text/plain or
// application/octet-stream for a resource whose supplied text/plain is
// suspect (MIME Sniffing Section 7.2): a resource with a byte order mark
// or no binary data bytes is text.
func DistinguishTextOrBinary(header []byte) *MimeType {
	if matchBOM(header) {
		return mtTextPlain
	}
	if containsBinary(header) {
		return mtOctetStream
	}
	return mtTextPlain
}

func containsBinary(data []byte) bool {
	for _, b := range data {
		if isBinary(b) {
			return true
		}
	}
	return false
}

// SniffInBrowsingContext computes the media type of a resource loaded
// into a browsing context; it is the top-level SniffMimeType.
func SniffInBrowsingContext(r *Resource, header []byte) *MimeType {
	return SniffMimeType(r, header)
}

// SniffInImageContext computes the media type of a resource loaded as an
// image. A supplied XML type wins; otherwise the image patterns are
// tried, and failing those the supplied type is returned, possibly nil.
func SniffInImageContext(supplied *MimeType, header []byte) *MimeType {
	if supplied != nil && supplied.IsXML() {
		return supplied
	}
	if mt := matchImage(header); mt != nil {
		return mt
	}
	return supplied
}

// SniffInAudioVideoContext computes the media type of a resource loaded
// as audio or video, like SniffInImageContext but with the audio and
// video patterns.
func SniffInAudioVideoContext(supplied *MimeType, header []byte) *MimeType {
	if supplied != nil && supplied.IsXML() {
		return supplied
	}
	if mt := matchAudioVideo(header); mt != nil {
		return mt
	}
	return supplied
}

// SniffInFontContext computes the media type of a resource loaded as a
// font, like SniffInImageContext but with the font patterns.
func SniffInFontContext(supplied *MimeType, header []byte) *MimeType {
	if supplied != nil && supplied.IsXML() {
		return supplied
	}
	if mt := matchFont(header); mt != nil {
		return mt
	}
	return supplied
}

// SniffInPluginContext computes the media type of a resource loaded by a
// plugin: the supplied type, or application/octet-stream when none was
// supplied.
func SniffInPluginContext(supplied *MimeType, header []byte) *MimeType {
	if supplied == nil {
		return mtOctetStream
	}
	return supplied
}

// SniffInStyleContext computes the media type of a style sheet resource:
// always the supplied type, possibly nil.
func SniffInStyleContext(supplied *MimeType, header []byte) *MimeType {
	return supplied
}

// SniffInScriptContext computes the media type of a script resource:
// always the supplied type, possibly nil.
func SniffInScriptContext(supplied *MimeType, header []byte) *MimeType {
	return supplied
}

// SniffInTextTrackContext computes the media type of a text track
// resource: always text/vtt.
func SniffInTextTrackContext() *MimeType {
	return mtVTT
}

// SniffInCacheManifestContext computes the media type of a cache
// manifest resource: always text/cache-manifest.
func SniffInCacheManifestContext() *MimeType {
	return mtCacheManifest
}
