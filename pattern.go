package mimesniff

import (
	"bytes"
	"strings"
)

// The MIME types that pattern matching can produce. These are shared,
// statically allocated values: callers must not modify them.
var (
	mtICO  = &MimeType{Type: "image", Subtype: "x-icon"}
	mtBMP  = &MimeType{Type: "image", Subtype: "bmp"}
	mtGIF  = &MimeType{Type: "image", Subtype: "gif"}
	mtWebP = &MimeType{Type: "image", Subtype: "webp"}
	mtPNG  = &MimeType{Type: "image", Subtype: "png"}
	mtJPEG = &MimeType{Type: "image", Subtype: "jpeg"}

	mtAIFF = &MimeType{Type: "audio", Subtype: "aiff"}
	mtMP3  = &MimeType{Type: "audio", Subtype: "mpeg"}
	mtOgg  = &MimeType{Type: "application", Subtype: "ogg"}
	mtMIDI = &MimeType{Type: "audio", Subtype: "midi"}
	mtAVI  = &MimeType{Type: "video", Subtype: "avi"}
	mtWAVE = &MimeType{Type: "audio", Subtype: "wave"}
	mtMP4  = &MimeType{Type: "video", Subtype: "mp4"}
	mtWebM = &MimeType{Type: "video", Subtype: "webm"}

	mtEOT   = &MimeType{Type: "application", Subtype: "vnd.ms-fontobject"}
	mtTTF   = &MimeType{Type: "font", Subtype: "ttf"}
	mtOTF   = &MimeType{Type: "font", Subtype: "otf"}
	mtTTC   = &MimeType{Type: "font", Subtype: "collection"}
	mtWOFF  = &MimeType{Type: "font", Subtype: "woff"}
	mtWOFF2 = &MimeType{Type: "font", Subtype: "woff2"}

	mtGZIP = &MimeType{Type: "application", Subtype: "x-gzip"}
	mtZIP  = &MimeType{Type: "application", Subtype: "zip"}
	mtRAR  = &MimeType{Type: "application", Subtype: "x-rar-compressed"}

	mtHTML          = &MimeType{Type: "text", Subtype: "html"}
	mtTextXML       = &MimeType{Type: "text", Subtype: "xml"}
	mtPDF           = &MimeType{Type: "application", Subtype: "pdf"}
	mtPostScript    = &MimeType{Type: "application", Subtype: "postscript"}
	mtTextPlain     = &MimeType{Type: "text", Subtype: "plain"}
	mtOctetStream   = &MimeType{Type: "application", Subtype: "octet-stream"}
	mtVTT           = &MimeType{Type: "text", Subtype: "vtt"}
	mtCacheManifest = &MimeType{Type: "text", Subtype: "cache-manifest"}
)

// httpWS is the set of bytes a whitespace-tolerant pattern may skip.
const httpWS = "\t\n\x0c\r "

type pattern struct {
	pat  []byte
	mask []byte
	mt   *MimeType
}

// matchPattern implements the pattern matching algorithm of MIME Sniffing
// Section 6. It skips the longest prefix of data whose bytes are all in
// ignored, then requires that the next len(pat) bytes, each masked with
// the corresponding mask byte, equal the corresponding pattern bytes; any
// bytes after those are not examined. pat and mask must have the same
// length.
func matchPattern(data, pat, mask []byte, ignored string) bool {
	if len(pat) != len(mask) {
		return false
	}
	s := 0
	for s < len(data) && strings.IndexByte(ignored, data[s]) != -1 {
		s++
	}
	if len(data)-s < len(pat) {
		return false
	}
	for i := range pat {
		if data[s+i]&mask[i] != pat[i] {
			return false
		}
	}
	return true
}

// matchExact reports whether data begins with pat; shorthand for
// matchPattern with an all-0xFF mask and nothing ignored.
func matchExact(data, pat []byte) bool {
	return bytes.HasPrefix(data, pat)
}

// Image type patterns (MIME Sniffing Section 6.1), in the standard's order.
var imagePatterns = []pattern{
	// Windows icon and cursor.
	{[]byte("\x00\x00\x01\x00"), []byte("\xFF\xFF\xFF\xFF"), mtICO},
	{[]byte("\x00\x00\x02\x00"), []byte("\xFF\xFF\xFF\xFF"), mtICO},
	{[]byte("BM"), []byte("\xFF\xFF"), mtBMP},
	{[]byte("GIF87a"), []byte("\xFF\xFF\xFF\xFF\xFF\xFF"), mtGIF},
	{[]byte("GIF89a"), []byte("\xFF\xFF\xFF\xFF\xFF\xFF"), mtGIF},
	// "RIFF" then the file size, then "WEBPVP".
	{[]byte("RIFF\x00\x00\x00\x00WEBPVP"),
		[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF\xFF\xFF"), mtWebP},
	{[]byte("\x89PNG\x0D\x0A\x1A\x0A"), []byte("\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFF"), mtPNG},
	{[]byte("\xFF\xD8\xFF"), []byte("\xFF\xFF\xFF"), mtJPEG},
}

// imageDispatch indexes imagePatterns by first pattern byte, so that most
// non-image inputs are rejected with a single table lookup. All image
// patterns have an all-ones first mask byte, which makes this sound.
var imageDispatch [256][]uint8

func init() {
	for i, p := range imagePatterns {
		b := p.pat[0]
		imageDispatch[b] = append(imageDispatch[b], uint8(i))
	}
}

// matchImage matches data against the image type patterns.
func matchImage(data []byte) *MimeType {
	if len(data) == 0 {
		return nil
	}
	for _, i := range imageDispatch[data[0]] {
		p := &imagePatterns[i]
		if matchPattern(data, p.pat, p.mask, "") {
			return p.mt
		}
	}
	return nil
}

// Audio and video type patterns (MIME Sniffing Section 6.2),
// in the standard's order. The MP4, WebM and MP3 signatures need more
// than a masked comparison and live in their own files.
var audioVideoPatterns = []pattern{
	// "FORM" then the file size, then "AIFF".
	{[]byte("FORM\x00\x00\x00\x00AIFF"),
		[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"), mtAIFF},
	// MP3 with an ID3 tag.
	{[]byte("ID3"), []byte("\xFF\xFF\xFF"), mtMP3},
	{[]byte("OggS\x00"), []byte("\xFF\xFF\xFF\xFF\xFF"), mtOgg},
	{[]byte("MThd\x00\x00\x00\x06"), []byte("\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFF"), mtMIDI},
	// "RIFF" then the file size, then "AVI " or "WAVE".
	{[]byte("RIFF\x00\x00\x00\x00AVI "),
		[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"), mtAVI},
	{[]byte("RIFF\x00\x00\x00\x00WAVE"),
		[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"), mtWAVE},
}

// matchAudioVideo matches data against the audio and video type patterns,
// then the MP4, WebM, and MP3 signatures.
func matchAudioVideo(data []byte) *MimeType {
	for i := range audioVideoPatterns {
		p := &audioVideoPatterns[i]
		if matchPattern(data, p.pat, p.mask, "") {
			return p.mt
		}
	}
	switch {
	case matchMP4(data):
		return mtMP4
	case matchWebM(data):
		return mtWebM
	case matchMP3(data):
		return mtMP3
	}
	return nil
}

// Font type patterns (MIME Sniffing Section 6.3), in the standard's order.
var fontPatterns = []pattern{
	// Embedded OpenType: 34 arbitrary bytes, then "LP".
	{[]byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
		"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00LP"),
		[]byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00" +
			"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xFF\xFF"),
		mtEOT},
	{[]byte("\x00\x01\x00\x00"), []byte("\xFF\xFF\xFF\xFF"), mtTTF},
	{[]byte("OTTO"), []byte("\xFF\xFF\xFF\xFF"), mtOTF},
	{[]byte("ttcf"), []byte("\xFF\xFF\xFF\xFF"), mtTTC},
	{[]byte("wOFF"), []byte("\xFF\xFF\xFF\xFF"), mtWOFF},
	{[]byte("wOF2"), []byte("\xFF\xFF\xFF\xFF"), mtWOFF2},
}

// matchFont matches data against the font type patterns.
func matchFont(data []byte) *MimeType {
	for i := range fontPatterns {
		p := &fontPatterns[i]
		if matchPattern(data, p.pat, p.mask, "") {
			return p.mt
		}
	}
	return nil
}

// Archive type patterns (MIME Sniffing Section 6.4), in the standard's order.
var archivePatterns = []pattern{
	{[]byte("\x1F\x8B\x08"), []byte("\xFF\xFF\xFF"), mtGZIP},
	{[]byte("PK\x03\x04"), []byte("\xFF\xFF\xFF\xFF"), mtZIP},
	{[]byte("Rar!\x1A\x07\x00"), []byte("\xFF\xFF\xFF\xFF\xFF\xFF\xFF"), mtRAR},
}

// matchArchive matches data against the archive type patterns.
func matchArchive(data []byte) *MimeType {
	for i := range archivePatterns {
		p := &archivePatterns[i]
		if matchPattern(data, p.pat, p.mask, "") {
			return p.mt
		}
	}
	return nil
}

// The HTML tag patterns of MIME Sniffing Section 7.1, uppercase. Letters
// match case-insensitively, and each pattern must be followed by a
// tag-terminating byte in the input.
var htmlTags = []string{
	"<!DOCTYPE HTML",
	"<HTML",
	"<HEAD",
	"<SCRIPT",
	"<IFRAME",
	"<H1",
	"<DIV",
	"<FONT",
	"<TABLE",
	"<A",
	"<STYLE",
	"<TITLE",
	"<B",
	"<BODY",
	"<BR",
	"<P",
	"<!--",
}

var htmlPatterns []pattern

func init() {
	for _, tag := range htmlTags {
		pat := make([]byte, len(tag))
		mask := make([]byte, len(tag))
		for i := 0; i < len(tag); i++ {
			pat[i] = tag[i]
			if c := tag[i]; c >= 'A' && c <= 'Z' {
				mask[i] = 0xDF
			} else {
				mask[i] = 0xFF
			}
		}
		htmlPatterns = append(htmlPatterns, pattern{pat, mask, mtHTML})
	}
}

// matchHTML matches data against the HTML tag patterns. Any leading HTTP
// whitespace is skipped, and the matched tag must be followed by a space
// or '>'.
func matchHTML(data []byte) *MimeType {
	s := 0
	for s < len(data) && isWS(data[s]) {
		s++
	}
	d := data[s:]
	for i := range htmlPatterns {
		p := &htmlPatterns[i]
		if len(d) < len(p.pat)+1 {
			continue
		}
		if matchPattern(d, p.pat, p.mask, "") && isTT(d[len(p.pat)]) {
			return p.mt
		}
	}
	return nil
}

var (
	patXML  = []byte("<?xml")
	maskXML = []byte("\xFF\xFF\xFF\xFF\xFF")

	patPDF        = []byte("%PDF-")
	patPostScript = []byte("%!PS-Adobe-")

	// Byte order marks, all identifying plain text:
	// UTF-16BE, UTF-16LE, UTF-8.
	bomPatterns = [][]byte{
		{0xFE, 0xFF},
		{0xFF, 0xFE},
		{0xEF, 0xBB, 0xBF},
	}
)

// matchBOM reports whether data begins with a byte order mark.
func matchBOM(data []byte) bool {
	for _, bom := range bomPatterns {
		if matchExact(data, bom) {
			return true
		}
	}
	return false
}
