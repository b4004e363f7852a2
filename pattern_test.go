package mimesniff

import (
	"bytes"
	"testing"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		data    string
		pat     string
		mask    string
		ignored string
		match   bool
	}{
		{"GIF87a...", "GIF87a", "\xFF\xFF\xFF\xFF\xFF\xFF", "", true},
		{"GIF87", "GIF87a", "\xFF\xFF\xFF\xFF\xFF\xFF", "", false},
		{"", "", "", "", true},
		{"anything", "", "", "", true},
		{"", "a", "\xFF", "", false},
		// 0xDF masks fold ASCII case.
		{"abc", "ABC", "\xDF\xDF\xDF", "", true},
		{"AbC", "ABC", "\xDF\xDF\xDF", "", true},
		{"ab!", "AB!", "\xDF\xDF\xFF", "", true},
		// 0x00 masks match anything.
		{"a\x7fz", "a\x00z", "\xFF\x00\xFF", "", true},
		// The ignored set strips a prefix before matching.
		{"   \t\nxy", "xy", "\xFF\xFF", httpWS, true},
		{"   \t\nxy", "xy", "\xFF\xFF", "", false},
		{"xy", "xy", "\xFF\xFF", httpWS, true},
		// Pattern and mask of different lengths never match.
		{"xy", "xy", "\xFF", "", false},
	}
	for _, test := range tests {
		got := matchPattern([]byte(test.data), []byte(test.pat),
			[]byte(test.mask), test.ignored)
		if got != test.match {
			t.Errorf("matchPattern(%q, %q, %q, %q) = %v",
				test.data, test.pat, test.mask, test.ignored, got)
		}
	}
}

func TestPatternTables(t *testing.T) {
	// Each pattern's length must equal its mask's, or it can never match.
	for _, table := range [][]pattern{
		imagePatterns, audioVideoPatterns, fontPatterns, archivePatterns,
		htmlPatterns,
	} {
		for _, p := range table {
			if len(p.pat) != len(p.mask) {
				t.Errorf("pattern %q has mask of length %d", p.pat, len(p.mask))
			}
			if p.mt == nil {
				t.Errorf("pattern %q has no MIME type", p.pat)
			}
		}
	}
}

func TestMatchImage(t *testing.T) {
	tests := []struct {
		data   string
		result *MimeType
	}{
		{"\x00\x00\x01\x00rest of the icon", mtICO},
		{"\x00\x00\x02\x00rest of the cursor", mtICO},
		{"BM...bitmap...", mtBMP},
		{"GIF87a.......", mtGIF},
		{"GIF89a.......", mtGIF},
		{"RIFF\x24\x08\x00\x00WEBPVP8 ", mtWebP},
		{"\x89PNG\x0D\x0A\x1A\x0Arest", mtPNG},
		{"\xFF\xD8\xFF\xE0 jfif", mtJPEG},

		{"", nil},
		{"GIF", nil},
		{"RIFF\x24\x08\x00\x00WAVEfmt ", nil},
		{"plain text", nil},
		{"\x00\x00\x03\x00", nil},
	}
	for _, test := range tests {
		checkMatch(t, []byte(test.data), test.result, matchImage([]byte(test.data)))
	}
}

func TestImageDispatchAgreesWithLinearScan(t *testing.T) {
	// The first-byte dispatch table must produce exactly what a linear
	// first-match scan of the table produces.
	inputs := [][]byte{
		[]byte("\x00\x00\x01\x00"),
		[]byte("\x00\x00\x02\x00"),
		[]byte("\x00\x00\x01"),
		[]byte("BM"),
		[]byte("B"),
		[]byte("GIF89a"),
		[]byte("RIFF\x00\x00\x00\x00WEBPVP"),
		[]byte("RIFFxxxxWEBPVP"),
		[]byte("\x89PNG\x0D\x0A\x1A\x0A"),
		[]byte("\xFF\xD8\xFF"),
		[]byte("\xFF\xD8"),
		[]byte("junk"),
		{},
	}
	for _, data := range inputs {
		var want *MimeType
		for i := range imagePatterns {
			p := &imagePatterns[i]
			if matchPattern(data, p.pat, p.mask, "") {
				want = p.mt
				break
			}
		}
		checkMatch(t, data, want, matchImage(data))
	}
}

func TestMatchAudioVideo(t *testing.T) {
	tests := []struct {
		data   string
		result *MimeType
	}{
		{"FORM\x00\x00\x01\x00AIFFCOMM", mtAIFF},
		{"ID3\x03\x00...", mtMP3},
		{"OggS\x00vorbis", mtOgg},
		{"MThd\x00\x00\x00\x06\x00\x01", mtMIDI},
		{"RIFF\x24\x08\x00\x00AVI LIST", mtAVI},
		{"RIFF\x24\x08\x00\x00WAVEfmt ", mtWAVE},

		{"", nil},
		{"FORM\x00\x00\x01\x00AIFC", nil},
		{"OggS\x01", nil},
		{"plain text", nil},
	}
	for _, test := range tests {
		checkMatch(t, []byte(test.data), test.result,
			matchAudioVideo([]byte(test.data)))
	}
}

func TestMatchFont(t *testing.T) {
	// An EOT header: the magic "LP" lives at offset 34, anything before.
	eot := bytes.Repeat([]byte{0xAB}, 40)
	eot[34], eot[35] = 'L', 'P'

	tests := []struct {
		data   []byte
		result *MimeType
	}{
		{eot, mtEOT},
		{[]byte("\x00\x01\x00\x00\x00\x0F"), mtTTF},
		{[]byte("OTTO\x00\x0A"), mtOTF},
		{[]byte("ttcf\x00\x01"), mtTTC},
		{[]byte("wOFF\x00\x01"), mtWOFF},
		{[]byte("wOF2\x00\x01"), mtWOFF2},

		{eot[:35], nil},
		{[]byte("wOF3"), nil},
		{[]byte(""), nil},
	}
	for _, test := range tests {
		checkMatch(t, test.data, test.result, matchFont(test.data))
	}
}

func TestMatchArchive(t *testing.T) {
	tests := []struct {
		data   string
		result *MimeType
	}{
		{"\x1F\x8B\x08\x00", mtGZIP},
		{"PK\x03\x04\x14\x00", mtZIP},
		{"Rar!\x1A\x07\x00\xCF", mtRAR},

		{"Rar!\x1A\x07\x01\x00", nil}, // RAR v5 is not in the standard
		{"PK\x05\x06", nil},
		{"", nil},
	}
	for _, test := range tests {
		checkMatch(t, []byte(test.data), test.result,
			matchArchive([]byte(test.data)))
	}
}

func TestMatchHTML(t *testing.T) {
	match := []string{
		"<html>",
		"<HTML ",
		"<HtMl><head>",
		"  \t\r\n<html >hello",
		"<!DOCTYPE HTML>",
		"<!doctype html ><html>",
		"<head>",
		"<script src=...",
		"<iframe>",
		"<h1>",
		"<div>",
		"<font>",
		"<table>",
		"<a href=...",
		"<style>",
		"<title>",
		"<b>",
		"<body>",
		"<br>",
		"<p>",
		"<!-- comment",
		"<!-->",
	}
	noMatch := []string{
		"",
		"<html",    // no tag-terminating byte
		"<htmlx>",  // terminator is part of the name
		"<h2>",     // not in the table
		"<!DOCTYPE html5>",
		"html>",
		" x <html>", // whitespace must be leading
		"<\nhtml>",
	}
	for _, data := range match {
		checkMatch(t, []byte(data), mtHTML, matchHTML([]byte(data)))
	}
	for _, data := range noMatch {
		checkMatch(t, []byte(data), nil, matchHTML([]byte(data)))
	}
}

func TestMatchBOM(t *testing.T) {
	tests := []struct {
		data  string
		match bool
	}{
		{"\xFE\xFF\x00t", true},
		{"\xFF\xFE t", true},
		{"\xEF\xBB\xBFtext", true},
		{"\xEF\xBB", false},
		{"\xFE", false},
		{"text", false},
		{"", false},
	}
	for _, test := range tests {
		if got := matchBOM([]byte(test.data)); got != test.match {
			t.Errorf("matchBOM(%q) = %v", test.data, got)
		}
	}
}
