package mimesniff

import (
	"math/rand"
	"reflect"
	"testing"
)

func checkParse(t *testing.T, input string, expected, actual *MimeType) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("parsing: %q\nexpected: %#v\nactual:   %#v",
			input, expected, actual)
	}
}

func checkSerialize(t *testing.T, input *MimeType, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("serializing: %#v\nexpected: %q\nactual:   %q",
			input, expected, actual)
	}
}

func checkMatch(t *testing.T, data []byte, expected, actual *MimeType) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("matching: %q\nexpected: %v\nactual:   %v",
			data, mtString(expected), mtString(actual))
	}
}

func mtString(mt *MimeType) string {
	if mt == nil {
		return "<nil>"
	}
	return mt.String()
}

// randParseInput generates strings biased towards the punctuation that
// drives the parser through more of its states.
func randParseInput(r *rand.Rand) string {
	const chars = "\x00\x7f\xe9 \t\n;=/\"\\,*+.ABCabc012"
	b := make([]byte, r.Intn(64))
	for i := range b {
		b[i] = chars[r.Intn(len(chars))]
	}
	return string(b)
}

// randHeader generates resource headers biased towards the bytes that
// appear in the sniffing patterns.
func randHeader(r *rand.Rand) []byte {
	const chars = "\x00\x01\x1a\x42\x82\x84\xff\xfe\xef\xbb\xbf\x89\x1f\x8b" +
		"RIF<>!-html PNGOgKMTF "
	b := make([]byte, r.Intn(96))
	for i := range b {
		b[i] = chars[r.Intn(len(chars))]
	}
	return b
}
