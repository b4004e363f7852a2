package mimesniff

import "bytes"

var (
	ebmlHeader  = []byte{0x1A, 0x45, 0xDF, 0xA3}
	webmDocType = []byte("webm")
)

// matchWebM implements the signature for WebM (MIME Sniffing Section
// 6.2.2): an EBML header whose DocType element, found within the first 38
// bytes, is "webm".
func matchWebM(data []byte) bool {
	if len(data) < 4 || !bytes.Equal(data[:4], ebmlHeader) {
		return false
	}
	for s := 4; s < len(data)-1 && s < 38; s++ {
		if data[s] == 0x42 && data[s+1] == 0x82 {
			s += 2
			if s >= len(data) {
				break
			}
			// Skip the DocType length.
			_, n := parseVint(data[s:])
			s += n
			if matchPadded(data, webmDocType, s, s+4) {
				return true
			}
		}
	}
	return false
}

// parseVint decodes an EBML variable-length integer at the start of data,
// returning its value and its encoded size in bytes. The size is encoded
// in unary in the leading zero bits of the first byte, capped at 8.
func parseVint(data []byte) (value uint64, size int) {
	if len(data) == 0 {
		return 0, 0
	}
	mask := byte(0x80)
	size = 1
	for size < 8 && data[0]&mask == 0 {
		mask >>= 1
		size++
	}
	value = uint64(data[0] &^ mask)
	for i := 1; i < size && i < len(data); i++ {
		value = value<<8 | uint64(data[i])
	}
	return value, size
}

// matchPadded reports whether pat appears in data[lo:hi] after any
// leading zero padding. hi is clipped to len(data).
func matchPadded(data, pat []byte, lo, hi int) bool {
	if lo < 0 || lo > len(data) {
		return false
	}
	if hi > len(data) {
		hi = len(data)
	}
	for lo < hi && data[lo] == 0 {
		lo++
	}
	if hi-lo < len(pat) {
		return false
	}
	return bytes.Equal(data[lo:lo+len(pat)], pat)
}
