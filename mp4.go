package mimesniff

import (
	"bytes"
	"encoding/binary"
)

var (
	mp4Ftyp  = []byte("ftyp")
	mp4Brand = []byte("mp4")
)

// matchMP4 implements the signature for MP4 (MIME Sniffing Section 6.2.1):
// an ftyp box whose major brand, or any of whose compatible brands,
// starts with "mp4".
func matchMP4(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	boxSize := int(binary.BigEndian.Uint32(data[:4]))
	if len(data) < boxSize || boxSize%4 != 0 {
		return false
	}
	if !bytes.Equal(data[4:8], mp4Ftyp) {
		return false
	}
	if bytes.Equal(data[8:11], mp4Brand) {
		return true
	}
	// Compatible brands start at offset 16, after the major brand and its
	// version.
	for s := 16; s < boxSize; s += 4 {
		if bytes.Equal(data[s:s+3], mp4Brand) {
			return true
		}
	}
	return false
}
