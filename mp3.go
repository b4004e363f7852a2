package mimesniff

// Bit rates in bits per second, indexed by the frame header's bit rate
// field, for MPEG-2/2.5 and MPEG-1 audio respectively; and sample rates
// in Hz, indexed by the header's sample rate field.
var (
	mp25Rates = [15]int{0, 8000, 16000, 24000, 32000, 40000, 48000, 56000,
		64000, 80000, 96000, 112000, 128000, 144000, 160000}
	mp3Rates = [15]int{0, 32000, 40000, 48000, 56000, 64000, 80000, 96000,
		112000, 128000, 160000, 192000, 224000, 256000, 320000}
	mp3SampleRates = [3]int{44100, 48000, 32000}
)

// matchMP3 implements the signature for MP3 without an ID3 tag (MIME
// Sniffing Section 6.2.3): a valid frame header at offset 0, and a second
// valid frame header exactly one computed frame size later.
//
// The standard's "final layer" check is omitted: as written it rejects
// every valid layer value (whatwg/mimesniff#70).
func matchMP3(data []byte) bool {
	if !mp3FrameHeader(data, 0) {
		return false
	}
	size := mp3FrameSize(data, 0)
	if size < 4 || size > len(data) {
		return false
	}
	return mp3FrameHeader(data, size)
}

// mp3FrameHeader validates the four frame header bytes at offset s:
// the sync word, a nonzero layer, and in-range bit rate and sample rate
// fields.
func mp3FrameHeader(data []byte, s int) bool {
	if len(data)-s < 4 {
		return false
	}
	if data[s] != 0xFF || data[s+1]&0xE0 != 0xE0 {
		return false
	}
	if layer := (data[s+1] & 0x06) >> 1; layer == 0 {
		return false
	}
	if bitRate := (data[s+2] & 0xF0) >> 4; bitRate == 15 {
		return false
	}
	if sampleRate := (data[s+2] & 0x0C) >> 2; sampleRate == 3 {
		return false
	}
	return true
}

// mp3FrameSize computes the size in bytes of the frame whose header is at
// offset s. The header must already have been validated with
// mp3FrameHeader.
func mp3FrameSize(data []byte, s int) int {
	version := (data[s+1] & 0x18) >> 3
	bitRate := mp25Rates[(data[s+2]&0xF0)>>4]
	if version&1 != 0 {
		bitRate = mp3Rates[(data[s+2]&0xF0)>>4]
	}
	sampleRate := mp3SampleRates[(data[s+2]&0x0C)>>2]
	scale := 144
	if version == 1 {
		scale = 72
	}
	size := bitRate * scale / sampleRate
	if data[s+2]&0x02 != 0 {
		size++
	}
	return size
}
