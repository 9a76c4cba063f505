package planet

import "encoding/binary"

// wordReader walks a byte slice as big-endian signed 16-bit words. Reads
// past the end yield zero; the section layout overruns each 1540-byte
// slot by 30 bytes, so the reader has to keep answering after the data
// stops.
type wordReader struct {
	data []byte
	pos  int
}

func (r *wordReader) word() int {
	if r.pos+2 > len(r.data) {
		return 0
	}
	v := int(int16(binary.BigEndian.Uint16(r.data[r.pos:])))
	r.pos += 2
	return v
}

func (r *wordReader) skip(words int) {
	r.pos += 2 * words
}
