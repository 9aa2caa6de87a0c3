// Package gzipscan implements the optional gzip span filter of spec.md
// §4.4: a purpose-built DEFLATE decoder that records which output bytes came
// from cheap back-references (the parts of the source a real compressor
// would already squeeze hard, so hoisting an alias there barely helps) and
// exposes them as a queryable interval set.
package gzipscan

// bitReader reads individual bits from a byte slice LSB-first within each
// byte, multi-bit fields accumulating least-significant-bit first — the
// DEFLATE bit order. Grounded on the original's get_bit/get_bits
// (git_bits.rs), translated from its shared head_box[0] cursor to a struct
// field.
type bitReader struct {
	data []byte
	pos  int
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

func (r *bitReader) bit(at int) int {
	offset := at >> 3
	if offset >= len(r.data) {
		return 0
	}
	return int(r.data[offset]>>uint(at&7)) & 1
}

// bits reads n bits starting at the reader's current position, advancing it
// by n, and returns them as a little-endian accumulated value.
func (r *bitReader) bits(n int) int {
	value := 0
	for i := 0; i < n; i++ {
		value += r.bit(r.pos) << uint(i)
		r.pos++
	}
	return value
}
