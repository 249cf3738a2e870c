package bitstream

import "encoding/binary"

// Reader is the minimal raw bit source. Higher-level operations — the
// variable-width decoders, ReadString — are free functions composed over
// any implementation.
type Reader interface {
	// ReadBits reads up to numBits from the stream and returns them in the
	// low bits of the result together with the number of bits actually
	// read. Fewer than numBits are returned only when the stream ends.
	// numBits must be no greater than 64.
	ReadBits(numBits uint) (bits uint64, numRead uint)

	// ReachedEnd reports whether the end of the stream was reached
	// (hard EOF: position equals capacity).
	ReachedEnd() bool

	// OnlyZeroesLeft reports whether the end of the stream was reached or
	// only zero bits remain ahead (soft EOF). Implementations may commit a
	// false negative — returning false although only zeroes are left — but
	// never a false positive: a consumer that expects trailing zero
	// padding uses this to stop early.
	OnlyZeroesLeft() bool
}

// ReadString reads numBits from the stream and returns them as a
// left-to-right string of '0' and '1'. numBits must be no greater than 64;
// the returned string is shorter than numBits if the stream ended.
func ReadString(r Reader, numBits uint) string {
	bits, numRead := r.ReadBits(numBits)
	return BitsToString(bits, numRead)
}

// WordReader is a forward-only cursor over an immutable buffer of 64-bit
// words. It supports no seeking or rewinding and is not safe for
// concurrent use.
type WordReader struct {
	buffer []uint64
	pos    uint
}

// NewWordReader takes ownership of words, already laid out per the
// WordWriter conventions. No copy is made; the caller must not use the
// slice afterwards.
func NewWordReader(words []uint64) *WordReader {
	return &WordReader{buffer: words}
}

// NewWordReaderFromBytes copies data and reinterprets it as little-endian
// words, zero padding the final partial word. The caller keeps ownership
// of data.
func NewWordReaderFromBytes(data []byte) *WordReader {
	words := make([]uint64, NumBitsToNumWords(len(data), 8))
	for i := range words {
		var chunk [8]byte
		copy(chunk[:], data[i*8:])
		words[i] = binary.LittleEndian.Uint64(chunk[:])
	}
	return &WordReader{buffer: words}
}

func (r *WordReader) capacity() uint {
	return uint(len(r.buffer)) * WordBits
}

// ReadBits reads up to numBits starting at the current position and
// advances it. At end of stream fewer bits are returned; memory past the
// word buffer is never accessed.
func (r *WordReader) ReadBits(numBits uint) (uint64, uint) {
	if numBits > WordBits {
		panic("bitstream: ReadBits accepts at most 64 bits")
	}
	if remaining := r.capacity() - r.pos; numBits > remaining {
		numBits = remaining
	}
	if numBits == 0 {
		return 0, 0
	}
	index := r.pos / WordBits
	offset := r.pos % WordBits
	bits := r.buffer[index] >> offset
	if offset+numBits > WordBits {
		bits |= r.buffer[index+1] << (WordBits - offset)
	}
	r.pos += numBits
	return GetLowerBits(bits, numBits), numBits
}

// ReachedEnd reports hard EOF.
func (r *WordReader) ReachedEnd() bool {
	return r.pos >= r.capacity()
}

// OnlyZeroesLeft reports soft EOF. Word-packed storage makes the exact
// check cheap: the rest of the current word plus all following words.
func (r *WordReader) OnlyZeroesLeft() bool {
	if r.ReachedEnd() {
		return true
	}
	index := r.pos / WordBits
	if r.buffer[index]>>(r.pos%WordBits) != 0 {
		return false
	}
	for _, word := range r.buffer[index+1:] {
		if word != 0 {
			return false
		}
	}
	return true
}
