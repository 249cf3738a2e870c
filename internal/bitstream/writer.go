package bitstream

import "encoding/binary"

// Writer is the minimal raw bit sink. Higher-level operations — the
// variable-width encoders, WriteString — are free functions composed over
// any implementation.
type Writer interface {
	// WriteBits writes the lower numBits of bits to the stream.
	// numBits must be no greater than 64.
	WriteBits(bits uint64, numBits uint)

	// BitCount returns the number of bits written so far.
	BitCount() uint
}

// WriteString writes a left-to-right stream of '0' and '1'.
// Note: "01" is written as 0x2, not 0x1 — the string represents bits in
// the order they leave the encoder, not a printed number.
func WriteString(w Writer, s string) {
	for off := 0; off < len(s); off += WordBits {
		end := off + WordBits
		if end > len(s) {
			end = len(s)
		}
		w.WriteBits(StringToBits(s[off:end]), uint(end-off))
	}
}

// WordWriter is an append-only bit sink backed by a growable buffer of
// 64-bit words. It is not safe for concurrent use.
type WordWriter struct {
	buffer []uint64
	// Total number of bits written so far. Named end as an analogy to the
	// end iterator: unused high bits of the last word are zero.
	end uint
}

// NewWordWriter creates an empty WordWriter with capacity reserved for
// reserveBits bits.
func NewWordWriter(reserveBits uint) *WordWriter {
	return &WordWriter{
		buffer: make([]uint64, 0, NumBitsToNumWords(int(reserveBits), WordBits)),
	}
}

// WriteBits writes the lower numBits of bits, splitting across the word
// boundary when needed and growing the buffer lazily. Previously written
// bits are never touched.
func (w *WordWriter) WriteBits(bits uint64, numBits uint) {
	if numBits > WordBits {
		panic("bitstream: WriteBits accepts at most 64 bits")
	}
	if numBits == 0 {
		return
	}
	bits = GetLowerBits(bits, numBits)
	offset := w.end % WordBits
	if offset == 0 {
		w.buffer = append(w.buffer, bits)
	} else {
		w.buffer[len(w.buffer)-1] |= bits << offset
		if offset+numBits > WordBits {
			// The write straddles the word boundary; the high part opens
			// the next word.
			w.buffer = append(w.buffer, bits>>(WordBits-offset))
		}
	}
	w.end += numBits
}

// BitCount returns the number of bits written so far.
func (w *WordWriter) BitCount() uint {
	return w.end
}

// ByteCount returns the number of bytes needed to hold the written bits.
func (w *WordWriter) ByteCount() uint {
	return uint(NumBitsToNumWords(int(w.end), 8))
}

// Bytes returns a copy of the written bits as a byte buffer of ByteCount()
// bytes. Words are laid out little-endian, so byte k carries stream bits
// 8k..8k+7 with the first bit lowest.
func (w *WordWriter) Bytes() []byte {
	out := make([]byte, len(w.buffer)*8)
	for i, word := range w.buffer {
		binary.LittleEndian.PutUint64(out[i*8:], word)
	}
	return out[:w.ByteCount()]
}

// Words returns the backing word buffer. Hand it to NewWordReader to read
// the finished stream back without copying; the writer must not be used
// afterwards.
func (w *WordWriter) Words() []uint64 {
	return w.buffer
}

// StreamPadded returns the written stream as a left-to-right string of '0'
// and '1', zero padded to a multiple of 64. Debugging aid, never a wire
// format.
func (w *WordWriter) StreamPadded() string {
	return BufferToString(w.buffer)
}
