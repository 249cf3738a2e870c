// Package bitstream implements a bit-level binary codec: a word-packed
// writer/reader pair plus the zigzag and variable-width chunked encodings
// that make the produced streams dense.
//
// Terminology:
//   - Bits: a uint64 holding up to 64 bits, first bit is the lowest.
//   - Stream: a string of '0' and '1' read left to right, i.e. the first
//     bit is at the front. This is the order bits leave the encoder and is
//     the reverse of conventional binary printing.
//   - Word: the fixed 64-bit storage unit composing a buffer.
package bitstream

import "strings"

// WordBits is the width of the storage word.
const WordBits = 64

// NumBitsToNumWords converts a number of bits to the number of wordBits-sized
// chunks needed to store them. NumBitsToNumWords(n, 8) is the byte count.
func NumBitsToNumWords(numBits, wordBits int) int {
	return (numBits + wordBits - 1) / wordBits
}

// GetLowerBits returns val with all but the first numBits bits set to zero.
// numBits of 64 returns val unchanged (a shift by the full width is never
// performed).
func GetLowerBits(val uint64, numBits uint) uint64 {
	if numBits >= WordBits {
		return val
	}
	return val & ((1 << numBits) - 1)
}

// BitsToString converts the first numBits of bits to a left-to-right stream
// of '0' and '1'.
func BitsToString(bits uint64, numBits uint) string {
	var sb strings.Builder
	sb.Grow(int(numBits))
	for i := uint(0); i < numBits; i++ {
		if bits&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// StringToBits converts a left-to-right stream of '0' and '1' to bits.
// s must be at most 64 characters; any character other than '1' counts as
// a zero bit.
func StringToBits(s string) uint64 {
	var bits uint64
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// BufferToString converts a word buffer to a left-to-right stream of '0'
// and '1'.
func BufferToString(words []uint64) string {
	var sb strings.Builder
	sb.Grow(len(words) * WordBits)
	for _, word := range words {
		sb.WriteString(BitsToString(word, WordBits))
	}
	return sb.String()
}

// StringToBuffer converts a left-to-right stream of '0' and '1' to a word
// buffer, zero padding the trailing partial word.
func StringToBuffer(s string) []uint64 {
	words := make([]uint64, 0, NumBitsToNumWords(len(s), WordBits))
	for off := 0; off < len(s); off += WordBits {
		end := off + WordBits
		if end > len(s) {
			end = len(s)
		}
		words = append(words, StringToBits(s[off:end]))
	}
	return words
}

// PadToWord appends '0' characters to the stream until its length is a
// multiple of wordBits. Characters are only ever appended, never prepended.
func PadToWord(s string, wordBits int) string {
	tail := len(s) % wordBits
	if tail == 0 {
		return s
	}
	return s + strings.Repeat("0", wordBits-tail)
}
