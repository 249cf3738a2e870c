package bitstream

// Variable-width chunked encoding. A value of fixed total width W is
// emitted as chunkLength-bit chunks, least significant first, each chunk
// followed by a continuation bit: 1 — more chunks follow, 0 — last chunk.
// Once the cumulative emitted bits reach W the width itself terminates the
// stream: the final chunk is truncated to the bits that remain and its
// continuation bit is omitted. For example 255 at width 64 with chunk
// length 4 becomes 1111 1 1111 0.
//
// Signed variants first map the value through EncodeZigZagBlock and encode
// the result as unsigned of the same width. Reader and writer must agree
// on width, chunk length and zigzag exponent; the stream is not
// self-describing.

func writeVariableWidth(w Writer, val uint64, chunkLength, maxPayload uint) {
	if chunkLength == 0 {
		panic("bitstream: chunk length must be positive")
	}
	emitted := uint(0)
	for {
		n := chunkLength
		if n > maxPayload-emitted {
			n = maxPayload - emitted
		}
		w.WriteBits(val, n)
		val >>= n
		emitted += n
		if emitted >= maxPayload {
			// The full width has been written, no signal bit needed.
			return
		}
		if val == 0 {
			w.WriteBits(0, 1)
			return
		}
		w.WriteBits(1, 1)
	}
}

func readVariableWidth(r Reader, chunkLength, maxPayload uint) (uint64, bool) {
	if chunkLength == 0 {
		panic("bitstream: chunk length must be positive")
	}
	var val uint64
	consumed := uint(0)
	for {
		n := chunkLength
		if n > maxPayload-consumed {
			n = maxPayload - consumed
		}
		chunk, numRead := r.ReadBits(n)
		if numRead != n {
			// Truncated stream; no partial value is valid.
			return 0, false
		}
		val |= chunk << consumed
		consumed += n
		if consumed >= maxPayload {
			return val, true
		}
		more, numRead := r.ReadBits(1)
		if numRead != 1 {
			return 0, false
		}
		if more == 0 {
			return val, true
		}
	}
}

// WriteVariableWidthU64 writes val in chunkLength-bit chunks with
// continuation bits.
func WriteVariableWidthU64(w Writer, val uint64, chunkLength uint) {
	writeVariableWidth(w, val, chunkLength, 64)
}

// WriteVariableWidthU32 writes val in chunkLength-bit chunks with
// continuation bits.
func WriteVariableWidthU32(w Writer, val uint32, chunkLength uint) {
	writeVariableWidth(w, uint64(val), chunkLength, 32)
}

// WriteVariableWidthU16 writes val in chunkLength-bit chunks with
// continuation bits.
func WriteVariableWidthU16(w Writer, val uint16, chunkLength uint) {
	writeVariableWidth(w, uint64(val), chunkLength, 16)
}

// WriteVariableWidthU8 writes val in chunkLength-bit chunks with
// continuation bits.
func WriteVariableWidthU8(w Writer, val uint8, chunkLength uint) {
	writeVariableWidth(w, uint64(val), chunkLength, 8)
}

// WriteVariableWidthS64 zigzag-transforms val with zigzagExponent and
// writes the result in chunkLength-bit chunks with continuation bits.
func WriteVariableWidthS64(w Writer, val int64, chunkLength, zigzagExponent uint) {
	WriteVariableWidthU64(w, EncodeZigZagBlock(val, zigzagExponent), chunkLength)
}

// WriteVariableWidthS32 zigzag-transforms val with zigzagExponent and
// writes the result in chunkLength-bit chunks with continuation bits.
func WriteVariableWidthS32(w Writer, val int32, chunkLength, zigzagExponent uint) {
	WriteVariableWidthU32(w, uint32(EncodeZigZagBlock(int64(val), zigzagExponent)), chunkLength)
}

// WriteVariableWidthS16 zigzag-transforms val with zigzagExponent and
// writes the result in chunkLength-bit chunks with continuation bits.
func WriteVariableWidthS16(w Writer, val int16, chunkLength, zigzagExponent uint) {
	WriteVariableWidthU16(w, uint16(EncodeZigZagBlock(int64(val), zigzagExponent)), chunkLength)
}

// WriteVariableWidthS8 zigzag-transforms val with zigzagExponent and
// writes the result in chunkLength-bit chunks with continuation bits.
func WriteVariableWidthS8(w Writer, val int8, chunkLength, zigzagExponent uint) {
	WriteVariableWidthU8(w, uint8(EncodeZigZagBlock(int64(val), zigzagExponent)), chunkLength)
}

// ReadVariableWidthU64 reads a value written by WriteVariableWidthU64 with
// the same chunkLength. ok is false if the stream ends prematurely.
func ReadVariableWidthU64(r Reader, chunkLength uint) (uint64, bool) {
	return readVariableWidth(r, chunkLength, 64)
}

// ReadVariableWidthU32 reads a value written by WriteVariableWidthU32 with
// the same chunkLength. ok is false if the stream ends prematurely.
func ReadVariableWidthU32(r Reader, chunkLength uint) (uint32, bool) {
	val, ok := readVariableWidth(r, chunkLength, 32)
	return uint32(val), ok
}

// ReadVariableWidthU16 reads a value written by WriteVariableWidthU16 with
// the same chunkLength. ok is false if the stream ends prematurely.
func ReadVariableWidthU16(r Reader, chunkLength uint) (uint16, bool) {
	val, ok := readVariableWidth(r, chunkLength, 16)
	return uint16(val), ok
}

// ReadVariableWidthU8 reads a value written by WriteVariableWidthU8 with
// the same chunkLength. ok is false if the stream ends prematurely.
func ReadVariableWidthU8(r Reader, chunkLength uint) (uint8, bool) {
	val, ok := readVariableWidth(r, chunkLength, 8)
	return uint8(val), ok
}

// ReadVariableWidthS64 reads a value written by WriteVariableWidthS64 with
// the same chunkLength and zigzagExponent.
func ReadVariableWidthS64(r Reader, chunkLength, zigzagExponent uint) (int64, bool) {
	val, ok := readVariableWidth(r, chunkLength, 64)
	if !ok {
		return 0, false
	}
	return DecodeZigZagBlock(val, zigzagExponent), true
}

// ReadVariableWidthS32 reads a value written by WriteVariableWidthS32 with
// the same chunkLength and zigzagExponent.
func ReadVariableWidthS32(r Reader, chunkLength, zigzagExponent uint) (int32, bool) {
	val, ok := readVariableWidth(r, chunkLength, 32)
	if !ok {
		return 0, false
	}
	return int32(DecodeZigZagBlock(val, zigzagExponent)), true
}

// ReadVariableWidthS16 reads a value written by WriteVariableWidthS16 with
// the same chunkLength and zigzagExponent.
func ReadVariableWidthS16(r Reader, chunkLength, zigzagExponent uint) (int16, bool) {
	val, ok := readVariableWidth(r, chunkLength, 16)
	if !ok {
		return 0, false
	}
	return int16(DecodeZigZagBlock(val, zigzagExponent)), true
}

// ReadVariableWidthS8 reads a value written by WriteVariableWidthS8 with
// the same chunkLength and zigzagExponent.
func ReadVariableWidthS8(r Reader, chunkLength, zigzagExponent uint) (int8, bool) {
	val, ok := readVariableWidth(r, chunkLength, 8)
	if !ok {
		return 0, false
	}
	return int8(DecodeZigZagBlock(val, zigzagExponent)), true
}
