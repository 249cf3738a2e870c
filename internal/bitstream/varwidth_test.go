package bitstream

import "testing"

// =============================================================================
// Encoding layout
// =============================================================================

func TestWriteVariableWidthU64_Layout(t *testing.T) {
	tests := []struct {
		name        string
		val         uint64
		chunkLength uint
		expected    string
	}{
		// 255: two all-one nibbles, continuation bits 1 then 0.
		{"U64_255_Chunk4", 255, 4, "1111111110"},
		{"U64_Zero_Chunk4", 0, 4, "00000"},
		{"U64_One_Chunk1", 1, 1, "10"},
		{"U64_One_Chunk4", 1, 4, "10000"},
		// 5 = 101, chunk 2: "10" 1 "10" 0.
		{"U64_Five_Chunk2", 5, 2, "101100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWordWriter(64)
			WriteVariableWidthU64(w, tt.val, tt.chunkLength)

			if w.BitCount() != uint(len(tt.expected)) {
				t.Fatalf("Expected %d bits, got %d", len(tt.expected), w.BitCount())
			}
			if got := w.StreamPadded()[:w.BitCount()]; got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWriteVariableWidthU8_WidthTerminates(t *testing.T) {
	// At width 8 the second nibble exhausts the payload, so its
	// continuation bit is omitted: nine one bits, not ten.
	w := NewWordWriter(64)
	WriteVariableWidthU8(w, 255, 4)

	if w.BitCount() != 9 {
		t.Fatalf("Expected 9 bits, got %d", w.BitCount())
	}
	if got := w.StreamPadded()[:9]; got != "111111111" {
		t.Errorf("Expected \"111111111\", got %q", got)
	}
}

func TestWriteVariableWidthU8_TruncatedFinalChunk(t *testing.T) {
	// Width 8 with chunk 3: chunks of 3, 3 and a final truncated 2.
	w := NewWordWriter(64)
	WriteVariableWidthU8(w, 255, 3)

	// 111 1 111 1 11
	if w.BitCount() != 10 {
		t.Fatalf("Expected 10 bits, got %d", w.BitCount())
	}
	if got := w.StreamPadded()[:10]; got != "1111111111" {
		t.Errorf("Expected \"1111111111\", got %q", got)
	}

	r := NewWordReader(w.Words())
	val, ok := ReadVariableWidthU8(r, 3)
	if !ok {
		t.Fatal("Decoding failed")
	}
	if val != 255 {
		t.Errorf("Expected 255, got %d", val)
	}
}

func TestWriteVariableWidth_ChunkAtFullWidth(t *testing.T) {
	// A chunk length equal to the width writes the raw value, no signal bit.
	w := NewWordWriter(64)
	WriteVariableWidthU64(w, 0xDEADBEEFCAFEBABE, 64)

	if w.BitCount() != 64 {
		t.Fatalf("Expected 64 bits, got %d", w.BitCount())
	}
	r := NewWordReader(w.Words())
	val, ok := ReadVariableWidthU64(r, 64)
	if !ok || val != 0xDEADBEEFCAFEBABE {
		t.Errorf("Expected 0xDEADBEEFCAFEBABE, got 0x%016X (ok=%v)", val, ok)
	}
}

func TestWriteVariableWidth_ZeroChunkPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for chunk length 0")
		}
	}()
	WriteVariableWidthU64(NewWordWriter(64), 1, 0)
}

// =============================================================================
// Round trips
// =============================================================================

func TestVariableWidthU8_RoundTripExhaustive(t *testing.T) {
	for chunkLength := uint(1); chunkLength <= 16; chunkLength++ {
		w := NewWordWriter(16 * 256)
		for v := 0; v < 256; v++ {
			WriteVariableWidthU8(w, uint8(v), chunkLength)
		}
		r := NewWordReader(w.Words())
		for v := 0; v < 256; v++ {
			got, ok := ReadVariableWidthU8(r, chunkLength)
			if !ok {
				t.Fatalf("Chunk %d: decoding %d failed", chunkLength, v)
			}
			if got != uint8(v) {
				t.Fatalf("Chunk %d: expected %d, got %d", chunkLength, v, got)
			}
		}
	}
}

func TestVariableWidthU16_RoundTripExhaustive(t *testing.T) {
	for _, chunkLength := range []uint{1, 2, 3, 5, 7, 8, 15, 16, 17, 32} {
		w := NewWordWriter(1 << 20)
		for v := 0; v < 65536; v++ {
			WriteVariableWidthU16(w, uint16(v), chunkLength)
		}
		r := NewWordReader(w.Words())
		for v := 0; v < 65536; v++ {
			got, ok := ReadVariableWidthU16(r, chunkLength)
			if !ok {
				t.Fatalf("Chunk %d: decoding %d failed", chunkLength, v)
			}
			if got != uint16(v) {
				t.Fatalf("Chunk %d: expected %d, got %d", chunkLength, v, got)
			}
		}
	}
}

func TestVariableWidthU32_RoundTripSampled(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 15, 16, 255, 256, 65535, 65536, 1 << 24, 0xDEADBEEF, 0xFFFFFFFF}
	for chunkLength := uint(1); chunkLength <= 32; chunkLength++ {
		w := NewWordWriter(1024)
		for _, v := range values {
			WriteVariableWidthU32(w, v, chunkLength)
		}
		r := NewWordReader(w.Words())
		for _, v := range values {
			got, ok := ReadVariableWidthU32(r, chunkLength)
			if !ok {
				t.Fatalf("Chunk %d: decoding %d failed", chunkLength, v)
			}
			if got != v {
				t.Fatalf("Chunk %d: expected %d, got %d", chunkLength, v, got)
			}
		}
	}
}

func TestVariableWidthU64_RoundTripSampled(t *testing.T) {
	values := []uint64{
		0, 1, 2, 3, 63, 64, 255, 1000, 1 << 20, 1 << 33,
		0xDEADBEEFCAFEBABE, 0xFFFFFFFFFFFFFFFF,
	}
	for chunkLength := uint(1); chunkLength <= 64; chunkLength++ {
		w := NewWordWriter(4096)
		for _, v := range values {
			WriteVariableWidthU64(w, v, chunkLength)
		}
		r := NewWordReader(w.Words())
		for _, v := range values {
			got, ok := ReadVariableWidthU64(r, chunkLength)
			if !ok {
				t.Fatalf("Chunk %d: decoding %d failed", chunkLength, v)
			}
			if got != v {
				t.Fatalf("Chunk %d: expected %d, got %d", chunkLength, v, got)
			}
		}
	}
}

func TestVariableWidthSigned_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, 100, -100, 1 << 30, -(1 << 30)}
	exponents := []uint{0, 1, 2, 4, 8}
	for _, exp := range exponents {
		for _, chunkLength := range []uint{1, 3, 4, 8} {
			w := NewWordWriter(4096)
			for _, v := range values {
				WriteVariableWidthS64(w, v, chunkLength, exp)
			}
			r := NewWordReader(w.Words())
			for _, v := range values {
				got, ok := ReadVariableWidthS64(r, chunkLength, exp)
				if !ok {
					t.Fatalf("Chunk %d exp %d: decoding %d failed", chunkLength, exp, v)
				}
				if got != v {
					t.Fatalf("Chunk %d exp %d: expected %d, got %d", chunkLength, exp, v, got)
				}
			}
		}
	}
}

func TestVariableWidthSignedNarrow_RoundTrip(t *testing.T) {
	w := NewWordWriter(1024)
	s8s := []int8{0, 1, -1, 127, -128}
	s16s := []int16{0, -1, 300, -300, 32767, -32768}
	s32s := []int32{0, -1, 70000, -70000, 1 << 30, -(1 << 30)}
	for _, v := range s8s {
		WriteVariableWidthS8(w, v, 4, 1)
	}
	for _, v := range s16s {
		WriteVariableWidthS16(w, v, 4, 2)
	}
	for _, v := range s32s {
		WriteVariableWidthS32(w, v, 6, 3)
	}

	r := NewWordReader(w.Words())
	for _, v := range s8s {
		got, ok := ReadVariableWidthS8(r, 4, 1)
		if !ok || got != v {
			t.Fatalf("S8: expected %d, got %d (ok=%v)", v, got, ok)
		}
	}
	for _, v := range s16s {
		got, ok := ReadVariableWidthS16(r, 4, 2)
		if !ok || got != v {
			t.Fatalf("S16: expected %d, got %d (ok=%v)", v, got, ok)
		}
	}
	for _, v := range s32s {
		got, ok := ReadVariableWidthS32(r, 6, 3)
		if !ok || got != v {
			t.Fatalf("S32: expected %d, got %d (ok=%v)", v, got, ok)
		}
	}
}

// =============================================================================
// Truncated streams
// =============================================================================

func TestReadVariableWidth_EmptyStreamFails(t *testing.T) {
	r := NewWordReader(nil)
	if _, ok := ReadVariableWidthU64(r, 4); ok {
		t.Error("Expected failure on empty stream")
	}
}

func TestReadVariableWidth_TruncatedChunkFails(t *testing.T) {
	// Leave 2 bits of capacity; a 4-bit chunk cannot be read.
	r := NewWordReader([]uint64{0xFFFFFFFFFFFFFFFF})
	r.ReadBits(62)

	if _, ok := ReadVariableWidthU64(r, 4); ok {
		t.Error("Expected failure on truncated chunk")
	}
}

func TestReadVariableWidth_MissingContinuationChunkFails(t *testing.T) {
	// 5 bits remain: one full chunk and a continuation bit of 1, then the
	// stream ends before the promised next chunk.
	r := NewWordReader([]uint64{0xFFFFFFFFFFFFFFFF})
	r.ReadBits(59)

	if _, ok := ReadVariableWidthU64(r, 4); ok {
		t.Error("Expected failure when the continued chunk is missing")
	}
}

func TestReadVariableWidth_TruncatedSignedFails(t *testing.T) {
	r := NewWordReader([]uint64{0xFFFFFFFFFFFFFFFF})
	r.ReadBits(62)

	if _, ok := ReadVariableWidthS64(r, 4, 2); ok {
		t.Error("Expected failure on truncated signed stream")
	}
}
