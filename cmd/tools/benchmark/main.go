package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/golang/snappy"

	"github.com/soltixdb/bitstream/internal/bitstream"
)

// Result holds the measured density for one series/parameter pair
type Result struct {
	Series       string
	ChunkLength  uint
	Exponent     uint
	EncodedBytes int
	BitsPerValue float64
}

func main() {
	// Parse flags
	count := flag.Int("count", 100000, "Number of values per series")
	seed := flag.Int64("seed", 1, "Random seed")
	chunksFlag := flag.String("chunks", "2,4,6,8", "Comma separated chunk lengths")
	exponent := flag.Uint("zigzag-exponent", 1, "ZigZag block exponent")
	flag.Parse()

	chunks, err := parseChunks(*chunksFlag)
	if err != nil {
		fmt.Printf("Error: invalid -chunks: %v\n", err)
		return
	}

	fmt.Printf("=== Bitstream Density Benchmark ===\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Values per series: %d\n", *count)
	fmt.Printf("  Chunk lengths: %v\n", chunks)
	fmt.Printf("  ZigZag exponent: %d\n", *exponent)
	fmt.Println()

	rng := rand.New(rand.NewSource(*seed))
	series := generateSeries(rng, *count)

	for _, s := range series {
		raw := rawBytes(s.values)
		snappyLen := len(snappy.Encode(nil, raw))

		fmt.Printf("--- Series: %s ---\n", s.name)
		fmt.Printf("  raw:         %9d bytes (64.00 bits/value)\n", len(raw))
		fmt.Printf("  snappy(raw): %9d bytes (%.2f bits/value)\n",
			snappyLen, bitsPerValue(snappyLen, len(s.values)))

		for _, chunkLength := range chunks {
			r := encodeSeries(s.name, s.values, chunkLength, *exponent)
			fmt.Printf("  chunked C=%-2d %9d bytes (%.2f bits/value)\n",
				r.ChunkLength, r.EncodedBytes, r.BitsPerValue)
		}
		fmt.Println()
	}
}

type series struct {
	name   string
	values []int64
}

// generateSeries builds synthetic integer series with the delta shapes a
// structural encoder typically emits
func generateSeries(rng *rand.Rand, count int) []series {
	constant := make([]int64, count)
	for i := range constant {
		constant[i] = 42
	}

	// Small deltas around a ramp, both signs.
	smallDelta := make([]int64, count)
	for i := range smallDelta {
		smallDelta[i] = rng.Int63n(17) - 8
	}

	medium := make([]int64, count)
	for i := range medium {
		medium[i] = rng.Int63n(1<<20) - (1 << 19)
	}

	random := make([]int64, count)
	for i := range random {
		random[i] = int64(rng.Uint64())
	}

	return []series{
		{"constant", constant},
		{"small-delta", smallDelta},
		{"medium", medium},
		{"random", random},
	}
}

// encodeSeries writes the series with the variable-width signed encoding
func encodeSeries(name string, values []int64, chunkLength, exponent uint) Result {
	w := bitstream.NewWordWriter(uint(len(values)) * 16)
	for _, v := range values {
		bitstream.WriteVariableWidthS64(w, v, chunkLength, exponent)
	}
	encoded := len(w.Bytes())
	return Result{
		Series:       name,
		ChunkLength:  chunkLength,
		Exponent:     exponent,
		EncodedBytes: encoded,
		BitsPerValue: float64(w.BitCount()) / float64(len(values)),
	}
}

// rawBytes lays the series out as fixed 8-byte little-endian values
func rawBytes(values []int64) []byte {
	out := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(out[i*8:], uint64(v))
	}
	return out
}

func bitsPerValue(numBytes, count int) float64 {
	return float64(numBytes) * 8 / float64(count)
}

func parseChunks(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	chunks := make([]uint, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n < 1 || n > 64 {
			return nil, fmt.Errorf("chunk length %d out of range [1, 64]", n)
		}
		chunks = append(chunks, uint(n))
	}
	return chunks, nil
}
