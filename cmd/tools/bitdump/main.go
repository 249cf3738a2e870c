package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soltixdb/bitstream/internal/bitstream"
	"github.com/soltixdb/bitstream/internal/config"
	"github.com/soltixdb/bitstream/internal/logging"
)

func main() {
	// Command line flags
	input := flag.String("input", "", "Input file to dump")
	hexData := flag.String("hex", "", "Inline hex data instead of a file")
	configPath := flag.String("config", "", "Config file path (optional)")
	profileName := flag.String("profile", "default", "Encoding profile for -decode")
	decode := flag.Bool("decode", false, "Decode variable-width values using the profile")
	maxWords := flag.Int("max-words", 16, "Maximum number of words to dump (0 = all)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Global().Fatal("Failed to load config", "error", err)
	}
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	logging.SetGlobal(log)

	data, err := readInput(*input, *hexData)
	if err != nil {
		log.Fatal("Failed to read input", "error", err)
	}
	if len(data) == 0 {
		log.Warn("Input stream is empty")
		return
	}
	log.Info("Loaded stream", "bytes", len(data), "bits", len(data)*8)

	dumpWords(data, *maxWords)

	if *decode {
		profile, err := cfg.Profile(*profileName)
		if err != nil {
			log.Fatal("Unknown profile", "error", err)
		}
		decodeStream(data, profile, log)
	}
}

// readInput returns the stream bytes from a file or from inline hex
func readInput(path, hexData string) ([]byte, error) {
	if hexData != "" {
		return hex.DecodeString(strings.TrimSpace(hexData))
	}
	if path == "" {
		return nil, fmt.Errorf("either -input or -hex is required")
	}
	return os.ReadFile(path)
}

// dumpWords prints the stream word by word as left-to-right bit strings
func dumpWords(data []byte, maxWords int) {
	fmt.Printf("=== Bit stream dump ===\n")
	reader := bitstream.NewWordReaderFromBytes(data)
	word := 0
	for !reader.ReachedEnd() {
		if maxWords > 0 && word >= maxWords {
			fmt.Printf("... %d more words ...\n", bitstream.NumBitsToNumWords(len(data)*8, bitstream.WordBits)-word)
			break
		}
		fmt.Printf("word %4d: %s\n", word, bitstream.ReadString(reader, 64))
		word++
	}
}

// decodeStream replays the profile's field classes in order, cycling until
// only zero padding remains
func decodeStream(data []byte, profile config.Profile, log *logging.Logger) {
	reader := bitstream.NewWordReaderFromBytes(data)
	fmt.Printf("\n=== Decoded values (%d field classes, cycled) ===\n", len(profile.Fields))

	index := 0
	for !reader.OnlyZeroesLeft() {
		field := profile.Fields[index%len(profile.Fields)]
		if field.Signed {
			val, ok := readSigned(reader, field)
			if !ok {
				log.Warn("Stream ended mid-value", "field", field.Name, "index", index)
				return
			}
			fmt.Printf("%6d %s = %d\n", index, field.Name, val)
		} else {
			val, ok := readUnsigned(reader, field)
			if !ok {
				log.Warn("Stream ended mid-value", "field", field.Name, "index", index)
				return
			}
			fmt.Printf("%6d %s = %d\n", index, field.Name, val)
		}
		index++
	}
	log.Info("Decode finished", "values", index)
}

func readUnsigned(r bitstream.Reader, f config.FieldClass) (uint64, bool) {
	switch f.Width {
	case 8:
		v, ok := bitstream.ReadVariableWidthU8(r, f.ChunkLength)
		return uint64(v), ok
	case 16:
		v, ok := bitstream.ReadVariableWidthU16(r, f.ChunkLength)
		return uint64(v), ok
	case 32:
		v, ok := bitstream.ReadVariableWidthU32(r, f.ChunkLength)
		return uint64(v), ok
	default:
		return bitstream.ReadVariableWidthU64(r, f.ChunkLength)
	}
}

func readSigned(r bitstream.Reader, f config.FieldClass) (int64, bool) {
	switch f.Width {
	case 8:
		v, ok := bitstream.ReadVariableWidthS8(r, f.ChunkLength, f.ZigZagExponent)
		return int64(v), ok
	case 16:
		v, ok := bitstream.ReadVariableWidthS16(r, f.ChunkLength, f.ZigZagExponent)
		return int64(v), ok
	case 32:
		v, ok := bitstream.ReadVariableWidthS32(r, f.ChunkLength, f.ZigZagExponent)
		return int64(v), ok
	default:
		return bitstream.ReadVariableWidthS64(r, f.ChunkLength, f.ZigZagExponent)
	}
}
