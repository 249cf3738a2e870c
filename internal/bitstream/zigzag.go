package bitstream

// EncodeZigZag encodes a signed integer as unsigned in zigzag order:
//
//	 0 -> 0
//	-1 -> 1
//	 1 -> 2
//	-2 -> 3
//	 2 -> 4
//
// Small magnitudes of either sign map to small unsigned values, which is
// what the variable-width encoder wants: -1 is 0xFF...FF and would need
// every chunk, its zigzag form needs one.
func EncodeZigZag(val int64) uint64 {
	// The arithmetic right shift replicates the sign bit into all positions.
	return uint64(val<<1) ^ uint64(val>>63)
}

// DecodeZigZag decodes a signed integer encoded with EncodeZigZag.
func DecodeZigZag(val uint64) int64 {
	if val&1 != 0 {
		// Negative: 1 -> -1, 3 -> -2, 5 -> -3.
		return -1 - int64(val>>1)
	}
	// Non-negative: 0 -> 0, 2 -> 1, 4 -> 2.
	return int64(val >> 1)
}

// EncodeZigZagBlock is a generalized EncodeZigZag transforming values in
// blocks of 2^blockExponent, keeping that many low magnitude bits in place.
// Consecutive values of nearby magnitude then differ only in their low
// bits, so deltas in either sign direction stay numerically close to zero.
// A blockExponent of zero degenerates into plain EncodeZigZag.
//
// Order for blockExponent 1: 0, 1, -1, -2, 2, 3, -3, -4, 4, 5, ...
// Order for blockExponent 2: 0, 1, 2, 3, -1, -2, -3, -4, 4, 5, ...
//
// blockExponent must be below 64.
func EncodeZigZagBlock(val int64, blockExponent uint) uint64 {
	if blockExponent >= 64 {
		panic("bitstream: zigzag block exponent must be below 64")
	}
	var mag uint64
	if val >= 0 {
		mag = uint64(val)
	} else {
		mag = uint64(-(val + 1))
	}
	blockNum := (mag >> blockExponent) << 1
	if val < 0 {
		blockNum |= 1
	}
	pos := GetLowerBits(mag, blockExponent)
	return (blockNum << blockExponent) + pos
}

// DecodeZigZagBlock decodes a signed integer encoded with
// EncodeZigZagBlock. blockExponent must match the encoding side and be
// below 64.
func DecodeZigZagBlock(val uint64, blockExponent uint) int64 {
	if blockExponent >= 64 {
		panic("bitstream: zigzag block exponent must be below 64")
	}
	blockNum := val >> blockExponent
	pos := GetLowerBits(val, blockExponent)
	if blockNum&1 != 0 {
		// Negative block.
		return -1 - int64((blockNum>>1)<<blockExponent) - int64(pos)
	}
	return int64((blockNum>>1)<<blockExponent + pos)
}
