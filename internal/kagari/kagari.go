// Package kagari implements a run-length plus zigzag block codec that
// sits between quantized wavelet coefficients and the rANS entropy coder.
// It maps a plane of signed coefficients into a stream of 16-bit symbols:
// alternating (run length, literal length, literals...) tuples, with the
// literals zigzag-mapped to unsigned so small magnitudes near zero cluster
// together for the entropy coder that follows.
package kagari

// RLETrigger stops a literal scan once this many consecutive repeats are
// seen, so the next block can resume with a run instead of trailing
// literals.
const RLETrigger = 4

// DefaultBlockLength is the block size used when the caller does not need
// a specific one; it keeps each block's RLE state independent without
// fragmenting the symbol stream into too many short tuples.
const DefaultBlockLength = 4096

// ZigZagEncode16 maps a signed 16-bit coefficient to an unsigned value,
// clustering small magnitudes (both positive and negative) near zero.
func ZigZagEncode16(x int16) uint16 {
	return uint16(x<<1) ^ uint16(x>>15)
}

// ZigZagDecode16 is the inverse of ZigZagEncode16.
func ZigZagDecode16(value uint16) int16 {
	return int16(value>>1) ^ -int16(value&1)
}

// Compress maps coeffs (split into fixed-length blocks of blockLength,
// the last block possibly shorter) into the Kagari tuple-symbol stream.
func Compress(coeffs []int16, blockLength int) []uint16 {
	if blockLength <= 0 {
		blockLength = DefaultBlockLength
	}

	out := make([]uint16, 0, len(coeffs)/4+4)
	for start := 0; start < len(coeffs); start += blockLength {
		end := start + blockLength
		if end > len(coeffs) {
			end = len(coeffs)
		}
		compressBlock(coeffs[start:end], &out)
	}
	return out
}

func compressBlock(block []int16, out *[]uint16) {
	n := len(block)
	i := 0
	rleLength := 0
	var rleValue int16

	for i < n {
		if block[i] == rleValue {
			rleLength++
			i++
			continue
		}

		// Scan forward for the literal run, stopping once RLETrigger
		// consecutive repeats are seen (those belong to the next run).
		literalLength := 0
		repetitions := 0
		for u := i + 1; u < n && repetitions < RLETrigger; u++ {
			literalLength++
			if block[u] == block[u-1] {
				repetitions++
			} else {
				repetitions = 0
			}
		}
		if repetitions == RLETrigger {
			literalLength -= RLETrigger
		}

		emit(out, uint32(rleLength), uint32(literalLength+1), block[i:i+literalLength+1])

		rleValue = block[i+literalLength]
		rleLength = 0
		i += literalLength + 1
	}

	// A block always ends on a literal so the decoder's loop terminates
	// cleanly on a known element, even when it ends mid-run.
	if rleLength != 0 {
		emit(out, uint32(rleLength-1), 1, []int16{rleValue})
	}
}

func emit(out *[]uint16, rleLength, literalLength uint32, literals []int16) {
	*out = append(*out, uint16(rleLength), uint16(literalLength-1))
	for _, v := range literals {
		*out = append(*out, ZigZagEncode16(v))
	}
}

// Decompress reconstructs totalCoeffs signed coefficients from the Kagari
// tuple-symbol stream produced by Compress with the same blockLength. It
// reports ok=false, rather than panicking, when symbols is truncated or
// a tuple's run/literal length would overrun a block — both reachable
// with a corrupted tile payload.
func Decompress(symbols []uint16, totalCoeffs int, blockLength int) (out []int16, ok bool) {
	if blockLength <= 0 {
		blockLength = DefaultBlockLength
	}
	if totalCoeffs < 0 {
		return nil, false
	}

	out = make([]int16, totalCoeffs)
	cur := &symbolCursor{symbols: symbols}

	produced := 0
	for produced < totalCoeffs {
		n := blockLength
		if totalCoeffs-produced < n {
			n = totalCoeffs - produced
		}
		if !decompressBlock(cur, out[produced:produced+n]) {
			return nil, false
		}
		produced += n
	}
	return out, true
}

type symbolCursor struct {
	symbols []uint16
	pos     int
}

func (c *symbolCursor) next() (uint16, bool) {
	if c.pos >= len(c.symbols) {
		return 0, false
	}
	v := c.symbols[c.pos]
	c.pos++
	return v, true
}

func decompressBlock(cur *symbolCursor, block []int16) bool {
	var rleValue int16
	pos := 0

	for pos < len(block) {
		rleLengthSym, ok := cur.next()
		if !ok {
			return false
		}
		literalLengthSym, ok := cur.next()
		if !ok {
			return false
		}
		rleLength := int(rleLengthSym)
		literalLength := int(literalLengthSym) + 1

		for i := 0; i < rleLength; i++ {
			if pos >= len(block) {
				return false
			}
			block[pos] = rleValue
			pos++
		}
		for i := 0; i < literalLength; i++ {
			if pos >= len(block) {
				return false
			}
			v, ok := cur.next()
			if !ok {
				return false
			}
			block[pos] = ZigZagDecode16(v)
			pos++
		}
		if pos == 0 {
			return false
		}
		rleValue = block[pos-1]
	}
	return true
}
