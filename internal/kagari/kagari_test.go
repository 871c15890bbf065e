package kagari

import (
	"math/rand"
	"testing"
)

func TestZigZagBijection(t *testing.T) {
	for x := -32768; x <= 32767; x += 37 {
		v := int16(x)
		z := ZigZagEncode16(v)
		if z&0x8000 != 0 && v >= 0 {
			// zigzag of a non-negative value must itself fit unsigned fine;
			// just exercise the round trip below, this is a smoke check.
		}
		if got := ZigZagDecode16(z); got != v {
			t.Fatalf("ZigZagDecode16(ZigZagEncode16(%d)) = %d", v, got)
		}
	}
}

func TestZigZagAllValues(t *testing.T) {
	for x := -32768; x <= 32767; x++ {
		v := int16(x)
		if got := ZigZagDecode16(ZigZagEncode16(v)); got != v {
			t.Fatalf("roundtrip failed for %d: got %d", v, got)
		}
	}
}

func TestCompressDecompressRoundtrip(t *testing.T) {
	cases := [][]int16{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 5, 5, 5, 5},
		{1, 2, 3, 4, 5, 0, 0, 0, 0, 0, 6, 7},
		{-1, -2, -3, 0, 0, 0, 0, 0, 0, 1},
	}
	for _, coeffs := range cases {
		symbols := Compress(coeffs, 4096)
		out, ok := Decompress(symbols, len(coeffs), 4096)
		if !ok {
			t.Fatalf("Decompress failed for case %v", coeffs)
		}
		for i := range coeffs {
			if coeffs[i] != out[i] {
				t.Fatalf("mismatch at %d: got %d want %d (case %v)", i, out[i], coeffs[i], coeffs)
			}
		}
	}
}

func TestCompressDecompressRandomMultiBlock(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	coeffs := make([]int16, 10000)
	for i := range coeffs {
		if rnd.Intn(3) == 0 {
			coeffs[i] = 0
		} else {
			coeffs[i] = int16(rnd.Intn(200) - 100)
		}
	}
	symbols := Compress(coeffs, 256)
	out, ok := Decompress(symbols, len(coeffs), 256)
	if !ok {
		t.Fatalf("Decompress failed")
	}
	for i := range coeffs {
		if coeffs[i] != out[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, out[i], coeffs[i])
		}
	}
}

func TestCompressZeroRunIsOneTuple(t *testing.T) {
	// The running rle value starts at zero, so a block of zeros compresses
	// straight into the (rle_len, 1, [0]) remainder tuple with no leading
	// literal scan at all.
	coeffs := make([]int16, 50)
	symbols := Compress(coeffs, 4096)
	if len(symbols) != 3 {
		t.Fatalf("expected a single 3-symbol tuple for an all-zero block, got %d symbols: %v", len(symbols), symbols)
	}
	if symbols[0] != 49 || symbols[1] != 0 || symbols[2] != ZigZagEncode16(0) {
		t.Fatalf("unexpected tuple for all-zero block: %v", symbols)
	}
}

func TestDecompressTruncatedSymbolsReturnsNotOk(t *testing.T) {
	coeffs := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	symbols := Compress(coeffs, 4096)

	if _, ok := Decompress(symbols[:len(symbols)-1], len(coeffs), 4096); ok {
		t.Fatalf("Decompress should reject a truncated symbol stream")
	}
	if _, ok := Decompress(nil, len(coeffs), 4096); ok {
		t.Fatalf("Decompress should reject an empty symbol stream when coefficients are expected")
	}
}

func TestDecompressOverrunRunLengthReturnsNotOk(t *testing.T) {
	// A run length alone larger than the requested coefficient count must
	// be rejected instead of writing past the output block.
	symbols := []uint16{250, 0, 0}
	if _, ok := Decompress(symbols, 8, 4096); ok {
		t.Fatalf("Decompress should reject an overrunning run length")
	}
}

func TestNoneRoundtrip(t *testing.T) {
	coeffs := []int16{0, 1, -1, 32767, -32768, 42}
	data := EncodeNone(coeffs)
	out := DecodeNone(data)
	for i := range coeffs {
		if coeffs[i] != out[i] {
			t.Fatalf("None roundtrip mismatch at %d", i)
		}
	}
}
