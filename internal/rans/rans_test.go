package rans

import (
	"math/rand"
	"testing"

	"github.com/baAlex/ako-go/internal/bio"
)

func TestRoundtripSmall(t *testing.T) {
	input := []uint16{0, 0, 1, 2, 3, 0, 0, 0, 5000, 65535, 12, 12, 12}

	words := make([]uint32, 4096)
	w := bio.NewWriter(words)
	if err := Encode(w, input); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	n := w.Finish()

	r := bio.NewReader(words[:n])
	output := make([]uint16, len(input))
	if err := Decode(r, output); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for i := range input {
		if input[i] != output[i] {
			t.Fatalf("index %d: got %d, want %d", i, output[i], input[i])
		}
	}
}

func TestRoundtripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	input := make([]uint16, 2000)
	for i := range input {
		// Skew toward small values, matching a real zigzag-mapped coefficient
		// distribution, with occasional large escapes.
		if rnd.Intn(20) == 0 {
			input[i] = uint16(rnd.Intn(65536))
		} else {
			input[i] = uint16(rnd.Intn(64))
		}
	}

	words := make([]uint32, 1<<16)
	w := bio.NewWriter(words)
	if err := Encode(w, input); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	n := w.Finish()

	r := bio.NewReader(words[:n])
	output := make([]uint16, len(input))
	if err := Decode(r, output); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for i := range input {
		if input[i] != output[i] {
			t.Fatalf("index %d: got %d, want %d", i, output[i], input[i])
		}
	}
}

func TestDecodeCorruptStream(t *testing.T) {
	input := []uint16{1, 2, 3, 4, 5}
	words := make([]uint32, 256)
	w := bio.NewWriter(words)
	if err := Encode(w, input); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	n := w.Finish()

	words[0] ^= 0xFFFFFFFF // flip every bit of the first word

	r := bio.NewReader(words[:n])
	output := make([]uint16, len(input))
	err := Decode(r, output)
	if err == nil {
		t.Fatalf("expected Decode to reject a corrupted stream")
	}
}

func TestEncodeSymbolMapping(t *testing.T) {
	for v := uint16(0); v < 247; v++ {
		if code := encodeSymbol(v); code != uint8(v) {
			t.Fatalf("encodeSymbol(%d) = %d, want %d", v, code, v)
		}
	}
	// Escape range must still resolve to a known Cdf entry.
	for _, v := range []uint16{247, 1000, 4096, 65535} {
		code := encodeSymbol(v)
		root := rootOfCode(code)
		sl := suffixLengthOfCode(code)
		e := findByRootSuffix(root, sl)
		if uint32(e.root)+uint32(v-root) != uint32(v) {
			t.Fatalf("root/suffix decomposition broken for %d", v)
		}
	}
}
