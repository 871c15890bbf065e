package wavelet

import (
	"math/rand"
	"testing"
)

func lineRoundtrip[T Coeff](t *testing.T, k Kernel[T], n int) {
	t.Helper()
	rnd := rand.New(rand.NewSource(int64(n) + 7))
	in := make([]T, n)
	for i := range in {
		in[i] = T(rnd.Intn(2000) - 1000)
	}

	lpW := HalfPlusOne(n)
	hpW := Half(n)
	lp := make([]T, lpW)
	hp := make([]T, hpW)
	k.ForwardLine(n, in, 1, lp, hp)

	out := make([]T, n)
	k.InverseLine(n, lp, hp, out, 1)

	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("n=%d: mismatch at %d: got %d want %d", n, i, out[i], in[i])
		}
	}
}

func TestKernelsLineRoundtrip(t *testing.T) {
	kernels := map[string]Kernel[int16]{
		"haar":  Haar[int16]{},
		"cdf53": CDF53[int16]{},
		"dd137": DD137[int16]{},
	}
	for name, k := range kernels {
		k := k
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 17, 32, 33, 255, 256} {
				lineRoundtrip(t, k, n)
			}
		})
	}
}

func test2DRoundtrip[T Coeff](t *testing.T, k Kernel[T], w, h int) {
	t.Helper()
	rnd := rand.New(rand.NewSource(int64(w*1000 + h)))
	in := make([]T, w*h)
	for i := range in {
		in[i] = T(rnd.Intn(2000) - 1000)
	}

	lpW := HalfPlusOne(w)
	lpH := HalfPlusOne(h)

	aux := make([]T, w*h)
	HForward(k, w, h, in, w, aux, w)

	lifted := make([]T, w*h)
	VForward(k, w, h, aux, w, lifted, w)

	// Invert: VInverse undoes VForward, recovering aux's exact layout
	// (rows of [lp cols | hp cols]); HInverse then undoes HForward.
	recoveredAux := make([]T, w*h)
	VInverse(k, w, h, lifted[:lpH*w], lifted[lpH*w:], w, recoveredAux, w)

	recovered := make([]T, w*h)
	HInverse(k, w, h, recoveredAux, recoveredAux[lpW:], w, recovered, w)

	for i := range in {
		if in[i] != recovered[i] {
			t.Fatalf("w=%d h=%d: mismatch at %d: got %d want %d", w, h, i, recovered[i], in[i])
		}
	}
}

func TestKernels2DRoundtrip(t *testing.T) {
	kernels := map[string]Kernel[int16]{
		"haar":  Haar[int16]{},
		"cdf53": CDF53[int16]{},
		"dd137": DD137[int16]{},
	}
	sizes := [][2]int{{8, 8}, {9, 7}, {17, 33}, {5, 5}, {16, 1}, {1, 16}}
	for name, k := range kernels {
		k := k
		t.Run(name, func(t *testing.T) {
			for _, sz := range sizes {
				test2DRoundtrip(t, k, sz[0], sz[1])
			}
		})
	}
}
