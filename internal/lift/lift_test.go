package lift

import (
	"math/rand"
	"testing"

	"github.com/baAlex/ako-go/internal/wavelet"
)

func TestPlaneRoundtrip(t *testing.T) {
	kernels := map[string]wavelet.Kernel[int16]{
		"haar":  wavelet.Haar[int16]{},
		"cdf53": wavelet.CDF53[int16]{},
	}
	sizes := [][2]int{{16, 16}, {9, 7}, {33, 17}, {4, 4}, {1, 8}, {8, 1}, {5, 5}}

	for name, k := range kernels {
		k := k
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			rnd := rand.New(rand.NewSource(int64(w*7919 + h)))

			original := make([]int16, w*h)
			for i := range original {
				original[i] = int16(rnd.Intn(2000) - 1000)
			}

			plane := make([]int16, w*h)
			copy(plane, original)
			aux := make([]int16, w*h)

			Plane(k, w, h, plane, aux)
			Unplane(k, w, h, plane, aux)

			for i := range original {
				if plane[i] != original[i] {
					t.Fatalf("%s %dx%d: mismatch at %d: got %d want %d", name, w, h, i, plane[i], original[i])
				}
			}
		}
	}
}

func TestLevelsNo(t *testing.T) {
	cases := []struct{ w, h, want int }{
		{1, 1, 0},
		{2, 2, 1},
		{16, 16, 4},
		{9, 7, 3},
	}
	for _, c := range cases {
		if got := LevelsNo(c.w, c.h); got != c.want {
			t.Fatalf("LevelsNo(%d,%d) = %d, want %d", c.w, c.h, got, c.want)
		}
	}
}
