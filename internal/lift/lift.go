// Package lift drives the multi-level 2D wavelet transform over a tile's
// planar coefficient buffer: it recurses the lowpass quadrant inward level
// by level, and unwinds the same recursion outward in reverse to rebuild
// the original plane. Quadrant bookkeeping follows the half-plus-one rule
// so non-power-of-two tile extents are handled without padding.
package lift

import "github.com/baAlex/ako-go/internal/wavelet"

// LevelsNo returns the number of lift levels a width x height plane goes
// through before either dimension's lowpass would fall to 1.
func LevelsNo(width, height int) int {
	w, h := width, height
	n := 0
	for w > 1 && h > 1 {
		w = wavelet.HalfPlusOne(w)
		h = wavelet.HalfPlusOne(h)
		n++
	}
	return n
}

// Plane lifts a single channel plane in place: in holds width*height
// coefficients in row-major order, aux is scratch storage of the same
// size. After Plane returns, in holds the quadrant-decomposed result: the
// deepest level's A (lowpass) quadrant occupies the top-left corner, with
// each level's B/C/D detail quadrants surrounding the next level's square
// in the usual JPEG2000-style recursive layout.
func Plane[T wavelet.Coeff](k wavelet.Kernel[T], width, height int, in, aux []T) {
	w, h := width, height
	for {
		lpW, lpH := wavelet.HalfPlusOne(w), wavelet.HalfPlusOne(h)
		if w <= 1 || h <= 1 {
			break
		}

		// Horizontal forward into the auxiliary buffer, row by row across
		// the active w x h corner of the plane (stride stays `width`).
		wavelet.HForward(k, w, h, viewRows(in, width, h), width, viewRows(aux, width, h), width)

		// Vertical forward back into the main buffer, producing the four
		// quadrants of this level.
		wavelet.VForward(k, w, h, viewRows(aux, width, h), width, viewRows(in, width, h), width)

		if lpW <= 1 || lpH <= 1 {
			break
		}
		w, h = lpW, lpH
	}
}

// Unplane is the exact inverse of Plane, run from the innermost level
// outward.
func Unplane[T wavelet.Coeff](k wavelet.Kernel[T], width, height int, in, aux []T) {
	levels := levelDims(width, height)
	for i := len(levels) - 1; i >= 0; i-- {
		w, h := levels[i][0], levels[i][1]
		lpH := wavelet.HalfPlusOne(h)
		lpW := wavelet.HalfPlusOne(w)

		view := viewRows(in, width, h)
		wavelet.VInverse(k, w, h, view[:lpH*width], view[lpH*width:], width, viewRows(aux, width, h), width)
		wavelet.HInverse(k, w, h, viewRows(aux, width, h), viewRows(aux, width, h)[lpW:], width, view, width)
	}
}

func levelDims(width, height int) [][2]int {
	var dims [][2]int
	w, h := width, height
	for w > 1 && h > 1 {
		dims = append(dims, [2]int{w, h})
		w, h = wavelet.HalfPlusOne(w), wavelet.HalfPlusOne(h)
	}
	return dims
}

// viewRows returns the first rows*stride elements of buf, i.e. the active
// h-row window of a plane whose full allocation has `stride` columns.
func viewRows[T any](buf []T, stride, rows int) []T {
	return buf[:rows*stride]
}
