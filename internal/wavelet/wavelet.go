// Package wavelet implements the one-dimensional lifting kernels used by
// the tile pipeline: Haar, CDF 5/3 and DD 13/7. Each kernel implements the
// same Kernel interface (ForwardLine, InverseLine), and HForward, VForward,
// HInverse and VInverse drive any of them over 2D buffers, so the lift
// driver in the sibling lift package can treat them interchangeably.
//
// Arithmetic is plain Go integer arithmetic on the coefficient type: signed
// overflow wraps deterministically, which is exactly the "wrapping
// add/subtract" the kernels rely on for reversibility. Divisions by powers
// of two are written as arithmetic right shifts, which floor rather than
// truncate toward zero for negative operands.
package wavelet

// Coeff is the integer coefficient type lifted by a kernel. The tile
// pipeline uses int16 for depths up to 8 bits per channel and int32 beyond
// that.
type Coeff interface {
	~int16 | ~int32
}

// Half is the floored half of n: the highpass length produced by a one
// dimensional lift of an axis of length n.
func Half(n int) int {
	return n >> 1
}

// HalfPlusOne is the "half-plus-one" rule: the lowpass length produced by a
// one dimensional lift of an axis of length n. It is the ceiling of n/2,
// with the degenerate case n == 1 mapping to 1 rather than to 0.
func HalfPlusOne(n int) int {
	if n == 1 {
		return 1
	}
	return (n + (n & 1)) >> 1
}

// Kernel is a one dimensional lifting kernel operating on lines of
// coefficients addressed through an explicit stride, so callers can lift
// rows or columns of a larger 2D buffer without copying them out first.
type Kernel[T Coeff] interface {
	// ForwardLine splits n input samples (in, spaced inStride apart)
	// into HalfPlusOne(n) lowpass and Half(n) highpass samples, written
	// contiguously into lp and hp.
	ForwardLine(n int, in []T, inStride int, lp, hp []T)

	// InverseLine is the exact inverse of ForwardLine: it interleaves lp
	// and hp back into n output samples (out, spaced outStride apart).
	InverseLine(n int, lp, hp []T, out []T, outStride int)
}

// HForward lifts every row of a w x h buffer horizontally, writing each
// row's lowpass samples followed by its highpass samples side by side into
// out. in has row stride inStride, out has row stride outStride (which
// must be >= w).
func HForward[T Coeff](k Kernel[T], w, h int, in []T, inStride int, out []T, outStride int) {
	lpW := HalfPlusOne(w)
	for row := 0; row < h; row++ {
		inRow := in[row*inStride:]
		outRow := out[row*outStride:]
		k.ForwardLine(w, inRow, 1, outRow[:lpW], outRow[lpW:])
	}
}

// HInverse is the exact inverse of HForward: it reads a row's lowpass and
// highpass samples and interleaves them back into w output samples.
func HInverse[T Coeff](k Kernel[T], w, h int, lp, hp []T, stride int, out []T, outStride int) {
	lpW := HalfPlusOne(w)
	for row := 0; row < h; row++ {
		lpRow := lp[row*stride:]
		hpRow := hp[row*stride:]
		k.InverseLine(w, lpRow[:lpW], hpRow, out[row*outStride:], 1)
	}
}

// VForward lifts every column of a w x h buffer vertically, writing the
// lowpass rows above the highpass rows of the same columns, back into out.
func VForward[T Coeff](k Kernel[T], w, h int, in []T, inStride int, out []T, outStride int) {
	lpH := HalfPlusOne(h)
	lp := make([]T, lpH)
	hp := make([]T, Half(h))
	for col := 0; col < w; col++ {
		k.ForwardLine(h, in[col:], inStride, lp, hp)
		for i, v := range lp {
			out[i*outStride+col] = v
		}
		for i, v := range hp {
			out[(lpH+i)*outStride+col] = v
		}
	}
}

// VInverse is the in-place-ish inverse of VForward: lp and hp alias
// disjoint row ranges of the same buffer (lp above hp), and outLP may share
// storage with lp. It works one column at a time in a fixed access order so
// that aliasing is well-defined: every column's lowpass and highpass rows
// are read in full before outLP is written for that column.
func VInverse[T Coeff](k Kernel[T], w, h int, lp, hp []T, stride int, outLP []T, outStride int) {
	lpH := HalfPlusOne(h)
	hpH := Half(h)
	col := make([]T, lpH)
	hpCol := make([]T, hpH)
	out := make([]T, h)
	for c := 0; c < w; c++ {
		for i := 0; i < lpH; i++ {
			col[i] = lp[i*stride+c]
		}
		for i := 0; i < hpH; i++ {
			hpCol[i] = hp[i*stride+c]
		}
		k.InverseLine(h, col, hpCol, out, 1)
		for i := 0; i < h; i++ {
			outLP[i*outStride+c] = out[i]
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
