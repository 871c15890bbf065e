package quant

import "github.com/baAlex/ako-go/internal/wavelet"

// ApplyToPlane walks the same level-by-level quadrant recursion lift.Plane
// produces and quantizes every B/C/D detail quadrant in place, leaving the
// final (deepest) lowpass quadrant untouched. width/height are the plane's
// pre-lift dimensions and stride is always width, matching the addressing
// lift.Plane uses.
func ApplyToPlane[T wavelet.Coeff](plane []T, width, height int, quantization, chromaLoss float64, isChroma bool) {
	liftsNo := levelsNo(width, height)
	w, h := width, height

	for lift := 0; lift < liftsNo; lift++ {
		lpW, lpH := wavelet.HalfPlusOne(w), wavelet.HalfPlusOne(h)

		qB := Step(SubbandB, lift, liftsNo, quantization, chromaLoss, isChroma)
		qC := Step(SubbandC, lift, liftsNo, quantization, chromaLoss, isChroma)
		qD := Step(SubbandD, lift, liftsNo, quantization, chromaLoss, isChroma)

		// B: rows [0, lpH), cols [lpW, w)
		for row := 0; row < lpH; row++ {
			quantizeRow(plane[row*width+lpW:row*width+w], qB)
		}
		// C: rows [lpH, h), cols [0, lpW)
		for row := lpH; row < h; row++ {
			quantizeRow(plane[row*width:row*width+lpW], qC)
		}
		// D: rows [lpH, h), cols [lpW, w)
		for row := lpH; row < h; row++ {
			quantizeRow(plane[row*width+lpW:row*width+w], qD)
		}

		w, h = lpW, lpH
	}
}

func quantizeRow[T wavelet.Coeff](row []T, q float64) {
	for i, v := range row {
		row[i] = T(Quantize(float64(v), q))
	}
}

func levelsNo(width, height int) int {
	w, h := width, height
	n := 0
	for w > 1 && h > 1 {
		w, h = wavelet.HalfPlusOne(w), wavelet.HalfPlusOne(h)
		n++
	}
	return n
}
