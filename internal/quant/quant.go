// Package quant implements the per-subband deadzone quantizer and the
// bisection rate-control search that drives it toward a target tile size.
package quant

import "math"

// Subband names the four quadrant kinds a quantization step can apply to.
// LP is never quantized past 1.0; B and C use the 1D curve power, D uses
// the halved diagonal curve power.
type Subband int

const (
	SubbandLP Subband = iota
	SubbandB
	SubbandC
	SubbandD
)

// Curve implements sCurve(power, x) = 0 if x < 1/16 else
// (x - 1/16)^(power + power/16), the shaping function that ramps
// quantization strength up as x grows. Step gives lift level 0 x = 1, and
// ApplyToPlane uses level 0 for the outermost (finest-detail) subbands.
func Curve(power, x float64) float64 {
	if x < 1.0/16.0 {
		return 0
	}
	return math.Pow(x-1.0/16.0, power+power/16.0)
}

// Step computes the quantization step q (and, for the D quadrant, q_diag)
// for a subband at the given lift level, following the per-level curve and
// chroma loss multiplier.
func Step(sb Subband, lift, liftsNo int, quantization, chromaLoss float64, isChroma bool) float64 {
	if sb == SubbandLP {
		return 1.0
	}

	x := float64(liftsNo-lift) / float64(liftsNo)
	power := math.Log2(quantization)

	var base float64
	if sb == SubbandD {
		base = power * Curve(power/2, x)
	} else {
		base = power * Curve(power, x)
	}
	if isChroma {
		base *= chromaLoss
	}

	q := math.Exp2(base)
	if sb == SubbandD && quantization > 1 {
		lpQ := math.Exp2(power * Curve(power, x) * boolFloat(isChroma, chromaLoss))
		if q > 2*lpQ {
			q = 2 * lpQ
		}
	}
	return q
}

func boolFloat(cond bool, v float64) float64 {
	if cond {
		return v
	}
	return 1
}

// Quantize maps one coefficient through the deadzone quantizer: values
// under an invalid (NaN/Inf/<1) step, or inside the deadzone around zero,
// collapse to 0; otherwise the coefficient rounds to the nearest multiple
// of q.
func Quantize(in float64, q float64) float64 {
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 1 {
		return 0
	}
	if math.Abs(in) < q/2 {
		return 0
	}
	return math.Floor(in/q+0.5) * q
}

// QuantizePlane quantizes a whole coefficient plane in place with a single
// step q.
func QuantizePlane[T ~int16 | ~int32](plane []T, q float64) {
	if q < 1 {
		for i := range plane {
			plane[i] = 0
		}
		return
	}
	for i, v := range plane {
		plane[i] = T(Quantize(float64(v), q))
	}
}

// CompressFunc attempts compression at a given quantization ratio and
// reports the resulting byte size. It is supplied by the tile driver so
// the rate-control search stays independent of the concrete Kagari/rANS
// wiring.
type CompressFunc func(quantization float64) (size int, ok bool)

// RateControlResult carries the outcome of a bisection rate-control search.
type RateControlResult struct {
	Quantization float64
	Size         int
	HitTarget    bool
}

// Search runs the bisection rate-control algorithm described for
// settings.ratio >= 1: find a q_ceil that fits the target, then bisect
// between 1 and q_ceil for up to 8 iterations, honoring a 2% error margin
// and a 0.05 convergence epsilon.
func Search(targetSize int, compress CompressFunc) RateControlResult {
	const iterations = 8
	const epsilon = 0.05
	errorMargin := float64(targetSize) * 0.02

	qFloor := 1.0
	qCeil := 1.0

	size, ok := compress(qCeil)
	if ok && size <= targetSize {
		return RateControlResult{Quantization: qCeil, Size: size, HitTarget: true}
	}

	for {
		qCeil *= 4
		if math.IsInf(qCeil, 0) {
			return RateControlResult{Quantization: qCeil, Size: 0, HitTarget: false}
		}
		size, ok = compress(qCeil)
		if ok && size <= targetSize {
			break
		}
	}

	best := RateControlResult{Quantization: qCeil, Size: size, HitTarget: ok}
	lastOK := ok

	for i := 0; i < iterations; i++ {
		if qCeil-qFloor < epsilon {
			break
		}
		mid := (qFloor + qCeil) / 2
		size, ok = compress(mid)
		lastOK = ok

		if ok {
			diff := float64(targetSize - size)
			if diff < 0 {
				diff = -diff
			}
			best = RateControlResult{Quantization: mid, Size: size, HitTarget: true}
			if diff <= errorMargin {
				break
			}
			if size > targetSize {
				qFloor = mid
			} else {
				qCeil = mid
			}
		} else {
			qFloor = mid
		}
	}

	if !lastOK {
		if size, ok := compress(qCeil); ok {
			best = RateControlResult{Quantization: qCeil, Size: size, HitTarget: true}
		}
	}

	return best
}
