package wavelet

// Haar is the simplest reversible kernel, used as a fallback for tiny
// subbands where the longer-tap kernels would have nothing to work with.
type Haar[T Coeff] struct{}

// ForwardLine implements the Haar split: lp[i] = even[i], hp[i] = even[i] -
// odd[i]. When n is odd, HalfPlusOne(n) != Half(n) and the extra lowpass
// position simply copies the trailing even sample, with no paired hp.
func (Haar[T]) ForwardLine(n int, in []T, inStride int, lp, hp []T) {
	hpW := Half(n)
	for i := 0; i < hpW; i++ {
		even := in[(2*i)*inStride]
		odd := in[(2*i+1)*inStride]
		lp[i] = even
		hp[i] = even - odd
	}
	if lpW := HalfPlusOne(n); lpW != hpW {
		lp[hpW] = in[(2*hpW)*inStride]
	}
}

// InverseLine undoes ForwardLine: even[i] = lp[i], odd[i] = lp[i] - hp[i].
func (Haar[T]) InverseLine(n int, lp, hp []T, out []T, outStride int) {
	hpW := Half(n)
	for i := 0; i < hpW; i++ {
		l := lp[i]
		out[(2*i)*outStride] = l
		out[(2*i+1)*outStride] = l - hp[i]
	}
	if lpW := HalfPlusOne(n); lpW != hpW {
		out[(2*hpW)*outStride] = lp[hpW]
	}
}
