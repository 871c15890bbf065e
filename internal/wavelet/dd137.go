package wavelet

// DD137 is a Deslauriers-Dubuc interpolating kernel: a four-tap cubic
// predict step paired with the same two-tap update step CDF53 uses. The
// wider predict support trades a little more edge padding for a smoother
// reconstruction on gradients than CDF53 gives.
type DD137[T Coeff] struct{}

// ForwardLine predicts each odd sample from its four nearest even
// neighbours with cubic weights (-1, 9, 9, -1)/16, then updates the even
// samples exactly as CDF53 does.
func (DD137[T]) ForwardLine(n int, in []T, inStride int, lp, hp []T) {
	lpW := HalfPlusOne(n)
	hpW := Half(n)

	even := func(i int) int64 { return int64(in[(2*clampIndex(i, lpW))*inStride]) }

	for i := 0; i < hpW; i++ {
		odd := int64(in[(2*i+1)*inStride])
		predict := (-even(i-1) + 9*even(i) + 9*even(i+1) - even(i+2)) >> 4
		hp[i] = T(odd - predict)
	}

	hpAt := func(i int) T {
		if hpW == 0 {
			return 0
		}
		if i < 0 {
			i = 0
		}
		return hp[clampIndex(i, hpW)]
	}
	for i := 0; i < lpW; i++ {
		lp[i] = T(even(i)) + (hpAt(i-1)+hpAt(i))>>2
	}
}

// InverseLine is the algebraic inverse of ForwardLine.
func (DD137[T]) InverseLine(n int, lp, hp []T, out []T, outStride int) {
	lpW := HalfPlusOne(n)
	hpW := Half(n)

	hpAt := func(i int) T {
		if hpW == 0 {
			return 0
		}
		if i < 0 {
			i = 0
		}
		return hp[clampIndex(i, hpW)]
	}

	even := make([]int64, lpW)
	for i := 0; i < lpW; i++ {
		even[i] = int64(lp[i] - (hpAt(i-1)+hpAt(i))>>2)
	}
	evenAt := func(i int) int64 { return even[clampIndex(i, lpW)] }

	for i := 0; i < hpW; i++ {
		predict := (-evenAt(i-1) + 9*evenAt(i) + 9*evenAt(i+1) - evenAt(i+2)) >> 4
		odd := int64(hp[i]) + predict
		out[(2*i)*outStride] = T(even[i])
		out[(2*i+1)*outStride] = T(odd)
	}
	if lpW != hpW {
		out[(2*hpW)*outStride] = T(even[hpW])
	}
}
