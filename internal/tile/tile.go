// Package tile computes tile geometry over an image: how many tiles a
// given tiles_dimension produces, each tile's rectangle, and the buffer
// sizes the orchestrator must allocate to hold one tile's coefficients
// through every lift level.
package tile

// Ctz returns the number of trailing zero bits of n (0 for n == 0), used
// to recover tiles_dimension_log2 from a power-of-two tile side length.
func Ctz(n uint) int {
	if n == 0 {
		return 0
	}
	count := 0
	for n&1 == 0 {
		n >>= 1
		count++
	}
	return count
}

// NearPowerOfTwo reports whether n is an exact power of two.
func NearPowerOfTwo(n uint) bool {
	return n != 0 && n&(n-1) == 0
}

// Half is the floored half of n.
func Half(n int) int { return n >> 1 }

// HalfPlusOne is ceil(n/2), with the n == 1 degenerate case mapping to 1.
func HalfPlusOne(n int) int {
	if n == 1 {
		return 1
	}
	return (n + (n & 1)) >> 1
}

// LiftsNo returns how many lift levels a w x h plane goes through before
// either dimension's lowpass would fall to 1.
func LiftsNo(width, height int) int {
	w, h := width, height
	n := 0
	for w > 1 && h > 1 {
		w = HalfPlusOne(w)
		h = HalfPlusOne(h)
		n++
	}
	return n
}

// LiftMeasures returns the lowpass and highpass extents produced by one
// lift of a w x h plane.
func LiftMeasures(width, height int) (lpW, lpH, hpW, hpH int) {
	return HalfPlusOne(width), HalfPlusOne(height), Half(width), Half(height)
}

// TilesNo returns the number of tiles a tilesDimension x tilesDimension
// grid splits a w x h image into; tilesDimension == 0 means one tile
// covering the whole image.
func TilesNo(tilesDimension, width, height int) int {
	if tilesDimension == 0 {
		return 1
	}
	cols := ceilDiv(width, tilesDimension)
	rows := ceilDiv(height, tilesDimension)
	return cols * rows
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// TileMeasures computes the rectangle of tile index tileNo (row-major, left
// to right then top to bottom) of a w x h image split at tilesDimension;
// tilesDimension == 0 returns the whole image as tile 0.
func TileMeasures(tileNo, tilesDimension, width, height int) (tileW, tileH, tileX, tileY int) {
	if tilesDimension == 0 {
		return width, height, 0, 0
	}

	cols := ceilDiv(width, tilesDimension)
	col := tileNo % cols
	row := tileNo / cols

	tileX = col * tilesDimension
	tileY = row * tilesDimension

	tileW = tilesDimension
	if tileX+tileW > width {
		tileW = width - tileX
	}
	tileH = tilesDimension
	if tileY+tileH > height {
		tileH = height - tileY
	}
	return
}

// DataSize returns the number of T elements one w x h x channels tile
// needs across all its lift levels: the sum of each level's three detail
// quadrant areas plus the final lowpass area, times channels.
func DataSize(width, height, channels int) int {
	total := 0
	w, h := width, height
	for w > 1 && h > 1 {
		lpW, lpH, hpW, hpH := LiftMeasures(w, h)
		total += lpW*hpH + hpW*lpH + hpW*hpH
		w, h = lpW, lpH
	}
	total += w * h
	return total * channels
}

// WorkareaSize returns the number of T elements the orchestrator must
// allocate per workarea, sized for the largest tile a tilesDimension split
// of a w x h image can produce.
func WorkareaSize(tilesDimension, width, height, channels int) int {
	if tilesDimension == 0 {
		return DataSize(width, height, channels)
	}

	maxW, maxH := tilesDimension, tilesDimension
	if maxW > width {
		maxW = width
	}
	if maxH > height {
		maxH = height
	}
	return DataSize(maxW, maxH, channels)
}
