package colortransform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYCoCgRoundtrip(t *testing.T) {
	width, height, channels := 4, 3, 3
	rnd := rand.New(rand.NewSource(1))

	in := make([]uint16, width*height*channels)
	for i := range in {
		in[i] = uint16(rnd.Intn(256))
	}

	planes := make([]int16, width*height*channels)
	ToInternal(TagYCoCg, false, width, height, channels, width, in, planes)

	out := make([]uint16, width*height*channels)
	ToOutput(TagYCoCg, width, height, channels, 8, 0, 0, width, planes, out)

	assert.Equal(t, in, out)
}

func TestSubtractGRoundtrip(t *testing.T) {
	width, height, channels := 5, 5, 3
	rnd := rand.New(rand.NewSource(2))

	in := make([]uint16, width*height*channels)
	for i := range in {
		in[i] = uint16(rnd.Intn(256))
	}

	planes := make([]int16, width*height*channels)
	ToInternal(TagSubtractG, false, width, height, channels, width, in, planes)

	out := make([]uint16, width*height*channels)
	ToOutput(TagSubtractG, width, height, channels, 8, 0, 0, width, planes, out)

	assert.Equal(t, in, out)
}

func TestDiscardZeroesNonAlphaWhereAlphaIsZero(t *testing.T) {
	width, height, channels := 2, 1, 4
	in := []uint16{200, 150, 100, 0, 10, 20, 30, 255}

	planes := make([]int16, width*height*channels)
	ToInternal(TagNone, true, width, height, channels, width, in, planes)

	planeSize := width * height
	for c := 0; c < 3; c++ {
		assert.Equalf(t, int16(0), planes[c*planeSize+0], "pixel 0 channel %d not discarded", c)
	}
	assert.Equal(t, int16(255), planes[3*planeSize+1], "pixel 1 alpha should survive untouched")
}
