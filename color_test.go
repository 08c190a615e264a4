package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorRoundTripNearIdentity(t *testing.T) {
	samples := [][3]uint8{
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128},
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{37, 201, 89}, {10, 10, 250},
	}
	for _, s := range samples {
		y, cb, cr := rgbToYCbCr(s[0], s[1], s[2])
		r, g, b := ycbcrToRGB(y, cb, cr)
		assert.LessOrEqualf(t, absDiff(r, s[0]), uint8(2), "R for %v", s)
		assert.LessOrEqualf(t, absDiff(g, s[1]), uint8(2), "G for %v", s)
		assert.LessOrEqualf(t, absDiff(b, s[2]), uint8(2), "B for %v", s)
	}
}

func TestSolidGrayConvertsToNeutralChroma(t *testing.T) {
	y, cb, cr := rgbToYCbCr(128, 128, 128)
	assert.Equal(t, uint8(128), y)
	assert.InDelta(t, 128, int(cb), 1)
	assert.InDelta(t, 128, int(cr), 1)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
