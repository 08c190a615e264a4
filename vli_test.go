package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVLIRoundTrip(t *testing.T) {
	for n := int32(-2000); n <= 2000; n++ {
		v := encodeVLI(n)
		got := decodeVLI(v.Category, v.Bits)
		assert.Equalf(t, n, got, "round trip for %d", n)
	}
}

func TestVLIZero(t *testing.T) {
	v := encodeVLI(0)
	assert.Equal(t, uint8(0), v.Category)
	assert.Equal(t, uint16(0), v.Bits)
}

func TestVLIConcreteCases(t *testing.T) {
	cases := []struct {
		n        int32
		category uint8
		bits     uint16
	}{
		{1, 1, 1},
		{-1, 1, 0},
		{7, 3, 7},
		{-7, 3, 0},
		{4, 3, 4},
		{-4, 3, 3},
	}
	for _, c := range cases {
		v := encodeVLI(c.n)
		assert.Equal(t, c.category, v.Category, "category for %d", c.n)
		assert.Equal(t, c.bits, v.Bits, "bits for %d", c.n)
	}
}
