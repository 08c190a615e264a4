package myjpeg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDCTRoundTripNearIdentity(t *testing.T) {
	var b block
	for i := range b {
		b[i] = float64(i%7) - 3.0
	}
	coeffs := forwardDCT(&b)
	back := inverseDCT(coeffs)
	for i := range b {
		assert.InDeltaf(t, b[i], back[i], 1e-9, "sample %d", i)
	}
}

func TestDCTOfConstantBlockIsPureDC(t *testing.T) {
	var b block
	for i := range b {
		b[i] = 10.0
	}
	coeffs := forwardDCT(&b)
	for i := 1; i < len(coeffs); i++ {
		assert.InDeltaf(t, 0, coeffs[i], 1e-9, "AC coefficient %d should vanish", i)
	}
	assert.InDelta(t, math.Round(coeffs[0]*100)/100, coeffs[0], 0.01)
}
