package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustQuantMatrixIdentityAt50(t *testing.T) {
	got := adjustQuantMatrix(baseQuantLuminance, 50)
	assert.Equal(t, baseQuantLuminance, got)
}

func TestAdjustQuantMatrixClampsRange(t *testing.T) {
	low := adjustQuantMatrix(baseQuantLuminance, 1)
	for _, v := range low {
		assert.LessOrEqual(t, v, uint8(255))
		assert.GreaterOrEqual(t, v, uint8(1))
	}
	high := adjustQuantMatrix(baseQuantLuminance, 100)
	for _, v := range high {
		assert.GreaterOrEqual(t, v, uint8(1))
	}
}

func TestAdjustQuantMatrixMonotonicWithQuality(t *testing.T) {
	// Higher quality never produces a coarser (larger) step for a given
	// base entry.
	q60 := adjustQuantMatrix(baseQuantLuminance, 60)
	q90 := adjustQuantMatrix(baseQuantLuminance, 90)
	for i := range q60 {
		assert.LessOrEqual(t, q90[i], q60[i])
	}
}

func TestQuantizeDequantizeRoundTripWithinStep(t *testing.T) {
	qm := adjustQuantMatrix(baseQuantLuminance, 80)
	var b block
	for i := range b {
		b[i] = float64(i) * 1.3
	}
	q := quantize(&b, &qm)
	dq := dequantize(q, &qm)
	for i := range b {
		diff := dq[i] - b[i]
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqualf(t, diff, float64(qm[i]), "coefficient %d", i)
	}
}
