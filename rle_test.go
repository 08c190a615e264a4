package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRLERoundTrip(t *testing.T) {
	ac := make([]int32, 63)
	ac[0] = 5
	ac[3] = -2
	ac[20] = 1
	// leave the rest zero, including a trailing run.
	pairs := rleEncodeAC(ac)
	got := rleDecodeAC(pairs, 63)
	assert.Equal(t, ac, got)
}

func TestRLEAllZero(t *testing.T) {
	ac := make([]int32, 63)
	pairs := rleEncodeAC(ac)
	require.Len(t, pairs, 1)
	assert.Equal(t, rlePair{Run: 0, Value: 0}, pairs[0])
}

func TestRLELongRunEmitsZRL(t *testing.T) {
	ac := make([]int32, 63)
	ac[17] = 9 // 17 leading zeros: one ZRL (16 zeros) then a run of 1 more.
	pairs := rleEncodeAC(ac)
	require.GreaterOrEqual(t, len(pairs), 2)
	assert.Equal(t, rlePair{Run: 15, Value: 0}, pairs[0])
	assert.Equal(t, rlePair{Run: 1, Value: 9}, pairs[1])
}

func TestRLEDecodeStopsAtEOB(t *testing.T) {
	pairs := []rlePair{{Run: 2, Value: 7}, {Run: 0, Value: 0}}
	got := rleDecodeAC(pairs, 63)
	want := make([]int32, 63)
	want[2] = 7
	assert.Equal(t, want, got)
}
