package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZigzagIsInvolution(t *testing.T) {
	var b [blockSize * blockSize]int32
	for i := range b {
		b[i] = int32(i)
	}
	scanned := zigzagScan(b)
	back := inverseZigzagScan(scanned)
	assert.Equal(t, b, back)
}

func TestZigzagHeadOfSequence(t *testing.T) {
	var b [blockSize * blockSize]int32
	for i := range b {
		b[i] = int32(i)
	}
	scanned := zigzagScan(b)
	// Row-major indices 0,1,8,16,9,2,3,10 for the first eight visits of the
	// classic 8x8 zig-zag walk.
	want := []int32{0, 1, 8, 16, 9, 2, 3, 10}
	assert.Equal(t, want, []int32(scanned[:8]))
}

func TestZigzagOrderIsPermutation(t *testing.T) {
	seen := make(map[int]bool)
	for _, idx := range zigzagOrder {
		assert.False(t, seen[idx], "index %d visited twice", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, blockSize*blockSize)
}
