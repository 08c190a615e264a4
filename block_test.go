package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadSplitReassembleRoundTrip(t *testing.T) {
	p := newPlane(5, 5)
	for i := range p.pix {
		p.pix[i] = uint8(i * 7 % 251)
	}
	padded, w, h := padPlane(p, 128)
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)

	blocks := splitIntoBlocks(padded)
	require.Len(t, blocks, 1)

	out, err := reassembleFromBlocks(blocks, w, h)
	require.NoError(t, err)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, p.at(x, y), out.at(x, y))
		}
	}
	for y := 0; y < h; y++ {
		for x := 5; x < w; x++ {
			assert.Equal(t, uint8(128), out.at(x, y))
		}
	}
}

func TestPaddedGeometryFor5x5Image(t *testing.T) {
	p := newPlane(5, 5)
	_, w, h := padPlane(p, 0)
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}

func TestDownsampleUpsampleRoundTripDimensions(t *testing.T) {
	p := newPlane(5, 5)
	for i := range p.pix {
		p.pix[i] = 200
	}
	ds := downsample420(p)
	assert.Equal(t, 3, ds.width)
	assert.Equal(t, 3, ds.height)
	for _, v := range ds.pix {
		assert.Equal(t, uint8(200), v)
	}
	up := upsampleNearestNeighbor(ds, 5, 5)
	assert.Equal(t, 5, up.width)
	assert.Equal(t, 5, up.height)
}
