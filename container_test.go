package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHeader() *header {
	return &header{
		OriginalWidth:  5,
		OriginalHeight: 5,
		BlockSize:      blockSize,
		Quality:        75,
		PaddedDimsY:    [2]int{8, 8},
		PaddedDimsCb:   [2]int{8, 8},
		PaddedDimsCr:   [2]int{8, 8},
		QTableY:        baseQuantLuminance,
		QTableC:        baseQuantChrominance,
		HuffDCYBits:    defaultDCLuminance.bits,
		HuffDCYHuffval: defaultDCLuminance.huffval,
		HuffACYBits:    defaultACLuminance.bits,
		HuffACYHuffval: defaultACLuminance.huffval,
		HuffDCCBits:    defaultDCChrominance.bits,
		HuffDCCHuffval: defaultDCChrominance.huffval,
		HuffACCBits:    defaultACChrominance.bits,
		HuffACCHuffval: defaultACChrominance.huffval,
		DataLenY:       3,
		DataLenCb:      2,
		DataLenCr:      1,
	}
}

func TestContainerMagicHeaderRoundTrip(t *testing.T) {
	h := newTestHeader()
	data, err := marshalContainer(h, []byte{1, 2, 3}, []byte{4, 5}, []byte{6})
	require.NoError(t, err)
	assert.Equal(t, "MYJPEG", string(data[:6]))

	gotH, y, cb, cr, err := unmarshalContainer(data)
	require.NoError(t, err)
	assert.Equal(t, h.OriginalWidth, gotH.OriginalWidth)
	assert.Equal(t, []byte{1, 2, 3}, y)
	assert.Equal(t, []byte{4, 5}, cb)
	assert.Equal(t, []byte{6}, cr)
}

func TestContainerRejectsBadMagic(t *testing.T) {
	data := make([]byte, 20)
	copy(data, "NOTAJPG\x00\x00\x00\x00")
	_, _, _, _, err := unmarshalContainer(data)
	require.Error(t, err)
	var mErr *Error
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, InvalidContainer, mErr.Kind)
}

func TestContainerRejectsTruncatedPayload(t *testing.T) {
	h := newTestHeader()
	data, err := marshalContainer(h, []byte{1, 2, 3}, []byte{4, 5}, []byte{6})
	require.NoError(t, err)
	_, _, _, _, err = unmarshalContainer(data[:len(data)-4])
	require.Error(t, err)
}
