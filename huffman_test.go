package myjpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHuffmanTablesCompile(t *testing.T) {
	specs := []huffmanSpec{defaultDCLuminance, defaultACLuminance, defaultDCChrominance, defaultACChrominance}
	for _, s := range specs {
		tbl, err := newHuffmanTable(s.bits, s.huffval)
		require.NoError(t, err)
		assert.Len(t, tbl.encode, len(s.huffval))
	}
}

func TestHuffmanTablesArePrefixFree(t *testing.T) {
	tbl, err := newHuffmanTable(defaultACLuminance.bits, defaultACLuminance.huffval)
	require.NoError(t, err)
	type cw struct {
		code   uint32
		length uint8
	}
	var all []cw
	for _, c := range tbl.encode {
		all = append(all, cw{c.code, c.length})
	}
	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			a, b := all[i], all[j]
			if a.length > b.length {
				continue
			}
			prefix := b.code >> (b.length - a.length)
			assert.NotEqualf(t, a.code, prefix, "code %d (len %d) is a prefix of code %d (len %d)", a.code, a.length, b.code, b.length)
		}
	}
}

func TestHuffmanEncodeDecodeRoundTrip(t *testing.T) {
	tbl, err := newHuffmanTable(defaultDCLuminance.bits, defaultDCLuminance.huffval)
	require.NoError(t, err)

	w := &bitWriter{}
	symbols := []byte{0, 5, 11, 2, 0}
	for _, s := range symbols {
		c, ok := tbl.lookup(s)
		require.True(t, ok)
		w.writeBits(c.code, uint32(c.length))
	}
	data := w.finish()

	r := newBitReader(data)
	for _, want := range symbols {
		got, ok := tbl.decodeOne(r)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestHuffmanTableRejectsMismatchedCounts(t *testing.T) {
	_, err := newHuffmanTable([16]byte{1}, nil)
	assert.Error(t, err)
}
