// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package myjpeg

import "fmt"

// huffmanSpec is the (bits, huffval) pair that defines a canonical Huffman
// table: bits[i] is the number of codes of length i+1, and huffval lists
// the decoded symbol for each code in ascending (length, code) order.
type huffmanSpec struct {
	bits    [16]byte
	huffval []byte
}

// defaultDCLuminance, defaultACLuminance, defaultDCChrominance and
// defaultACChrominance are the Annex K default Huffman specifications. Every
// encode uses these same four tables; a decoder rebuilds its tables from
// whatever (bits, huffval) pairs the container header carries, which for a
// stream this package produced are always these values, but need not be.
var (
	defaultDCLuminance = huffmanSpec{
		[16]byte{0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		[]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	defaultACLuminance = huffmanSpec{
		[16]byte{0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 125},
		[]byte{
			0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12,
			0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
			0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
			0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
			0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16,
			0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
			0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
			0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
			0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
			0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
			0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79,
			0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
			0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98,
			0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
			0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
			0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
			0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4,
			0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
			0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea,
			0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	}
	defaultDCChrominance = huffmanSpec{
		[16]byte{0, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		[]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	defaultACChrominance = huffmanSpec{
		[16]byte{0, 2, 1, 2, 4, 4, 3, 4, 7, 5, 4, 4, 0, 1, 2, 119},
		[]byte{
			0x00, 0x01, 0x02, 0x03, 0x11, 0x04, 0x05, 0x21,
			0x31, 0x06, 0x12, 0x41, 0x51, 0x07, 0x61, 0x71,
			0x13, 0x22, 0x32, 0x81, 0x08, 0x14, 0x42, 0x91,
			0xa1, 0xb1, 0xc1, 0x09, 0x23, 0x33, 0x52, 0xf0,
			0x15, 0x62, 0x72, 0xd1, 0x0a, 0x16, 0x24, 0x34,
			0xe1, 0x25, 0xf1, 0x17, 0x18, 0x19, 0x1a, 0x26,
			0x27, 0x28, 0x29, 0x2a, 0x35, 0x36, 0x37, 0x38,
			0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
			0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,
			0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68,
			0x69, 0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78,
			0x79, 0x7a, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
			0x88, 0x89, 0x8a, 0x92, 0x93, 0x94, 0x95, 0x96,
			0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5,
			0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4,
			0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3,
			0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2,
			0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda,
			0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9,
			0xea, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	}
)

type huffCode struct {
	code   uint32
	length uint8
}

// huffmanTable is a compiled canonical Huffman code: an encode side (symbol
// -> code/length) and a decode side (bit-at-a-time longest-prefix match).
type huffmanTable struct {
	bits       [16]byte
	huffval    []byte
	encode     map[byte]huffCode
	decodeTree map[uint32]byte // key: length<<24 | code
	maxLen     int
}

// newHuffmanTable validates and compiles a (bits, huffval) pair into a
// huffmanTable. It rejects a table whose counts don't add up to the number
// of symbols given, or that claims a code longer than 16 bits.
func newHuffmanTable(bits [16]byte, huffval []byte) (*huffmanTable, error) {
	var total int
	for _, c := range bits {
		total += int(c)
	}
	if total != len(huffval) {
		return nil, fmt.Errorf("huffman table: bits sum to %d codes but huffval has %d symbols", total, len(huffval))
	}
	t := &huffmanTable{
		bits:       bits,
		huffval:    append([]byte(nil), huffval...),
		encode:     make(map[byte]huffCode, len(huffval)),
		decodeTree: make(map[uint32]byte, len(huffval)),
	}
	code := uint32(0)
	k := 0
	for length := 1; length <= 16; length++ {
		for j := byte(0); j < bits[length-1]; j++ {
			symbol := huffval[k]
			k++
			t.encode[symbol] = huffCode{code: code, length: uint8(length)}
			t.decodeTree[uint32(length)<<24|code] = symbol
			code++
		}
		code <<= 1
		if bits[length-1] > 0 {
			t.maxLen = length
		}
	}
	return t, nil
}

// lookup returns the (code, length) for a symbol this table can encode.
func (t *huffmanTable) lookup(symbol byte) (huffCode, bool) {
	c, ok := t.encode[symbol]
	return c, ok
}

// decodeOne reads a prefix-free symbol bit by bit, or reports ok=false the
// moment the bit reader runs dry before a valid prefix is found.
func (t *huffmanTable) decodeOne(r *bitReader) (symbol byte, ok bool) {
	var code uint32
	for length := 1; length <= t.maxLen; length++ {
		bit := r.readBit()
		if bit < 0 {
			return 0, false
		}
		code = code<<1 | uint32(bit)
		if s, found := t.decodeTree[uint32(length)<<24|code]; found {
			return s, true
		}
	}
	return 0, false
}
