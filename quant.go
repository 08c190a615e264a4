// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package myjpeg

// baseQuantLuminance and baseQuantChrominance are the Annex K base
// quantization tables, in natural (row-major) order.
var baseQuantLuminance = [blockSize * blockSize]uint8{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var baseQuantChrominance = [blockSize * blockSize]uint8{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// adjustQuantMatrix scales a base quantization matrix to the given quality
// in [1, 100], clamping each scaled entry to [1, 255].
func adjustQuantMatrix(base [blockSize * blockSize]uint8, quality int) [blockSize * blockSize]uint8 {
	var scale float64
	if quality < 50 {
		scale = 5000.0 / float64(quality)
	} else {
		scale = 200.0 - 2.0*float64(quality)
	}
	var out [blockSize * blockSize]uint8
	for i, b := range base {
		x := (float64(b)*scale + 50.0) / 100.0
		x = float64(int64(x)) // floor, matching np.floor on a non-negative value
		if x < 1 {
			x = 1
		} else if x > 255 {
			x = 255
		}
		out[i] = uint8(x)
	}
	return out
}

// quantize divides each DCT coefficient by the matching quantization step,
// rounding to the nearest integer with ties away from zero (unlike np.round,
// which rounds exact halves to even).
func quantize(b *block, qm *[blockSize * blockSize]uint8) *qblock {
	var out qblock
	for i, c := range b {
		q := float64(qm[i])
		v := c / q
		out[i] = int32(roundHalfAwayFromZero(v))
	}
	return &out
}

// dequantize multiplies each quantized coefficient by the matching
// quantization step, the inverse of quantize.
func dequantize(q *qblock, qm *[blockSize * blockSize]uint8) *block {
	var out block
	for i, c := range q {
		out[i] = float64(c) * float64(qm[i])
	}
	return &out
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return -float64(int64(-v + 0.5))
}
