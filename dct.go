package myjpeg

import "math"

// dctMatrix[k][n] = cos((2n+1)k*pi / 16), the 1-D DCT-II basis matrix for
// N=8, shared by the forward and inverse 2-D transforms below.
var dctMatrix [blockSize][blockSize]float64

// dctScale[k] is 1/sqrt(2) for k==0 and 1 otherwise, the orthonormality
// correction applied to the zero frequency term.
var dctScale [blockSize]float64

func init() {
	for k := 0; k < blockSize; k++ {
		for n := 0; n < blockSize; n++ {
			dctMatrix[k][n] = math.Cos(float64(2*n+1) * float64(k) * math.Pi / (2 * blockSize))
		}
		if k == 0 {
			dctScale[k] = 1 / math.Sqrt2
		} else {
			dctScale[k] = 1
		}
	}
}

// forwardDCT applies the 2-D type-II DCT to an already level-shifted block
// (its samples already have 128 subtracted), returning the frequency-domain
// coefficients in row-major order with coefficient (0,0) the DC term.
func forwardDCT(b *block) *block {
	var tmp, out block
	// Pass 1: transform each row x along y, indexed by output frequency v.
	for x := 0; x < blockSize; x++ {
		for v := 0; v < blockSize; v++ {
			var sum float64
			for y := 0; y < blockSize; y++ {
				sum += b[x*blockSize+y] * dctMatrix[v][y]
			}
			tmp[x*blockSize+v] = sum
		}
	}
	// Pass 2: transform each column v along x, indexed by output frequency u.
	for u := 0; u < blockSize; u++ {
		for v := 0; v < blockSize; v++ {
			var sum float64
			for x := 0; x < blockSize; x++ {
				sum += tmp[x*blockSize+v] * dctMatrix[u][x]
			}
			out[u*blockSize+v] = 0.25 * dctScale[u] * dctScale[v] * sum
		}
	}
	return &out
}

// inverseDCT is the inverse of forwardDCT: it returns level-shifted samples
// (still centered around 0, caller adds 128 and clamps to [0,255]).
func inverseDCT(coeffs *block) *block {
	var scaled, tmp, out block
	for u := 0; u < blockSize; u++ {
		for v := 0; v < blockSize; v++ {
			scaled[u*blockSize+v] = dctScale[u] * dctScale[v] * coeffs[u*blockSize+v]
		}
	}
	// Pass 1: for each frequency row u, transform along v into spatial y.
	for u := 0; u < blockSize; u++ {
		for y := 0; y < blockSize; y++ {
			var sum float64
			for v := 0; v < blockSize; v++ {
				sum += scaled[u*blockSize+v] * dctMatrix[v][y]
			}
			tmp[u*blockSize+y] = sum
		}
	}
	// Pass 2: for each spatial column y, transform along u into spatial x.
	for x := 0; x < blockSize; x++ {
		for y := 0; y < blockSize; y++ {
			var sum float64
			for u := 0; u < blockSize; u++ {
				sum += dctMatrix[u][x] * tmp[u*blockSize+y]
			}
			out[x*blockSize+y] = 0.25 * sum
		}
	}
	return &out
}
