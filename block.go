// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package myjpeg

import "math"

const blockSize = 8

// block holds one 8x8 tile of samples or coefficients in row-major order,
// index i*8+j for row i, column j.
type block [blockSize * blockSize]float64

// qblock holds one 8x8 tile of quantized coefficients in row-major order.
type qblock [blockSize * blockSize]int32

// plane is a single 8-bit channel, stored row-major.
type plane struct {
	width, height int
	pix           []uint8
}

func newPlane(width, height int) *plane {
	return &plane{width: width, height: height, pix: make([]uint8, width*height)}
}

func (p *plane) at(x, y int) uint8 { return p.pix[y*p.width+x] }
func (p *plane) set(x, y int, v uint8) { p.pix[y*p.width+x] = v }

// div returns a/b rounded to the nearest integer, instead of rounded to
// zero, for both positive and negative a.
func div(a, b int) int {
	if a >= 0 {
		return (a + b/2) / b
	}
	return -((-a + b/2) / b)
}

// padPlane pads p on the right and bottom with fill so both dimensions are
// multiples of blockSize, returning the padded plane and its dimensions.
func padPlane(p *plane, fill uint8) (padded *plane, paddedW, paddedH int) {
	paddedW = ((p.width + blockSize - 1) / blockSize) * blockSize
	paddedH = ((p.height + blockSize - 1) / blockSize) * blockSize
	if paddedW == p.width && paddedH == p.height {
		return p, paddedW, paddedH
	}
	out := newPlane(paddedW, paddedH)
	for y := 0; y < paddedH; y++ {
		for x := 0; x < paddedW; x++ {
			if x < p.width && y < p.height {
				out.set(x, y, p.at(x, y))
			} else {
				out.set(x, y, fill)
			}
		}
	}
	return out, paddedW, paddedH
}

// splitIntoBlocks tiles a padded plane into row-major 8x8 blocks, scanning
// block rows top to bottom and block columns left to right within a row.
func splitIntoBlocks(p *plane) []block {
	rows := p.height / blockSize
	cols := p.width / blockSize
	blocks := make([]block, 0, rows*cols)
	for br := 0; br < rows; br++ {
		for bc := 0; bc < cols; bc++ {
			var b block
			for j := 0; j < blockSize; j++ {
				for i := 0; i < blockSize; i++ {
					b[j*blockSize+i] = float64(p.at(bc*blockSize+i, br*blockSize+j))
				}
			}
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// reassembleFromBlocks is the inverse of splitIntoBlocks: it lays row-major
// 8x8 blocks of samples back into a plane of the given padded dimensions,
// rounding and clamping each sample to [0, 255].
func reassembleFromBlocks(blocks []block, paddedW, paddedH int) (*plane, error) {
	rows := paddedH / blockSize
	cols := paddedW / blockSize
	if len(blocks) != rows*cols {
		return nil, errorf(InvalidInput, "reassembleFromBlocks", "got %d blocks, want %d for %dx%d", len(blocks), rows*cols, paddedW, paddedH)
	}
	out := newPlane(paddedW, paddedH)
	idx := 0
	for br := 0; br < rows; br++ {
		for bc := 0; bc < cols; bc++ {
			b := blocks[idx]
			idx++
			for j := 0; j < blockSize; j++ {
				for i := 0; i < blockSize; i++ {
					out.set(bc*blockSize+i, br*blockSize+j, clampToByte(b[j*blockSize+i]))
				}
			}
		}
	}
	return out, nil
}

// cropPlane returns the top-left w x h region of p, used to discard the
// block-alignment padding (and, for chroma planes, to crop to the
// logical 4:2:0 dimensions before upsampling).
func cropPlane(p *plane, w, h int) *plane {
	if w == p.width && h == p.height {
		return p
	}
	out := newPlane(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.set(x, y, p.at(x, y))
		}
	}
	return out
}

// downsample420 halves both dimensions of p (rounding up), averaging each
// up-to-2x2 neighborhood. On the last row/column of an odd-sized plane the
// neighborhood is 2x1, 1x2 or 1x1, and only those samples are averaged.
func downsample420(p *plane) *plane {
	newW := int(math.Ceil(float64(p.width) / 2))
	newH := int(math.Ceil(float64(p.height) / 2))
	out := newPlane(newW, newH)
	for r := 0; r < newH; r++ {
		for c := 0; c < newW; c++ {
			y0, y1 := r*2, min(r*2+2, p.height)
			x0, x1 := c*2, min(c*2+2, p.width)
			sum, n := 0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					sum += int(p.at(x, y))
					n++
				}
			}
			out.set(c, r, uint8(div(sum, n)))
		}
	}
	return out
}

// upsampleNearestNeighbor repeats each sample of p into a 2x2 neighborhood,
// then crops the result to targetW x targetH. A zero-sized source plane
// upsamples to a mid-gray fill, matching the decoder's best-effort recovery
// of a component whose chroma plane could not be decoded at all.
func upsampleNearestNeighbor(p *plane, targetW, targetH int) *plane {
	out := newPlane(targetW, targetH)
	if p.width == 0 || p.height == 0 {
		for i := range out.pix {
			out.pix[i] = 128
		}
		return out
	}
	for y := 0; y < targetH; y++ {
		sy := y / 2
		if sy >= p.height {
			sy = p.height - 1
		}
		for x := 0; x < targetW; x++ {
			sx := x / 2
			if sx >= p.width {
				sx = p.width - 1
			}
			out.set(x, y, p.at(sx, sy))
		}
	}
	return out
}
