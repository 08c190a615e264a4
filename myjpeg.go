// Package myjpeg implements a small, self-contained lossy image codec: RGB
// in, a single-scan baseline DCT pipeline (BT.601 4:2:0 color subsampling,
// 8x8 block transform and quantization, canonical Huffman entropy coding),
// out to a length-prefixed JSON-header container tagged with the magic
// bytes "MYJPEG". It does not produce or read standard JPEG files.
package myjpeg

// RGBImage is a row-major, interleaved 8-bit RGB raster: Pix[3*(y*Width+x)+c]
// is the c'th channel (0=R, 1=G, 2=B) of the pixel at (x, y).
type RGBImage struct {
	Width, Height int
	Pix           []uint8
}

// dataUnit is the entropy-coding payload for one 8x8 block: its DC
// differential (as a VLI codeword) and its run-length coded AC coefficients.
type dataUnit struct {
	DCCategory uint8
	DCBits     vli
	AC         []rlePair
}

// componentPlan binds one color component, by name, to the quantization and
// Huffman tables it is coded with; the channel data itself is held apart. Encoding and decoding
// both walk a fixed 3-element array of these (Y, Cb, Cr in that order)
// rather than dispatching on a component name.
type componentPlan struct {
	name        string
	quantMatrix [blockSize * blockSize]uint8
	huffDC      *huffmanTable
	huffAC      *huffmanTable
}

const (
	minQuality = 1
	maxQuality = 100
)
