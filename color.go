package myjpeg

// clampToByte saturates x into the inclusive range [0, 255].
func clampToByte(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x + 0.5)
}

// rgbToYCbCr converts one RGB triple to BT.601 full-range Y'CbCr. These are
// the exact coefficients used throughout this codec's reference pipeline,
// not the slightly different fixed-point approximation the standard
// library's image/color package uses internally.
func rgbToYCbCr(r, g, b uint8) (y, cb, cr uint8) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	y = clampToByte(0.299*rf + 0.587*gf + 0.114*bf)
	cb = clampToByte(-0.168736*rf - 0.331264*gf + 0.5*bf + 128.0)
	cr = clampToByte(0.5*rf - 0.418688*gf - 0.081312*bf + 128.0)
	return
}

// ycbcrToRGB is the inverse of rgbToYCbCr.
func ycbcrToRGB(y, cb, cr uint8) (r, g, b uint8) {
	yf := float64(y)
	cbf := float64(cb) - 128.0
	crf := float64(cr) - 128.0
	r = clampToByte(yf + 1.402*crf)
	g = clampToByte(yf - 0.344136*cbf - 0.714136*crf)
	b = clampToByte(yf + 1.772*cbf)
	return
}
