package myjpeg

import (
	"golang.org/x/sync/errgroup"
)

// Encode compresses img into a MYJPEG byte stream at the given quality,
// 1 (smallest, lowest fidelity) to 100 (largest, highest fidelity).
// quality==0 is rejected as InvalidInput rather than silently clamped.
func Encode(img *RGBImage, quality int) ([]byte, error) {
	const op = "Encode"
	id := callID()
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, errorf(InvalidInput, op, "image must have positive dimensions")
	}
	if len(img.Pix) != img.Width*img.Height*3 {
		return nil, errorf(InvalidInput, op, "Pix has %d bytes, want %d for %dx%d RGB", len(img.Pix), img.Width*img.Height*3, img.Width, img.Height)
	}
	if quality < minQuality || quality > maxQuality {
		return nil, errorf(InvalidInput, op, "quality %d outside [%d, %d]", quality, minQuality, maxQuality)
	}

	y, cb, cr := rgbPlanesToYCbCr(img)
	cb = downsample420(cb)
	cr = downsample420(cr)

	qY := adjustQuantMatrix(baseQuantLuminance, quality)
	qC := adjustQuantMatrix(baseQuantChrominance, quality)

	huffDCY, err := newHuffmanTable(defaultDCLuminance.bits, defaultDCLuminance.huffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}
	huffACY, err := newHuffmanTable(defaultACLuminance.bits, defaultACLuminance.huffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}
	huffDCC, err := newHuffmanTable(defaultDCChrominance.bits, defaultDCChrominance.huffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}
	huffACC, err := newHuffmanTable(defaultACChrominance.bits, defaultACChrominance.huffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}

	planes := [3]*plane{y, cb, cr}
	plans := [3]componentPlan{
		{name: "Y", quantMatrix: qY, huffDC: huffDCY, huffAC: huffACY},
		{name: "Cb", quantMatrix: qC, huffDC: huffDCC, huffAC: huffACC},
		{name: "Cr", quantMatrix: qC, huffDC: huffDCC, huffAC: huffACC},
	}

	payloads := make([][]byte, 3)
	paddedDims := [3][2]int{}

	var g errgroup.Group
	for i := 0; i < 3; i++ {
		i := i
		g.Go(func() error {
			padded, paddedW, paddedH := padPlane(planes[i], 128)
			paddedDims[i] = [2]int{paddedH, paddedW}
			blocks := splitIntoBlocks(padded)
			payload, err := encodeComponent(blocks, &plans[i])
			if err != nil {
				return err
			}
			payloads[i] = payload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, newError(InvalidInput, op, err)
	}

	h := &header{
		OriginalWidth:  img.Width,
		OriginalHeight: img.Height,
		BlockSize:      blockSize,
		Quality:        quality,
		PaddedDimsY:    paddedDims[0],
		PaddedDimsCb:   paddedDims[1],
		PaddedDimsCr:   paddedDims[2],
		QTableY:        qY,
		QTableC:        qC,
		HuffDCYBits:    defaultDCLuminance.bits,
		HuffDCYHuffval: defaultDCLuminance.huffval,
		HuffACYBits:    defaultACLuminance.bits,
		HuffACYHuffval: defaultACLuminance.huffval,
		HuffDCCBits:    defaultDCChrominance.bits,
		HuffDCCHuffval: defaultDCChrominance.huffval,
		HuffACCBits:    defaultACChrominance.bits,
		HuffACCHuffval: defaultACChrominance.huffval,
		DataLenY:       len(payloads[0]),
		DataLenCb:      len(payloads[1]),
		DataLenCr:      len(payloads[2]),
	}

	out, err := marshalContainer(h, payloads[0], payloads[1], payloads[2])
	if err != nil {
		return nil, err
	}
	Logger.Debug().Str("call_id", id).Int("bytes", len(out)).Int("quality", quality).Msg("myjpeg encode complete")
	return out, nil
}

// rgbPlanesToYCbCr splits an interleaved RGB raster into three full-size
// Y, Cb, Cr planes.
func rgbPlanesToYCbCr(img *RGBImage) (y, cb, cr *plane) {
	y = newPlane(img.Width, img.Height)
	cb = newPlane(img.Width, img.Height)
	cr = newPlane(img.Width, img.Height)
	for i := 0; i < img.Width*img.Height; i++ {
		r, g, b := img.Pix[3*i], img.Pix[3*i+1], img.Pix[3*i+2]
		yy, cbb, crr := rgbToYCbCr(r, g, b)
		y.pix[i] = yy
		cb.pix[i] = cbb
		cr.pix[i] = crr
	}
	return
}

// encodeComponent runs one component's blocks through DCT, quantization,
// DC DPCM, zig-zag, AC run-length coding and Huffman entropy coding, in
// that order. The DPCM accumulation and the final bit emission are both
// sequential within this call: concurrency only happens across components,
// never within one.
func encodeComponent(blocks []block, p *componentPlan) ([]byte, error) {
	qblocks := make([]qblock, len(blocks))
	for i := range blocks {
		shifted := blocks[i]
		for j := range shifted {
			shifted[j] -= 128
		}
		coeffs := forwardDCT(&shifted)
		qblocks[i] = *quantize(coeffs, &p.quantMatrix)
	}

	units := make([]dataUnit, len(qblocks))
	prevDC := int32(0)
	for i, qb := range qblocks {
		dc := qb[0]
		diff := dc - prevDC
		prevDC = dc
		v := encodeVLI(diff)

		zz := zigzagScan(qb)
		units[i] = dataUnit{
			DCCategory: v.Category,
			DCBits:     v,
			AC:         rleEncodeAC(zz[1:]),
		}
	}

	w := &bitWriter{}
	for _, u := range units {
		code, ok := p.huffDC.lookup(u.DCCategory)
		if !ok {
			return nil, errorf(InvalidTable, "encodeComponent", "DC category %d has no Huffman code", u.DCCategory)
		}
		w.writeBits(code.code, uint32(code.length))
		if u.DCCategory > 0 {
			w.writeBits(uint32(u.DCBits.Bits), uint32(u.DCCategory))
		}
		for _, pair := range u.AC {
			var symbol byte
			switch {
			case pair.Run == 0 && pair.Value == 0:
				symbol = 0x00
			case pair.Run == 15 && pair.Value == 0:
				symbol = 0xf0
			default:
				acv := encodeVLI(pair.Value)
				symbol = pair.Run<<4 | acv.Category
				code, ok := p.huffAC.lookup(symbol)
				if !ok {
					return nil, errorf(InvalidTable, "encodeComponent", "AC symbol 0x%02x has no Huffman code", symbol)
				}
				w.writeBits(code.code, uint32(code.length))
				w.writeBits(uint32(acv.Bits), uint32(acv.Category))
				continue
			}
			code, ok := p.huffAC.lookup(symbol)
			if !ok {
				return nil, errorf(InvalidTable, "encodeComponent", "AC symbol 0x%02x has no Huffman code", symbol)
			}
			w.writeBits(code.code, uint32(code.length))
		}
	}
	return w.finish(), nil
}
