package myjpeg

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Decode parses a MYJPEG byte stream back into an RGB raster. A payload
// whose entropy-coded stream ends before all of its component's blocks are
// decoded is not fatal: the affected blocks are filled in as mid-gray and
// decoding continues with the rest of the image, exactly as the error
// taxonomy's CorruptBitstream policy requires.
func Decode(data []byte) (*RGBImage, error) {
	const op = "Decode"
	id := callID()

	h, yPayload, cbPayload, crPayload, err := unmarshalContainer(data)
	if err != nil {
		return nil, err
	}
	if h.BlockSize != blockSize {
		return nil, errorf(InvalidContainer, op, "unsupported block_size %d", h.BlockSize)
	}
	if h.Quality < minQuality || h.Quality > maxQuality {
		return nil, errorf(InvalidContainer, op, "quality %d outside [%d, %d]", h.Quality, minQuality, maxQuality)
	}
	if h.OriginalWidth <= 0 || h.OriginalHeight <= 0 {
		return nil, errorf(InvalidContainer, op, "non-positive original dimensions")
	}

	huffDCY, err := newHuffmanTable(h.HuffDCYBits, h.HuffDCYHuffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}
	huffACY, err := newHuffmanTable(h.HuffACYBits, h.HuffACYHuffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}
	huffDCC, err := newHuffmanTable(h.HuffDCCBits, h.HuffDCCHuffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}
	huffACC, err := newHuffmanTable(h.HuffACCBits, h.HuffACCHuffval)
	if err != nil {
		return nil, newError(InvalidTable, op, err)
	}

	plans := [3]componentPlan{
		{name: "Y", quantMatrix: h.QTableY, huffDC: huffDCY, huffAC: huffACY},
		{name: "Cb", quantMatrix: h.QTableC, huffDC: huffDCC, huffAC: huffACC},
		{name: "Cr", quantMatrix: h.QTableC, huffDC: huffDCC, huffAC: huffACC},
	}
	payloads := [3][]byte{yPayload, cbPayload, crPayload}
	paddedDims := [3][2]int{h.PaddedDimsY, h.PaddedDimsCb, h.PaddedDimsCr}
	planesOut := make([]*plane, 3)

	var g errgroup.Group
	for i := 0; i < 3; i++ {
		i := i
		g.Go(func() error {
			paddedH, paddedW := paddedDims[i][0], paddedDims[i][1]
			if paddedW <= 0 || paddedH <= 0 || paddedW%blockSize != 0 || paddedH%blockSize != 0 {
				return errorf(InvalidContainer, op, "invalid padded dimensions for component %s", plans[i].name)
			}
			numBlocks := (paddedW / blockSize) * (paddedH / blockSize)
			qblocks := decodeComponent(payloads[i], numBlocks, &plans[i], id)
			blocks := make([]block, len(qblocks))
			for j, qb := range qblocks {
				dq := dequantize(&qb, &plans[i].quantMatrix)
				spatial := inverseDCT(dq)
				for k := range spatial {
					spatial[k] += 128
				}
				blocks[j] = *spatial
			}
			p, err := reassembleFromBlocks(blocks, paddedW, paddedH)
			if err != nil {
				return err
			}
			planesOut[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, newError(InvalidContainer, op, err)
	}

	yPlane := cropPlane(planesOut[0], h.OriginalWidth, h.OriginalHeight)
	chromaW := int(math.Ceil(float64(h.OriginalWidth) / 2))
	chromaH := int(math.Ceil(float64(h.OriginalHeight) / 2))
	cbPlane := cropPlane(planesOut[1], chromaW, chromaH)
	crPlane := cropPlane(planesOut[2], chromaW, chromaH)

	cbUp := upsampleNearestNeighbor(cbPlane, h.OriginalWidth, h.OriginalHeight)
	crUp := upsampleNearestNeighbor(crPlane, h.OriginalWidth, h.OriginalHeight)

	out := &RGBImage{Width: h.OriginalWidth, Height: h.OriginalHeight, Pix: make([]uint8, h.OriginalWidth*h.OriginalHeight*3)}
	for i := 0; i < h.OriginalWidth*h.OriginalHeight; i++ {
		r, g, b := ycbcrToRGB(yPlane.pix[i], cbUp.pix[i], crUp.pix[i])
		out.Pix[3*i], out.Pix[3*i+1], out.Pix[3*i+2] = r, g, b
	}
	Logger.Debug().Str("call_id", id).Int("width", out.Width).Int("height", out.Height).Msg("myjpeg decode complete")
	return out, nil
}

// decodeComponent decodes as many of numBlocks data units as the entropy
// stream holds, in Huffman-symbol, DC-DPCM, zig-zag order. Any shortfall
// (the stream ran out mid-block, or a symbol had no matching codeword) is
// logged once as CorruptBitstream and the remaining blocks are returned as
// all-zero (mid-gray after dequantize/IDCT/level-shift), matching the
// container format's best-effort decode policy.
func decodeComponent(payload []byte, numBlocks int, p *componentPlan, callID string) []qblock {
	out := make([]qblock, numBlocks)
	r := newBitReader(payload)
	prevDC := int32(0)
	decoded := 0
	for ; decoded < numBlocks; decoded++ {
		dcCategory, ok := p.huffDC.decodeOne(r)
		if !ok {
			break
		}
		var dcBits uint32
		if dcCategory > 0 {
			dcBits, ok = r.readBits(int(dcCategory))
			if !ok {
				break
			}
		}
		diff := decodeVLI(dcCategory, uint16(dcBits))
		dc := prevDC + diff

		var pairs []rlePair
		acCount := 0
		failed := false
		for acCount < blockSize*blockSize-1 {
			symbol, ok := p.huffAC.decodeOne(r)
			if !ok {
				failed = true
				break
			}
			switch symbol {
			case 0x00:
				pairs = append(pairs, rlePair{Run: 0, Value: 0})
				acCount = blockSize*blockSize - 1
			case 0xf0:
				pairs = append(pairs, rlePair{Run: 15, Value: 0})
				acCount += 16
			default:
				run := symbol >> 4
				category := symbol & 0x0f
				if category == 0 || category > 15 {
					failed = true
				} else {
					bits, ok := r.readBits(int(category))
					if !ok {
						failed = true
						break
					}
					value := decodeVLI(category, uint16(bits))
					pairs = append(pairs, rlePair{Run: run, Value: value})
					acCount += int(run) + 1
				}
			}
			if failed {
				break
			}
		}
		if failed {
			break
		}

		prevDC = dc
		ac := rleDecodeAC(pairs, blockSize*blockSize-1)
		var zz [blockSize * blockSize]int32
		zz[0] = dc
		copy(zz[1:], ac)
		out[decoded] = inverseZigzagScan(zz)
	}
	if decoded < numBlocks {
		Logger.Warn().
			Str("call_id", callID).
			Str("kind", CorruptBitstream.String()).
			Str("component", p.name).
			Int("decoded_blocks", decoded).
			Int("total_blocks", numBlocks).
			Msg("entropy stream ended early, filling remaining blocks as mid-gray")
	}
	return out
}
