package myjpeg

// zigzagOrder[i] is the row-major index of the sample visited i'th when
// scanning an 8x8 block in the classic JPEG zig-zag order. Computed once at
// init time by directly replaying the same wall-reflection walk the
// reference encoder/decoder uses, rather than hand-transcribing the 64
// constants.
var zigzagOrder [blockSize * blockSize]int

func init() {
	row, col := 0, 0
	up := true
	for i := 0; i < blockSize*blockSize; i++ {
		zigzagOrder[i] = row*blockSize + col
		switch {
		case up && col == blockSize-1:
			row++
			up = false
		case up && row == 0:
			col++
			up = false
		case up:
			row--
			col++
		case !up && row == blockSize-1:
			col++
			up = true
		case !up && col == 0:
			row++
			up = true
		default:
			row++
			col--
		}
	}
}

// zigzagScan reorders a row-major 8x8 array into zig-zag scan order.
func zigzagScan(b [blockSize * blockSize]int32) [blockSize * blockSize]int32 {
	var out [blockSize * blockSize]int32
	for i, idx := range zigzagOrder {
		out[i] = b[idx]
	}
	return out
}

// inverseZigzagScan reorders a zig-zag scanned array back to row-major.
func inverseZigzagScan(a [blockSize * blockSize]int32) [blockSize * blockSize]int32 {
	var out [blockSize * blockSize]int32
	for i, idx := range zigzagOrder {
		out[idx] = a[i]
	}
	return out
}
