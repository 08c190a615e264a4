package myjpeg

// rlePair is one (run, value) entry of a run-length-coded AC coefficient
// sequence. A pair with Run==15 and Value==0 is the ZRL (16 zeros) escape;
// a pair with Run==0 and Value==0 is the end-of-block marker.
type rlePair struct {
	Run   uint8
	Value int32
}

// rleEncodeAC run-length encodes the 63 AC coefficients of a zig-zag
// scanned block (DC already excluded by the caller), emitting a ZRL for
// every run of 16 zeros and a trailing end-of-block pair.
func rleEncodeAC(ac []int32) []rlePair {
	var out []rlePair
	run := 0
	for _, c := range ac {
		if c == 0 {
			run++
			if run == 16 {
				out = append(out, rlePair{Run: 15, Value: 0})
				run = 0
			}
			continue
		}
		out = append(out, rlePair{Run: uint8(run), Value: c})
		run = 0
	}
	out = append(out, rlePair{Run: 0, Value: 0})
	return out
}

// rleDecodeAC expands a run-length coded AC sequence back to numAC
// coefficients, stopping at (and not including) the end-of-block pair and
// zero-filling whatever the stream left short.
func rleDecodeAC(pairs []rlePair, numAC int) []int32 {
	out := make([]int32, 0, numAC)
	for _, p := range pairs {
		switch {
		case p.Run == 0 && p.Value == 0:
			for len(out) < numAC {
				out = append(out, 0)
			}
			return out
		case p.Run == 15 && p.Value == 0:
			for i := 0; i < 16 && len(out) < numAC; i++ {
				out = append(out, 0)
			}
		default:
			for i := uint8(0); i < p.Run && len(out) < numAC; i++ {
				out = append(out, 0)
			}
			if len(out) < numAC {
				out = append(out, p.Value)
			}
		}
		if len(out) >= numAC {
			out = out[:numAC]
			return out
		}
	}
	for len(out) < numAC {
		out = append(out, 0)
	}
	return out
}
