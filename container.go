package myjpeg

import (
	"encoding/binary"

	jsoniter "github.com/json-iterator/go"
)

var containerJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// containerMagic opens every MYJPEG byte stream.
var containerMagic = [6]byte{'M', 'Y', 'J', 'P', 'E', 'G'}

// header is the JSON-encoded metadata block that precedes the three
// entropy-coded payloads in a MYJPEG stream. Field names are fixed by the
// container format and must round-trip exactly.
type header struct {
	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`
	BlockSize      int `json:"block_size"`
	Quality        int `json:"quality"`

	PaddedDimsY  [2]int `json:"padded_dims_y"`
	PaddedDimsCb [2]int `json:"padded_dims_cb"`
	PaddedDimsCr [2]int `json:"padded_dims_cr"`

	QTableY [blockSize * blockSize]uint8 `json:"q_table_y"`
	QTableC [blockSize * blockSize]uint8 `json:"q_table_c"`

	HuffDCYBits    [16]byte `json:"huff_dc_y_bits"`
	HuffDCYHuffval []byte   `json:"huff_dc_y_huffval"`
	HuffACYBits    [16]byte `json:"huff_ac_y_bits"`
	HuffACYHuffval []byte   `json:"huff_ac_y_huffval"`
	HuffDCCBits    [16]byte `json:"huff_dc_c_bits"`
	HuffDCCHuffval []byte   `json:"huff_dc_c_huffval"`
	HuffACCBits    [16]byte `json:"huff_ac_c_bits"`
	HuffACCHuffval []byte   `json:"huff_ac_c_huffval"`

	DataLenY  int `json:"data_len_y"`
	DataLenCb int `json:"data_len_cb"`
	DataLenCr int `json:"data_len_cr"`
}

// marshalContainer assembles the final MYJPEG byte stream: magic, a 4-byte
// big-endian header length, the JSON header, then the three entropy-coded
// payloads in Y, Cb, Cr order.
func marshalContainer(h *header, y, cb, cr []byte) ([]byte, error) {
	headerBytes, err := containerJSON.Marshal(h)
	if err != nil {
		return nil, newError(InvalidInput, "marshalContainer", err)
	}
	out := make([]byte, 0, 6+4+len(headerBytes)+len(y)+len(cb)+len(cr))
	out = append(out, containerMagic[:]...)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(headerBytes)))
	out = append(out, lenBuf[:]...)
	out = append(out, headerBytes...)
	out = append(out, y...)
	out = append(out, cb...)
	out = append(out, cr...)
	return out, nil
}

// unmarshalContainer parses a MYJPEG byte stream into its header and the
// three raw (still entropy-coded) payloads.
func unmarshalContainer(data []byte) (h *header, y, cb, cr []byte, err error) {
	if len(data) < 6+4 {
		return nil, nil, nil, nil, errorf(InvalidContainer, "unmarshalContainer", "stream too short for magic+length: %d bytes", len(data))
	}
	if string(data[:6]) != string(containerMagic[:]) {
		return nil, nil, nil, nil, errorf(InvalidContainer, "unmarshalContainer", "bad magic %q", data[:6])
	}
	headerLen := binary.BigEndian.Uint32(data[6:10])
	if uint64(10)+uint64(headerLen) > uint64(len(data)) {
		return nil, nil, nil, nil, errorf(InvalidContainer, "unmarshalContainer", "header length %d overruns stream", headerLen)
	}
	headerBytes := data[10 : 10+headerLen]
	h = &header{}
	if err := containerJSON.Unmarshal(headerBytes, h); err != nil {
		return nil, nil, nil, nil, newError(InvalidContainer, "unmarshalContainer", err)
	}
	rest := data[10+headerLen:]
	if h.DataLenY < 0 || h.DataLenCb < 0 || h.DataLenCr < 0 {
		return nil, nil, nil, nil, errorf(InvalidContainer, "unmarshalContainer", "negative payload length in header")
	}
	need := int64(h.DataLenY) + int64(h.DataLenCb) + int64(h.DataLenCr)
	if need > int64(len(rest)) {
		return nil, nil, nil, nil, errorf(InvalidContainer, "unmarshalContainer", "payload lengths exceed remaining stream bytes")
	}
	y = rest[:h.DataLenY]
	cb = rest[h.DataLenY : h.DataLenY+h.DataLenCb]
	cr = rest[h.DataLenY+h.DataLenCb : h.DataLenY+h.DataLenCb+h.DataLenCr]
	return h, y, cb, cr, nil
}
