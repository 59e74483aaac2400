package huffman

import (
	"github.com/glampert/bytecodec"
	"github.com/glampert/bytecodec/bitstream"
)

// EasyEncode is the one-shot entry point: it builds a fresh bit stream,
// writes the tree-prefixed Huffman encoding of block to it, and returns
// the result along with the exact number of bits written. It invokes
// Fatal on an empty block.
//
// bitCount matters: the encoded byte slice is rounded up to a whole
// number of bytes, but nothing pads the stream out to that boundary, so
// a reader built over len(data)*8 bits would see up to 7 bits of
// meaningless trailing zeros as if they were stream content. Passing the
// exact bitCount back into EasyDecode is what makes decode's end-of-
// stream termination land exactly where encoding stopped.
func EasyEncode(block []byte) (data []byte, bitCount uint64) {
	if len(block) == 0 {
		bytecodec.Fatal("huffman: EasyEncode requires a non-empty block")
	}

	w := bitstream.New()
	Encode(w, block)
	bitCount = w.BitCount()
	return w.Release(), bitCount
}

// EasyDecode is the one-shot counterpart to EasyEncode. Huffman is
// fully self-terminating given the exact bitCount EasyEncode returned:
// no symbol count needs to travel alongside the data. The output buffer
// is sized to bitCount bytes, a safe upper bound since every assigned
// code is at least 1 bit long, so decoding can never emit more symbols
// than there are bits in the stream.
//
// It invokes Fatal on a nil/empty data slice or a zero bitCount.
func EasyDecode(data []byte, bitCount uint64) ([]byte, error) {
	if len(data) == 0 {
		bytecodec.Fatal("huffman: EasyDecode requires non-empty input")
	}
	if bitCount == 0 {
		bytecodec.Fatal("huffman: EasyDecode requires a positive bitCount")
	}

	r := bitstream.NewReader(data, len(data), bitCount)
	out := make([]byte, bitCount)

	n, err := Decode(r, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
