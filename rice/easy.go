package rice

import (
	"github.com/glampert/bytecodec"
	"github.com/glampert/bytecodec/bitstream"
)

// KMaxEasy is the search bound EasyEncode uses when picking K. The
// lower-level Encode/BestK accept any K up to MaxK.
const KMaxEasy = 8

// EasyEncode is the one-shot entry point: it searches K in [0, KMaxEasy]
// for the smallest total coded size, then writes the Rice encoding of
// block with that K to a fresh bit stream. It invokes Fatal on an empty
// block.
func EasyEncode(block []byte) []byte {
	if len(block) == 0 {
		bytecodec.Fatal("rice: EasyEncode requires a non-empty block")
	}

	k, _ := BestK(block, KMaxEasy)

	w := bitstream.New()
	Encode(w, block, k)
	return w.Release()
}

// EasyDecode is the one-shot counterpart to EasyEncode.
//
// It invokes Fatal on a nil/empty data slice or a non-positive
// numSymbols.
func EasyDecode(data []byte, numSymbols int) ([]byte, error) {
	if len(data) == 0 {
		bytecodec.Fatal("rice: EasyDecode requires non-empty input")
	}
	if numSymbols <= 0 {
		bytecodec.Fatal("rice: EasyDecode requires a positive numSymbols")
	}

	r := bitstream.NewReader(data, len(data), uint64(len(data))*8)
	out := make([]byte, numSymbols)

	n, err := Decode(r, out, numSymbols)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
