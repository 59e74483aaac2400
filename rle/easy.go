package rle

import "github.com/glampert/bytecodec"

// EasyEncode is the one-shot entry point: it allocates an output buffer
// sized to the worst case (every input byte starting its own run) and
// returns the compressed slice, trimmed to its actual length.
//
// It invokes Fatal on API misuse: a nil or empty input.
func EasyEncode(w Width, in []byte) ([]byte, error) {
	if len(in) == 0 {
		bytecodec.Fatal("rle: EasyEncode requires a non-empty input")
	}

	out := make([]byte, len(in)*w.packetSize())
	n, err := Encode(w, in, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// EasyDecode is the one-shot counterpart to EasyEncode. RLE's wire
// format is neither self-describing nor self-terminating, so the caller
// must supply the exact original length.
//
// It invokes Fatal on API misuse: a nil/empty input or a non-positive
// uncompressedLen.
func EasyDecode(w Width, in []byte, uncompressedLen int) ([]byte, error) {
	if len(in) == 0 {
		bytecodec.Fatal("rle: EasyDecode requires a non-empty input")
	}
	if uncompressedLen <= 0 {
		bytecodec.Fatal("rle: EasyDecode requires a positive uncompressedLen")
	}

	out := make([]byte, uncompressedLen)
	n, err := Decode(w, in, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
