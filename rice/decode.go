package rice

import (
	"github.com/glampert/bytecodec"
	"github.com/glampert/bytecodec/bitstream"
)

// readRawBit clears the reader's code accumulator, reads one bit, and
// returns its value. It invokes Fatal on premature end of stream.
func readRawBit(r *bitstream.Reader) int {
	r.ClearCode()
	if !r.ReadNextBit() {
		bytecodec.Fatal("rice: unexpected end of stream")
	}
	return int(r.Code() & 1)
}

// Decode reads the 4-bit K prefix from r and then decodes exactly
// numSymbols Rice-coded bytes into out, returning the number written.
// The stream is not self-terminating: the caller must supply the exact
// original symbol count.
//
// If out fills before numSymbols symbols have been decoded, or the
// stream ends mid-symbol, it returns the partial count along with an
// error rather than invoking Fatal, since output has already been
// produced by the time either happens.
func Decode(r *bitstream.Reader, out []byte, numSymbols int) (n int, err error) {
	defer bytecodec.Recover(&err)

	k := int(r.ReadBitsU64(kFieldWidth))
	m := 1 << uint(k)

	for n = 0; n < numSymbols; n++ {
		if n >= len(out) {
			bytecodec.Fatal("rice: output buffer too small")
		}

		q := 0
		for readRawBit(r) == 1 {
			q++
		}

		rem := 0
		for i := k - 1; i >= 0; i-- {
			rem |= readRawBit(r) << uint(i)
		}

		out[n] = byte(m*q + rem)
	}

	return n, nil
}
