// Package rice implements Rice (Golomb with a power-of-two divisor)
// coding over single bytes: per-symbol unary quotient plus a fixed-width
// binary remainder, and a brute-force search for the parameter K that
// minimizes total coded size.
package rice

import (
	"github.com/glampert/bytecodec"
	"github.com/glampert/bytecodec/bitstream"
)

// kFieldWidth is the wire width, in bits, of the K parameter prefix.
const kFieldWidth = 4

// MaxK is the largest parameter the 4-bit wire field can hold.
const MaxK = 15

// codeLength returns the number of bits Encode would spend on byte v
// with parameter k: a q-bit unary quotient, its 0 terminator, and k
// remainder bits.
func codeLength(v byte, k int) int {
	q := int(v) >> uint(k)
	return q + 1 + k
}

// BestK searches k in [0, kMax] and returns the value that minimizes the
// total coded size of block, along with that size in bits. Ties favor
// the smaller k.
func BestK(block []byte, kMax int) (bestK int, bestBits int) {
	bestBits = -1
	for k := 0; k <= kMax; k++ {
		total := 0
		for _, v := range block {
			total += codeLength(v, k)
		}
		if bestBits == -1 || total < bestBits {
			bestBits = total
			bestK = k
		}
	}
	return bestK, bestBits
}

// Encode writes the 4-bit K prefix followed by the Rice encoding of
// block with parameter k to w. It invokes Fatal if k is outside
// [0, MaxK].
func Encode(w *bitstream.Writer, block []byte, k int) {
	if k < 0 || k > MaxK {
		bytecodec.Fatal("rice: K out of range: %d", k)
	}

	w.AppendBitsU64(uint64(k), kFieldWidth)
	for _, v := range block {
		writeSymbol(w, v, k)
	}
}

func writeSymbol(w *bitstream.Writer, v byte, k int) {
	q := int(v) >> uint(k)
	for i := 0; i < q; i++ {
		w.AppendBit(1)
	}
	w.AppendBit(0)

	// The remainder is written MSB first (bit k-1 down to bit 0), unlike
	// every other multi-bit field in this module's bit streams. Decode
	// mirrors this exactly, so the pair stays self-consistent.
	r := int(v) & ((1 << uint(k)) - 1)
	for i := k - 1; i >= 0; i-- {
		w.AppendBit((r >> uint(i)) & 1)
	}
}
