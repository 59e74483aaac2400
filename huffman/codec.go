package huffman

import (
	"github.com/glampert/bytecodec"
	"github.com/glampert/bytecodec/bitstream"
)

// headerFieldWidth is the wire width, in bits, of the numberOfCodes and
// codeLengthWidth fields of the serialized tree prefix.
const headerFieldWidth = 16

// Encode writes a self-describing tree prefix followed by the Huffman
// encoding of block to w. It invokes Fatal if block is empty or if the
// tree it builds assigns a code longer than 64 bits — neither is
// recoverable, since nothing has been written to w yet.
func Encode(w *bitstream.Writer, block []byte) {
	if len(block) == 0 {
		bytecodec.Fatal("huffman: Encode requires a non-empty block")
	}

	t := newTree()
	count := t.buildFrequencies(block)
	root := t.build(count)
	t.assignCodes(root, bytecodec.Code{}, 0)

	maxLen := t.maxLeafCodeLength()
	if maxLen == 0 || maxLen > bytecodec.MaxCodeBits {
		bytecodec.Fatal("huffman: built tree has invalid max code length %d", maxLen)
	}

	writeTree(w, t, maxLen)

	for _, b := range block {
		w.AppendCode(t.nodes[b].code)
	}
}

// writeTree serializes the tree as a 16-bit numberOfCodes (always
// maxSymbols), a 16-bit codeLengthWidth, then for every symbol 0..255 in
// order a codeLengthWidth-bit length (0 for unused symbols) followed by
// that many code bits, and finally zero-padding up to the next byte
// boundary.
func writeTree(w *bitstream.Writer, t *tree, maxLen int) {
	width := bitsNeeded(maxLen)

	w.AppendBitsU64(uint64(maxSymbols), headerFieldWidth)
	w.AppendBitsU64(uint64(width), headerFieldWidth)

	for s := 0; s < maxSymbols; s++ {
		n := &t.nodes[s]
		length := 0
		if t.inUse(s) {
			length = int(n.code.Length)
		}

		w.AppendBitsU64(uint64(length), width)
		if length > 0 {
			w.AppendBitsU64(n.code.Bits, length)
		}
	}

	for w.BitCount()%8 != 0 {
		w.AppendBit(0)
	}
}

// bitsNeeded returns the smallest number of bits that can represent
// every integer in [0, maxLen].
func bitsNeeded(maxLen int) int {
	n := 0
	for (1 << uint(n)) <= maxLen {
		n++
	}
	return n
}

// readTree parses the tree prefix written by writeTree, returning the
// per-symbol code table (unused symbols keep the zero Code). It invokes
// Fatal on any structurally invalid prefix — a wrong numberOfCodes, an
// out-of-range codeLengthWidth, or a code length over 64 bits — since a
// malformed prefix leaves no sensible partial result to return.
func readTree(r *bitstream.Reader) [maxSymbols]bytecodec.Code {
	var codes [maxSymbols]bytecodec.Code

	n := r.ReadBitsU64(headerFieldWidth)
	if n != maxSymbols {
		bytecodec.Fatal("huffman: malformed tree prefix: numberOfCodes = %d, want %d", n, maxSymbols)
	}

	width := int(r.ReadBitsU64(headerFieldWidth))
	if width <= 0 || width > bytecodec.MaxCodeBits {
		bytecodec.Fatal("huffman: malformed tree prefix: invalid codeLengthWidth %d", width)
	}

	for s := 0; s < maxSymbols; s++ {
		length := int(r.ReadBitsU64(width))
		if length == 0 {
			continue
		}
		if length > bytecodec.MaxCodeBits {
			bytecodec.Fatal("huffman: malformed tree prefix: code length %d exceeds 64", length)
		}
		bits := r.ReadBitsU64(length)
		codes[s] = bytecodec.Code{Bits: bits, Length: uint8(length)}
	}

	for r.BitsRead()%8 != 0 {
		r.ReadNextBit()
	}

	return codes
}

// matchCode performs a linear scan: does any symbol's code equal the
// reader's current code accumulator.
func matchCode(codes [maxSymbols]bytecodec.Code, r *bitstream.Reader) (symbol int, ok bool) {
	length := r.CodeLength()
	bits := r.Code()

	for s := 0; s < maxSymbols; s++ {
		c := codes[s]
		if c.Length == length && c.Bits == bits {
			return s, true
		}
	}
	return 0, false
}

// Decode reads a tree prefix from r and then decodes symbols into out
// until ReadNextBit signals end of stream, returning the number of
// bytes written. The stream is fully self-terminating: r must be sized
// to the encoder's exact bit count (not a byte-rounded count), since any
// trailing bits beyond the real stream are otherwise fed to the decode
// loop as if they were data. Any trailing bits after the last valid
// code that never complete a match are silently discarded when the
// stream ends mid-code — this is normal termination, not an error.
//
// If out fills while bits remain, it returns the partial count along
// with an error rather than invoking Fatal, since output has already
// been produced by the time that happens. A malformed tree prefix is not
// recovered: readTree's Fatal propagates to the caller.
func Decode(r *bitstream.Reader, out []byte) (n int, err error) {
	codes := readTree(r)

	defer bytecodec.Recover(&err)

	r.ClearCode()
	for r.ReadNextBit() {
		symbol, ok := matchCode(codes, r)
		if !ok {
			continue
		}

		if n >= len(out) {
			bytecodec.Fatal("huffman: output buffer too small")
		}
		out[n] = byte(symbol)
		n++
		r.ClearCode()
	}

	return n, nil
}
