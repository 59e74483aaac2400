package bitstream

import "github.com/glampert/bytecodec"

// Reader consumes bits LSB-first from a borrowed, immutable byte range.
// It never owns that range — the caller must keep it alive for the
// Reader's lifetime — and it accumulates a "current code" as bits are
// read, which callers may sample with Code/CodeLength and reset with
// ClearCode.
type Reader struct {
	data        []byte
	sizeInBytes int
	sizeInBits  uint64
	currentByte int
	nextBit     uint8
	bitsRead    uint64
	currentCode bytecodec.Code
}

// NewFromWriter builds a Reader over the bits currently held by w,
// without transferring ownership (w keeps its buffer).
func NewFromWriter(w *Writer) *Reader {
	return NewReader(w.Data(), w.ByteCount(), w.BitCount())
}

// NewReader builds a Reader over data[:sizeInBytes], which is expected to
// hold sizeInBits valid bits (sizeInBits may be less than 8*sizeInBytes by
// the byte-boundary padding count).
func NewReader(data []byte, sizeInBytes int, sizeInBits uint64) *Reader {
	return &Reader{
		data:        data,
		sizeInBytes: sizeInBytes,
		sizeInBits:  sizeInBits,
	}
}

// Reset rewinds the cursor to the start of the stream and clears the
// current-code accumulator.
func (this *Reader) Reset() {
	this.currentByte = 0
	this.nextBit = 0
	this.bitsRead = 0
	this.currentCode = bytecodec.Code{}
}

// ReadNextBit reads one bit and appends it to the current-code
// accumulator, returning true. At end of stream it returns false without
// advancing the cursor or touching the accumulator.
func (this *Reader) ReadNextBit() bool {
	if this.bitsRead >= this.sizeInBits {
		return false
	}

	mask := byte(1) << this.nextBit
	bit := 0
	if this.data[this.currentByte]&mask != 0 {
		bit = 1
	}

	this.nextBit++
	if this.nextBit == 8 {
		this.nextBit = 0
		this.currentByte++
	}
	this.bitsRead++
	this.currentCode = this.currentCode.Append(bit)
	return true
}

// ReadBitsU64 clears the current-code accumulator, reads n bits
// (n in [0, 64]) and returns them packed LSB-first. It invokes Fatal on
// premature end of stream; a subsequent call is still safe to make
// (the cursor is left exactly where it stopped).
func (this *Reader) ReadBitsU64(n int) uint64 {
	if n < 0 || n > bytecodec.MaxCodeBits {
		bytecodec.Fatal("bitstream: invalid bit count %d (must be in [0, 64])", n)
	}

	this.ClearCode()

	var value uint64
	for i := 0; i < n; i++ {
		if !this.ReadNextBit() {
			bytecodec.Fatal("bitstream: unexpected end of stream reading %d bits", n)
		}
		if this.currentCode.Bit(uint8(i)) != 0 {
			value |= 1 << uint(i)
		}
	}

	return value
}

// ClearCode resets the current-code accumulator to an empty code without
// moving the read cursor.
func (this *Reader) ClearCode() {
	this.currentCode = bytecodec.Code{}
}

// Code returns the current-code accumulator's bits packed LSB-first.
func (this *Reader) Code() uint64 {
	return this.currentCode.Bits
}

// CodeLength returns the number of bits accumulated in the current code
// since the last ClearCode (or Reset).
func (this *Reader) CodeLength() uint8 {
	return this.currentCode.Length
}

// BitsRead returns the total number of bits consumed so far.
func (this *Reader) BitsRead() uint64 {
	return this.bitsRead
}

// AtEnd reports whether the reader has consumed every available bit.
func (this *Reader) AtEnd() bool {
	return this.bitsRead >= this.sizeInBits
}
