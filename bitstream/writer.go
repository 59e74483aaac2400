// Package bitstream implements the growable, bit-addressable buffer
// shared by every codec in this module: a Writer that appends individual
// bits, bit-groups, and Codes LSB-first within each byte, and a Reader
// that consumes the same layout from a borrowed byte range.
package bitstream

import "github.com/glampert/bytecodec"

const (
	defaultInitialBits = 8192
	defaultGranularity = 2
	minGranularity     = 2
)

// Writer is a growable, LSB-first bit buffer. The writer owns its
// underlying byte slice until Release transfers that ownership to the
// caller, at which point the writer resets to an empty state.
type Writer struct {
	buf            []byte
	bytesAllocated int
	currentByte    int
	nextBit        uint8 // 0..7, next free bit position within buf[currentByte]
	bitsWritten    uint64
	granularity    int
}

// New returns a Writer with the default initial reserve (8192 bits) and
// the default growth granularity (2).
func New() *Writer {
	return NewSize(defaultInitialBits, defaultGranularity)
}

// NewSize returns a Writer that reserves enough space for initialBits
// bits up front (rounded up to a power of two when initialBits is not a
// multiple of 8), growing by a factor of granularity (clamped to at
// least 2) whenever it runs out of room.
func NewSize(initialBits int, granularity int) *Writer {
	if granularity < minGranularity {
		granularity = minGranularity
	}

	this := &Writer{granularity: granularity}
	this.allocate(initialBits)
	return this
}

// allocate ensures the buffer holds at least bitsWanted bits worth of
// storage, rounding up to a power of two when bitsWanted is not a
// multiple of 8. Existing contents are preserved; newly reserved space
// is zero-filled.
func (this *Writer) allocate(bitsWanted int) {
	if bitsWanted <= 0 {
		bitsWanted = 8
	}

	if bitsWanted%8 != 0 {
		bitsWanted = nextPowerOfTwo(bitsWanted)
	}

	sizeInBytes := bitsWanted / 8
	if sizeInBytes <= this.bytesAllocated {
		return
	}

	grown := make([]byte, sizeInBytes)
	copy(grown, this.buf)
	this.buf = grown
	this.bytesAllocated = sizeInBytes
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// AppendBit writes the low bit of b at the current cursor position and
// advances the cursor, growing the buffer as soon as the cursor moves
// past its last byte.
func (this *Writer) AppendBit(b int) {
	mask := byte(1) << this.nextBit
	bit := byte(0)
	if b&1 != 0 {
		bit = 0xFF
	}
	this.buf[this.currentByte] = (this.buf[this.currentByte] &^ mask) | (bit & mask)
	this.bitsWritten++

	this.nextBit++
	if this.nextBit == 8 {
		this.nextBit = 0
		this.currentByte++
		if this.currentByte == this.bytesAllocated {
			this.allocate(this.bytesAllocated * this.granularity * 8)
		}
	}
}

// AppendBitsU64 appends the low n bits of value, LSB first (bit 0 of
// value lands at the current cursor position, bit 1 immediately after,
// and so on). n must be in [0, 64]; Fatal is invoked otherwise.
func (this *Writer) AppendBitsU64(value uint64, n int) {
	if n < 0 || n > bytecodec.MaxCodeBits {
		bytecodec.Fatal("bitstream: invalid bit count %d (must be in [0, 64])", n)
	}

	for i := 0; i < n; i++ {
		this.AppendBit(int((value >> uint(i)) & 1))
	}
}

// AppendCode appends c.Length bits of c.Bits, LSB first.
func (this *Writer) AppendCode(c bytecodec.Code) {
	this.AppendBitsU64(c.Bits, int(c.Length))
}

// ByteCount returns the number of whole bytes needed to hold the bits
// written so far: ceil(BitCount() / 8).
func (this *Writer) ByteCount() int {
	return int((this.bitsWritten + 7) / 8)
}

// BitCount returns the total number of bits appended so far.
func (this *Writer) BitCount() uint64 {
	return this.bitsWritten
}

// Data returns an immutable view of the underlying buffer, sized to
// ByteCount bytes. The returned slice aliases the writer's storage and
// must not be retained past the writer's next mutation or Release.
func (this *Writer) Data() []byte {
	return this.buf[:this.ByteCount()]
}

// Release transfers ownership of the underlying buffer (trimmed to
// ByteCount bytes) to the caller and resets the writer to a fresh, empty
// state.
func (this *Writer) Release() []byte {
	out := this.buf[:this.ByteCount()]
	this.buf = nil
	this.bytesAllocated = 0
	this.currentByte = 0
	this.nextBit = 0
	this.bitsWritten = 0
	return out
}
