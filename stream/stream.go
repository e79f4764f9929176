// Package stream implements a bit-granular cursor over a fixed, caller-owned
// byte buffer.
//
// A Stream tracks a position measured in bits and supports byte-aligned and
// bit-accurate reads and writes, seeking, telling, and alignment to the next
// byte boundary. The buffer never grows: capacity is fixed at construction
// and any transfer that would run past it fails with errs.ErrBufferTooShort,
// leaving both the position and the buffer contents untouched.
//
// The endian.Mode chosen at construction governs two things at once: the
// byte order of aligned multi-byte scalars written through the codec
// package, and the bit order used when a field narrower than a byte (or one
// spilling across a byte boundary) is packed into the buffer. The mode can
// be changed mid-stream only while the position sits on a byte boundary.
//
// A Stream is not safe for concurrent use; it borrows its buffer and must
// not outlive it.
package stream

import (
	"github.com/tomaszszewczyk/bitfield/endian"
	"github.com/tomaszszewczyk/bitfield/errs"
)

const bitsInByte = 8

// Stream is a bit-level cursor over an externally owned byte buffer.
type Stream struct {
	buf      []byte
	bitLen   int
	bitIndex int
	mode     endian.Mode
}

// New creates a stream over buf with the given mode, positioned at bit 0.
//
// Panics if buf is empty or mode is not a defined mode; both are programmer
// errors, not runtime conditions.
func New(buf []byte, mode endian.Mode) *Stream {
	if len(buf) == 0 {
		panic("stream: empty buffer")
	}
	if !mode.Valid() {
		panic("stream: invalid mode")
	}

	return &Stream{
		buf:    buf,
		bitLen: len(buf) * bitsInByte,
		mode:   mode,
	}
}

// Mode returns the current stream mode.
func (s *Stream) Mode() endian.Mode {
	return s.mode
}

// SetMode changes the stream mode.
//
// The mode may only change while the position is on a byte boundary;
// otherwise errs.ErrNotAligned is returned and the mode is unchanged.
// Setting the current mode again is always a no-op.
func (s *Stream) SetMode(mode endian.Mode) error {
	if !mode.Valid() {
		panic("stream: invalid mode")
	}
	if s.mode == mode {
		return nil
	}
	if s.TellBitInByte() != 0 {
		return errs.ErrNotAligned
	}

	s.mode = mode

	return nil
}

// Size returns the buffer capacity in bytes.
func (s *Stream) Size() int {
	return s.bitLen / bitsInByte
}

// SizeBits returns the buffer capacity in bits.
func (s *Stream) SizeBits() int {
	return s.bitLen
}

// Left returns the number of whole bytes between the position and the end
// of the buffer.
func (s *Stream) Left() int {
	return (s.bitLen - s.bitIndex) / bitsInByte
}

// LeftBits returns the number of bits between the position and the end of
// the buffer.
func (s *Stream) LeftBits() int {
	return s.bitLen - s.bitIndex
}

// LeftBitsInByte returns the number of bits left before the next byte
// boundary, zero if the position is aligned.
func (s *Stream) LeftBitsInByte() int {
	return s.LeftBits() % bitsInByte
}

// Seek moves the position to the start of the given byte. The end-of-buffer
// index (index == Size()) is a valid position.
func (s *Stream) Seek(index int) error {
	if index < 0 || index > s.Size() {
		return errs.ErrBufferTooShort
	}

	s.bitIndex = index * bitsInByte

	return nil
}

// SeekBit moves the position to the given bit. The end-of-buffer index
// (bitIndex == SizeBits()) is a valid position.
func (s *Stream) SeekBit(bitIndex int) error {
	if bitIndex < 0 || bitIndex > s.SizeBits() {
		return errs.ErrBufferTooShort
	}

	s.bitIndex = bitIndex

	return nil
}

// SeekBitInByte moves the position to the given bit offset within the
// current byte. The offset must be in [0, 8).
func (s *Stream) SeekBitInByte(bitIndex int) {
	s.bitIndex = s.Tell()*bitsInByte + bitIndex
}

// Tell returns the position in whole bytes, rounded down.
func (s *Stream) Tell() int {
	return s.bitIndex / bitsInByte
}

// TellBit returns the position in bits.
func (s *Stream) TellBit() int {
	return s.bitIndex
}

// TellBitInByte returns the bit offset of the position within the current
// byte.
func (s *Stream) TellBitInByte() int {
	return s.bitIndex % bitsInByte
}

// Align advances the position to the next byte boundary. It is a no-op if
// the position is already aligned. The skipped bits are not modified.
func (s *Stream) Align() {
	if rem := s.TellBitInByte(); rem != 0 {
		s.bitIndex += bitsInByte - rem
	}
}

// Write aligns the position to the next byte boundary and copies data into
// the buffer. On errs.ErrBufferTooShort nothing is written and the position
// is unchanged.
func (s *Stream) Write(data []byte) error {
	if s.Left() < len(data) {
		return errs.ErrBufferTooShort
	}

	s.Align()

	copy(s.buf[s.Tell():], data)
	s.bitIndex += len(data) * bitsInByte

	return nil
}

// Read aligns the position to the next byte boundary and copies len(data)
// bytes out of the buffer. On errs.ErrBufferTooShort nothing is read and
// the position is unchanged.
func (s *Stream) Read(data []byte) error {
	if s.Left() < len(data) {
		return errs.ErrBufferTooShort
	}

	s.Align()

	copy(data, s.buf[s.Tell():])
	s.bitIndex += len(data) * bitsInByte

	return nil
}

// WriteBits writes exactly bitLen bits of data into the buffer at the
// current position, honoring the stream mode.
//
// In Big mode the significant bits are taken right-aligned from data (a
// 12-bit value occupies the low 12 of 16 bits); in Little mode they are
// taken left-aligned (the low 12 bits of data[0] and data[1]). Bits of the
// destination outside the written range keep their previous contents.
func (s *Stream) WriteBits(data []byte, bitLen int) error {
	if s.LeftBits() < bitLen {
		return errs.ErrBufferTooShort
	}

	offset := 0
	if bitLen%bitsInByte != 0 && s.mode == endian.Big {
		offset = bitsInByte - bitLen%bitsInByte
	}

	for srcIndex := offset; srcIndex < bitLen+offset; {
		srcSize := min(bitsInByte-srcIndex%bitsInByte, bitLen+offset-srcIndex)
		dstSize := min(bitsInByte-s.TellBitInByte(), s.LeftBits())
		moveSize := min(srcSize, dstSize)

		part := readPartByte(data[srcIndex/bitsInByte], srcIndex, moveSize, s.mode)
		writePartByte(&s.buf[s.Tell()], part, s.bitIndex, moveSize, s.mode)

		s.bitIndex += moveSize
		srcIndex += moveSize
	}

	return nil
}

// ReadBits reads exactly bitLen bits from the buffer at the current
// position into data, honoring the stream mode. The placement of the
// significant bits within data mirrors WriteBits; bits of data outside the
// transferred range are left untouched, so callers normally pass a zeroed
// scratch buffer.
func (s *Stream) ReadBits(data []byte, bitLen int) error {
	if s.LeftBits() < bitLen {
		return errs.ErrBufferTooShort
	}

	offset := 0
	if bitLen%bitsInByte != 0 && s.mode == endian.Big {
		offset = bitsInByte - bitLen%bitsInByte
	}

	for dstIndex := offset; dstIndex < bitLen+offset; {
		dstSize := min(bitsInByte-dstIndex%bitsInByte, bitLen+offset-dstIndex)
		srcSize := min(bitsInByte-s.TellBitInByte(), s.LeftBits())
		moveSize := min(dstSize, srcSize)

		part := readPartByte(s.buf[s.Tell()], s.bitIndex, moveSize, s.mode)
		writePartByte(&data[dstIndex/bitsInByte], part, dstIndex, moveSize, s.mode)

		s.bitIndex += moveSize
		dstIndex += moveSize
	}

	return nil
}

// byteMask returns a byte with bits [start, stop) set.
func byteMask(start, stop int) byte {
	lower := byte(0xFF << start)
	upper := byte(0xFF >> (bitsInByte - stop))

	return lower & upper
}

// writePartByte inserts the low bitCount bits of value into *dst at the
// given bit index, clearing the destination slot first. The slot position
// within the byte depends on the mode.
func writePartByte(dst *byte, value byte, index, bitCount int, mode endian.Mode) {
	index %= bitsInByte

	var start, stop int
	if mode == endian.Little {
		start, stop = index, index+bitCount
	} else {
		start, stop = bitsInByte-index-bitCount, bitsInByte-index
	}

	mask := byteMask(start, stop)

	*dst &^= mask
	*dst |= value << start
}

// readPartByte extracts bitCount bits from value at the given bit index,
// shifted down to the least significant position.
func readPartByte(value byte, index, bitCount int, mode endian.Mode) byte {
	index %= bitsInByte

	var start, stop int
	if mode == endian.Little {
		start, stop = index, index+bitCount
	} else {
		start, stop = bitsInByte-index-bitCount, bitsInByte-index
	}

	mask := byteMask(start, stop)

	return (value & mask) >> start
}
