package codec

import "github.com/tomaszszewczyk/bitfield/stream"

// WriteUint8 writes v byte-aligned.
func WriteUint8(s *stream.Stream, v uint8) error {
	return writeUint(s, uint64(v), 1)
}

// WriteUint16 writes v byte-aligned in the stream's byte order.
func WriteUint16(s *stream.Stream, v uint16) error {
	return writeUint(s, uint64(v), 2)
}

// WriteUint32 writes v byte-aligned in the stream's byte order.
func WriteUint32(s *stream.Stream, v uint32) error {
	return writeUint(s, uint64(v), 4)
}

// WriteUint64 writes v byte-aligned in the stream's byte order.
func WriteUint64(s *stream.Stream, v uint64) error {
	return writeUint(s, v, 8)
}

// ReadUint8 reads a byte-aligned uint8.
func ReadUint8(s *stream.Stream) (uint8, error) {
	v, err := readUint(s, 1)

	return uint8(v), err
}

// ReadUint16 reads a byte-aligned uint16 in the stream's byte order.
func ReadUint16(s *stream.Stream) (uint16, error) {
	v, err := readUint(s, 2)

	return uint16(v), err
}

// ReadUint32 reads a byte-aligned uint32 in the stream's byte order.
func ReadUint32(s *stream.Stream) (uint32, error) {
	v, err := readUint(s, 4)

	return uint32(v), err
}

// ReadUint64 reads a byte-aligned uint64 in the stream's byte order.
func ReadUint64(s *stream.Stream) (uint64, error) {
	return readUint(s, 8)
}

// WriteUint8Bits writes v into a field of bitWidth bits.
func WriteUint8Bits(s *stream.Stream, v uint8, bitWidth int) error {
	return writeUintBits(s, uint64(v), 1, bitWidth)
}

// WriteUint16Bits writes v into a field of bitWidth bits.
func WriteUint16Bits(s *stream.Stream, v uint16, bitWidth int) error {
	return writeUintBits(s, uint64(v), 2, bitWidth)
}

// WriteUint32Bits writes v into a field of bitWidth bits.
func WriteUint32Bits(s *stream.Stream, v uint32, bitWidth int) error {
	return writeUintBits(s, uint64(v), 4, bitWidth)
}

// WriteUint64Bits writes v into a field of bitWidth bits.
func WriteUint64Bits(s *stream.Stream, v uint64, bitWidth int) error {
	return writeUintBits(s, v, 8, bitWidth)
}

// ReadUint8Bits reads a field of bitWidth bits as a uint8.
func ReadUint8Bits(s *stream.Stream, bitWidth int) (uint8, error) {
	v, err := readUintBits(s, bitWidth)

	return uint8(v), err
}

// ReadUint16Bits reads a field of bitWidth bits as a uint16.
func ReadUint16Bits(s *stream.Stream, bitWidth int) (uint16, error) {
	v, err := readUintBits(s, bitWidth)

	return uint16(v), err
}

// ReadUint32Bits reads a field of bitWidth bits as a uint32.
func ReadUint32Bits(s *stream.Stream, bitWidth int) (uint32, error) {
	v, err := readUintBits(s, bitWidth)

	return uint32(v), err
}

// ReadUint64Bits reads a field of bitWidth bits as a uint64.
func ReadUint64Bits(s *stream.Stream, bitWidth int) (uint64, error) {
	return readUintBits(s, bitWidth)
}
