package codec

import "github.com/tomaszszewczyk/bitfield/stream"

// WriteInt8 writes v byte-aligned in two's-complement form.
func WriteInt8(s *stream.Stream, v int8) error {
	return writeUint(s, uint64(uint8(v)), 1)
}

// WriteInt16 writes v byte-aligned in two's-complement form.
func WriteInt16(s *stream.Stream, v int16) error {
	return writeUint(s, uint64(uint16(v)), 2)
}

// WriteInt32 writes v byte-aligned in two's-complement form.
func WriteInt32(s *stream.Stream, v int32) error {
	return writeUint(s, uint64(uint32(v)), 4)
}

// WriteInt64 writes v byte-aligned in two's-complement form.
func WriteInt64(s *stream.Stream, v int64) error {
	return writeUint(s, uint64(v), 8)
}

// ReadInt8 reads a byte-aligned two's-complement int8.
func ReadInt8(s *stream.Stream) (int8, error) {
	v, err := readUint(s, 1)

	return int8(uint8(v)), err
}

// ReadInt16 reads a byte-aligned two's-complement int16.
func ReadInt16(s *stream.Stream) (int16, error) {
	v, err := readUint(s, 2)

	return int16(uint16(v)), err
}

// ReadInt32 reads a byte-aligned two's-complement int32.
func ReadInt32(s *stream.Stream) (int32, error) {
	v, err := readUint(s, 4)

	return int32(uint32(v)), err
}

// ReadInt64 reads a byte-aligned two's-complement int64.
func ReadInt64(s *stream.Stream) (int64, error) {
	v, err := readUint(s, 8)

	return int64(v), err
}

// WriteInt8Bits writes the low bitWidth bits of v's two's-complement
// pattern.
func WriteInt8Bits(s *stream.Stream, v int8, bitWidth int) error {
	return writeUintBits(s, uint64(v), 1, bitWidth)
}

// WriteInt16Bits writes the low bitWidth bits of v's two's-complement
// pattern.
func WriteInt16Bits(s *stream.Stream, v int16, bitWidth int) error {
	return writeUintBits(s, uint64(v), 2, bitWidth)
}

// WriteInt32Bits writes the low bitWidth bits of v's two's-complement
// pattern.
func WriteInt32Bits(s *stream.Stream, v int32, bitWidth int) error {
	return writeUintBits(s, uint64(v), 4, bitWidth)
}

// WriteInt64Bits writes the low bitWidth bits of v's two's-complement
// pattern.
func WriteInt64Bits(s *stream.Stream, v int64, bitWidth int) error {
	return writeUintBits(s, uint64(v), 8, bitWidth)
}

// ReadInt8Bits reads a bitWidth-bit two's-complement field, sign-extending
// from the field's own sign bit.
func ReadInt8Bits(s *stream.Stream, bitWidth int) (int8, error) {
	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return int8(signExtend(v, bitWidth)), nil
}

// ReadInt16Bits reads a bitWidth-bit two's-complement field, sign-extending
// from the field's own sign bit.
func ReadInt16Bits(s *stream.Stream, bitWidth int) (int16, error) {
	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return int16(signExtend(v, bitWidth)), nil
}

// ReadInt32Bits reads a bitWidth-bit two's-complement field, sign-extending
// from the field's own sign bit.
func ReadInt32Bits(s *stream.Stream, bitWidth int) (int32, error) {
	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return int32(signExtend(v, bitWidth)), nil
}

// ReadInt64Bits reads a bitWidth-bit two's-complement field, sign-extending
// from the field's own sign bit.
func ReadInt64Bits(s *stream.Stream, bitWidth int) (int64, error) {
	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return signExtend(v, bitWidth), nil
}
