package codec

import "github.com/tomaszszewczyk/bitfield/stream"

// WriteSignMag8 writes v byte-aligned in sign-and-magnitude form: the high
// bit is the sign flag, the remaining bits the absolute value.
func WriteSignMag8(s *stream.Stream, v int8) error {
	return writeUint(s, signMagEncode(int64(v), 8), 1)
}

// WriteSignMag16 writes v byte-aligned in sign-and-magnitude form.
func WriteSignMag16(s *stream.Stream, v int16) error {
	return writeUint(s, signMagEncode(int64(v), 16), 2)
}

// WriteSignMag32 writes v byte-aligned in sign-and-magnitude form.
func WriteSignMag32(s *stream.Stream, v int32) error {
	return writeUint(s, signMagEncode(int64(v), 32), 4)
}

// WriteSignMag64 writes v byte-aligned in sign-and-magnitude form.
func WriteSignMag64(s *stream.Stream, v int64) error {
	return writeUint(s, signMagEncode(v, 64), 8)
}

// ReadSignMag8 reads a byte-aligned sign-and-magnitude int8. Negative zero
// decodes to zero.
func ReadSignMag8(s *stream.Stream) (int8, error) {
	v, err := readUint(s, 1)
	if err != nil {
		return 0, err
	}

	return int8(signMagDecode(v, 8)), nil
}

// ReadSignMag16 reads a byte-aligned sign-and-magnitude int16.
func ReadSignMag16(s *stream.Stream) (int16, error) {
	v, err := readUint(s, 2)
	if err != nil {
		return 0, err
	}

	return int16(signMagDecode(v, 16)), nil
}

// ReadSignMag32 reads a byte-aligned sign-and-magnitude int32.
func ReadSignMag32(s *stream.Stream) (int32, error) {
	v, err := readUint(s, 4)
	if err != nil {
		return 0, err
	}

	return int32(signMagDecode(v, 32)), nil
}

// ReadSignMag64 reads a byte-aligned sign-and-magnitude int64.
func ReadSignMag64(s *stream.Stream) (int64, error) {
	v, err := readUint(s, 8)
	if err != nil {
		return 0, err
	}

	return signMagDecode(v, 64), nil
}

// WriteSignMag8Bits writes v into a bitWidth-bit sign-and-magnitude field.
// The sign flag sits at bit bitWidth-1, so the magnitude must fit in
// bitWidth-1 bits. Widths above 64 panic.
func WriteSignMag8Bits(s *stream.Stream, v int8, bitWidth int) error {
	checkSignMagWidth(bitWidth)

	return writeUintBits(s, signMagEncode(int64(v), bitWidth), 8, bitWidth)
}

// WriteSignMag16Bits writes v into a bitWidth-bit sign-and-magnitude field.
func WriteSignMag16Bits(s *stream.Stream, v int16, bitWidth int) error {
	checkSignMagWidth(bitWidth)

	return writeUintBits(s, signMagEncode(int64(v), bitWidth), 8, bitWidth)
}

// WriteSignMag32Bits writes v into a bitWidth-bit sign-and-magnitude field.
func WriteSignMag32Bits(s *stream.Stream, v int32, bitWidth int) error {
	checkSignMagWidth(bitWidth)

	return writeUintBits(s, signMagEncode(int64(v), bitWidth), 8, bitWidth)
}

// WriteSignMag64Bits writes v into a bitWidth-bit sign-and-magnitude field.
func WriteSignMag64Bits(s *stream.Stream, v int64, bitWidth int) error {
	checkSignMagWidth(bitWidth)

	return writeUintBits(s, signMagEncode(v, bitWidth), 8, bitWidth)
}

// ReadSignMag8Bits reads a bitWidth-bit sign-and-magnitude field as an
// int8. Negative zero decodes to zero.
func ReadSignMag8Bits(s *stream.Stream, bitWidth int) (int8, error) {
	checkSignMagWidth(bitWidth)

	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return int8(signMagDecode(v, bitWidth)), nil
}

// ReadSignMag16Bits reads a bitWidth-bit sign-and-magnitude field as an
// int16.
func ReadSignMag16Bits(s *stream.Stream, bitWidth int) (int16, error) {
	checkSignMagWidth(bitWidth)

	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return int16(signMagDecode(v, bitWidth)), nil
}

// ReadSignMag32Bits reads a bitWidth-bit sign-and-magnitude field as an
// int32.
func ReadSignMag32Bits(s *stream.Stream, bitWidth int) (int32, error) {
	checkSignMagWidth(bitWidth)

	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return int32(signMagDecode(v, bitWidth)), nil
}

// ReadSignMag64Bits reads a bitWidth-bit sign-and-magnitude field as an
// int64.
func ReadSignMag64Bits(s *stream.Stream, bitWidth int) (int64, error) {
	checkSignMagWidth(bitWidth)

	v, err := readUintBits(s, bitWidth)
	if err != nil {
		return 0, err
	}

	return signMagDecode(v, bitWidth), nil
}
