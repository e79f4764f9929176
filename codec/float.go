package codec

import (
	"math"

	"github.com/tomaszszewczyk/bitfield/stream"
)

// WriteFloat32 writes the IEEE-754 bit pattern of v byte-aligned, through
// the 32-bit unsigned codec.
func WriteFloat32(s *stream.Stream, v float32) error {
	return writeUint(s, uint64(math.Float32bits(v)), 4)
}

// WriteFloat64 writes the IEEE-754 bit pattern of v byte-aligned, through
// the 64-bit unsigned codec.
func WriteFloat64(s *stream.Stream, v float64) error {
	return writeUint(s, math.Float64bits(v), 8)
}

// ReadFloat32 reads a byte-aligned IEEE-754 single.
func ReadFloat32(s *stream.Stream) (float32, error) {
	v, err := readUint(s, 4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(v)), nil
}

// ReadFloat64 reads a byte-aligned IEEE-754 double.
func ReadFloat64(s *stream.Stream) (float64, error) {
	v, err := readUint(s, 8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// WriteFloat32Bits writes the bit pattern of v as a 32-bit field through
// the bit path, packing across byte boundaries when the stream is mid-byte.
func WriteFloat32Bits(s *stream.Stream, v float32) error {
	return writeUintBits(s, uint64(math.Float32bits(v)), 4, 32)
}

// WriteFloat64Bits writes the bit pattern of v as a 64-bit field through
// the bit path.
func WriteFloat64Bits(s *stream.Stream, v float64) error {
	return writeUintBits(s, math.Float64bits(v), 8, 64)
}

// ReadFloat32Bits reads a 32-bit IEEE-754 single through the bit path.
func ReadFloat32Bits(s *stream.Stream) (float32, error) {
	v, err := readUintBits(s, 32)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(v)), nil
}

// ReadFloat64Bits reads a 64-bit IEEE-754 double through the bit path.
func ReadFloat64Bits(s *stream.Stream) (float64, error) {
	v, err := readUintBits(s, 64)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}
