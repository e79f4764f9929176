package codec

import "github.com/tomaszszewczyk/bitfield/stream"

// WriteSize writes a native length value as an unsigned integer of
// byteSize bytes, byte-aligned. byteSize must be in [1, 8].
func WriteSize(s *stream.Stream, v uint64, byteSize int) error {
	checkSizeBytes(byteSize)

	return writeUint(s, v, byteSize)
}

// ReadSize reads an unsigned integer of byteSize bytes into a native
// length value. byteSize must be in [1, 8].
func ReadSize(s *stream.Stream, byteSize int) (uint64, error) {
	checkSizeBytes(byteSize)

	return readUint(s, byteSize)
}

// WriteSizeBits writes a native length value into a field of bitWidth
// bits.
func WriteSizeBits(s *stream.Stream, v uint64, bitWidth int) error {
	return writeUintBits(s, v, 8, bitWidth)
}

// ReadSizeBits reads a field of bitWidth bits into a native length value.
func ReadSizeBits(s *stream.Stream, bitWidth int) (uint64, error) {
	return readUintBits(s, bitWidth)
}
