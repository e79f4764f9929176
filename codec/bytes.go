package codec

import (
	"github.com/tomaszszewczyk/bitfield/errs"
	"github.com/tomaszszewczyk/bitfield/stream"
)

// WriteBytes aligns the stream to the next byte boundary and writes data
// verbatim.
func WriteBytes(s *stream.Stream, data []byte) error {
	return s.Write(data)
}

// ReadBytes aligns the stream to the next byte boundary and reads
// len(data) bytes into data.
func ReadBytes(s *stream.Stream, data []byte) error {
	return s.Read(data)
}

// WriteBytesBits writes data through the bit path one byte at a time, so a
// mid-byte stream packs the array across byte boundaries instead of
// aligning first.
func WriteBytesBits(s *stream.Stream, data []byte) error {
	if s.LeftBits() < len(data)*bitsInByte {
		return errs.ErrBufferTooShort
	}

	for i := range data {
		if err := s.WriteBits(data[i:i+1], bitsInByte); err != nil {
			return err
		}
	}

	return nil
}

// ReadBytesBits reads len(data) bytes through the bit path into data,
// mirroring WriteBytesBits. It stops at the first failure.
func ReadBytesBits(s *stream.Stream, data []byte) error {
	if s.LeftBits() < len(data)*bitsInByte {
		return errs.ErrBufferTooShort
	}

	for i := range data {
		if err := s.ReadBits(data[i:i+1], bitsInByte); err != nil {
			return err
		}
	}

	return nil
}
