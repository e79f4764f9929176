package codec

import (
	"github.com/tomaszszewczyk/bitfield/endian"
	"github.com/tomaszszewczyk/bitfield/errs"
	"github.com/tomaszszewczyk/bitfield/stream"
)

const (
	bitsInByte = 8
	wordBits   = 64
)

// putUint stores the low len(dst) bytes of v into dst in the given byte
// order.
func putUint(dst []byte, v uint64, mode endian.Mode) {
	for i := range dst {
		if mode == endian.Big {
			dst[i] = byte(v >> (bitsInByte * (len(dst) - 1 - i)))
		} else {
			dst[i] = byte(v >> (bitsInByte * i))
		}
	}
}

// getUint assembles the bytes of src into an unsigned integer in the given
// byte order.
func getUint(src []byte, mode endian.Mode) uint64 {
	var v uint64
	for i := range src {
		if mode == endian.Big {
			v |= uint64(src[i]) << (bitsInByte * (len(src) - 1 - i))
		} else {
			v |= uint64(src[i]) << (bitsInByte * i)
		}
	}

	return v
}

// writeUint writes the low size bytes of v, byte-aligned, in the stream's
// byte order.
func writeUint(s *stream.Stream, v uint64, size int) error {
	var buf [8]byte
	engine := s.Mode().Engine()

	switch size {
	case 1:
		buf[0] = byte(v)
	case 2:
		engine.PutUint16(buf[:2], uint16(v))
	case 4:
		engine.PutUint32(buf[:4], uint32(v))
	case 8:
		engine.PutUint64(buf[:8], v)
	default:
		putUint(buf[:size], v, s.Mode())
	}

	return s.Write(buf[:size])
}

// readUint reads size bytes, byte-aligned, and assembles them in the
// stream's byte order.
func readUint(s *stream.Stream, size int) (uint64, error) {
	var buf [8]byte
	if err := s.Read(buf[:size]); err != nil {
		return 0, err
	}

	engine := s.Mode().Engine()

	switch size {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(engine.Uint16(buf[:2])), nil
	case 4:
		return uint64(engine.Uint32(buf[:4])), nil
	case 8:
		return engine.Uint64(buf[:8]), nil
	default:
		return getUint(buf[:size], s.Mode()), nil
	}
}

// writeUintBits writes the low size*8 bits of v into a field of bitWidth
// bits. If bitWidth exceeds the native width the surplus is zero-filled
// before the value in big mode and after it in little mode.
func writeUintBits(s *stream.Stream, v uint64, size, bitWidth int) error {
	if s.LeftBits() < bitWidth {
		return errs.ErrBufferTooShort
	}

	if size < 8 {
		v &= 1<<(size*bitsInByte) - 1
	}

	eff := min(bitWidth, wordBits)
	surplus := bitWidth - eff

	var buf [8]byte
	nb := (eff + bitsInByte - 1) / bitsInByte
	putUint(buf[:nb], v, s.Mode())

	if s.Mode() == endian.Big {
		if err := writeZeroBits(s, surplus); err != nil {
			return err
		}

		return s.WriteBits(buf[:nb], eff)
	}

	if err := s.WriteBits(buf[:nb], eff); err != nil {
		return err
	}

	return writeZeroBits(s, surplus)
}

// readUintBits reads a field of bitWidth bits and returns its value. For a
// field wider than 64 bits the surplus fill is skipped on the side the mode
// dictates and the low 64 bits are returned.
func readUintBits(s *stream.Stream, bitWidth int) (uint64, error) {
	if s.LeftBits() < bitWidth {
		return 0, errs.ErrBufferTooShort
	}

	eff := min(bitWidth, wordBits)
	surplus := bitWidth - eff

	if s.Mode() == endian.Big && surplus > 0 {
		if err := s.SeekBit(s.TellBit() + surplus); err != nil {
			return 0, err
		}
	}

	var buf [8]byte
	nb := (eff + bitsInByte - 1) / bitsInByte
	if err := s.ReadBits(buf[:nb], eff); err != nil {
		return 0, err
	}

	if s.Mode() == endian.Little && surplus > 0 {
		if err := s.SeekBit(s.TellBit() + surplus); err != nil {
			return 0, err
		}
	}

	return getUint(buf[:nb], s.Mode()), nil
}

// writeZeroBits emits count zero bits through the bit path.
func writeZeroBits(s *stream.Stream, count int) error {
	var zero [8]byte
	for count > 0 {
		n := min(count, wordBits)
		if err := s.WriteBits(zero[:], n); err != nil {
			return err
		}
		count -= n
	}

	return nil
}

// signExtend interprets the low bitWidth bits of v as two's complement and
// extends the sign through the full word, so narrowing to any target width
// at or below bitWidth is exact.
func signExtend(v uint64, bitWidth int) int64 {
	if bitWidth < wordBits && v&(1<<(bitWidth-1)) != 0 {
		v |= ^uint64(0) << bitWidth
	}

	return int64(v)
}

// signMagEncode maps v onto sign-and-magnitude form with the sign flag at
// bit bitWidth-1. Negative zero is never produced: -0 and 0 encode alike.
func signMagEncode(v int64, bitWidth int) uint64 {
	if v >= 0 {
		return uint64(v)
	}

	return uint64(-v) | 1<<(bitWidth-1)
}

// signMagDecode extracts the sign flag at bit bitWidth-1 and negates the
// remaining magnitude when it is set. An all-zero magnitude with the sign
// flag set decodes to plain zero.
func signMagDecode(v uint64, bitWidth int) int64 {
	mask := uint64(1) << (bitWidth - 1)

	mag := int64(v &^ mask)
	if v&mask != 0 {
		return -mag
	}

	return mag
}

// checkSignMagWidth rejects sign-and-magnitude widths whose sign flag
// cannot be represented. Width misuse is a programmer error.
func checkSignMagWidth(bitWidth int) {
	if bitWidth < 1 || bitWidth > wordBits {
		panic("codec: sign-magnitude bit width must be in [1, 64]")
	}
}

// checkSizeBytes rejects length byte counts outside the native word.
func checkSizeBytes(byteSize int) {
	if byteSize < 1 || byteSize > 8 {
		panic("codec: size byte count must be in [1, 8]")
	}
}
