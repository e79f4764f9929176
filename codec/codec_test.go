package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomaszszewczyk/bitfield/endian"
	"github.com/tomaszszewczyk/bitfield/errs"
	"github.com/tomaszszewczyk/bitfield/stream"
)

func TestWriteUint32_ByteOrder(t *testing.T) {
	t.Run("big", func(t *testing.T) {
		buf := make([]byte, 4)
		s := stream.New(buf, endian.Big)

		require.NoError(t, WriteUint32(s, 0x11223344))
		require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, buf)
	})

	t.Run("little", func(t *testing.T) {
		buf := make([]byte, 4)
		s := stream.New(buf, endian.Little)

		require.NoError(t, WriteUint32(s, 0x11223344))
		require.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, buf)
	})
}

func TestUint_AlignedRoundTrip(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := make([]byte, 15)
			s := stream.New(buf, mode)

			require.NoError(t, WriteUint8(s, 0xAB))
			require.NoError(t, WriteUint16(s, 0xAA11))
			require.NoError(t, WriteUint32(s, 0xDEADBEEF))
			require.NoError(t, WriteUint64(s, 0x0102030405060708))

			require.NoError(t, s.Seek(0))

			v8, err := ReadUint8(s)
			require.NoError(t, err)
			require.Equal(t, uint8(0xAB), v8)

			v16, err := ReadUint16(s)
			require.NoError(t, err)
			require.Equal(t, uint16(0xAA11), v16)

			v32, err := ReadUint32(s)
			require.NoError(t, err)
			require.Equal(t, uint32(0xDEADBEEF), v32)

			v64, err := ReadUint64(s)
			require.NoError(t, err)
			require.Equal(t, uint64(0x0102030405060708), v64)
		})
	}
}

func TestWriteInt8_TwosComplement(t *testing.T) {
	buf := make([]byte, 1)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteInt8(s, -100))
	require.Equal(t, []byte{0x9C}, buf)

	require.NoError(t, s.Seek(0))
	v, err := ReadInt8(s)
	require.NoError(t, err)
	require.Equal(t, int8(-100), v)
}

func TestWriteSignMag8_SignAndMagnitude(t *testing.T) {
	buf := make([]byte, 1)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteSignMag8(s, -100))
	require.Equal(t, []byte{0xE4}, buf, "-100 is 0x64 | 0x80")

	require.NoError(t, s.Seek(0))
	v, err := ReadSignMag8(s)
	require.NoError(t, err)
	require.Equal(t, int8(-100), v)
}

func TestSignMag_NegativeZero(t *testing.T) {
	// The sign flag with an all-zero magnitude decodes to plain zero.
	s := stream.New([]byte{0x80}, endian.Big)

	v, err := ReadSignMag8(s)
	require.NoError(t, err)
	require.Equal(t, int8(0), v)
}

func TestInt_AlignedRoundTrip(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := make([]byte, 15)
			s := stream.New(buf, mode)

			require.NoError(t, WriteInt8(s, -1))
			require.NoError(t, WriteInt16(s, -30000))
			require.NoError(t, WriteInt32(s, -2000000000))
			require.NoError(t, WriteInt64(s, -9000000000000000000))

			require.NoError(t, s.Seek(0))

			v8, err := ReadInt8(s)
			require.NoError(t, err)
			require.Equal(t, int8(-1), v8)

			v16, err := ReadInt16(s)
			require.NoError(t, err)
			require.Equal(t, int16(-30000), v16)

			v32, err := ReadInt32(s)
			require.NoError(t, err)
			require.Equal(t, int32(-2000000000), v32)

			v64, err := ReadInt64(s)
			require.NoError(t, err)
			require.Equal(t, int64(-9000000000000000000), v64)
		})
	}
}

func TestSignMag_AlignedRoundTrip(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := make([]byte, 15)
			s := stream.New(buf, mode)

			require.NoError(t, WriteSignMag8(s, -100))
			require.NoError(t, WriteSignMag16(s, 12345))
			require.NoError(t, WriteSignMag32(s, -2000000000))
			require.NoError(t, WriteSignMag64(s, -12345678901234))

			require.NoError(t, s.Seek(0))

			v8, err := ReadSignMag8(s)
			require.NoError(t, err)
			require.Equal(t, int8(-100), v8)

			v16, err := ReadSignMag16(s)
			require.NoError(t, err)
			require.Equal(t, int16(12345), v16)

			v32, err := ReadSignMag32(s)
			require.NoError(t, err)
			require.Equal(t, int32(-2000000000), v32)

			v64, err := ReadSignMag64(s)
			require.NoError(t, err)
			require.Equal(t, int64(-12345678901234), v64)
		})
	}
}

func TestWriteUint8Bits_OverWidth(t *testing.T) {
	t.Run("big zero-fills before", func(t *testing.T) {
		buf := []byte{0xFF, 0xFF}
		s := stream.New(buf, endian.Big)

		require.NoError(t, WriteUint8Bits(s, 0xBB, 16))
		require.Equal(t, []byte{0x00, 0xBB}, buf)
		require.Equal(t, 16, s.TellBit())
	})

	t.Run("little zero-fills after", func(t *testing.T) {
		buf := []byte{0xFF, 0xFF}
		s := stream.New(buf, endian.Little)

		require.NoError(t, WriteUint8Bits(s, 0xBB, 16))
		require.Equal(t, []byte{0xBB, 0x00}, buf)
		require.Equal(t, 16, s.TellBit())
	})
}

func TestReadUint8Bits_OverWidth(t *testing.T) {
	t.Run("big", func(t *testing.T) {
		s := stream.New([]byte{0x00, 0xBB}, endian.Big)

		v, err := ReadUint8Bits(s, 16)
		require.NoError(t, err)
		require.Equal(t, uint8(0xBB), v)
		require.Equal(t, 16, s.TellBit())
	})

	t.Run("little", func(t *testing.T) {
		s := stream.New([]byte{0xBB, 0x00}, endian.Little)

		v, err := ReadUint8Bits(s, 16)
		require.NoError(t, err)
		require.Equal(t, uint8(0xBB), v)
		require.Equal(t, 16, s.TellBit())
	})
}

func TestUint16Bits_TwelveBit(t *testing.T) {
	t.Run("big", func(t *testing.T) {
		buf := make([]byte, 2)
		s := stream.New(buf, endian.Big)

		require.NoError(t, WriteUint16Bits(s, 0x0ABC, 12))
		require.Equal(t, []byte{0xAB, 0xC0}, buf)

		require.NoError(t, s.SeekBit(0))
		v, err := ReadUint16Bits(s, 12)
		require.NoError(t, err)
		require.Equal(t, uint16(0x0ABC), v)
	})

	t.Run("little", func(t *testing.T) {
		buf := make([]byte, 2)
		s := stream.New(buf, endian.Little)

		require.NoError(t, WriteUint16Bits(s, 0x0ABC, 12))
		require.Equal(t, []byte{0xBC, 0x0A}, buf)

		require.NoError(t, s.SeekBit(0))
		v, err := ReadUint16Bits(s, 12)
		require.NoError(t, err)
		require.Equal(t, uint16(0x0ABC), v)
	})
}

func TestIntBits_RoundTrip(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			for _, tc := range []struct {
				value int16
				width int
			}{
				{-1, 4},
				{-5, 12},
				{7, 5},
				{-2048, 12},
				{2047, 12},
				{-30000, 16},
			} {
				buf := make([]byte, 4)
				s := stream.New(buf, mode)

				require.NoError(t, WriteInt16Bits(s, tc.value, tc.width))

				require.NoError(t, s.SeekBit(0))
				v, err := ReadInt16Bits(s, tc.width)
				require.NoError(t, err)
				require.Equal(t, tc.value, v, "value %d width %d", tc.value, tc.width)
			}
		})
	}
}

func TestSignMagBits_RoundTrip(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			for _, tc := range []struct {
				value int32
				width int
			}{
				{7, 4},
				{-4, 4},
				{-2, 4},
				{100, 12},
				{-100, 12},
				{-70000, 32},
			} {
				buf := make([]byte, 8)
				s := stream.New(buf, mode)

				require.NoError(t, WriteSignMag32Bits(s, tc.value, tc.width))

				require.NoError(t, s.SeekBit(0))
				v, err := ReadSignMag32Bits(s, tc.width)
				require.NoError(t, err)
				require.Equal(t, tc.value, v, "value %d width %d", tc.value, tc.width)
			}
		})
	}
}

func TestSignMagBits_FourBitTriplet(t *testing.T) {
	// 7 -> 0111, -4 -> 1100, -2 -> 1010 packed big-endian: 7C A0.
	buf := make([]byte, 2)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteSignMag8Bits(s, 7, 4))
	require.NoError(t, WriteSignMag8Bits(s, -4, 4))
	require.NoError(t, WriteSignMag8Bits(s, -2, 4))
	require.Equal(t, []byte{0x7C, 0xA0}, buf)
}

func TestSignMagBits_OverWidthSignPlacement(t *testing.T) {
	// In an over-width field the sign flag sits at the wire width, not the
	// native width: -1 as S8 in 12 bits is 0x801.
	buf := make([]byte, 2)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteSignMag8Bits(s, -1, 12))
	require.Equal(t, []byte{0x80, 0x10}, buf)

	require.NoError(t, s.SeekBit(0))
	v, err := ReadSignMag8Bits(s, 12)
	require.NoError(t, err)
	require.Equal(t, int8(-1), v)
}

func TestSignMagBits_WidthPanics(t *testing.T) {
	s := stream.New(make([]byte, 16), endian.Big)

	require.Panics(t, func() { _ = WriteSignMag64Bits(s, -1, 65) })
	require.Panics(t, func() { _, _ = ReadSignMag64Bits(s, 0) })
}

func TestFloat_RoundTrip(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := make([]byte, 12)
			s := stream.New(buf, mode)

			require.NoError(t, WriteFloat32(s, 3.14159))
			require.NoError(t, WriteFloat64(s, -2.718281828459045))

			require.NoError(t, s.Seek(0))

			f32, err := ReadFloat32(s)
			require.NoError(t, err)
			require.Equal(t, float32(3.14159), f32)

			f64, err := ReadFloat64(s)
			require.NoError(t, err)
			require.Equal(t, -2.718281828459045, f64)
		})
	}
}

func TestFloat32_BitPattern(t *testing.T) {
	buf := make([]byte, 4)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteFloat32(s, 1.0))
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, buf)
}

func TestFloatBits_MidByte(t *testing.T) {
	// The bit form packs the full pattern across byte boundaries when the
	// stream is mid-byte.
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := make([]byte, 16)
			s := stream.New(buf, mode)

			require.NoError(t, WriteUint8Bits(s, 0x05, 3))
			require.NoError(t, WriteFloat64Bits(s, math.Pi))
			require.Equal(t, 67, s.TellBit())

			require.NoError(t, s.SeekBit(3))
			f, err := ReadFloat64Bits(s)
			require.NoError(t, err)
			require.Equal(t, math.Pi, f)
		})
	}
}

func TestSize_Aligned(t *testing.T) {
	buf := make([]byte, 3)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteSize(s, 0x010203, 3))
	require.Equal(t, []byte{0x01, 0x02, 0x03}, buf)

	require.NoError(t, s.Seek(0))
	v, err := ReadSize(s, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(0x010203), v)
}

func TestSize_ByteCountPanics(t *testing.T) {
	s := stream.New(make([]byte, 16), endian.Big)

	require.Panics(t, func() { _ = WriteSize(s, 1, 0) })
	require.Panics(t, func() { _, _ = ReadSize(s, 9) })
}

func TestSizeBits_RoundTrip(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := make([]byte, 2)
			s := stream.New(buf, mode)

			require.NoError(t, WriteSizeBits(s, 300, 12))

			require.NoError(t, s.SeekBit(0))
			v, err := ReadSizeBits(s, 12)
			require.NoError(t, err)
			require.Equal(t, uint64(300), v)
		})
	}
}

func TestBytes_Aligned(t *testing.T) {
	buf := make([]byte, 4)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteBytes(s, []byte{0xDE, 0xAD}))
	require.Equal(t, []byte{0xDE, 0xAD, 0x00, 0x00}, buf)

	require.NoError(t, s.Seek(0))
	out := make([]byte, 2)
	require.NoError(t, ReadBytes(s, out))
	require.Equal(t, []byte{0xDE, 0xAD}, out)
}

func TestBytesBits_PacksMidByte(t *testing.T) {
	buf := make([]byte, 3)
	s := stream.New(buf, endian.Big)

	require.NoError(t, WriteUint8Bits(s, 0x0F, 4))
	require.NoError(t, WriteBytesBits(s, []byte{0xAB, 0xCD}))
	require.Equal(t, 20, s.TellBit())
	require.Equal(t, []byte{0xFA, 0xBC, 0xD0}, buf)

	require.NoError(t, s.SeekBit(4))
	out := make([]byte, 2)
	require.NoError(t, ReadBytesBits(s, out))
	require.Equal(t, []byte{0xAB, 0xCD}, out)
}

func TestBytesBits_TooLong(t *testing.T) {
	buf := make([]byte, 2)
	s := stream.New(buf, endian.Big)

	require.NoError(t, s.SeekBit(1))
	err := WriteBytesBits(s, []byte{1, 2})
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
	require.Equal(t, 1, s.TellBit())
	require.Equal(t, []byte{0, 0}, buf)

	err = ReadBytesBits(s, make([]byte, 2))
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
	require.Equal(t, 1, s.TellBit())
}

func TestCapacity_FailureLeavesStateUntouched(t *testing.T) {
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := []byte{0xAA}
			s := stream.New(buf, mode)

			require.ErrorIs(t, WriteUint16(s, 1), errs.ErrBufferTooShort)
			require.ErrorIs(t, WriteUint16Bits(s, 1, 12), errs.ErrBufferTooShort)
			require.ErrorIs(t, WriteFloat32(s, 1), errs.ErrBufferTooShort)

			_, err := ReadUint16(s)
			require.ErrorIs(t, err, errs.ErrBufferTooShort)
			_, err = ReadUint32Bits(s, 9)
			require.ErrorIs(t, err, errs.ErrBufferTooShort)

			require.Equal(t, 0, s.TellBit())
			require.Equal(t, []byte{0xAA}, buf)
		})
	}
}

func TestUintBits_WideWidthRoundTrip(t *testing.T) {
	// A 64-bit value in an 80-bit field: surplus is skipped on read.
	for _, mode := range []endian.Mode{endian.Big, endian.Little} {
		t.Run(mode.String(), func(t *testing.T) {
			buf := make([]byte, 10)
			s := stream.New(buf, mode)

			require.NoError(t, WriteUint64Bits(s, 0xDEADBEEFCAFEF00D, 80))
			require.Equal(t, 80, s.TellBit())

			require.NoError(t, s.SeekBit(0))
			v, err := ReadUint64Bits(s, 80)
			require.NoError(t, err)
			require.Equal(t, uint64(0xDEADBEEFCAFEF00D), v)
			require.Equal(t, 80, s.TellBit())
		})
	}
}
