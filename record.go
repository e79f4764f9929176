// Package bitfield serializes and deserializes composite records with
// bit-granular field layouts.
//
// A record's wire format is declared as an ordered list of field
// descriptors, each binding a field kind (unsigned, two's-complement or
// sign-and-magnitude integer of 8 to 64 bits, IEEE-754 float or double,
// length, fixed or variable byte array, alignment, padding) to an accessor
// pair on the record type. Serialize and Deserialize walk the list and
// dispatch to the scalar codecs in the codec package over a stream.Stream
// cursor, so fields need not start or end on byte boundaries:
//
//	type Reading struct {
//		Sensor uint16
//		Alarm  uint8
//	}
//
//	fields := []bitfield.Field[Reading]{
//		bitfield.Uint16(12, func(r *Reading) uint16 { return r.Sensor }, func(r *Reading, v uint16) { r.Sensor = v }),
//		bitfield.Uint8(3, func(r *Reading) uint8 { return r.Alarm }, func(r *Reading, v uint8) { r.Alarm = v }),
//		bitfield.Align[Reading](),
//	}
//
//	s := stream.New(buf, endian.Big)
//	err := bitfield.Serialize(fields, &rec, s)
//
// Variable-length arrays reference a sibling length field that must appear
// earlier in the list, so deserialization knows the byte count before the
// array bytes are consumed.
package bitfield

import (
	"github.com/tomaszszewczyk/bitfield/codec"
	"github.com/tomaszszewczyk/bitfield/errs"
	"github.com/tomaszszewczyk/bitfield/stream"
)

const bitsInByte = 8

// Serialize walks fields in order and writes each record field through the
// matching scalar codec. It stops at the first failure and returns it; the
// stream keeps whatever the failing operation left (typically its position
// before that field), and earlier fields remain in the buffer. Callers who
// need atomicity must snapshot the buffer and position beforehand.
func Serialize[R any](fields []Field[R], rec *R, s *stream.Stream) error {
	for i := range fields {
		f := &fields[i]

		var err error

		switch f.kind {
		case KindUint8:
			err = codec.WriteUint8Bits(s, uint8(f.getU(rec)), f.bits)
		case KindUint16:
			err = codec.WriteUint16Bits(s, uint16(f.getU(rec)), f.bits)
		case KindUint32:
			err = codec.WriteUint32Bits(s, uint32(f.getU(rec)), f.bits)
		case KindUint64:
			err = codec.WriteUint64Bits(s, f.getU(rec), f.bits)
		case KindInt8:
			err = codec.WriteInt8Bits(s, int8(f.getI(rec)), f.bits)
		case KindInt16:
			err = codec.WriteInt16Bits(s, int16(f.getI(rec)), f.bits)
		case KindInt32:
			err = codec.WriteInt32Bits(s, int32(f.getI(rec)), f.bits)
		case KindInt64:
			err = codec.WriteInt64Bits(s, f.getI(rec), f.bits)
		case KindSignMag8:
			err = codec.WriteSignMag8Bits(s, int8(f.getI(rec)), f.bits)
		case KindSignMag16:
			err = codec.WriteSignMag16Bits(s, int16(f.getI(rec)), f.bits)
		case KindSignMag32:
			err = codec.WriteSignMag32Bits(s, int32(f.getI(rec)), f.bits)
		case KindSignMag64:
			err = codec.WriteSignMag64Bits(s, f.getI(rec), f.bits)
		case KindFloat32:
			err = codec.WriteUint32Bits(s, uint32(f.getU(rec)), f.bits)
		case KindFloat64:
			err = codec.WriteUint64Bits(s, f.getU(rec), f.bits)
		case KindLength:
			err = codec.WriteSizeBits(s, f.getU(rec), f.bits)
		case KindFixedBytes:
			err = codec.WriteBytesBits(s, f.getB(rec)[:f.size])
		case KindVarBytes:
			n := f.count(rec)
			if n < 0 {
				err = errs.ErrBufferTooShort
				break
			}
			err = codec.WriteBytesBits(s, f.getB(rec)[:n])
		case KindAlign:
			s.Align()
		case KindPad:
			err = s.SeekBit(s.TellBit() + f.bits)
		default:
			panic("bitfield: unknown field kind")
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// Deserialize walks fields in order and fills the record from the stream.
// It stops at the first failure and returns it; record fields decoded
// before the failure keep their decoded values.
func Deserialize[R any](fields []Field[R], rec *R, s *stream.Stream) error {
	for i := range fields {
		f := &fields[i]

		var err error

		switch f.kind {
		case KindUint8:
			var v uint8
			if v, err = codec.ReadUint8Bits(s, f.bits); err == nil {
				f.setU(rec, uint64(v))
			}
		case KindUint16:
			var v uint16
			if v, err = codec.ReadUint16Bits(s, f.bits); err == nil {
				f.setU(rec, uint64(v))
			}
		case KindUint32:
			var v uint32
			if v, err = codec.ReadUint32Bits(s, f.bits); err == nil {
				f.setU(rec, uint64(v))
			}
		case KindUint64:
			var v uint64
			if v, err = codec.ReadUint64Bits(s, f.bits); err == nil {
				f.setU(rec, v)
			}
		case KindInt8:
			var v int8
			if v, err = codec.ReadInt8Bits(s, f.bits); err == nil {
				f.setI(rec, int64(v))
			}
		case KindInt16:
			var v int16
			if v, err = codec.ReadInt16Bits(s, f.bits); err == nil {
				f.setI(rec, int64(v))
			}
		case KindInt32:
			var v int32
			if v, err = codec.ReadInt32Bits(s, f.bits); err == nil {
				f.setI(rec, int64(v))
			}
		case KindInt64:
			var v int64
			if v, err = codec.ReadInt64Bits(s, f.bits); err == nil {
				f.setI(rec, v)
			}
		case KindSignMag8:
			var v int8
			if v, err = codec.ReadSignMag8Bits(s, f.bits); err == nil {
				f.setI(rec, int64(v))
			}
		case KindSignMag16:
			var v int16
			if v, err = codec.ReadSignMag16Bits(s, f.bits); err == nil {
				f.setI(rec, int64(v))
			}
		case KindSignMag32:
			var v int32
			if v, err = codec.ReadSignMag32Bits(s, f.bits); err == nil {
				f.setI(rec, int64(v))
			}
		case KindSignMag64:
			var v int64
			if v, err = codec.ReadSignMag64Bits(s, f.bits); err == nil {
				f.setI(rec, v)
			}
		case KindFloat32:
			var v uint32
			if v, err = codec.ReadUint32Bits(s, f.bits); err == nil {
				f.setU(rec, uint64(v))
			}
		case KindFloat64:
			var v uint64
			if v, err = codec.ReadUint64Bits(s, f.bits); err == nil {
				f.setU(rec, v)
			}
		case KindLength:
			var v uint64
			if v, err = codec.ReadSizeBits(s, f.bits); err == nil {
				f.setU(rec, v)
			}
		case KindFixedBytes:
			err = codec.ReadBytesBits(s, f.getB(rec)[:f.size])
		case KindVarBytes:
			n := f.count(rec)
			if n < 0 {
				err = errs.ErrBufferTooShort
				break
			}
			buf := f.getB(rec)
			if cap(buf) < n {
				buf = make([]byte, n)
			}
			buf = buf[:n]
			if err = codec.ReadBytesBits(s, buf); err == nil {
				f.setB(rec, buf)
			}
		case KindAlign:
			s.Align()
		case KindPad:
			err = s.SeekBit(s.TellBit() + f.bits)
		default:
			panic("bitfield: unknown field kind")
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// BitLength returns the total encoded length of the record in bits: the
// wire width of every fixed field, 8 bits per array byte (the variable
// count read through the length accessor), the distance to the next byte
// boundary for Align, and the explicit bit count for Pad.
func BitLength[R any](fields []Field[R], rec *R) int {
	total := 0

	for i := range fields {
		f := &fields[i]

		switch f.kind {
		case KindFixedBytes:
			total += f.size * bitsInByte
		case KindVarBytes:
			total += f.count(rec) * bitsInByte
		case KindAlign:
			total += (bitsInByte - total%bitsInByte) % bitsInByte
		default:
			total += f.bits
		}
	}

	return total
}

// ByteLength returns BitLength rounded up to whole bytes. For a record
// whose wire form is fully byte-aligned it equals the exact number of
// bytes produced.
func ByteLength[R any](fields []Field[R], rec *R) int {
	return (BitLength(fields, rec) + bitsInByte - 1) / bitsInByte
}
