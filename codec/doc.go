// Package codec provides the scalar encoders and decoders that ride on top
// of a stream.Stream.
//
// Three integer representations are supported at 8, 16, 32 and 64 bits:
//
//   - Uint: plain unsigned integers.
//   - Int: two's-complement signed integers, transported bit-for-bit.
//   - SignMag: sign-and-magnitude signed integers, where the field's
//     highest bit is a sign flag and the remaining bits hold the absolute
//     value.
//
// Each integer codec comes in a byte-aligned form (WriteUint16), which
// aligns the stream and emits whole bytes in the stream's byte order, and a
// bit-width form (WriteUint16Bits), which emits exactly the requested
// number of bits through the stream's bit path. A bit width larger than the
// value's native size is legal: the surplus is zero-filled before the value
// in big mode and after it in little mode. For sign-and-magnitude fields
// the sign bit always sits at the top of the wire width, so the magnitude
// is interpreted against the field, not the native type.
//
// Float32 and Float64 transport the IEEE-754 bit pattern through the
// matching unsigned codec. Size treats a native length value as an unsigned
// integer of caller-chosen byte size or bit width. Bytes moves raw byte
// blocks, either aligned or packed through the bit path.
//
// Every operation checks remaining capacity before touching the buffer;
// on errs.ErrBufferTooShort the stream position and contents are unchanged.
package codec
