package bitfield

import "math"

// Kind identifies what a field descriptor encodes.
type Kind uint8

const (
	// KindUint8 through KindUint64 are unsigned integers of at most the
	// descriptor's bit width.
	KindUint8 Kind = iota + 1
	KindUint16
	KindUint32
	KindUint64
	// KindInt8 through KindInt64 are two's-complement signed integers.
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	// KindSignMag8 through KindSignMag64 are sign-and-magnitude signed
	// integers: the field's high bit is the sign, the rest the magnitude.
	KindSignMag8
	KindSignMag16
	KindSignMag32
	KindSignMag64
	// KindFloat32 and KindFloat64 transport the IEEE-754 bit pattern as a
	// 32- or 64-bit unsigned field.
	KindFloat32
	KindFloat64
	// KindLength is a native length value of the descriptor's bit width.
	KindLength
	// KindFixedBytes is a byte blob of compile-time-known length.
	KindFixedBytes
	// KindVarBytes is a byte blob whose length is read from a sibling
	// length field that precedes it in the descriptor list.
	KindVarBytes
	// KindAlign advances the stream to the next byte boundary.
	KindAlign
	// KindPad advances the stream by a fixed number of bits.
	KindPad
)

// Field describes one wire field of a record of type R. Construct fields
// with the typed constructors (Uint8, Int16, VarBytes, ...); the zero
// Field is invalid.
//
// A field binds the wire shape (kind and bit width) to an accessor pair on
// the record, so descriptor lists stay plain data and the record codec
// never touches offsets or reflection.
type Field[R any] struct {
	kind Kind
	bits int
	size int

	getU  func(*R) uint64
	setU  func(*R, uint64)
	getI  func(*R) int64
	setI  func(*R, int64)
	getB  func(*R) []byte
	setB  func(*R, []byte)
	count func(*R) int
}

// Kind returns the field's kind.
func (f *Field[R]) Kind() Kind {
	return f.kind
}

// Bits returns the field's wire width in bits. For KindPad it is the pad
// length; for KindFloat32 and KindFloat64 it is 32 and 64; for the byte
// array and align kinds it is zero.
func (f *Field[R]) Bits() int {
	return f.bits
}

func checkBits(bits int) int {
	if bits < 1 {
		panic("bitfield: bit width must be positive")
	}

	return bits
}

// Uint8 describes an unsigned integer of at most bits wire bits backed by
// a uint8 record field.
func Uint8[R any](bits int, get func(*R) uint8, set func(*R, uint8)) Field[R] {
	return Field[R]{
		kind: KindUint8,
		bits: checkBits(bits),
		getU: func(r *R) uint64 { return uint64(get(r)) },
		setU: func(r *R, v uint64) { set(r, uint8(v)) },
	}
}

// Uint16 describes an unsigned integer of at most bits wire bits backed by
// a uint16 record field.
func Uint16[R any](bits int, get func(*R) uint16, set func(*R, uint16)) Field[R] {
	return Field[R]{
		kind: KindUint16,
		bits: checkBits(bits),
		getU: func(r *R) uint64 { return uint64(get(r)) },
		setU: func(r *R, v uint64) { set(r, uint16(v)) },
	}
}

// Uint32 describes an unsigned integer of at most bits wire bits backed by
// a uint32 record field.
func Uint32[R any](bits int, get func(*R) uint32, set func(*R, uint32)) Field[R] {
	return Field[R]{
		kind: KindUint32,
		bits: checkBits(bits),
		getU: func(r *R) uint64 { return uint64(get(r)) },
		setU: func(r *R, v uint64) { set(r, uint32(v)) },
	}
}

// Uint64 describes an unsigned integer of at most bits wire bits backed by
// a uint64 record field.
func Uint64[R any](bits int, get func(*R) uint64, set func(*R, uint64)) Field[R] {
	return Field[R]{
		kind: KindUint64,
		bits: checkBits(bits),
		getU: get,
		setU: set,
	}
}

// Int8 describes a two's-complement signed integer of at most bits wire
// bits backed by an int8 record field.
func Int8[R any](bits int, get func(*R) int8, set func(*R, int8)) Field[R] {
	return Field[R]{
		kind: KindInt8,
		bits: checkBits(bits),
		getI: func(r *R) int64 { return int64(get(r)) },
		setI: func(r *R, v int64) { set(r, int8(v)) },
	}
}

// Int16 describes a two's-complement signed integer of at most bits wire
// bits backed by an int16 record field.
func Int16[R any](bits int, get func(*R) int16, set func(*R, int16)) Field[R] {
	return Field[R]{
		kind: KindInt16,
		bits: checkBits(bits),
		getI: func(r *R) int64 { return int64(get(r)) },
		setI: func(r *R, v int64) { set(r, int16(v)) },
	}
}

// Int32 describes a two's-complement signed integer of at most bits wire
// bits backed by an int32 record field.
func Int32[R any](bits int, get func(*R) int32, set func(*R, int32)) Field[R] {
	return Field[R]{
		kind: KindInt32,
		bits: checkBits(bits),
		getI: func(r *R) int64 { return int64(get(r)) },
		setI: func(r *R, v int64) { set(r, int32(v)) },
	}
}

// Int64 describes a two's-complement signed integer of at most bits wire
// bits backed by an int64 record field.
func Int64[R any](bits int, get func(*R) int64, set func(*R, int64)) Field[R] {
	return Field[R]{
		kind: KindInt64,
		bits: checkBits(bits),
		getI: get,
		setI: set,
	}
}

// SignMag8 describes a sign-and-magnitude signed integer of at most bits
// wire bits backed by an int8 record field.
func SignMag8[R any](bits int, get func(*R) int8, set func(*R, int8)) Field[R] {
	return Field[R]{
		kind: KindSignMag8,
		bits: checkBits(bits),
		getI: func(r *R) int64 { return int64(get(r)) },
		setI: func(r *R, v int64) { set(r, int8(v)) },
	}
}

// SignMag16 describes a sign-and-magnitude signed integer of at most bits
// wire bits backed by an int16 record field.
func SignMag16[R any](bits int, get func(*R) int16, set func(*R, int16)) Field[R] {
	return Field[R]{
		kind: KindSignMag16,
		bits: checkBits(bits),
		getI: func(r *R) int64 { return int64(get(r)) },
		setI: func(r *R, v int64) { set(r, int16(v)) },
	}
}

// SignMag32 describes a sign-and-magnitude signed integer of at most bits
// wire bits backed by an int32 record field.
func SignMag32[R any](bits int, get func(*R) int32, set func(*R, int32)) Field[R] {
	return Field[R]{
		kind: KindSignMag32,
		bits: checkBits(bits),
		getI: func(r *R) int64 { return int64(get(r)) },
		setI: func(r *R, v int64) { set(r, int32(v)) },
	}
}

// SignMag64 describes a sign-and-magnitude signed integer of at most bits
// wire bits backed by an int64 record field.
func SignMag64[R any](bits int, get func(*R) int64, set func(*R, int64)) Field[R] {
	return Field[R]{
		kind: KindSignMag64,
		bits: checkBits(bits),
		getI: get,
		setI: set,
	}
}

// Float32 describes an IEEE-754 single transported bit-for-bit as a 32-bit
// unsigned field.
func Float32[R any](get func(*R) float32, set func(*R, float32)) Field[R] {
	return Field[R]{
		kind: KindFloat32,
		bits: 32,
		getU: func(r *R) uint64 { return uint64(math.Float32bits(get(r))) },
		setU: func(r *R, v uint64) { set(r, math.Float32frombits(uint32(v))) },
	}
}

// Float64 describes an IEEE-754 double transported bit-for-bit as a 64-bit
// unsigned field.
func Float64[R any](get func(*R) float64, set func(*R, float64)) Field[R] {
	return Field[R]{
		kind: KindFloat64,
		bits: 64,
		getU: func(r *R) uint64 { return math.Float64bits(get(r)) },
		setU: func(r *R, v uint64) { set(r, math.Float64frombits(v)) },
	}
}

// Length describes a native length value of at most bits wire bits. A
// variable byte field later in the same descriptor list can reference the
// same record field through its count accessor.
func Length[R any](bits int, get func(*R) int, set func(*R, int)) Field[R] {
	return Field[R]{
		kind: KindLength,
		bits: checkBits(bits),
		getU: func(r *R) uint64 { return uint64(get(r)) },
		setU: func(r *R, v uint64) { set(r, int(v)) },
	}
}

// FixedBytes describes a byte blob of exactly size bytes. The record's
// slice must hold at least size bytes on both serialize and deserialize;
// deserialize fills it in place.
func FixedBytes[R any](size int, get func(*R) []byte) Field[R] {
	if size < 0 {
		panic("bitfield: fixed array size must not be negative")
	}

	return Field[R]{
		kind: KindFixedBytes,
		size: size,
		getB: get,
	}
}

// VarBytes describes a byte blob whose length in bytes is supplied by
// count, typically reading the record field behind an earlier Length
// descriptor. On serialize the first count bytes of get's slice are
// written. On deserialize the slice is reused when its capacity suffices
// and reallocated otherwise, then stored back through set; this is the
// only operation of the record codec that may allocate.
func VarBytes[R any](get func(*R) []byte, set func(*R, []byte), count func(*R) int) Field[R] {
	return Field[R]{
		kind:  KindVarBytes,
		getB:  get,
		setB:  set,
		count: count,
	}
}

// Align advances the stream to the next byte boundary; it is a no-op when
// the stream is already aligned. Skipped bits keep whatever the buffer
// holds.
func Align[R any]() Field[R] {
	return Field[R]{kind: KindAlign}
}

// Pad advances the stream by bits positions. On serialize the padded bits
// keep whatever the buffer holds, so callers who need zero padding must
// pre-zero the buffer; on deserialize they are skipped.
func Pad[R any](bits int) Field[R] {
	return Field[R]{kind: KindPad, bits: checkBits(bits)}
}
