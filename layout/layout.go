// Package layout builds record layouts from declarative TOML definitions.
//
// A layout is the data-driven counterpart of a hand-written descriptor
// list: it names a record's fields, their kinds and bit widths, and the
// stream mode, so tooling can encode and decode frames without a
// compile-time record type. Field values travel in a Values map keyed by
// field name.
//
// A definition looks like:
//
//	name = "sensor.reading"
//	mode = "big"
//
//	[[fields]]
//	name = "temperature"
//	kind = "u16"
//	bits = 12
//
//	[[fields]]
//	name = "alarm"
//	kind = "u8"
//	bits = 3
//
//	[[fields]]
//	kind = "align"
//
// Supported kinds: u8 u16 u32 u64 (unsigned), i8 i16 i32 i64
// (two's complement), s8 s16 s32 s64 (sign and magnitude), f32 f64, len,
// bytes (fixed, requires size), varbytes (requires length_field naming an
// earlier len field), align, pad (requires bits). Integer kinds default to
// their native width when bits is omitted.
//
// Layouts are identified by the xxHash64 of their name; a Registry maps
// names and IDs to parsed layouts.
package layout

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tomaszszewczyk/bitfield"
	"github.com/tomaszszewczyk/bitfield/endian"
	"github.com/tomaszszewczyk/bitfield/errs"
	"github.com/tomaszszewczyk/bitfield/internal/hash"
	"github.com/tomaszszewczyk/bitfield/stream"
)

// FieldSpec describes one field of a layout definition.
type FieldSpec struct {
	// Name keys the field's value in a Values map. Required for every
	// value-bearing kind, ignored for align and pad.
	Name string `toml:"name"`
	// Kind selects the field codec, e.g. "u16", "s8", "varbytes".
	Kind string `toml:"kind"`
	// Bits is the wire width. Integer kinds default to their native
	// width; pad and len require it explicitly.
	Bits int `toml:"bits"`
	// Size is the byte length of a fixed "bytes" field.
	Size int `toml:"size"`
	// LengthField names the earlier "len" field holding a "varbytes"
	// field's byte count.
	LengthField string `toml:"length_field"`
}

// Layout is a parsed, compiled record layout.
type Layout struct {
	Name   string      `toml:"name"`
	Mode   string      `toml:"mode"`
	Fields []FieldSpec `toml:"fields"`

	mode   endian.Mode
	fields []bitfield.Field[Values]
}

// Parse parses a TOML layout definition and compiles it.
func Parse(data []byte) (*Layout, error) {
	l := &Layout{}
	if err := toml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidLayout, err)
	}

	if err := l.compile(); err != nil {
		return nil, err
	}

	return l, nil
}

// ParseFile parses a TOML layout definition from a file and compiles it.
func ParseFile(path string) (*Layout, error) {
	l := &Layout{}
	if _, err := toml.DecodeFile(path, l); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidLayout, err)
	}

	if err := l.compile(); err != nil {
		return nil, err
	}

	return l, nil
}

// ID returns the xxHash64 of the layout name, stable across processes.
func (l *Layout) ID() uint64 {
	return hash.ID(l.Name)
}

// StreamMode returns the endian mode the layout was declared with.
func (l *Layout) StreamMode() endian.Mode {
	return l.mode
}

// NewStream creates a stream over buf in the layout's mode.
func (l *Layout) NewStream(buf []byte) *stream.Stream {
	return stream.New(buf, l.mode)
}

// Encode serializes vals through the layout's descriptor list. Values must
// use the canonical types: uint64 for unsigned kinds, int64 for signed
// kinds, float32/float64 for floats, int for len, []byte for byte kinds.
func (l *Layout) Encode(vals Values, s *stream.Stream) error {
	return bitfield.Serialize(l.fields, &vals, s)
}

// Decode deserializes one record from the stream into a fresh Values map.
func (l *Layout) Decode(s *stream.Stream) (Values, error) {
	vals := Values{}
	if err := bitfield.Deserialize(l.fields, &vals, s); err != nil {
		return nil, err
	}

	return vals, nil
}

// BitLength returns the encoded length of vals in bits.
func (l *Layout) BitLength(vals Values) int {
	return bitfield.BitLength(l.fields, &vals)
}

// ByteLength returns the encoded length of vals rounded up to whole bytes.
func (l *Layout) ByteLength(vals Values) int {
	return bitfield.ByteLength(l.fields, &vals)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidLayout, fmt.Sprintf(format, args...))
}

// nativeBits maps integer kinds to their native width for the bits
// default.
var nativeBits = map[string]int{
	"u8": 8, "u16": 16, "u32": 32, "u64": 64,
	"i8": 8, "i16": 16, "i32": 32, "i64": 64,
	"s8": 8, "s16": 16, "s32": 32, "s64": 64,
}

func (l *Layout) compile() error {
	switch l.Mode {
	case "", "big":
		l.mode = endian.Big
	case "little":
		l.mode = endian.Little
	default:
		return invalidf("layout %q: unknown mode %q", l.Name, l.Mode)
	}

	if l.Name == "" {
		return invalidf("layout name is required")
	}

	l.fields = make([]bitfield.Field[Values], 0, len(l.Fields))
	seen := make(map[string]string, len(l.Fields))

	for i, spec := range l.Fields {
		kind := spec.Kind
		bits := spec.Bits

		if bits == 0 {
			bits = nativeBits[kind]
		}

		named := kind != "align" && kind != "pad"
		if named {
			if spec.Name == "" {
				return invalidf("layout %q: field %d (%s) needs a name", l.Name, i, kind)
			}
			if _, dup := seen[spec.Name]; dup {
				return invalidf("layout %q: duplicate field name %q", l.Name, spec.Name)
			}
		}

		field, err := l.compileField(spec, kind, bits, seen)
		if err != nil {
			return err
		}

		l.fields = append(l.fields, field)

		if named {
			seen[spec.Name] = kind
		}
	}

	return nil
}

func (l *Layout) compileField(spec FieldSpec, kind string, bits int, seen map[string]string) (bitfield.Field[Values], error) {
	name := spec.Name

	if spec.Bits < 0 {
		return bitfield.Field[Values]{}, invalidf("layout %q: field %q: negative bits", l.Name, name)
	}

	switch kind {
	case "s8", "s16", "s32", "s64":
		if bits > 64 {
			return bitfield.Field[Values]{}, invalidf("layout %q: field %q: sign-magnitude width above 64", l.Name, name)
		}
	}

	switch kind {
	case "u8":
		return bitfield.Uint8(bits,
			func(r *Values) uint8 { return uint8(r.Uint(name)) },
			func(r *Values, v uint8) { r.put(name, uint64(v)) }), nil
	case "u16":
		return bitfield.Uint16(bits,
			func(r *Values) uint16 { return uint16(r.Uint(name)) },
			func(r *Values, v uint16) { r.put(name, uint64(v)) }), nil
	case "u32":
		return bitfield.Uint32(bits,
			func(r *Values) uint32 { return uint32(r.Uint(name)) },
			func(r *Values, v uint32) { r.put(name, uint64(v)) }), nil
	case "u64":
		return bitfield.Uint64(bits,
			func(r *Values) uint64 { return r.Uint(name) },
			func(r *Values, v uint64) { r.put(name, v) }), nil
	case "i8":
		return bitfield.Int8(bits,
			func(r *Values) int8 { return int8(r.Int(name)) },
			func(r *Values, v int8) { r.put(name, int64(v)) }), nil
	case "i16":
		return bitfield.Int16(bits,
			func(r *Values) int16 { return int16(r.Int(name)) },
			func(r *Values, v int16) { r.put(name, int64(v)) }), nil
	case "i32":
		return bitfield.Int32(bits,
			func(r *Values) int32 { return int32(r.Int(name)) },
			func(r *Values, v int32) { r.put(name, int64(v)) }), nil
	case "i64":
		return bitfield.Int64(bits,
			func(r *Values) int64 { return r.Int(name) },
			func(r *Values, v int64) { r.put(name, v) }), nil
	case "s8":
		return bitfield.SignMag8(bits,
			func(r *Values) int8 { return int8(r.Int(name)) },
			func(r *Values, v int8) { r.put(name, int64(v)) }), nil
	case "s16":
		return bitfield.SignMag16(bits,
			func(r *Values) int16 { return int16(r.Int(name)) },
			func(r *Values, v int16) { r.put(name, int64(v)) }), nil
	case "s32":
		return bitfield.SignMag32(bits,
			func(r *Values) int32 { return int32(r.Int(name)) },
			func(r *Values, v int32) { r.put(name, int64(v)) }), nil
	case "s64":
		return bitfield.SignMag64(bits,
			func(r *Values) int64 { return r.Int(name) },
			func(r *Values, v int64) { r.put(name, v) }), nil
	case "f32":
		return bitfield.Float32(
			func(r *Values) float32 { return r.Float32(name) },
			func(r *Values, v float32) { r.put(name, v) }), nil
	case "f64":
		return bitfield.Float64(
			func(r *Values) float64 { return r.Float64(name) },
			func(r *Values, v float64) { r.put(name, v) }), nil
	case "len":
		if spec.Bits == 0 {
			return bitfield.Field[Values]{}, invalidf("layout %q: len field %q needs bits", l.Name, name)
		}

		return bitfield.Length(bits,
			func(r *Values) int { return r.Len(name) },
			func(r *Values, v int) { r.put(name, v) }), nil
	case "bytes":
		if spec.Size <= 0 {
			return bitfield.Field[Values]{}, invalidf("layout %q: bytes field %q needs size", l.Name, name)
		}

		return bitfield.FixedBytes(spec.Size,
			func(r *Values) []byte { return r.bytesOrMake(name, spec.Size) }), nil
	case "varbytes":
		ref := spec.LengthField
		if ref == "" {
			return bitfield.Field[Values]{}, invalidf("layout %q: varbytes field %q needs length_field", l.Name, name)
		}
		if seen[ref] != "len" {
			return bitfield.Field[Values]{}, invalidf("layout %q: varbytes field %q: length_field %q is not a preceding len field", l.Name, name, ref)
		}

		return bitfield.VarBytes(
			func(r *Values) []byte { return r.Bytes(name) },
			func(r *Values, b []byte) { r.put(name, b) },
			func(r *Values) int { return r.Len(ref) }), nil
	case "align":
		return bitfield.Align[Values](), nil
	case "pad":
		if spec.Bits <= 0 {
			return bitfield.Field[Values]{}, invalidf("layout %q: pad field needs bits", l.Name)
		}

		return bitfield.Pad[Values](bits), nil
	default:
		return bitfield.Field[Values]{}, invalidf("layout %q: unknown kind %q", l.Name, kind)
	}
}
