// Package errs defines the sentinel errors shared across the bitfield module.
//
// Recoverable failures of the stream, codec, record codec and layout
// parsing surface as one of these sentinels (possibly wrapped with context
// via fmt.Errorf and %w), so callers can classify them with errors.Is.
// layout.Registry.Register reports a duplicate name or ID with a plain
// error that wraps no sentinel. Programmer errors — nil streams, invalid widths,
// broken descriptor contracts — are not represented here; those panic.
package errs

import "errors"

var (
	// ErrBufferTooShort is returned when a read or write would transfer
	// more bits than remain in the stream's buffer. The stream position
	// and buffer contents are unchanged when this error is returned.
	ErrBufferTooShort = errors.New("stream buffer too short")

	// ErrNotAligned is returned by Stream.SetMode when the stream position
	// is not on a byte boundary. The mode is unchanged.
	ErrNotAligned = errors.New("stream not byte-aligned")

	// ErrUnknownField names a reference to a field that a layout does not
	// define. No operation in this module returns it: layout.Values
	// accessors yield the zero value for an absent field, and a varbytes
	// length_field that names no preceding len field fails with
	// ErrInvalidLayout.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidLayout is returned when a layout definition fails
	// validation: unknown field kind, missing bit width, or a variable
	// byte field whose length field does not precede it.
	ErrInvalidLayout = errors.New("invalid layout")
)
