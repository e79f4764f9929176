package layout

// Values carries a dynamic record's field values keyed by field name.
//
// The canonical value types are uint64 for unsigned kinds, int64 for
// two's-complement and sign-and-magnitude kinds, float32/float64 for the
// float kinds, int for len, and []byte for bytes and varbytes. The typed
// accessors return the zero value when a field is absent or holds a
// different type.
type Values map[string]any

// Uint returns the named unsigned field.
func (v *Values) Uint(name string) uint64 {
	x, _ := (*v)[name].(uint64)

	return x
}

// Int returns the named signed field.
func (v *Values) Int(name string) int64 {
	x, _ := (*v)[name].(int64)

	return x
}

// Float32 returns the named single-precision float field.
func (v *Values) Float32(name string) float32 {
	x, _ := (*v)[name].(float32)

	return x
}

// Float64 returns the named double-precision float field.
func (v *Values) Float64(name string) float64 {
	x, _ := (*v)[name].(float64)

	return x
}

// Len returns the named length field.
func (v *Values) Len(name string) int {
	x, _ := (*v)[name].(int)

	return x
}

// Bytes returns the named byte field.
func (v *Values) Bytes(name string) []byte {
	x, _ := (*v)[name].([]byte)

	return x
}

func (v *Values) put(name string, x any) {
	(*v)[name] = x
}

// bytesOrMake returns the named byte field when it already holds at least
// size bytes, otherwise stores and returns a fresh slice of that size so
// in-place decoding lands in the map.
func (v *Values) bytesOrMake(name string, size int) []byte {
	if b, ok := (*v)[name].([]byte); ok && len(b) >= size {
		return b
	}

	b := make([]byte, size)
	(*v)[name] = b

	return b
}
