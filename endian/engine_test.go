package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	require.Equal(t, "big", Big.String())
	require.Equal(t, "little", Little.String())
	require.Equal(t, "unknown", Mode(42).String())
}

func TestModeValid(t *testing.T) {
	require.True(t, Big.Valid())
	require.True(t, Little.Valid())
	require.False(t, Mode(42).Valid())
}

func TestModeEngine(t *testing.T) {
	require.Equal(t, binary.BigEndian, Big.Engine())
	require.Equal(t, binary.LittleEndian, Little.Engine())
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x02), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "Little endian should put MSB second")

	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x01), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x02), bytes[1], "Big endian should put LSB second")

	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}
