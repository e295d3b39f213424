package memory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	m := New()
	data := []byte{0x01, 0x02, 0x03, 0xff}

	require.NoError(t, m.Write(0x2000, data))

	got, err := m.Read(0x2000, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestReadWriteOverflow(t *testing.T) {
	m := New()

	_, err := m.Read(Size-2, 4)
	require.Error(t, err)

	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	require.Equal(t, OpRead, overflow.Op)

	err = m.Write(Size-2, []byte{1, 2, 3, 4})
	require.Error(t, err)
	require.ErrorAs(t, err, &overflow)
	require.Equal(t, OpWrite, overflow.Op)
}

func TestReadWriteBoundary(t *testing.T) {
	m := New()
	data := make([]byte, 4)
	for i := range data {
		data[i] = byte(0x10 + i)
	}

	require.NoError(t, m.Write(Size-4, data))

	got, err := m.Read(Size-4, 4)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestNewFromImage(t *testing.T) {
	image := []byte{0xa9, 0x05, 0x69, 0x03, 0x00}
	m, err := NewFromImage(image)
	require.NoError(t, err)

	got, err := m.Read(0, len(image))
	require.NoError(t, err)
	require.Equal(t, image, got)
}

func TestByteHelpers(t *testing.T) {
	m := New()
	m.WriteByte(0x1234, 0x42)
	require.Equal(t, byte(0x42), m.ReadByte(0x1234))
}
