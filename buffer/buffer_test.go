package buffer

import (
	"testing"

	"github.com/go-ecma/arraybuffer/elemtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ByteLength(t *testing.T) {
	b, err := New(16, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(16), b.ByteLength())
	assert.False(t, b.IsDetached())
}

func TestDetach_WrongKeyFails(t *testing.T) {
	b, err := NewWithDetachKey(8, 0, "secret")
	require.NoError(t, err)

	err = b.Detach("wrong")
	require.Error(t, err)
	assert.False(t, b.IsDetached())
}

func TestDetach_CorrectKeySucceeds(t *testing.T) {
	b, err := NewWithDetachKey(8, 0, "secret")
	require.NoError(t, err)

	require.NoError(t, b.Detach("secret"))
	assert.True(t, b.IsDetached())
	assert.Equal(t, int64(0), b.ByteLength())
}

func TestDetach_IdempotentWithCorrectKey(t *testing.T) {
	b, err := NewWithDetachKey(8, 0, "secret")
	require.NoError(t, err)

	require.NoError(t, b.Detach("secret"))
	require.NoError(t, b.Detach("secret"))
	assert.True(t, b.IsDetached())
}

func TestGetSetValueInBuffer_RoundTrip(t *testing.T) {
	b, err := New(8, 0)
	require.NoError(t, err)

	require.NoError(t, b.SetValueInBuffer(0, elemtype.Uint32, 42.0, 0, nil))
	got, err := b.GetValue(0, elemtype.Uint32, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestSetValueInBuffer_LittleEndianLayout(t *testing.T) {
	b, err := New(8, 0)
	require.NoError(t, err)

	require.NoError(t, b.SetValueInBuffer(0, elemtype.Int32, float64(0x01020304), 0, nil))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b.Bytes()[:4])

	littleEndian := false
	require.NoError(t, b.SetValueInBuffer(4, elemtype.Int32, float64(0x01020304), 0, &littleEndian))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b.Bytes()[4:])
}

func TestSetValueInBuffer_DetachedFails(t *testing.T) {
	b, err := New(8, 0)
	require.NoError(t, err)
	require.NoError(t, b.Detach(nil))

	err = b.SetValueInBuffer(0, elemtype.Uint8, 1.0, 0, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "TypeError")
}

func TestGetValue_DetachedFails(t *testing.T) {
	b, err := New(8, 0)
	require.NoError(t, err)
	require.NoError(t, b.Detach(nil))

	_, err = b.GetValue(0, elemtype.Uint32, 0, nil)
	require.Error(t, err)
}

func TestGetValue_OutOfBounds(t *testing.T) {
	b, err := New(4, 0)
	require.NoError(t, err)

	_, err = b.GetValue(2, elemtype.Uint32, 0, nil)
	require.Error(t, err)
}

type fakeView struct{ buf *ArrayBuffer }

func (f fakeView) ViewedArrayBuffer() *ArrayBuffer { return f.buf }

func TestIsView(t *testing.T) {
	b, _ := New(4, 0)
	assert.True(t, IsView(fakeView{buf: b}))
	assert.False(t, IsView("not a view"))
	assert.False(t, IsView(nil))
}
