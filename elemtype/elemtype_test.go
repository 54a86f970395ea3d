package elemtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementType_Width(t *testing.T) {
	tests := []struct {
		name string
		t    ElementType
		want int
	}{
		{"int8", Int8, 1},
		{"uint8", Uint8, 1},
		{"uint8 clamped", Uint8Clamped, 1},
		{"int16", Int16, 2},
		{"uint16", Uint16, 2},
		{"int32", Int32, 4},
		{"uint32", Uint32, 4},
		{"float32", Float32, 4},
		{"big int64", BigInt64, 8},
		{"big uint64", BigUint64, 8},
		{"float64", Float64, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.Width())
		})
	}
}

func TestElementType_String(t *testing.T) {
	assert.Equal(t, "Int8", Int8.String())
	assert.Equal(t, "Float64", Float64.String())
	assert.Contains(t, ElementType(200).String(), "ElementType(200)")
}

func TestElementType_IsBigInt(t *testing.T) {
	assert.True(t, BigInt64.IsBigInt())
	assert.True(t, BigUint64.IsBigInt())
	assert.False(t, Int32.IsBigInt())
	assert.False(t, Float64.IsBigInt())
}

func TestElementType_IsFloat(t *testing.T) {
	assert.True(t, Float32.IsFloat())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Int32.IsFloat())
}

func TestElementType_IsUnclampedInteger(t *testing.T) {
	for _, typ := range []ElementType{Int8, Uint8, Int16, Uint16, Int32, Uint32} {
		assert.True(t, typ.IsUnclampedInteger(), typ.String())
	}
	for _, typ := range []ElementType{Uint8Clamped, BigInt64, BigUint64, Float32, Float64} {
		assert.False(t, typ.IsUnclampedInteger(), typ.String())
	}
}

func TestElementType_Valid(t *testing.T) {
	assert.True(t, Float64.Valid())
	assert.True(t, Int8.Valid())
	assert.False(t, ElementType(200).Valid())
}
