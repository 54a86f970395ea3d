package jsval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIntN(t *testing.T) {
	tests := []struct {
		name string
		v    any
		bits uint
		want int64
	}{
		{"int8 in range", 100.0, 8, 100},
		{"int8 wraps positive overflow", 200.0, 8, -56}, // 200 - 256
		{"int8 wraps negative", -200.0, 8, 56},
		{"int16 in range", 1000.0, 16, 1000},
		{"int32 in range", -70000.0, 32, -70000},
		{"nan is zero", nanValue(), 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToIntN(tt.v, tt.bits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUintN(t *testing.T) {
	tests := []struct {
		name string
		v    any
		bits uint
		want uint64
	}{
		{"uint8 in range", 200.0, 8, 200},
		{"uint8 wraps negative", -1.0, 8, 255},
		{"uint8 wraps overflow", 256.0, 8, 0},
		{"uint16 in range", 60000.0, 16, 60000},
		{"uint32 wraps negative", -1.0, 32, 4294967295},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUintN(tt.v, tt.bits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUint8Clamp(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want uint8
	}{
		{"nan clamps to zero", nanValue(), 0},
		{"negative clamps to zero", -5.0, 0},
		{"over 255 saturates", 300.0, 255},
		{"in range, no rounding needed", 100.0, 100},
		{"rounds down", 100.2, 100},
		{"rounds up", 100.7, 101},
		{"exact half rounds to even, down", 100.5, 100},
		{"exact half rounds to even, up", 101.5, 102},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUint8Clamp(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
