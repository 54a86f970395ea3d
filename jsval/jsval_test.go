package jsval

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want float64
	}{
		{"nil is NaN", nil, math.NaN()},
		{"float64 passthrough", 3.5, 3.5},
		{"int", int(42), 42},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"empty string", "", 0},
		{"numeric string", "12.5", 12.5},
		{"non numeric string is NaN", "abc", math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToNumber(tt.v)
			require.NoError(t, err)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got))
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToNumber_BigIntRejected(t *testing.T) {
	_, err := ToNumber(big.NewInt(5))
	require.Error(t, err)
}

type fakeNumberer struct{ n float64 }

func (f fakeNumberer) ToNumber() (float64, error) { return f.n, nil }

func TestToNumber_Numberer(t *testing.T) {
	got, err := ToNumber(fakeNumberer{n: 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestSameValue(t *testing.T) {
	assert.True(t, SameValue(nil, nil))
	assert.True(t, SameValue(1.0, 1.0))
	assert.True(t, SameValue(math.NaN(), math.NaN()))
	assert.False(t, SameValue(0.0, math.Copysign(0, -1)))
	assert.False(t, SameValue(1.0, 2.0))
	assert.True(t, SameValue("a", "a"))
	assert.False(t, SameValue("a", "b"))
}
