package codec

import (
	"math/big"
	"testing"

	"github.com/go-ecma/arraybuffer/elemtype"
	"github.com/go-ecma/arraybuffer/endian"
)

// The element kinds a typed-array-heavy workload actually hits: a
// representative handful rather than all eleven.
var benchmarkTypes = []struct {
	name  string
	t     elemtype.ElementType
	value any
}{
	{"Uint8", elemtype.Uint8, 200.0},
	{"Uint8Clamped", elemtype.Uint8Clamped, 257.6},
	{"Int32", elemtype.Int32, -1234567.0},
	{"Float64", elemtype.Float64, 3.14159265359},
	{"BigUint64", elemtype.BigUint64, big.NewInt(1 << 40)},
}

func BenchmarkNumericToRawBytes(b *testing.B) {
	engine := endian.GetLittleEndianEngine()

	for _, tc := range benchmarkTypes {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := NumericToRawBytes(tc.t, tc.value, engine); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRawBytesToNumeric(b *testing.B) {
	engine := endian.GetLittleEndianEngine()

	for _, tc := range benchmarkTypes {
		raw, err := NumericToRawBytes(tc.t, tc.value, engine)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := RawBytesToNumeric(tc.t, raw, engine); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip_Float64(b *testing.B) {
	engine := endian.GetLittleEndianEngine()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		raw, err := NumericToRawBytes(elemtype.Float64, 20.5, engine)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := RawBytesToNumeric(elemtype.Float64, raw, engine); err != nil {
			b.Fatal(err)
		}
	}
}
