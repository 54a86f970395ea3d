// Package codec implements RawBytesToNumeric and NumericToRawBytes: the
// bit-exact conversion between an ArrayBuffer's raw bytes and the Go
// values (float64 or *big.Int) GetValue/SetValueInBuffer exchange with
// callers.
//
// The eleven element types reduce to a handful of genuinely distinct
// algorithms (fixed-width
// integer truncation, clamped-integer rounding, BigInt modular reduction,
// IEEE-754 float reinterpretation); a dispatch table keyed by
// elemtype.ElementType, built once at init, replaces what would otherwise
// be an eleven-case switch repeated at every call site.
package codec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/go-ecma/arraybuffer/elemtype"
	"github.com/go-ecma/arraybuffer/endian"
	"github.com/go-ecma/arraybuffer/errs"
	"github.com/go-ecma/arraybuffer/jsval"
)

type decodeFunc func(raw []byte, engine endian.EndianEngine) any

type encodeFunc func(value any, engine endian.EndianEngine) ([]byte, error)

type entry struct {
	width  int
	decode decodeFunc
	encode encodeFunc
}

var table map[elemtype.ElementType]entry

func init() {
	table = map[elemtype.ElementType]entry{
		elemtype.Int8: {1,
			func(raw []byte, _ endian.EndianEngine) any { return float64(int8(raw[0])) },
			func(v any, _ endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToIntN(v, 8)
				if err != nil {
					return nil, err
				}
				return []byte{byte(int8(n))}, nil
			},
		},
		elemtype.Uint8: {1,
			func(raw []byte, _ endian.EndianEngine) any { return float64(raw[0]) },
			func(v any, _ endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToUintN(v, 8)
				if err != nil {
					return nil, err
				}
				return []byte{byte(n)}, nil
			},
		},
		elemtype.Uint8Clamped: {1,
			func(raw []byte, _ endian.EndianEngine) any { return float64(raw[0]) },
			func(v any, _ endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToUint8Clamp(v)
				if err != nil {
					return nil, err
				}
				return []byte{n}, nil
			},
		},
		elemtype.Int16: {2,
			func(raw []byte, engine endian.EndianEngine) any { return float64(int16(engine.Uint16(raw))) },
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToIntN(v, 16)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint16(nil, uint16(int16(n))), nil
			},
		},
		elemtype.Uint16: {2,
			func(raw []byte, engine endian.EndianEngine) any { return float64(engine.Uint16(raw)) },
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToUintN(v, 16)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint16(nil, uint16(n)), nil
			},
		},
		elemtype.Int32: {4,
			func(raw []byte, engine endian.EndianEngine) any { return float64(int32(engine.Uint32(raw))) },
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToIntN(v, 32)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint32(nil, uint32(int32(n))), nil
			},
		},
		elemtype.Uint32: {4,
			func(raw []byte, engine endian.EndianEngine) any { return float64(engine.Uint32(raw)) },
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToUintN(v, 32)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint32(nil, uint32(n)), nil
			},
		},
		elemtype.Float32: {4,
			func(raw []byte, engine endian.EndianEngine) any {
				return canonicalizeNaN32(math.Float32frombits(engine.Uint32(raw)))
			},
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToNumber(v)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint32(nil, math.Float32bits(float32(n))), nil
			},
		},
		elemtype.Float64: {8,
			func(raw []byte, engine endian.EndianEngine) any {
				return canonicalizeNaN64(math.Float64frombits(engine.Uint64(raw)))
			},
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToNumber(v)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint64(nil, math.Float64bits(n)), nil
			},
		},
		elemtype.BigInt64: {8,
			func(raw []byte, engine endian.EndianEngine) any {
				return new(big.Int).SetInt64(int64(engine.Uint64(raw)))
			},
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToBigInt64(v)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint64(nil, uint64(n)), nil
			},
		},
		elemtype.BigUint64: {8,
			func(raw []byte, engine endian.EndianEngine) any {
				return new(big.Int).SetUint64(engine.Uint64(raw))
			},
			func(v any, engine endian.EndianEngine) ([]byte, error) {
				n, err := jsval.ToBigUint64(v)
				if err != nil {
					return nil, err
				}
				return engine.AppendUint64(nil, n), nil
			},
		},
	}
}

// canonicalizeNaN32 replaces any of Float32's NaN bit patterns with the
// canonical math.NaN() representation, as ECMAScript explicitly permits
// (downstream language semantics never distinguish NaN payloads).
func canonicalizeNaN32(f float32) float64 {
	if f != f { // NaN never equals itself
		return math.NaN()
	}
	return float64(f)
}

func canonicalizeNaN64(f float64) float64 {
	if math.IsNaN(f) {
		return math.NaN()
	}
	return f
}

// RawBytesToNumeric implements the RawBytesToNumeric abstract operation:
// decode exactly t.Width() bytes of raw as element type t in the given
// byte order, producing a float64 for every type except BigInt64/
// BigUint64, which produce a *big.Int.
func RawBytesToNumeric(t elemtype.ElementType, raw []byte, engine endian.EndianEngine) (any, error) {
	e, ok := table[t]
	if !ok {
		return nil, fmt.Errorf("%w: unknown element type %s", errs.ErrUnsupportedWidth, t)
	}
	if len(raw) != e.width {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", errs.ErrUnsupportedWidth, t, e.width, len(raw))
	}

	return e.decode(raw, engine), nil
}

// NumericToRawBytes implements the NumericToRawBytes abstract operation:
// coerce value into element type t's domain and encode it to exactly
// t.Width() bytes in the given byte order.
func NumericToRawBytes(t elemtype.ElementType, value any, engine endian.EndianEngine) ([]byte, error) {
	e, ok := table[t]
	if !ok {
		return nil, fmt.Errorf("%w: unknown element type %s", errs.ErrUnsupportedWidth, t)
	}

	return e.encode(value, engine)
}
