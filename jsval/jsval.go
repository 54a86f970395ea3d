// Package jsval bridges Go's static numeric types and the loosely typed
// coercion rules the codec and buffer packages need: ToNumber,
// ToIntegerOrInfinity, ToIndex, the ToIntN/ToUintN family, ToUint8Clamp,
// ToBigInt64/ToBigUint64, and SameValue.
//
// A "value" in this package is modeled as `any`, holding one of: nil
// (undefined), bool, any Go numeric type, string, *big.Int, or a caller
// type implementing Numberer or BigIntConvertible. This stands in for the
// property-and-prototype-driven coercion a full object model would
// otherwise perform (valueOf/Symbol.toPrimitive), without this module
// needing to know what an "object" is.
package jsval

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/go-ecma/arraybuffer/errs"
)

// Numberer lets a caller-defined type participate in ToNumber coercion,
// standing in for an object's Symbol.toPrimitive/valueOf chain.
type Numberer interface {
	ToNumber() (float64, error)
}

// BigIntConvertible lets a caller-defined type participate in BigInt
// coercion (ToBigInt64/ToBigUint64).
type BigIntConvertible interface {
	ToBigInt() (*big.Int, error)
}

// ToNumber converts v to the Number domain (float64). *big.Int values are
// rejected with a TypeError: JavaScript never implicitly converts a BigInt
// to a Number.
func ToNumber(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		if x == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return math.NaN(), nil
		}
		return f, nil
	case *big.Int:
		return 0, fmt.Errorf("%w: cannot convert a BigInt to a Number", errs.ErrNotCoercible)
	case Numberer:
		return x.ToNumber()
	default:
		return 0, fmt.Errorf("%w: %T has no Number conversion", errs.ErrNotCoercible, v)
	}
}

// SameValue implements the SameValue algorithm used to compare an
// ArrayBuffer's detach key against the key passed to Detach. Two NaN
// values of any representation compare equal; +0 and -0 compare unequal
// (unlike ==).
func SameValue(a, b any) bool {
	af, aIsNum := asFloat(a)
	bf, bIsNum := asFloat(b)
	if aIsNum && bIsNum {
		if math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
		if af == 0 && bf == 0 {
			return math.Signbit(af) == math.Signbit(bf)
		}
		return af == bf
	}

	if ab, ok := a.(*big.Int); ok {
		if bb, ok := b.(*big.Int); ok {
			return ab.Cmp(bb) == 0
		}
		return false
	}

	return a == b
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
