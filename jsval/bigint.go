package jsval

import (
	"fmt"
	"math"
	"math/big"

	"github.com/go-ecma/arraybuffer/errs"
)

// bigIntMax64 is 2^64, the modulus both 64-bit BigInt coercions reduce by.
var bigIntMax64 = new(big.Int).Lsh(big.NewInt(1), 64)

// toBigInt coerces v to the BigInt domain. Unlike ToNumber, a float64 or
// float32 Number is never coercible here: JavaScript never implicitly
// converts a Number to a BigInt. The Go integer types int, int64 and
// uint64 are accepted as exact integers.
func toBigInt(v any) (*big.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		return x, nil
	case int64:
		return big.NewInt(x), nil
	case int:
		return big.NewInt(int64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case string:
		b, ok := new(big.Int).SetString(x, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a valid BigInt literal", errs.ErrNotCoercible, x)
		}
		return b, nil
	case BigIntConvertible:
		return x.ToBigInt()
	default:
		return nil, fmt.Errorf("%w: %T cannot be converted to BigInt", errs.ErrNotCoercible, v)
	}
}

// ToBigInt64 implements the ToBigInt64 abstract operation: coerce v to a
// BigInt, reduce modulo 2^64, and reinterpret the result as signed. If the
// reduced value still can't be represented (unreachable given the modular
// reduction below), it clamps to the extreme matching the original big
// integer's sign.
func ToBigInt64(v any) (int64, error) {
	b, err := toBigInt(v)
	if err != nil {
		return 0, err
	}

	wasNegative := b.Sign() < 0

	reduced := new(big.Int).Mod(b, bigIntMax64)
	half := new(big.Int).Lsh(big.NewInt(1), 63)
	if reduced.Cmp(half) >= 0 {
		reduced.Sub(reduced, bigIntMax64)
	}

	if reduced.IsInt64() {
		return reduced.Int64(), nil
	}

	if wasNegative {
		return math.MinInt64, nil
	}
	return math.MaxInt64, nil
}

// ToBigUint64 implements the ToBigUint64 abstract operation: coerce v to a
// BigInt and reduce modulo 2^64.
func ToBigUint64(v any) (uint64, error) {
	b, err := toBigInt(v)
	if err != nil {
		return 0, err
	}

	wasNegative := b.Sign() < 0

	reduced := new(big.Int).Mod(b, bigIntMax64)
	if reduced.IsUint64() {
		return reduced.Uint64(), nil
	}

	if wasNegative {
		return 0, nil
	}
	return math.MaxUint64, nil
}
