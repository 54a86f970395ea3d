package jsval

import (
	"fmt"
	"math"

	"github.com/go-ecma/arraybuffer/errs"
)

// InfinityKind distinguishes an unbounded IntegerOrInfinity result from a
// finite one.
type InfinityKind int

const (
	// Finite means Int holds a finite, truncated-towards-zero integer.
	Finite InfinityKind = iota
	// NegInfinity means the value coerced to negative infinity.
	NegInfinity
	// PosInfinity means the value coerced to positive infinity.
	PosInfinity
)

// IntegerOrInfinity is the result of ToIntegerOrInfinity: either a finite
// integer or one of the two infinities, used by Slice's relative-index
// clamping, where +Infinity clamps to the length, -Infinity to 0, and a
// NaN start takes the finite path as 0.
type IntegerOrInfinity struct {
	Kind InfinityKind
	Int  int64
}

// ToIntegerOrInfinity implements the ToIntegerOrInfinity abstract
// operation: NaN and 0 both coerce to the finite integer 0; +/-Infinity
// pass through; every other number truncates towards zero.
func ToIntegerOrInfinity(v any) (IntegerOrInfinity, error) {
	n, err := ToNumber(v)
	if err != nil {
		return IntegerOrInfinity{}, err
	}

	if math.IsNaN(n) || n == 0 {
		return IntegerOrInfinity{Kind: Finite, Int: 0}, nil
	}
	if math.IsInf(n, 1) {
		return IntegerOrInfinity{Kind: PosInfinity}, nil
	}
	if math.IsInf(n, -1) {
		return IntegerOrInfinity{Kind: NegInfinity}, nil
	}

	truncated := math.Trunc(n)
	// Clamp to the int64 domain; ArrayBuffer byte lengths never
	// approach this range (they're bounded by ToIndex's 2^53 ceiling
	// well below int64's range), so this only guards against a
	// pathological caller-supplied Numberer.
	if truncated >= math.MaxInt64 {
		return IntegerOrInfinity{Kind: PosInfinity}, nil
	}
	if truncated <= math.MinInt64 {
		return IntegerOrInfinity{Kind: NegInfinity}, nil
	}

	return IntegerOrInfinity{Kind: Finite, Int: int64(truncated)}, nil
}

// MaxSafeInteger is 2^53 - 1, the largest integer ToIndex permits.
const MaxSafeInteger = 1<<53 - 1

// ToIndex implements the ToIndex abstract operation: v must coerce to an
// integer in [0, 2^53-1], returned as int64. Anything outside that range
// is a RangeError.
func ToIndex(v any) (int64, error) {
	if v == nil {
		return 0, nil
	}

	ii, err := ToIntegerOrInfinity(v)
	if err != nil {
		return 0, err
	}

	switch ii.Kind {
	case NegInfinity:
		return 0, fmt.Errorf("%w: index must not be negative infinity", errs.ErrInvalidIndex)
	case PosInfinity:
		return 0, fmt.Errorf("%w: index exceeds 2^53-1", errs.ErrInvalidIndex)
	}

	if ii.Int < 0 || ii.Int > MaxSafeInteger {
		return 0, fmt.Errorf("%w: %d is outside [0, 2^53-1]", errs.ErrInvalidIndex, ii.Int)
	}

	return ii.Int, nil
}
