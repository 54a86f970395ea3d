package jsval

import "math"

// ToIntN implements the ToIntN(bits, v) abstract operation: coerce v to a
// Number, truncate to an integer, reduce modulo 2^bits, and reinterpret
// the result as signed. bits must be one of 8, 16, 32 (64-bit signed
// integers are handled separately by ToBigInt64, which works from the
// BigInt domain rather than the Number domain).
func ToIntN(v any, bits uint) (int64, error) {
	u, err := toUintNRaw(v, bits)
	if err != nil {
		return 0, err
	}

	half := uint64(1) << (bits - 1)
	mod := uint64(1) << bits
	if u >= half {
		return int64(u) - int64(mod), nil
	}

	return int64(u), nil
}

// ToUintN implements the ToUintN(bits, v) abstract operation: coerce v to
// a Number, truncate to an integer, and reduce modulo 2^bits.
func ToUintN(v any, bits uint) (uint64, error) {
	return toUintNRaw(v, bits)
}

func toUintNRaw(v any, bits uint) (uint64, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(n) || n == 0 || math.IsInf(n, 0) {
		return 0, nil
	}

	truncated := math.Trunc(n)
	mod := float64(uint64(1) << bits)

	// math.Mod can return a negative result for a negative dividend;
	// normalize into [0, mod).
	r := math.Mod(truncated, mod)
	if r < 0 {
		r += mod
	}

	return uint64(r), nil
}

// ToUint8Clamp implements the ToUint8Clamp abstract operation used by the
// Uint8Clamped element type: NaN clamps to 0; values outside [0,255]
// saturate to the nearest bound; values in range round to the nearest
// integer, with exact halves rounding to the nearest even integer.
func ToUint8Clamp(v any) (uint8, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(n) || n <= 0 {
		return 0, nil
	}
	if n >= 255 {
		return 255, nil
	}

	f := math.Floor(n)
	diff := n - f
	switch {
	case diff < 0.5:
		return uint8(f), nil
	case diff > 0.5:
		return uint8(f) + 1, nil
	default:
		// Exact half: round to even.
		if int64(f)%2 == 0 {
			return uint8(f), nil
		}
		return uint8(f) + 1, nil
	}
}
