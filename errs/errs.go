// Package errs defines the sentinel error values returned throughout the
// arraybuffer module. Every fallible operation of the ECMAScript-facing
// packages returns one of these sentinels, directly or wrapped with
// fmt.Errorf("%w: ..."), so callers can classify a failure with errors.Is
// without parsing message text. The snapshot package's own errors are
// outside this taxonomy.
package errs

import (
	"errors"
	"fmt"
)

// Kind-level sentinels. Every error the ECMAScript-facing packages return
// wraps exactly one of these, letting a caller distinguish a TypeError from a RangeError the
// way a host ECMAScript implementation would.
var (
	// ErrTypeError marks a failure that an ECMAScript host would surface as
	// a TypeError: wrong receiver kind, detached buffer where attached is
	// required, a species constructor that misbehaves, an undefined
	// new.target, or a value that cannot be coerced to the requested type.
	ErrTypeError = errors.New("TypeError")

	// ErrRangeError marks a failure that an ECMAScript host would surface
	// as a RangeError: an index or length outside the permitted domain.
	ErrRangeError = errors.New("RangeError")
)

// Specific sentinels, each wrapping one of the two kind-level errors above.
// Callers that only care about the kind can still use errors.Is(err,
// errs.ErrTypeError); callers that care about the specific failure can use
// errors.Is(err, errs.ErrDetached) and so on.
var (
	// ErrDetached indicates an operation required an attached buffer but
	// the buffer's backing block is absent.
	ErrDetached = fmt.Errorf("%w: array buffer is detached", ErrTypeError)

	// ErrDetachKeyMismatch indicates Detach was called with a key that
	// does not match the buffer's detach key.
	ErrDetachKeyMismatch = fmt.Errorf("%w: detach key does not match", ErrTypeError)

	// ErrAllocationTooLarge indicates a requested byte length exceeds the
	// realm's configured maximum.
	ErrAllocationTooLarge = fmt.Errorf("%w: requested byte length exceeds the maximum allowed allocation", ErrRangeError)

	// ErrInvalidIndex indicates a requested byte length is negative or
	// otherwise fails ToIndex validation.
	ErrInvalidIndex = fmt.Errorf("%w: value is not a valid index", ErrRangeError)

	// ErrUndefinedNewTarget indicates a constructor was invoked without
	// new.target, i.e. not as a constructor call.
	ErrUndefinedNewTarget = fmt.Errorf("%w: constructor invoked without new.target", ErrTypeError)

	// ErrSpeciesNotConstructor indicates a species lookup returned a
	// non-constructor value.
	ErrSpeciesNotConstructor = fmt.Errorf("%w: species constructor is not a constructor", ErrTypeError)

	// ErrSpeciesResultInvalid indicates a species-constructed ArrayBuffer
	// failed validation (not an ArrayBuffer, detached, identical to the
	// source, or too small).
	ErrSpeciesResultInvalid = fmt.Errorf("%w: species constructor returned an invalid array buffer", ErrTypeError)

	// ErrOutOfBounds indicates a byte index falls outside the buffer.
	ErrOutOfBounds = fmt.Errorf("%w: byte index out of bounds", ErrRangeError)

	// ErrNotCoercible indicates a value cannot be coerced to the requested
	// numeric domain (e.g. a BigInt passed where ToNumber is required).
	ErrNotCoercible = fmt.Errorf("%w: value cannot be coerced to the requested type", ErrTypeError)

	// ErrUnsupportedWidth indicates a raw byte slice's length does not
	// match the element type's declared width.
	ErrUnsupportedWidth = fmt.Errorf("%w: raw byte slice length does not match element width", ErrTypeError)
)

// IsTypeError reports whether err wraps ErrTypeError.
func IsTypeError(err error) bool { return errors.Is(err, ErrTypeError) }

// IsRangeError reports whether err wraps ErrRangeError.
func IsRangeError(err error) bool { return errors.Is(err, ErrRangeError) }
