package arraybuffer

import "github.com/go-ecma/arraybuffer/elemtype"

// Re-exported element-type constants, so simple callers need only import
// the root package.
const (
	Int8         = elemtype.Int8
	Uint8        = elemtype.Uint8
	Uint8Clamped = elemtype.Uint8Clamped
	Int16        = elemtype.Int16
	Uint16       = elemtype.Uint16
	Int32        = elemtype.Int32
	Uint32       = elemtype.Uint32
	BigInt64     = elemtype.BigInt64
	BigUint64    = elemtype.BigUint64
	Float32      = elemtype.Float32
	Float64      = elemtype.Float64
)
