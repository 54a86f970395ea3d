package elemtype

import "github.com/go-ecma/arraybuffer/memorder"

// IsNoTearConfiguration reports whether a read or write of an element of
// type t under memory order order is guaranteed not to "tear" (be observed
// as a mix of bytes from two different writes) when racing with another
// agent's access to the same bytes.
//
// Unclamped two's-complement integer kinds of width <= 4 bytes never tear,
// regardless of ordering: their accesses are always representable as a
// single aligned machine word operation. The two 64-bit BigInt kinds are
// guaranteed tear-free only under SeqCst: Init (the one-time initializing
// write) and Unordered both permit a 64-bit access to be split into two
// 32-bit accesses on some hardware. Uint8Clamped and the floating point
// kinds are never guaranteed tear-free.
func IsNoTearConfiguration(t ElementType, order memorder.Order) bool {
	if t.IsUnclampedInteger() {
		return true
	}

	if t.IsBigInt() {
		return order == memorder.SeqCst
	}

	return false
}
