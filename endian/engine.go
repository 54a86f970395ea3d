// Package endian provides the byte order abstraction the codec package
// dispatches on: every multi-byte element read or write names an
// EndianEngine, chosen per call from an isLittleEndian flag.
//
// The package combines encoding/binary's ByteOrder and AppendByteOrder
// interfaces into a single EndianEngine, satisfied directly by
// binary.LittleEndian and binary.BigEndian:
//
//	engine := endian.GetLittleEndianEngine()
//	raw := engine.AppendUint32(nil, 0x01020304) // [0x04, 0x03, 0x02, 0x01]
//
// All functions and methods are safe for concurrent use; the returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder
// into a single interface, so the codec's encode paths can append directly
// into a destination slice and its decode paths can read fixed-width
// integers, both through one value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's native byte order by inspecting
// how a known 16-bit value lands in memory.
func CheckEndianness() binary.ByteOrder {
	// In 0x0100 the high byte is 0x01; if it sits at the lowest address
	// the host is big-endian.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// little-endian, the common case and the default an omitted
// isLittleEndian flag resolves to.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores integers big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native
// byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
