package buffer

import (
	"github.com/go-ecma/arraybuffer/codec"
	"github.com/go-ecma/arraybuffer/elemtype"
	"github.com/go-ecma/arraybuffer/endian"
)

// resolveEndian maps an optional isLittleEndian flag to an engine; nil
// models an omitted flag and defaults to little-endian.
func resolveEndian(littleEndian *bool) endian.EndianEngine {
	if littleEndian == nil || *littleEndian {
		return endian.GetLittleEndianEngine()
	}
	return endian.GetBigEndianEngine()
}

func rawBytesToNumeric(t elemtype.ElementType, raw []byte, engine endian.EndianEngine) (any, error) {
	return codec.RawBytesToNumeric(t, raw, engine)
}

func numericToRawBytes(t elemtype.ElementType, value any, engine endian.EndianEngine) ([]byte, error) {
	return codec.NumericToRawBytes(t, value, engine)
}
