// Package buffer implements the ArrayBuffer object: byte-length tracking,
// the detach lifecycle, value access backed by the codec package, slicing
// with species dispatch, and cloning.
package buffer

import (
	"fmt"

	"github.com/go-ecma/arraybuffer/elemtype"
	"github.com/go-ecma/arraybuffer/errs"
	"github.com/go-ecma/arraybuffer/internal/block"
	"github.com/go-ecma/arraybuffer/jsval"
	"github.com/go-ecma/arraybuffer/memorder"
)

// ArrayBuffer is a fixed-length, exclusively-owned byte store. Its block
// is present until Detach succeeds, after which it is permanently nil: the
// optional pointer models "detached" by absence rather than a separate
// boolean flag, so there is no way for a caller to observe a non-nil block
// alongside a "detached" bit set to true.
type ArrayBuffer struct {
	block      *block.Block
	byteLength int64
	detachKey  any
	prototype  *Prototype
}

// Prototype reports which constructor's prototype this buffer was created
// under (the OrdinaryCreateFromConstructor resolution performed at
// construction time), or nil if it was allocated directly through New/
// NewWithDetachKey rather than through Construct.
func (b *ArrayBuffer) Prototype() *Prototype {
	if b == nil {
		return nil
	}
	return b.prototype
}

// New allocates a fresh ArrayBuffer of byteLength bytes with no detach key
// (equivalent to `new ArrayBuffer(byteLength)` with no host-defined detach
// key). byteLength must already have passed jsval.ToIndex.
func New(byteLength int64, maxByteLength int64) (*ArrayBuffer, error) {
	return NewWithDetachKey(byteLength, maxByteLength, nil)
}

// NewWithDetachKey is like New but records key as the value Detach must
// be called with.
func NewWithDetachKey(byteLength int64, maxByteLength int64, key any) (*ArrayBuffer, error) {
	blk, err := block.Allocate(byteLength, maxByteLength)
	if err != nil {
		return nil, err
	}

	return &ArrayBuffer{block: blk, byteLength: byteLength, detachKey: key}, nil
}

// ByteLength returns the buffer's byte length, or 0 if detached. The
// stored length itself never changes across the buffer's lifetime; only
// the externally visible value collapses to 0 once the block is gone.
func (b *ArrayBuffer) ByteLength() int64 {
	if b == nil || b.IsDetached() {
		return 0
	}
	return b.byteLength
}

// IsDetached reports whether the buffer's backing block is absent.
func (b *ArrayBuffer) IsDetached() bool {
	return b == nil || b.block == nil
}

// Detach severs the buffer from its backing block. key is compared
// against the buffer's detach key with SameValue; a mismatch is a
// TypeError. Detaching an already-detached buffer with the correct key
// succeeds as a no-op, matching "idempotent only if the key matches".
func (b *ArrayBuffer) Detach(key any) error {
	if !jsval.SameValue(key, b.detachKey) {
		return errs.ErrDetachKeyMismatch
	}

	b.block = nil
	return nil
}

// Bytes returns a defensive copy of the buffer's current contents, or nil
// if detached. It exists for callers outside this package (snapshot
// export, test assertions) that need the raw bytes without a reference to
// the live backing block: the block itself is exclusively owned and never
// handed out across a package boundary.
func (b *ArrayBuffer) Bytes() []byte {
	if b.IsDetached() {
		return nil
	}
	src := b.block.Bytes()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// CopyBytesIn overwrites len(data) bytes starting at dstOffset. It is the
// mirror of Bytes, used by snapshot.Load to populate a freshly constructed
// buffer without routing through the element-type codec.
func (b *ArrayBuffer) CopyBytesIn(dstOffset int64, data []byte) error {
	if b.IsDetached() {
		return errs.ErrDetached
	}
	n := int64(len(data))
	if dstOffset < 0 || dstOffset+n > b.byteLength {
		return errs.ErrOutOfBounds
	}
	copy(b.block.Bytes()[dstOffset:dstOffset+n], data)
	return nil
}

// Viewer is implemented by any type that holds a non-owning reference to
// an ArrayBuffer, standing in for the [[ViewedArrayBuffer]] internal slot
// a typed array or DataView would carry.
type Viewer interface {
	ViewedArrayBuffer() *ArrayBuffer
}

// IsView reports whether v has a view onto some ArrayBuffer.
func IsView(v any) bool {
	viewer, ok := v.(Viewer)
	return ok && viewer != nil
}

// GetValue reads one element of type t at byteIndex, decoding the raw
// bytes with the endianness named by littleEndian (nil models an omitted
// isLittleEndian flag and defaults to true). order is accepted for API
// symmetry with
// SetValueInBuffer and elemtype.IsNoTearConfiguration; no current code
// path gives it behavior.
func (b *ArrayBuffer) GetValue(byteIndex int64, t elemtype.ElementType, order memorder.Order, littleEndian *bool) (any, error) {
	if b.IsDetached() {
		return nil, errs.ErrDetached
	}

	width := int64(t.Width())
	if byteIndex < 0 || byteIndex+width > b.byteLength {
		return nil, errs.ErrOutOfBounds
	}

	raw := b.block.Bytes()[byteIndex : byteIndex+width]

	return rawBytesToNumeric(t, raw, resolveEndian(littleEndian))
}

// SetValueInBuffer coerces value into t's domain and writes it at
// byteIndex, encoding with the endianness named by littleEndian (nil
// defaults to true). order is accepted for the same reason as in
// GetValue.
func (b *ArrayBuffer) SetValueInBuffer(byteIndex int64, t elemtype.ElementType, value any, order memorder.Order, littleEndian *bool) error {
	if b.IsDetached() {
		return errs.ErrDetached
	}

	width := int64(t.Width())
	if byteIndex < 0 || byteIndex+width > b.byteLength {
		return errs.ErrOutOfBounds
	}

	raw, err := numericToRawBytes(t, value, resolveEndian(littleEndian))
	if err != nil {
		return fmt.Errorf("set value: %w", err)
	}

	copy(b.block.Bytes()[byteIndex:byteIndex+width], raw)
	return nil
}
