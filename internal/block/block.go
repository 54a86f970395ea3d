// Package block implements the raw byte storage an ArrayBuffer owns: a
// zero-initialized, exclusively-owned byte slice, allocated through
// Allocate and copied between disjoint instances through Copy.
//
// A Block is never pooled or shared: an ArrayBuffer's block must remain
// valid for the buffer's entire attached lifetime, unlike the scratch
// buffers internal/pool hands out for one-shot compression work.
package block

import (
	"fmt"

	"github.com/go-ecma/arraybuffer/errs"
)

// DefaultMaxByteLength is the largest allocation Allocate permits unless a
// caller raises the ceiling through a buffer.Realm. The 2^33 value is an
// arbitrary guard against runaway allocations, not a semantic limit.
const DefaultMaxByteLength = 1 << 33

// Block is a contiguous, mutable sequence of bytes exclusively owned by
// one ArrayBuffer.
type Block struct {
	data []byte
}

// Len returns the block's length in bytes.
func (b *Block) Len() int64 {
	if b == nil {
		return 0
	}
	return int64(len(b.data))
}

// Bytes returns the block's backing slice. Callers must not retain it
// beyond the owning ArrayBuffer's lifetime and must not grow or shrink it;
// only in-place mutation through Copy or direct indexing is permitted.
func (b *Block) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Allocate creates a fresh, zero-initialized Block of exactly byteLength
// bytes. byteLength is assumed to already have passed jsval.ToIndex
// validation (non-negative, < 2^53); Allocate's own RangeError guards only
// the maxByteLength ceiling, which is almost always far tighter.
func Allocate(byteLength int64, maxByteLength int64) (*Block, error) {
	if maxByteLength <= 0 {
		maxByteLength = DefaultMaxByteLength
	}

	if byteLength > maxByteLength {
		return nil, fmt.Errorf("%w: %d exceeds the maximum of %d", errs.ErrAllocationTooLarge, byteLength, maxByteLength)
	}

	// make zero-fills, so no explicit zero-init pass is needed.
	return &Block{data: make([]byte, byteLength)}, nil
}

// Copy implements CopyDataBlockBytes: copies count bytes from src,
// starting at srcIndex, into dst, starting at dstIndex. src and dst must
// be distinct blocks; violating that, or either range exceeding its
// block's length, is a programming error in this module's own callers and
// panics rather than returning an error.
func Copy(dst *Block, dstIndex int64, src *Block, srcIndex int64, count int64) {
	if dst == src {
		panic("block: Copy requires distinct source and destination blocks")
	}
	if srcIndex < 0 || srcIndex+count > src.Len() {
		panic("block: Copy source range out of bounds")
	}
	if dstIndex < 0 || dstIndex+count > dst.Len() {
		panic("block: Copy destination range out of bounds")
	}

	copy(dst.data[dstIndex:dstIndex+count], src.data[srcIndex:srcIndex+count])
}
