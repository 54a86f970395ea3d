// Package pool provides pooled scratch byte buffers for the snapshot
// package's compression codecs. It is never used for ArrayBuffer backing
// storage: an ArrayBuffer's block must be exclusively owned for its whole
// lifetime, which a pooled, reused buffer cannot guarantee.
package pool

import "sync"

// Pool sizing. Snapshots of typical fixture buffers compress into a few
// KiB; the large pool exists for multi-megabyte payloads so they don't
// pin oversized slices inside the common pool.
const (
	SnapshotBufferDefaultSize  = 1024 * 16       // 16KiB
	SnapshotBufferMaxThreshold = 1024 * 128      // 128KiB
	LargeBufferDefaultSize     = 1024 * 1024     // 1MiB
	LargeBufferMaxThreshold    = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a reusable byte slice with explicit capacity management.
// Resetting to zero length is what lets a pooled buffer be handed to the
// next caller without leaking the previous caller's bytes through
// length-based reads.
type ByteBuffer struct {
	// B is the underlying byte slice, exposed so codec code can slice
	// into spare capacity directly (e.g. as s2.Encode's destination).
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its allocation.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the buffer's current length.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow in SnapshotBufferDefaultSize steps;
// once past four such steps, growth switches to 25% of current capacity
// so large scratch buffers don't thrash the allocator.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := SnapshotBufferDefaultSize
	if cap(bb.B) > 4*SnapshotBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool hands out ByteBuffers backed by sync.Pool. Buffers whose
// capacity has grown past maxThreshold are dropped on Put instead of being
// pooled, so one oversized snapshot doesn't permanently inflate the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers carry defaultSize
// capacity. maxThreshold <= 0 disables the oversize drop.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool, resetting it first. Oversized and
// nil buffers are discarded.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	snapshotDefaultPool = NewByteBufferPool(SnapshotBufferDefaultSize, SnapshotBufferMaxThreshold)
	largeDefaultPool    = NewByteBufferPool(LargeBufferDefaultSize, LargeBufferMaxThreshold)
)

// GetSnapshotBuffer retrieves a ByteBuffer from the default snapshot pool,
// sized for a typical compressed ArrayBuffer export.
func GetSnapshotBuffer() *ByteBuffer {
	return snapshotDefaultPool.Get()
}

// PutSnapshotBuffer returns a ByteBuffer to the default snapshot pool.
func PutSnapshotBuffer(bb *ByteBuffer) {
	snapshotDefaultPool.Put(bb)
}

// GetLargeBuffer retrieves a ByteBuffer from the pool reserved for
// multi-megabyte snapshot payloads.
func GetLargeBuffer() *ByteBuffer {
	return largeDefaultPool.Get()
}

// PutLargeBuffer returns a ByteBuffer to the large-payload pool.
func PutLargeBuffer(bb *ByteBuffer) {
	largeDefaultPool.Put(bb)
}
