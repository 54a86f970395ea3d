package snapshot

import (
	"errors"
	"sync"

	"github.com/go-ecma/arraybuffer/internal/pool"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// scratchBuffer checks out a pooled destination buffer sized to hold at
// least n bytes, picking the snapshot-sized pool for ordinary exports and
// the large pool once n crosses its threshold. The returned
// release func must be called once the caller is done reading the
// buffer's contents (after copying them out, since the buffer is reused).
func scratchBuffer(n int) (buf *pool.ByteBuffer, release func()) {
	if n > pool.SnapshotBufferMaxThreshold {
		buf = pool.GetLargeBuffer()
		release = func() { pool.PutLargeBuffer(buf) }
	} else {
		buf = pool.GetSnapshotBuffer()
		release = func() { pool.PutSnapshotBuffer(buf) }
	}
	buf.Grow(n)
	return buf, release
}

// NoOpCodec bypasses compression entirely, returning its input unchanged.
// It is the default codec and the baseline every other Kind is measured
// against.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// Compress returns data as-is.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data as-is.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }

// zstdEncoderPool and zstdDecoderPool reuse klauspost/compress/zstd's
// encoder/decoder across calls; the library is explicitly designed for
// this and allocates heavily if a fresh one is built per call.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic("snapshot: failed to create zstd encoder: " + err.Error())
		}
		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic("snapshot: failed to create zstd decoder: " + err.Error())
		}
		return dec
	},
}

// ZstdCodec compresses with the pure-Go klauspost/compress/zstd
// implementation.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// Compress zstd-compresses data.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

// Decompress reverses Compress.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)
	return dec.DecodeAll(data, nil)
}

// S2Codec compresses with klauspost/compress/s2, a Snappy-compatible codec
// tuned for throughput over ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress s2-compresses data, using a pooled scratch buffer for the
// destination so repeated Dump calls don't allocate a fresh one each time.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := s2.MaxEncodedLen(len(data))
	scratch, release := scratchBuffer(bound)
	defer release()

	encoded := s2.Encode(scratch.Bytes()[:bound], data)

	out := make([]byte, len(encoded))
	copy(out, encoded)
	return out, nil
}

// Decompress reverses Compress.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Decode(nil, data)
}

// lz4CompressorPool reuses lz4.Compressor instances, which carry internal
// state worth keeping warm across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Codec compresses with pierrec/lz4/v4.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// Compress lz4-compresses data using a single block frame, via a pooled
// scratch destination buffer (the same internal/pool the S2 codec uses).
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := lz4.CompressBlockBound(len(data))
	scratch, release := scratchBuffer(bound)
	defer release()
	dst := scratch.Bytes()[:bound]

	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, dst[:n])
	return out, nil
}

// Decompress reverses Compress. LZ4's block format does not record the
// decompressed size, so Decompress grows its destination adaptively; Load
// instead calls lz4DecompressKnownSize with the original length stored in
// the snapshot tag.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	return lz4DecompressKnownSize(data, 0)
}

// lz4DecompressKnownSize decompresses data into a buffer sized by
// origLen when non-zero, falling back to an adaptive doubling strategy
// when the size isn't known up front.
func lz4DecompressKnownSize(data []byte, origLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if origLen > 0 {
		dst := make([]byte, origLen)
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			return nil, err
		}
		return dst[:n], nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024
	for bufSize <= maxSize {
		dst := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}
			return nil, err
		}
		return dst[:n], nil
	}
	return nil, lz4.ErrInvalidSourceShortBuffer
}
