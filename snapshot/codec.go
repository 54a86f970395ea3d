// Package snapshot exports an ArrayBuffer's current bytes to a
// self-describing, optionally compressed []byte and reconstructs a buffer
// from one, for debugging, fixtures, and out-of-process persistence.
//
// This is deliberately not the excluded "host-transferable buffer across
// agents": a snapshot is a one-shot copy of the source buffer's bytes at
// the moment Dump is called, and never detaches or otherwise affects the
// source.
package snapshot

import "fmt"

// Compressor compresses a byte slice. The input is never modified. The
// returned slice is owned by the caller; it may be the input itself
// (NoOpCodec returns its input unchanged).
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice produced by a Compressor using
// the same algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// Kind identifies which Codec a snapshot was compressed with. It is
// serialized into the snapshot's tag so Load can pick the matching codec
// without the caller needing to remember which one Dump used.
type Kind uint8

const (
	// KindNone stores bytes uncompressed.
	KindNone Kind = iota
	// KindZstd compresses with the pure-Go klauspost/compress/zstd
	// implementation.
	KindZstd
	// KindS2 compresses with klauspost/compress/s2, a fast
	// Snappy-compatible codec tuned for high throughput over ratio.
	KindS2
	// KindLZ4 compresses with pierrec/lz4/v4.
	KindLZ4
)

// String returns the Kind's name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindZstd:
		return "zstd"
	case KindS2:
		return "s2"
	case KindLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var builtinCodecs = map[Kind]Codec{
	KindNone: NoOpCodec{},
	KindZstd: ZstdCodec{},
	KindS2:   S2Codec{},
	KindLZ4:  LZ4Codec{},
}

// CodecFor returns the built-in Codec for kind.
func CodecFor(kind Kind) (Codec, error) {
	c, ok := builtinCodecs[kind]
	if !ok {
		return nil, fmt.Errorf("snapshot: unsupported codec kind %s", kind)
	}
	return c, nil
}
