package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/go-ecma/arraybuffer/buffer"
)

// magic tags the start of every snapshot so Load can reject data that
// clearly isn't one of these before touching a codec.
var magic = [2]byte{'A', 'B'}

// headerLen is the fixed-size portion preceding the compressed payload:
// 2-byte magic, 1-byte Kind, 8-byte original length.
const headerLen = 2 + 1 + 8

// Dump exports buf's current contents to a self-describing []byte,
// compressed with the codec named by kind. It fails if buf is detached;
// this is a snapshot-package error, not one of the ECMAScript-facing kinds
// in errs, since Dump/Load sit outside the language-visible surface.
func Dump(buf *buffer.ArrayBuffer, kind Kind) ([]byte, error) {
	if buf.IsDetached() {
		return nil, fmt.Errorf("snapshot: cannot dump a detached array buffer")
	}

	raw := buf.Bytes()

	codec, err := CodecFor(kind)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress with %s: %w", kind, err)
	}

	out := make([]byte, 0, headerLen+len(payload))
	out = append(out, magic[:]...)
	out = append(out, byte(kind))
	out = binary.LittleEndian.AppendUint64(out, uint64(len(raw)))
	out = append(out, payload...)

	return out, nil
}

// DumpCached behaves like Dump, but consults cache first: if buf's raw
// content was already dumped with the same kind, the cached bytes are
// returned without re-running the codec. A fresh Dump result is stored
// back into cache before returning.
func DumpCached(buf *buffer.ArrayBuffer, kind Kind, cache *Cache) ([]byte, error) {
	raw := buf.Bytes()
	if raw != nil {
		if hit, ok := cache.Get(raw, kind); ok {
			return hit, nil
		}
	}

	out, err := Dump(buf, kind)
	if err != nil {
		return nil, err
	}

	cache.Put(raw, kind, out)
	return out, nil
}

// Load parses a []byte produced by Dump, decompresses its payload, and
// allocates a buffer of the recorded original length via ctor, copying the
// decompressed bytes into it.
func Load(data []byte, ctor buffer.Constructor) (*buffer.ArrayBuffer, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("snapshot: data too short to be a valid snapshot")
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return nil, fmt.Errorf("snapshot: bad magic, not a snapshot")
	}

	kind := Kind(data[2])
	origLen := binary.LittleEndian.Uint64(data[3:headerLen])
	payload := data[headerLen:]

	var raw []byte
	var err error
	if kind == KindLZ4 {
		raw, err = lz4DecompressKnownSize(payload, int(origLen))
	} else {
		var codec Codec
		codec, err = CodecFor(kind)
		if err == nil {
			raw, err = codec.Decompress(payload)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress with %s: %w", kind, err)
	}
	if uint64(len(raw)) != origLen {
		return nil, fmt.Errorf("snapshot: decompressed length %d does not match recorded length %d", len(raw), origLen)
	}

	buf, err := ctor.Construct(int64(origLen))
	if err != nil {
		return nil, fmt.Errorf("snapshot: construct destination buffer: %w", err)
	}

	if origLen > 0 {
		if err := buf.CopyBytesIn(0, raw); err != nil {
			return nil, fmt.Errorf("snapshot: copy decompressed bytes into destination: %w", err)
		}
	}

	return buf, nil
}
