package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodecs() map[Kind]Codec {
	return map[Kind]Codec{
		KindNone: NoOpCodec{},
		KindZstd: ZstdCodec{},
		KindS2:   S2Codec{},
		KindLZ4:  LZ4Codec{},
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 64)

	for kind, codec := range allCodecs() {
		t.Run(kind.String(), func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for kind, codec := range allCodecs() {
		t.Run(kind.String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, decompressed)
		})
	}
}

func TestCodecFor_UnknownKind(t *testing.T) {
	_, err := CodecFor(Kind(99))
	assert.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "zstd", KindZstd.String())
	assert.Equal(t, "s2", KindS2.String())
	assert.Equal(t, "lz4", KindLZ4.String())
	assert.Contains(t, Kind(200).String(), "Kind(200)")
}
