package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneArrayBuffer_CopiesBytes(t *testing.T) {
	realm := newTestRealm(t)
	src, err := New(8, 0)
	require.NoError(t, err)
	for i := int64(0); i < 8; i++ {
		require.NoError(t, src.SetValueInBuffer(i, 1, float64(i+1), 0, nil))
	}

	clone, err := CloneArrayBuffer(src, 2, 4, realm.Default)
	require.NoError(t, err)
	assert.Equal(t, int64(4), clone.ByteLength())
	for i := int64(0); i < 4; i++ {
		v, err := clone.GetValue(i, 1, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, float64(i+3), v)
	}
}

func TestCloneArrayBuffer_DetachedSourceIsTypeError(t *testing.T) {
	realm := newTestRealm(t)
	src, err := New(8, 0)
	require.NoError(t, err)
	require.NoError(t, src.Detach(nil))

	_, err = CloneArrayBuffer(src, 0, 4, realm.Default)
	require.Error(t, err)
	assert.ErrorContains(t, err, "TypeError")
}

// TestCloneArrayBuffer_CtorDetachesSource mirrors
// TestSlice_SpeciesConstructorDetachesSource: cloneCtor.Construct is
// caller-reachable code that may detach src as a side effect, and
// CloneArrayBuffer must catch that after Construct returns rather than
// copying from (or panicking on) a now-absent block.
func TestCloneArrayBuffer_CtorDetachesSource(t *testing.T) {
	realm := newTestRealm(t)
	src, err := New(8, 0)
	require.NoError(t, err)

	evil := &detachingConstructor{realm: realm, target: src}

	_, err = CloneArrayBuffer(src, 0, 4, evil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "TypeError")
}
