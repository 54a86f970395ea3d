// Package hash provides the fast, non-cryptographic fingerprinting used by
// snapshot.Cache to key compressed ArrayBuffer exports by content.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 fingerprint of the given raw content. Two calls
// with identical bytes always produce the same ID; it is not
// collision-resistant against an adversarial input and must never be used
// for anything security-sensitive.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// IDBytes is like ID but takes a byte slice, avoiding a string conversion
// when the caller already holds raw bytes (the common case for
// snapshot.Cache, which hashes an ArrayBuffer's uncompressed contents).
func IDBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
