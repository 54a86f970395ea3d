// Package arraybuffer is the top-level convenience facade over buffer
// and elemtype: the entry points most callers need without
// reaching into the internal packages directly.
//
// # Basic usage
//
//	import "github.com/go-ecma/arraybuffer"
//
//	buf, err := arraybuffer.New(16)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer buf.Detach(nil)
//
// For a buffer a host can later detach with a caller-chosen key:
//
//	buf, err := arraybuffer.NewWithDetachKey(16, myKey)
package arraybuffer

import (
	"github.com/go-ecma/arraybuffer/buffer"
	"github.com/go-ecma/arraybuffer/jsval"
)

// New allocates an ArrayBuffer using the package-default realm (2^33
// byte allocation ceiling, no detach key). byteLength is coerced through
// jsval.ToIndex, the same ToIndex step the ECMAScript constructor
// performs: a non-integer length is truncated, and a negative length or
// one above 2^53-1 surfaces as a RangeError here rather than panicking
// deeper in the allocator.
func New(byteLength any) (*buffer.ArrayBuffer, error) {
	n, err := jsval.ToIndex(byteLength)
	if err != nil {
		return nil, err
	}
	return buffer.New(n, 0)
}

// NewWithDetachKey is like New but records key as the value Detach must
// later be called with.
func NewWithDetachKey(byteLength any, key any) (*buffer.ArrayBuffer, error) {
	n, err := jsval.ToIndex(byteLength)
	if err != nil {
		return nil, err
	}
	return buffer.NewWithDetachKey(n, 0, key)
}

// IsView reports whether v holds a non-owning reference onto some
// ArrayBuffer (implements buffer.Viewer).
func IsView(v any) bool {
	return buffer.IsView(v)
}

// NewRealm builds a buffer.Realm with the package defaults, then applies
// opts. Most callers embedding more than one independent ArrayBuffer
// ecosystem (e.g. a scripting engine hosting multiple realms) will want
// their own *buffer.Realm rather than the implicit one New/
// NewWithDetachKey use.
func NewRealm(opts ...buffer.RealmOption) (*buffer.Realm, error) {
	return buffer.NewRealm(opts...)
}
