package buffer

import (
	"github.com/go-ecma/arraybuffer/errs"
	"github.com/go-ecma/arraybuffer/internal/block"
)

// CloneArrayBuffer allocates a new buffer through cloneCtor and copies
// srcLength bytes starting at srcOffset from src into it.
//
// cloneCtor.Construct is caller-reachable code: like Slice's species
// constructor call, it may run arbitrary side effects, including
// detaching src. The detach check is therefore made only after Construct
// returns, not before, so such a constructor is caught here instead of
// panicking in block.Copy's disjoint-blocks precondition.
//
// A detached src is a TypeError, consistent with every other
// detach-related failure in this package and with ECMAScript's
// CloneArrayBuffer.
func CloneArrayBuffer(src *ArrayBuffer, srcOffset, srcLength int64, cloneCtor Constructor) (*ArrayBuffer, error) {
	dst, err := cloneCtor.Construct(srcLength)
	if err != nil {
		return nil, err
	}

	if src.IsDetached() {
		return nil, errs.ErrDetached
	}

	if srcLength > 0 {
		block.Copy(dst.block, 0, src.block, srcOffset, srcLength)
	}

	return dst, nil
}
