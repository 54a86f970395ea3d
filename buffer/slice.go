package buffer

import (
	"github.com/go-ecma/arraybuffer/errs"
	"github.com/go-ecma/arraybuffer/internal/block"
	"github.com/go-ecma/arraybuffer/jsval"
)

// Slice implements the ArrayBuffer.prototype.slice algorithm: resolve
// start/end to a byte range via ToIntegerOrInfinity's relative-index
// rules, construct the result through species dispatch, validate it, and
// copy the selected bytes across. end == nil models "end is undefined".
//
// Because constructing the result buffer can run caller-supplied code
// (the species constructor), this re-checks the receiver for detachment
// after that call returns and before copying any bytes (a species
// constructor is free to detach its source buffer as a side effect).
func (b *ArrayBuffer) Slice(start, end any, realm *Realm, species SpeciesLookup) (*ArrayBuffer, error) {
	if b.IsDetached() {
		return nil, errs.ErrDetached
	}

	length := b.byteLength

	first, err := resolveRelativeIndex(start, length)
	if err != nil {
		return nil, err
	}

	var final int64
	if end == nil {
		final = length
	} else {
		final, err = resolveRelativeIndex(end, length)
		if err != nil {
			return nil, err
		}
	}

	newLen := final - first
	if newLen < 0 {
		newLen = 0
	}

	ctor, err := lookupSpecies(b, realm.Default, species)
	if err != nil {
		return nil, err
	}

	result, err := ctor.Construct(newLen)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errs.ErrSpeciesResultInvalid
	}
	if result.IsDetached() {
		return nil, errs.ErrSpeciesResultInvalid
	}
	if result == b {
		return nil, errs.ErrSpeciesResultInvalid
	}
	if result.byteLength < newLen {
		return nil, errs.ErrSpeciesResultInvalid
	}

	// The species constructor just ran caller code; re-check the
	// receiver before touching its block.
	if b.IsDetached() {
		return nil, errs.ErrDetached
	}

	currentLen := b.byteLength
	if first < currentLen {
		count := newLen
		if remaining := currentLen - first; remaining < count {
			count = remaining
		}
		block.Copy(result.block, 0, b.block, first, count)
	}

	return result, nil
}

// resolveRelativeIndex implements the shared start/end clamping rule used
// twice by Slice: -Infinity and negative finite values measure from the
// end (clamped to 0); +Infinity and values past length clamp to length.
func resolveRelativeIndex(v any, length int64) (int64, error) {
	ii, err := jsval.ToIntegerOrInfinity(v)
	if err != nil {
		return 0, err
	}

	switch ii.Kind {
	case jsval.NegInfinity:
		return 0, nil
	case jsval.PosInfinity:
		return length, nil
	}

	if ii.Int < 0 {
		r := length + ii.Int
		if r < 0 {
			return 0, nil
		}
		return r, nil
	}

	if ii.Int > length {
		return length, nil
	}
	return ii.Int, nil
}
