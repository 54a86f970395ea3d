package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTypeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"detached wraps TypeError", ErrDetached, true},
		{"detach key mismatch wraps TypeError", ErrDetachKeyMismatch, true},
		{"allocation too large wraps RangeError, not TypeError", ErrAllocationTooLarge, false},
		{"wrapped detached still classifies", fmt.Errorf("slice: %w", ErrDetached), true},
		{"unrelated error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTypeError(tt.err))
		})
	}
}

func TestIsRangeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"allocation too large wraps RangeError", ErrAllocationTooLarge, true},
		{"invalid index wraps RangeError", ErrInvalidIndex, true},
		{"detached wraps TypeError, not RangeError", ErrDetached, false},
		{"wrapped range error still classifies", fmt.Errorf("allocate: %w", ErrAllocationTooLarge), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRangeError(tt.err))
		})
	}
}
