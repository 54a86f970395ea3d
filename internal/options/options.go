// Package options provides the small generic functional-option framework
// buffer.NewRealm uses: a caller passes zero or more Option values, each
// of which mutates the target under construction and may veto it with an
// error.
package options

// Option configures a value of type T. Implementations are created with
// New; the apply method is unexported so every Option in the program flows
// through this package's validation-aware shape.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option. The function may reject
// the configuration by returning an error, which aborts the whole Apply
// sequence.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn as an Option for T.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts against target in order, stopping at the first error.
// Options applied before the failing one are not rolled back; callers are
// expected to discard the half-configured target on error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
