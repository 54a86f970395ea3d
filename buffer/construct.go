package buffer

import (
	"github.com/go-ecma/arraybuffer/errs"
	"github.com/go-ecma/arraybuffer/internal/block"
	"github.com/go-ecma/arraybuffer/internal/options"
	"github.com/go-ecma/arraybuffer/jsval"
)

const defaultMaxByteLength = block.DefaultMaxByteLength

// Prototype stands in for an ECMAScript object's [[Prototype]] internal
// slot, scoped down to the one piece of it this module cares about:
// identifying which realm's %ArrayBuffer.prototype% a constructed buffer
// belongs to. A nil *Prototype models "no explicit prototype", resolved
// by falling back to the intrinsic %ArrayBuffer.prototype%.
type Prototype struct {
	Name string
}

// intrinsicPrototype is the %ArrayBuffer.prototype% intrinsic that
// DefaultConstructor assigns when no constructor names a prototype.
var intrinsicPrototype = &Prototype{Name: "ArrayBuffer"}

// Constructor models a constructor function: %ArrayBuffer% itself, or a
// subclass a caller defines. Construct performs the actual allocation;
// Prototype reports which prototype a Construct call's result should be
// associated with (nil falls back to the intrinsic prototype, modeling "the
// constructor's prototype property is not an object").
type Constructor interface {
	Prototype() *Prototype
	Construct(byteLength int64) (*ArrayBuffer, error)
}

// NewTarget models the constructor actually invoked via `new`, as
// distinct from the function whose body is executing (relevant once a
// subclass constructor calls super()). A nil NewTarget models "called
// without new", which Construct must reject.
type NewTarget struct {
	Ctor Constructor
}

// UndefinedNewTarget returns the NewTarget value modeling a constructor
// invoked without `new`.
func UndefinedNewTarget() *NewTarget { return nil }

// DefaultConstructor is the module's intrinsic %ArrayBuffer% constructor:
// Construct allocates directly against a Realm with no subclassing
// behavior.
type DefaultConstructor struct {
	realm *Realm
}

// Prototype returns nil: the default constructor carries no named
// subclass prototype, so Construct falls back to the intrinsic prototype.
func (c *DefaultConstructor) Prototype() *Prototype { return nil }

// Construct allocates a new ArrayBuffer of byteLength bytes against the
// constructor's realm.
func (c *DefaultConstructor) Construct(byteLength int64) (*ArrayBuffer, error) {
	buf, err := New(byteLength, c.realm.MaxByteLength)
	if err != nil {
		return nil, err
	}
	buf.prototype = resolvePrototype(c, intrinsicPrototype)
	return buf, nil
}

// Realm bundles the configurable defaults Construct consults: the
// intrinsic default constructor and the maximum allocation size.
type Realm struct {
	Default       Constructor
	MaxByteLength int64
}

// RealmOption configures a Realm at construction time.
type RealmOption = options.Option[*Realm]

// WithMaxByteLength overrides the realm's maximum allocation size. A
// value <= 0 is rejected: the cap may be raised, never removed.
func WithMaxByteLength(n int64) RealmOption {
	return options.New(func(r *Realm) error {
		if n <= 0 {
			return errs.ErrAllocationTooLarge
		}
		r.MaxByteLength = n
		return nil
	})
}

// NewRealm builds a Realm with block.DefaultMaxByteLength and the
// intrinsic default constructor, then applies opts in order.
func NewRealm(opts ...RealmOption) (*Realm, error) {
	r := &Realm{MaxByteLength: defaultMaxByteLength}
	r.Default = &DefaultConstructor{realm: r}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Construct implements the constructor-dispatch algorithm: newTarget must
// be non-nil (a TypeError otherwise, modeling "called without new"); the
// single constructor argument arg is coerced through jsval.ToIndex before
// any allocation happens, matching the ECMAScript constructor's ToIndex
// step, so a negative or otherwise out-of-range length surfaces as a RangeError
// here rather than reaching internal/block.Allocate's already-validated
// fast path. The resulting buffer's prototype is the one newTarget.Ctor's
// Construct assigns; DefaultConstructor falls back to the intrinsic
// prototype when it names none.
func Construct(newTarget *NewTarget, arg any, realm *Realm) (*ArrayBuffer, error) {
	if newTarget == nil {
		return nil, errs.ErrUndefinedNewTarget
	}

	byteLength, err := jsval.ToIndex(arg)
	if err != nil {
		return nil, err
	}

	ctor := newTarget.Ctor
	if ctor == nil {
		ctor = realm.Default
	}

	return ctor.Construct(byteLength)
}

// resolvePrototype falls back to realmDefault when ctor names none, modeling "the constructor's prototype slot is not an
// object".
func resolvePrototype(ctor Constructor, realmDefault *Prototype) *Prototype {
	if ctor == nil {
		return realmDefault
	}
	if p := ctor.Prototype(); p != nil {
		return p
	}
	return realmDefault
}
