package variant

import (
	"fmt"
	"reflect"

	"github.com/Azhovan/variant/internal/typename"
)

// Variant holds at most one value of one of the alternatives declared by S.
// The zero value is empty and ready to use.
//
// A Variant must not be copied by assignment; use Clone or Move. It is not
// safe for concurrent use.
type Variant[S Alternatives] struct {
	_ noCopy
	s storage
}

// New returns a Variant holding x. It panics if T is not an alternative of S.
func New[S Alternatives, T any](x T) *Variant[S] {
	v := &Variant[S]{}
	place(&v.s, mustTag[T](tableFor[S]()), x)
	return v
}

// NewFunc returns a Variant holding the value built by ctor.
// If ctor fails no Variant is returned and the error is a *ConstructionError.
func NewFunc[S Alternatives, T any](ctor func() (T, error)) (*Variant[S], error) {
	v := &Variant[S]{}
	if _, err := Emplace(v, ctor); err != nil {
		return nil, err
	}
	return v, nil
}

// Index returns the tag of the live alternative, or Empty.
func (v *Variant[S]) Index() Tag {
	return v.s.tag
}

// IsEmpty reports whether no alternative is live.
func (v *Variant[S]) IsEmpty() bool {
	return v.s.tag == Empty
}

// Type returns the type of the live alternative, or nil when empty.
func (v *Variant[S]) Type() reflect.Type {
	return tableFor[S]().typeOf(v.s.tag)
}

// Value returns the live alternative boxed in an interface.
func (v *Variant[S]) Value() (any, bool) {
	m, ok := tableFor[S]().manager(v.s.tag)
	if !ok {
		return nil, false
	}
	return m.value(&v.s), true
}

// Types returns the distinct alternatives of S in tag order.
func (v *Variant[S]) Types() []reflect.Type {
	return tableFor[S]().set.Distinct()
}

// Layout returns the storage layout of S.
func (v *Variant[S]) Layout() Layout {
	return LayoutOf[S]()
}

// Reset destroys the live alternative, leaving v empty. Resetting an empty
// Variant is a no-op, so Reset may be called any number of times.
func (v *Variant[S]) Reset() {
	v.destroy(tableFor[S]())
}

// destroy sweeps every manager; only the one owning the live tag acts.
func (v *Variant[S]) destroy(tb *table) {
	for _, m := range tb.managers {
		m.destroy(&v.s)
	}
}

// Clone returns an independent copy of v, using Cloner where the live
// alternative implements it. Cloning an empty Variant yields an empty one.
func (v *Variant[S]) Clone() (*Variant[S], error) {
	out := &Variant[S]{}
	for _, m := range tableFor[S]().managers {
		if err := m.copyFrom(&out.s, &v.s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Move returns a Variant owning v's live alternative and leaves v empty.
// No destructor runs.
func (v *Variant[S]) Move() *Variant[S] {
	return &Variant[S]{s: v.s.detach()}
}

// CopyFrom makes v a copy of src.
//
// When both hold the same alternative, v's value is updated in place and v is
// never observed empty. Otherwise v's alternative is destroyed first; if copying
// then fails, v is left empty and the *ConstructionError is returned.
func (v *Variant[S]) CopyFrom(src *Variant[S]) error {
	if v == src {
		return nil
	}

	tb := tableFor[S]()
	if src.s.tag != Empty && src.s.tag == v.s.tag {
		m, _ := tb.manager(v.s.tag)
		return m.assignFrom(&v.s, &src.s, false)
	}

	v.destroy(tb)
	for _, m := range tb.managers {
		if err := m.copyFrom(&v.s, &src.s); err != nil {
			return err
		}
	}
	return nil
}

// MoveFrom transfers src's alternative into v and leaves src empty.
//
// When both hold the same alternative, v's value is updated in place. If that
// in-place update fails, both Variants keep their values and the error is returned.
func (v *Variant[S]) MoveFrom(src *Variant[S]) error {
	if v == src {
		return nil
	}

	tb := tableFor[S]()
	if src.s.tag != Empty && src.s.tag == v.s.tag {
		m, _ := tb.manager(v.s.tag)
		return m.assignFrom(&v.s, &src.s, true)
	}

	v.destroy(tb)
	v.s = src.s.detach()
	return nil
}

// SetTagged assigns x as the alternative tagged tag. It is the untyped form of
// Set for callers that resolve the alternative at run time, such as decoders.
func (v *Variant[S]) SetTagged(tag Tag, x any) error {
	tb := tableFor[S]()
	m, ok := tb.manager(tag)
	if !ok {
		return fmt.Errorf("%w: %d (have 1..%d)", ErrUnknownTag, tag, len(tb.managers))
	}
	return m.setAny(&v.s, x, func() { v.destroy(tb) })
}

// String formats the live alternative as "variant(<type>: <value>)".
func (v *Variant[S]) String() string {
	x, ok := v.Value()
	if !ok {
		return "variant(empty)"
	}
	return fmt.Sprintf("variant(%s: %v)", typename.Of(v.Type()), x)
}

// LayoutOf returns the storage layout of the alternative list S.
func LayoutOf[S Alternatives]() Layout {
	return tableFor[S]().layout()
}

// TagOf returns the tag of T within S, or false if T is not an alternative.
func TagOf[T any, S Alternatives]() (Tag, bool) {
	return tableFor[S]().tagOf(reflect.TypeOf((*T)(nil)).Elem())
}

// noCopy flags accidental copies of a Variant under go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
