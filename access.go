package variant

import "reflect"

// Set assigns x to v.
//
// If T is already live the value is updated in place (through Assigner when
// implemented) and v never reports Empty in between; an Assigner error is
// returned as a *ConstructionError with v still holding its previous value.
// Otherwise the live alternative is destroyed and x constructed.
// Set panics if T is not an alternative of S.
func Set[T any, S Alternatives](v *Variant[S], x T) error {
	tb := tableFor[S]()
	return setValue(&v.s, mustTag[T](tb), x, func() { v.destroy(tb) })
}

// Emplace destroys the live alternative and constructs T from ctor.
// If ctor fails, v is left empty and the error is a *ConstructionError.
// The returned pointer is valid until the next transition of v.
func Emplace[T any, S Alternatives](v *Variant[S], ctor func() (T, error)) (*T, error) {
	tb := tableFor[S]()
	tag := mustTag[T](tb)

	v.destroy(tb)
	x, err := ctor()
	if err != nil {
		return nil, &ConstructionError{Op: OpConstruct, Type: reflect.TypeOf((*T)(nil)).Elem(), Tag: tag, Err: err}
	}
	return place(&v.s, tag, x), nil
}

// GetPtr returns a pointer to the live T inside v. The pointer is invalidated
// by any later transition of v. It fails with an *AccessError when T is not live.
func GetPtr[T any, S Alternatives](v *Variant[S]) (*T, error) {
	tb := tableFor[S]()
	t := reflect.TypeOf((*T)(nil)).Elem()
	if tag, ok := tb.tagOf(t); !ok || tag != v.s.tag {
		return nil, &AccessError{Requested: t, Active: tb.typeOf(v.s.tag), Tag: v.s.tag}
	}
	return cellAs[T](&v.s), nil
}

// Get returns a copy of the live T. It fails with an *AccessError when T is not live.
func Get[T any, S Alternatives](v *Variant[S]) (T, error) {
	p, err := GetPtr[T](v)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Take moves the live T out of v, leaving v empty. No destructor runs.
// It fails with an *AccessError when T is not live, leaving v unchanged.
func Take[T any, S Alternatives](v *Variant[S]) (T, error) {
	p, err := GetPtr[T](v)
	if err != nil {
		var zero T
		return zero, err
	}
	x := *p
	var zero T
	*p = zero
	v.s = storage{}
	return x, nil
}

// Holds reports whether T is the live alternative of v.
func Holds[T any, S Alternatives](v *Variant[S]) bool {
	tag, ok := tableFor[S]().tagOf(reflect.TypeOf((*T)(nil)).Elem())
	return ok && tag == v.s.tag
}

// Peek returns the live T, if any, without an error path.
func Peek[T any, S Alternatives](v *Variant[S]) Optional[T] {
	p, err := GetPtr[T](v)
	if err != nil {
		return Optional[T]{}
	}
	return Optional[T]{Value: *p, Set: true}
}
