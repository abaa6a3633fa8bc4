package variant

import (
	"fmt"
	"reflect"
)

// manager runs the lifecycle of one alternative inside a storage.
// Every method except Type and Tag is a no-op unless the storage tag is the manager's own.
type manager interface {
	Type() reflect.Type
	Tag() Tag
	withTag(tag Tag) manager

	// destroy runs the alternative's destructor and empties the storage.
	destroy(s *storage)
	// copyFrom constructs a copy of src's alternative into the empty dst.
	copyFrom(dst, src *storage) error
	// assignFrom updates dst's live alternative in place from src's; src is drained when move is set.
	assignFrom(dst, src *storage, move bool) error
	// setAny assigns x, which must have the alternative's type. clear empties dst first when needed.
	setAny(dst *storage, x any, clear func()) error
	// value returns the live alternative boxed.
	value(s *storage) any
}

type alternative[T any] struct {
	tag Tag
}

func (a alternative[T]) Type() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (a alternative[T]) Tag() Tag {
	return a.tag
}

func (a alternative[T]) withTag(tag Tag) manager {
	return alternative[T]{tag: tag}
}

func (a alternative[T]) destroy(s *storage) {
	if s.tag != a.tag || s.tag == Empty {
		return
	}
	p := cellAs[T](s)
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
	*s = storage{}
}

func (a alternative[T]) copyFrom(dst, src *storage) error {
	if src.tag != a.tag || src.tag == Empty {
		return nil
	}
	x, err := cloneValue(*cellAs[T](src))
	if err != nil {
		return &ConstructionError{Op: OpCopy, Type: a.Type(), Tag: a.tag, Err: err}
	}
	place(dst, a.tag, x)
	return nil
}

func (a alternative[T]) assignFrom(dst, src *storage, move bool) error {
	if src.tag != a.tag || dst.tag != a.tag || src.tag == Empty {
		return nil
	}
	sp := cellAs[T](src)
	x := *sp
	if !move {
		var err error
		if x, err = cloneValue(x); err != nil {
			return &ConstructionError{Op: OpCopy, Type: a.Type(), Tag: a.tag, Err: err}
		}
	}
	if err := assignInPlace(cellAs[T](dst), x); err != nil {
		return &ConstructionError{Op: OpAssign, Type: a.Type(), Tag: a.tag, Err: err}
	}
	if move {
		var zero T
		*sp = zero
		*src = storage{}
	}
	return nil
}

func (a alternative[T]) setAny(dst *storage, x any, clear func()) error {
	v, ok := x.(T)
	if !ok && (x != nil || !nilable(a.Type())) {
		return &ConstructionError{
			Op:   OpConstruct,
			Type: a.Type(),
			Tag:  a.tag,
			Err:  fmt.Errorf("%w: got %T", ErrTypeMismatch, x),
		}
	}
	return setValue(dst, a.tag, v, clear)
}

func (a alternative[T]) value(s *storage) any {
	if s.tag != a.tag || s.tag == Empty {
		return nil
	}
	return *cellAs[T](s)
}

// setValue is value assignment: in place when tag is already live, otherwise
// clear then construct.
func setValue[T any](s *storage, tag Tag, x T, clear func()) error {
	if s.tag == tag {
		if err := assignInPlace(cellAs[T](s), x); err != nil {
			return &ConstructionError{Op: OpAssign, Type: reflect.TypeOf((*T)(nil)).Elem(), Tag: tag, Err: err}
		}
		return nil
	}
	clear()
	place(s, tag, x)
	return nil
}

func cloneValue[T any](x T) (T, error) {
	if c, ok := any(&x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x, nil
}

func assignInPlace[T any](p *T, x T) error {
	if a, ok := any(p).(Assigner[T]); ok {
		return a.Assign(x)
	}
	*p = x
	return nil
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
