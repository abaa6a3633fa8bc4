// Package altset computes the static metadata of an alternative list:
// the storage size and alignment it needs and the tag of each distinct type.
package altset

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrEmpty is returned when a set is built from an empty alternative list.
var ErrEmpty = errors.New("altset: alternative list is empty")

// Set is the metadata of one declared alternative list. It is immutable once built.
type Set struct {
	declared []reflect.Type
	distinct []reflect.Type
	tags     map[reflect.Type]int
	size     uintptr
	align    uintptr
}

// New builds the metadata for types in declaration order.
// Tags start at 1 and follow the first occurrence of each distinct type;
// a repeated type collapses to the tag of its first occurrence.
func New(types ...reflect.Type) (*Set, error) {
	if len(types) == 0 {
		return nil, ErrEmpty
	}

	s := &Set{
		declared: make([]reflect.Type, len(types)),
		distinct: make([]reflect.Type, 0, len(types)),
		tags:     make(map[reflect.Type]int, len(types)),
	}
	copy(s.declared, types)

	for i, t := range types {
		if t == nil {
			return nil, fmt.Errorf("altset: nil type at position %d", i)
		}

		if t.Size() > s.size {
			s.size = t.Size()
		}
		if a := uintptr(t.Align()); a > s.align {
			s.align = a
		}

		if _, ok := s.tags[t]; ok {
			continue
		}
		s.distinct = append(s.distinct, t)
		s.tags[t] = len(s.distinct)
	}

	return s, nil
}

// Tag returns the tag of t, or false if t is not in the set.
func (s *Set) Tag(t reflect.Type) (int, bool) {
	tag, ok := s.tags[t]
	return tag, ok
}

// Type returns the distinct type carrying tag.
func (s *Set) Type(tag int) (reflect.Type, bool) {
	if tag < 1 || tag > len(s.distinct) {
		return nil, false
	}
	return s.distinct[tag-1], true
}

// Len returns the number of distinct alternatives, which is also the highest tag.
func (s *Set) Len() int {
	return len(s.distinct)
}

// Declared returns the alternative list as declared, duplicates included.
func (s *Set) Declared() []reflect.Type {
	out := make([]reflect.Type, len(s.declared))
	copy(out, s.declared)
	return out
}

// Distinct returns the distinct alternatives in tag order.
func (s *Set) Distinct() []reflect.Type {
	out := make([]reflect.Type, len(s.distinct))
	copy(out, s.distinct)
	return out
}

// MaxSize is the size in bytes of the largest alternative.
func (s *Set) MaxSize() uintptr {
	return s.size
}

// MaxAlign is the strictest alignment among the alternatives.
func (s *Set) MaxAlign() uintptr {
	return s.align
}

// Cache memoizes sets by a caller-chosen key, typically the descriptor type
// that declares the alternative list. Safe for concurrent use.
type Cache struct {
	sets sync.Map // reflect.Type -> *Set
}

// Load returns the set stored under key, building it from types on first use.
func (c *Cache) Load(key reflect.Type, types func() []reflect.Type) (*Set, error) {
	if v, ok := c.sets.Load(key); ok {
		return v.(*Set), nil
	}

	s, err := New(types()...)
	if err != nil {
		return nil, err
	}

	actual, _ := c.sets.LoadOrStore(key, s)
	return actual.(*Set), nil
}
