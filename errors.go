package variant

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors.
var (
	// ErrBadAlternativeAccess matches every *AccessError.
	ErrBadAlternativeAccess = errors.New("variant: bad alternative access")

	// ErrNotAlternative is the panic value (wrapped) when a type outside the
	// declared alternatives is constructed or assigned.
	ErrNotAlternative = errors.New("variant: type is not a declared alternative")

	// ErrUnknownTag is returned by SetTagged for a tag outside 1..N.
	ErrUnknownTag = errors.New("variant: unknown alternative tag")

	// ErrTypeMismatch is returned by SetTagged when the value does not have the tag's type.
	ErrTypeMismatch = errors.New("variant: value does not match alternative type")
)

// Operations reported by ConstructionError.
const (
	OpConstruct = "construct"
	OpCopy      = "copy"
	OpAssign    = "assign"
)

// AccessError is returned by typed access when the requested alternative is not live.
type AccessError struct {
	Requested reflect.Type // Type asked for
	Active    reflect.Type // Live alternative; nil when the variant is empty
	Tag       Tag          // Tag at the time of access
}

// Error describes the requested and the live alternative.
func (e *AccessError) Error() string {
	if e.Tag == Empty {
		return fmt.Sprintf("variant: bad alternative access: requested %s, variant is empty", e.Requested)
	}
	return fmt.Sprintf("variant: bad alternative access: requested %s, active %s (tag %d)", e.Requested, e.Active, e.Tag)
}

// Is reports whether target is ErrBadAlternativeAccess.
func (e *AccessError) Is(target error) bool {
	return target == ErrBadAlternativeAccess
}

// ConstructionError wraps the failure of an alternative's constructor, clone or
// in-place assignment.
type ConstructionError struct {
	Op   string       // OpConstruct, OpCopy or OpAssign
	Type reflect.Type // Alternative being built
	Tag  Tag
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("variant: %s %s (tag %d): %v", e.Op, e.Type, e.Tag, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
