package variant

// Tag identifies which alternative of a Variant is live.
// Tags 1..N follow the declaration order of the distinct alternatives.
type Tag int

// Empty is the tag of a Variant holding no alternative.
const Empty Tag = 0

// Hooks are looked up in the method set of *T, so pointer and value receivers both work.

// Cloner lets an alternative control how it is copied when a Variant is copied.
// Without it, copying is a Go value copy. A returned error aborts the copy.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is run on the live alternative when a Variant destroys it: on
// Reset and when another alternative replaces it. It runs at most once per
// constructed value and never for moved-out values. Overwriting the live
// alternative with a value of the same type does not destroy it; implement
// Assigner to release old state there.
type Destroyer interface {
	Destroy()
}

// Assigner lets an alternative update itself in place when a Variant is
// assigned a value of the same alternative. Without it, plain assignment is
// used and no Destroyer runs, since the new value may share state with the old.
type Assigner[T any] interface {
	// Assign replaces the receiver's state with src. On error the receiver must stay valid.
	Assign(src T) error
}

// Optional distinguishes "not held" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}

// Layout describes the shared storage an alternative list requires.
type Layout struct {
	Size         uintptr // Size of the largest alternative
	Align        uintptr // Strictest alignment among the alternatives
	Alternatives int     // Distinct alternatives (highest tag)
	Declared     int     // Alternatives as declared, duplicates included
}
