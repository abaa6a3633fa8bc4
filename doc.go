// Package variant provides a type-safe tagged union: a value that holds at most one
// value of one of a fixed list of alternative types and tracks which one is live.
//
// Quick Start:
//
//	type Number = variant.Of2[int, float64]
//
//	v := variant.New[Number](2)           // v.Index() == 1
//	_ = variant.Set(v, 3.5)               // int destroyed, float64 constructed; v.Index() == 2
//	f, err := variant.Get[float64](v)     // 3.5, nil
//	_, err = variant.Get[int](v)          // errors.Is(err, variant.ErrBadAlternativeAccess)
//
//	w := v.Move()                         // w holds 3.5, v is empty
//
// Tags are 1..N in declaration order of the distinct alternatives; 0 (Empty) means
// nothing is live. Assigning the live alternative again updates it in place.
// A failed construction after the old alternative was destroyed leaves the
// Variant empty.
//
// Alternatives may implement Cloner, Destroyer and Assigner to take part in
// copies, destruction and in-place assignment.
//
// See example_test.go for detailed usage.
package variant
