package variant

// storage is the region shared by all alternatives of a Variant.
// The cell holds a *T for the live alternative and nothing else; only the tag
// says how to interpret it. A raw byte region cannot hold pointer-bearing
// values under the Go collector, so each live alternative gets a typed cell.
type storage struct {
	tag  Tag
	cell any
}

// place constructs x as the alternative tagged tag. The storage must be empty.
func place[T any](s *storage, tag Tag, x T) *T {
	if s.tag != Empty {
		panic("variant: construct into occupied storage")
	}
	p := new(T)
	*p = x
	s.cell = p
	s.tag = tag
	return p
}

// cellAs reinterprets the cell as the alternative T. The tag must name T.
func cellAs[T any](s *storage) *T {
	return s.cell.(*T)
}

// detach hands the live cell to the caller without destroying it.
func (s *storage) detach() storage {
	out := *s
	*s = storage{}
	return out
}
