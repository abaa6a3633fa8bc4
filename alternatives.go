package variant

// Alternatives is the fixed alternative list of a Variant.
// It is implemented only by Of1 through Of6.
type Alternatives interface {
	candidates() []manager
}

// Of1 declares a single alternative.
type Of1[A any] struct{}

// Of2 declares two alternatives.
type Of2[A, B any] struct{}

// Of3 declares three alternatives.
type Of3[A, B, C any] struct{}

// Of4 declares four alternatives.
type Of4[A, B, C, D any] struct{}

// Of5 declares five alternatives.
type Of5[A, B, C, D, E any] struct{}

// Of6 declares six alternatives.
type Of6[A, B, C, D, E, F any] struct{}

func (Of1[A]) candidates() []manager {
	return []manager{alternative[A]{}}
}

func (Of2[A, B]) candidates() []manager {
	return []manager{alternative[A]{}, alternative[B]{}}
}

func (Of3[A, B, C]) candidates() []manager {
	return []manager{alternative[A]{}, alternative[B]{}, alternative[C]{}}
}

func (Of4[A, B, C, D]) candidates() []manager {
	return []manager{alternative[A]{}, alternative[B]{}, alternative[C]{}, alternative[D]{}}
}

func (Of5[A, B, C, D, E]) candidates() []manager {
	return []manager{alternative[A]{}, alternative[B]{}, alternative[C]{}, alternative[D]{}, alternative[E]{}}
}

func (Of6[A, B, C, D, E, F]) candidates() []manager {
	return []manager{alternative[A]{}, alternative[B]{}, alternative[C]{}, alternative[D]{}, alternative[E]{}, alternative[F]{}}
}
