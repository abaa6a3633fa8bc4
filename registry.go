package variant

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/Azhovan/variant/internal/altset"
)

// table is the dispatch table of one alternative list: its metadata and one
// manager per distinct alternative, indexed by tag-1.
type table struct {
	set      *altset.Set
	managers []manager
}

var (
	setCache   altset.Cache
	tableStore sync.Map // reflect.Type of the descriptor -> *table
)

// tableFor returns the dispatch table of S, building it on first use.
// Thread-safe.
func tableFor[S Alternatives]() *table {
	key := reflect.TypeOf((*S)(nil)).Elem()
	if v, ok := tableStore.Load(key); ok {
		return v.(*table)
	}

	var desc S
	candidates := desc.candidates()

	set, err := setCache.Load(key, func() []reflect.Type {
		types := make([]reflect.Type, len(candidates))
		for i, c := range candidates {
			types[i] = c.Type()
		}
		return types
	})
	if err != nil {
		panic(fmt.Sprintf("variant: %s: %v", key, err))
	}

	tb := &table{set: set, managers: make([]manager, set.Len())}
	for _, c := range candidates {
		tag, _ := set.Tag(c.Type())
		if tb.managers[tag-1] == nil {
			tb.managers[tag-1] = c.withTag(Tag(tag))
		}
	}

	actual, _ := tableStore.LoadOrStore(key, tb)
	return actual.(*table)
}

// tagOf returns the tag of t, or false when t is not an alternative.
func (tb *table) tagOf(t reflect.Type) (Tag, bool) {
	tag, ok := tb.set.Tag(t)
	return Tag(tag), ok
}

// mustTag returns the tag of T and panics when T is not an alternative.
func mustTag[T any](tb *table) Tag {
	t := reflect.TypeOf((*T)(nil)).Elem()
	tag, ok := tb.tagOf(t)
	if !ok {
		panic(fmt.Errorf("%w: %s not in %v", ErrNotAlternative, t, tb.set.Distinct()))
	}
	return tag
}

func (tb *table) manager(tag Tag) (manager, bool) {
	if tag < 1 || int(tag) > len(tb.managers) {
		return nil, false
	}
	return tb.managers[tag-1], true
}

// typeOf returns the type of tag, or nil for Empty.
func (tb *table) typeOf(tag Tag) reflect.Type {
	t, _ := tb.set.Type(int(tag))
	return t
}

func (tb *table) layout() Layout {
	return Layout{
		Size:         tb.set.MaxSize(),
		Align:        tb.set.MaxAlign(),
		Alternatives: tb.set.Len(),
		Declared:     len(tb.set.Declared()),
	}
}
