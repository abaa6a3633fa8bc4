package typename

import (
	"reflect"
	"strings"
	"unicode"
)

// Of returns the name written for t in documents and dumps.
// It is the Go spelling of the type, package-qualified for named types.
// Examples:
//   - int → "int"
//   - []string → "[]string"
//   - main.Circle → "main.Circle"
func Of(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// Canonical normalizes a type name for comparison.
// Whitespace is removed and letters are lowercased.
// Examples:
//   - " Float64 " → "float64"
//   - "map[string] int" → "map[string]int"
//   - "main.Circle" → "main.circle"
func Canonical(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Matches reports whether name refers to t.
// The package-qualified name and, for named types, the bare name are accepted.
func Matches(t reflect.Type, name string) bool {
	if t == nil {
		return false
	}

	want := Canonical(name)
	if want == "" {
		return false
	}
	if Canonical(Of(t)) == want {
		return true
	}
	return t.Name() != "" && Canonical(t.Name()) == want
}

// Lookup returns the index of the first type in types that name refers to.
func Lookup(types []reflect.Type, name string) (int, bool) {
	for i, t := range types {
		if Matches(t, name) {
			return i, true
		}
	}
	return -1, false
}
