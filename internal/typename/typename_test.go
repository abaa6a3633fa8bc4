package typename

import (
	"reflect"
	"testing"
	"time"
)

type circle struct{ R float64 }

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		input    reflect.Type
		expected string
	}{
		{
			name:     "builtin",
			input:    reflect.TypeOf((*int)(nil)).Elem(),
			expected: "int",
		},
		{
			name:     "slice",
			input:    reflect.TypeOf((*[]string)(nil)).Elem(),
			expected: "[]string",
		},
		{
			name:     "named type is package qualified",
			input:    reflect.TypeOf((*circle)(nil)).Elem(),
			expected: "typename.circle",
		},
		{
			name:     "stdlib named type",
			input:    reflect.TypeOf((*time.Duration)(nil)).Elem(),
			expected: "time.Duration",
		},
		{
			name:     "nil type",
			input:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Of(tt.input)
			if result != tt.expected {
				t.Errorf("Of(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "surrounding whitespace",
			input:    " Float64 ",
			expected: "float64",
		},
		{
			name:     "inner whitespace",
			input:    "map[string] int",
			expected: "map[string]int",
		},
		{
			name:     "qualified name",
			input:    "main.Circle",
			expected: "main.circle",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Canonical(tt.input)
			if result != tt.expected {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		typ   reflect.Type
		input string
		want  bool
	}{
		{"exact builtin", reflect.TypeOf((*float64)(nil)).Elem(), "float64", true},
		{"case insensitive", reflect.TypeOf((*float64)(nil)).Elem(), "FLOAT64", true},
		{"qualified named", reflect.TypeOf((*circle)(nil)).Elem(), "typename.circle", true},
		{"bare named", reflect.TypeOf((*circle)(nil)).Elem(), "Circle", true},
		{"different type", reflect.TypeOf((*int)(nil)).Elem(), "int64", false},
		{"empty name", reflect.TypeOf((*int)(nil)).Elem(), "", false},
		{"unnamed has no bare form", reflect.TypeOf((*[]int)(nil)).Elem(), "int", false},
		{"nil type", nil, "int", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.typ, tt.input); got != tt.want {
				t.Errorf("Matches(%v, %q) = %v, want %v", tt.typ, tt.input, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	types := []reflect.Type{reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*circle)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem()}

	if i, ok := Lookup(types, "circle"); !ok || i != 1 {
		t.Errorf("Lookup(circle) = %d, %v, want 1, true", i, ok)
	}
	if i, ok := Lookup(types, "bool"); ok || i != -1 {
		t.Errorf("Lookup(bool) = %d, %v, want -1, false", i, ok)
	}
}
