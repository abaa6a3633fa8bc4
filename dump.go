package variant

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/Azhovan/variant/internal/typename"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	withLayout bool   // Include the storage layout of the alternative list
	asJSON     bool   // Output as JSON instead of text format
	indent     string // Indentation for JSON output (default: "  ")
}

// WithLayout includes the storage size, alignment and alternative counts.
func WithLayout() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withLayout = true
	}
}

// AsJSON outputs the variant as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  "). An empty indent produces compact JSON.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// Dump writes a human-readable representation of v's state.
// Returns an error if v is nil or writing to w fails.
func Dump[S Alternatives](w io.Writer, v *Variant[S], opts ...DumpOption) error {
	if v == nil {
		return errors.New("variant: variant is nil")
	}

	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	st := dumpState{
		tag:    v.Index(),
		typ:    v.Type(),
		layout: v.Layout(),
	}
	if x, ok := v.Value(); ok {
		st.value = reflect.ValueOf(x)
	}

	if config.asJSON {
		return dumpAsJSON(w, st, config)
	}
	return dumpAsText(w, st, config)
}

// dumpState is the snapshot of a variant taken by Dump.
type dumpState struct {
	tag    Tag
	typ    reflect.Type
	value  reflect.Value
	layout Layout
}

// dumpAsText outputs one "key: value" line per attribute.
func dumpAsText(w io.Writer, st dumpState, config dumpConfig) error {
	lines := []string{fmt.Sprintf("tag: %d", st.tag)}
	if st.tag == Empty {
		lines = append(lines, "type: <empty>")
	} else {
		lines = append(lines,
			"type: "+typename.Of(st.typ),
			"value: "+formatValueAsString(st.value),
		)
	}
	if config.withLayout {
		lines = append(lines, fmt.Sprintf("layout: size=%d align=%d alternatives=%d declared=%d",
			st.layout.Size, st.layout.Align, st.layout.Alternatives, st.layout.Declared))
	}

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

// dumpAsJSON outputs the state as a JSON object.
func dumpAsJSON(w io.Writer, st dumpState, config dumpConfig) error {
	result := map[string]any{
		"tag": int(st.tag),
	}
	if st.tag != Empty {
		result["type"] = typename.Of(st.typ)
		result["value"] = formatValueForJSON(st.value)
	}
	if config.withLayout {
		result["layout"] = map[string]any{
			"size":         st.layout.Size,
			"align":        st.layout.Align,
			"alternatives": st.layout.Alternatives,
			"declared":     st.layout.Declared,
		}
	}

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(result, "", config.indent)
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// formatValueForJSON converts a value into something encoding/json renders readably.
func formatValueForJSON(v reflect.Value) any {
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return nil
	}

	switch v.Kind() {
	case reflect.Int64:
		if v.Type() == reflect.TypeOf((*time.Duration)(nil)).Elem() {
			return v.Interface().(time.Duration).String()
		}
		return v.Int()
	case reflect.Struct:
		if v.Type() == reflect.TypeOf((*time.Time)(nil)).Elem() {
			return v.Interface().(time.Time).Format(time.RFC3339)
		}
		return v.Interface()
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return formatValueAsString(v)
	default:
		return v.Interface()
	}
}

// formatValueAsString formats a value for text output.
func formatValueAsString(v reflect.Value) string {
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return "<nil>"
	}

	switch v.Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	case reflect.Bool:
		return fmt.Sprintf("%t", v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == reflect.TypeOf((*time.Duration)(nil)).Elem() {
			return v.Interface().(time.Duration).String()
		}
		return fmt.Sprintf("%d", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", v.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%g", v.Float())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.String {
			strs := make([]string, v.Len())
			for i := 0; i < v.Len(); i++ {
				strs[i] = v.Index(i).String()
			}
			return fmt.Sprintf("[%s]", strings.Join(strs, ", "))
		}
		return fmt.Sprintf("%v", v.Interface())
	case reflect.Struct:
		if v.Type() == reflect.TypeOf((*time.Time)(nil)).Elem() {
			return v.Interface().(time.Time).Format(time.RFC3339)
		}
		return fmt.Sprintf("%+v", v.Interface())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
