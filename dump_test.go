package variant

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDump_TextFormat(t *testing.T) {
	v := New[Of2[string, int]]("localhost")

	var buf bytes.Buffer
	if err := Dump(&buf, v); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	want := "tag: 1\ntype: string\nvalue: \"localhost\"\n"
	if got := buf.String(); got != want {
		t.Errorf("Dump output\ngot:  %q\nwant: %q", got, want)
	}
}

func TestDump_Empty(t *testing.T) {
	var v Variant[number]

	var buf bytes.Buffer
	if err := Dump(&buf, &v); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "tag: 0") || !strings.Contains(output, "type: <empty>") {
		t.Errorf("Expected empty state, got: %s", output)
	}
	if strings.Contains(output, "value:") {
		t.Errorf("Empty variant should not print a value, got: %s", output)
	}
}

func TestDump_WithLayout(t *testing.T) {
	v := New[Of2[int8, [8]byte]](int8(3))

	var buf bytes.Buffer
	if err := Dump(&buf, v, WithLayout()); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	if !strings.Contains(buf.String(), "layout: size=8 align=1 alternatives=2 declared=2") {
		t.Errorf("Expected layout line, got: %s", buf.String())
	}
}

func TestDump_ValueFormatting(t *testing.T) {
	type point struct{ X, Y int }
	type mixed = Of5[time.Duration, []string, bool, point, float64]

	tests := []struct {
		name string
		v    *Variant[mixed]
		want string
	}{
		{"duration", New[mixed](90 * time.Second), "value: 1m30s"},
		{"string slice", New[mixed]([]string{"a", "b"}), "value: [a, b]"},
		{"bool", New[mixed](true), "value: true"},
		{"struct", New[mixed](point{X: 1, Y: 2}), "value: {X:1 Y:2}"},
		{"float", New[mixed](0.25), "value: 0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Dump(&buf, tt.v); err != nil {
				t.Fatalf("Dump failed: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Expected %q, got: %s", tt.want, buf.String())
			}
		})
	}
}

func TestDump_JSONFormat(t *testing.T) {
	v := New[Of2[time.Duration, int]](5 * time.Second)

	var buf bytes.Buffer
	if err := Dump(&buf, v, AsJSON(), WithLayout()); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if result["tag"] != float64(1) {
		t.Errorf("tag = %v, want 1", result["tag"])
	}
	if result["type"] != "time.Duration" {
		t.Errorf("type = %v, want time.Duration", result["type"])
	}
	if result["value"] != "5s" {
		t.Errorf("value = %v, want 5s", result["value"])
	}
	layout, ok := result["layout"].(map[string]any)
	if !ok {
		t.Fatalf("layout missing: %v", result)
	}
	if layout["alternatives"] != float64(2) {
		t.Errorf("layout.alternatives = %v, want 2", layout["alternatives"])
	}
}

func TestDump_JSONCompact(t *testing.T) {
	v := New[number](4)

	var buf bytes.Buffer
	if err := Dump(&buf, v, AsJSON(), WithIndent("")); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	want := `{"tag":1,"type":"int","value":4}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Dump output\ngot:  %q\nwant: %q", got, want)
	}
}

func TestDump_JSONEmpty(t *testing.T) {
	var v Variant[number]

	var buf bytes.Buffer
	if err := Dump(&buf, &v, AsJSON(), WithIndent("")); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	if got := buf.String(); got != "{\"tag\":0}\n" {
		t.Errorf("Dump output = %q", got)
	}
}

func TestDump_NilVariant(t *testing.T) {
	var v *Variant[number]

	var buf bytes.Buffer
	err := Dump(&buf, v)
	if err == nil {
		t.Fatal("Expected error for nil variant")
	}
	if got := err.Error(); got != "variant: variant is nil" {
		t.Errorf("Dump error = %q, want %q", got, "variant: variant is nil")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDump_WriteError(t *testing.T) {
	v := New[number](1)

	for _, opts := range [][]DumpOption{nil, {AsJSON()}} {
		err := Dump(failingWriter{}, v, opts...)
		if err == nil || !strings.Contains(err.Error(), "write error") {
			t.Errorf("Dump error = %v, want write error", err)
		}
	}
}
