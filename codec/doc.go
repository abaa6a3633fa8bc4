// Package codec reads and writes variants as YAML, JSON, or TOML tagged documents.
//
// A document names the live alternative by tag and Go type and carries its payload:
//
//	tag: 2
//	type: float64
//	value: 3.5
//
// An empty variant is written as "tag: 0". When reading, either tag or type is
// enough to select the alternative. File format is auto-detected from extension
// (.yaml, .yml, .json, .toml).
//
// Example:
//
//	var v variant.Variant[variant.Of2[int, float64]]
//	err := codec.ReadFile("value.yaml", &v, codec.Options{Required: true})
package codec
