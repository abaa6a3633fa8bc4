package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Azhovan/variant"
	"github.com/Azhovan/variant/internal/typename"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported document formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

var (
	// ErrUnsupportedFormat is returned for a format other than yaml, json or toml.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrUnknownAlternative is returned when a document names a tag or type the variant does not declare.
	ErrUnknownAlternative = errors.New("codec: unknown alternative")

	// ErrTagTypeMismatch is returned when a document's tag and type name different alternatives.
	ErrTagTypeMismatch = errors.New("codec: tag and type disagree")
)

const (
	tagField   = `json:"tag" yaml:"tag" toml:"tag"`
	typeField  = `json:"type" yaml:"type" toml:"type"`
	valueField = `json:"value" yaml:"value" toml:"value"`
)

// header is the part of a document that selects the alternative.
// A nil Tag means the document did not carry one.
type header struct {
	Tag  *int   `json:"tag" yaml:"tag" toml:"tag"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// emptyDocument is written for a variant holding nothing.
type emptyDocument struct {
	Tag int `json:"tag" yaml:"tag" toml:"tag"`
}

// Marshal encodes v as a tagged document in format.
func Marshal[S variant.Alternatives](v *variant.Variant[S], format string) ([]byte, error) {
	if v == nil {
		return nil, errors.New("codec: variant is nil")
	}
	return encode(format, document(v))
}

// Unmarshal decodes a tagged document into v.
//
// The alternative is chosen by "tag", or by "type" when the tag is absent; a
// document with neither, or with tag 0, resets v to empty. The payload under
// "value" is decoded directly into the chosen alternative type and assigned
// to v, so a payload of the live alternative updates it in place.
func Unmarshal[S variant.Alternatives](data []byte, format string, v *variant.Variant[S]) error {
	if v == nil {
		return errors.New("codec: variant is nil")
	}

	var h header
	if err := decode(format, data, &h); err != nil {
		return err
	}

	types := v.Types()
	tag, err := resolve(h, types)
	if err != nil {
		return err
	}
	if tag == variant.Empty {
		v.Reset()
		return nil
	}

	payload := reflect.New(reflect.StructOf([]reflect.StructField{
		{Name: "Value", Type: types[tag-1], Tag: valueField},
	}))
	if err := decode(format, data, payload.Interface()); err != nil {
		return err
	}

	return v.SetTagged(tag, payload.Elem().Field(0).Interface())
}

// document builds the value that is encoded for v.
func document[S variant.Alternatives](v *variant.Variant[S]) any {
	x, ok := v.Value()
	if !ok {
		return emptyDocument{}
	}

	t := v.Type()
	doc := reflect.New(reflect.StructOf([]reflect.StructField{
		{Name: "Tag", Type: reflect.TypeOf((*int)(nil)).Elem(), Tag: tagField},
		{Name: "Type", Type: reflect.TypeOf((*string)(nil)).Elem(), Tag: typeField},
		{Name: "Value", Type: t, Tag: valueField},
	})).Elem()

	doc.Field(0).SetInt(int64(v.Index()))
	doc.Field(1).SetString(typename.Of(t))
	if x != nil {
		doc.Field(2).Set(reflect.ValueOf(x))
	}
	return doc.Interface()
}

// resolve maps a header to the tag it selects.
func resolve(h header, types []reflect.Type) (variant.Tag, error) {
	switch {
	case h.Tag == nil && h.Type == "":
		return variant.Empty, nil
	case h.Tag == nil:
		i, ok := typename.Lookup(types, h.Type)
		if !ok {
			return variant.Empty, fmt.Errorf("%w: type %q", ErrUnknownAlternative, h.Type)
		}
		return variant.Tag(i + 1), nil
	case *h.Tag == 0:
		if h.Type != "" {
			return variant.Empty, fmt.Errorf("%w: tag 0 with type %q", ErrTagTypeMismatch, h.Type)
		}
		return variant.Empty, nil
	}

	tag := *h.Tag
	if tag < 0 || tag > len(types) {
		return variant.Empty, fmt.Errorf("%w: tag %d (have 1..%d)", ErrUnknownAlternative, tag, len(types))
	}
	if h.Type != "" && !typename.Matches(types[tag-1], h.Type) {
		return variant.Empty, fmt.Errorf("%w: tag %d is %s, document says %q",
			ErrTagTypeMismatch, tag, typename.Of(types[tag-1]), h.Type)
	}
	return variant.Tag(tag), nil
}

func encode(format string, doc any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch normalizeFormat(format) {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q (supported: yaml, json, toml)", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", strings.ToUpper(normalizeFormat(format)), err)
	}
	return data, nil
}

func decode(format string, data []byte, out any) error {
	var err error
	switch normalizeFormat(format) {
	case FormatYAML:
		err = yaml.Unmarshal(data, out)
	case FormatJSON:
		err = json.Unmarshal(data, out)
	case FormatTOML:
		err = toml.Unmarshal(data, out)
	default:
		return fmt.Errorf("%w: %q (supported: yaml, json, toml)", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("parse %s document: %w", strings.ToUpper(normalizeFormat(format)), err)
	}
	return nil
}

func normalizeFormat(format string) string {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "yml":
		return FormatYAML
	default:
		return f
	}
}
