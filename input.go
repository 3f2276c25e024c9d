package goparsing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes data as a single JSON document and parses the result
// with s. Numbers decode as json.Number so integers keep their precision.
// A malformed document fails with an input.decode error.
func ParseJSON(ctx context.Context, s Schema, data []byte) (any, error) {
	v, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// ParseYAML decodes data as a single YAML document and parses the result
// with s. Mappings are normalised to map[string]any.
func ParseYAML(ctx context.Context, s Schema, data []byte) (any, error) {
	v, err := DecodeYAML(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// DecodeJSON reads exactly one JSON value from r.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, decodeError(err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, decodeError(errors.New("unexpected data after top-level value"))
	}
	return v, nil
}

// DecodeYAML reads the first YAML document from r. An empty stream decodes
// to nil.
func DecodeYAML(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, decodeError(err)
	}
	return normalizeYAML(v), nil
}

func decodeError(err error) *ParseError {
	return NewParseError(NewErrors().Add("", ErrorFor(CodeInputDecode, map[string]any{"reason": err.Error()})))
}

// normalizeYAML converts map[any]any produced by YAML decoding into
// map[string]any recursively. Non-string keys are formatted with %v.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
