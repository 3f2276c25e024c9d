package dsl

import (
	"context"

	goparsing "github.com/reoring/goparsing"
	js "github.com/reoring/goparsing/jsonschema"
)

// RecordSchema parses every value of a string-keyed map with one schema.
// Failures are reported under their key, keys visited in sorted order.
type RecordSchema struct {
	goparsing.Node
}

// Record returns a homogeneous map schema. The output is a map[string]any.
func Record(value goparsing.Schema) *RecordSchema {
	return &RecordSchema{Node: goparsing.NewNode(recordChecker{value: value})}
}

type recordChecker struct{ value goparsing.Schema }

func (c recordChecker) Check(ctx context.Context, v any) (any, error) {
	src, ok := goparsing.AsMap(v)
	if !ok {
		return nil, typeError(goparsing.CodeRecordType, v)
	}
	errs := goparsing.NewErrors()
	out := make(map[string]any, len(src))
	for _, k := range goparsing.SortedKeys(src) {
		res, err := c.value.Parse(ctx, src[k])
		if err != nil {
			errs.Merge(k, goparsing.ErrorsFrom(err))
			continue
		}
		out[k] = res
	}
	if !errs.Empty() {
		return nil, goparsing.NewParseError(errs)
	}
	return out, nil
}

func (c recordChecker) Describe() (*js.Schema, error) {
	val, err := goparsing.JSONSchema(c.value)
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: val}, nil
}
