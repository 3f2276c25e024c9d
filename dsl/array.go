package dsl

import (
	"context"
	"reflect"
	"strconv"

	goparsing "github.com/reoring/goparsing"
	js "github.com/reoring/goparsing/jsonschema"
)

// ArraySchema parses every element of a slice or array with one item
// schema. Element failures are reported under their index; all elements
// are visited.
type ArraySchema struct {
	goparsing.Node
	c arrayChecker
}

// Array returns a list schema whose elements are parsed by item. The output
// is a []any.
func Array(item goparsing.Schema) *ArraySchema {
	c := arrayChecker{item: item}
	return &ArraySchema{Node: goparsing.NewNode(c), c: c}
}

// Item returns the element schema.
func (s *ArraySchema) Item() goparsing.Schema { return s.c.item }

type arrayChecker struct {
	item     goparsing.Schema
	minItems *int
	maxItems *int
}

func (c arrayChecker) Check(ctx context.Context, v any) (any, error) {
	in, ok := goparsing.AsSlice(v)
	if !ok {
		return nil, typeError(goparsing.CodeArrayType, v)
	}
	errs := goparsing.NewErrors()
	out := make([]any, len(in))
	for i, el := range in {
		res, err := c.item.Parse(ctx, el)
		if err != nil {
			errs.Merge(strconv.Itoa(i), goparsing.ErrorsFrom(err))
			continue
		}
		out[i] = res
	}
	if !errs.Empty() {
		return nil, goparsing.NewParseError(errs)
	}
	return out, nil
}

func (c arrayChecker) Describe() (*js.Schema, error) {
	item, err := goparsing.JSONSchema(c.item)
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: item, MinItems: c.minItems, MaxItems: c.maxItems}, nil
}

func (s *ArraySchema) with(fn goparsing.PostParseFunc, c arrayChecker) *ArraySchema {
	return &ArraySchema{Node: s.Node.WithChecker(c).WithPostParse(fn), c: c}
}

func (s *ArraySchema) lengthRule(code, name string, n int, ok func(int) bool, c arrayChecker) *ArraySchema {
	return s.with(rule(goparsing.CodeArrayType, code, map[string]any{name: n},
		func(v []any) bool { return ok(len(v)) },
		func(v []any) any { return len(v) },
	), c)
}

// Length requires exactly n elements.
func (s *ArraySchema) Length(n int) *ArraySchema {
	c := s.c
	c.minItems, c.maxItems = js.Int(n), js.Int(n)
	return s.lengthRule(goparsing.CodeArrayLength, "length", n, func(l int) bool { return l == n }, c)
}

func (s *ArraySchema) MinLength(n int) *ArraySchema {
	c := s.c
	c.minItems = js.Int(n)
	return s.lengthRule(goparsing.CodeArrayMinLength, "minLength", n, func(l int) bool { return l >= n }, c)
}

func (s *ArraySchema) MaxLength(n int) *ArraySchema {
	c := s.c
	c.maxItems = js.Int(n)
	return s.lengthRule(goparsing.CodeArrayMaxLength, "maxLength", n, func(l int) bool { return l <= n }, c)
}

// Includes requires at least one parsed element equal to v (scalars compare
// by value).
func (s *ArraySchema) Includes(v any) *ArraySchema {
	return s.with(rule(goparsing.CodeArrayType, goparsing.CodeArrayIncludes, map[string]any{"includes": v},
		func(items []any) bool {
			for _, it := range items {
				if reflect.DeepEqual(it, v) || (isScalar(it) && isScalar(v) && scalarEqual(it, v)) {
					return true
				}
			}
			return false
		},
		func(items []any) any { return items },
	), s.c)
}

// TupleSchema parses a fixed-arity list, one schema per position.
type TupleSchema struct {
	goparsing.Node
}

// Tuple returns a schema for lists of exactly len(items) elements. The
// output is a []any.
func Tuple(items ...goparsing.Schema) *TupleSchema {
	return &TupleSchema{Node: goparsing.NewNode(tupleChecker{items: items})}
}

type tupleChecker struct{ items []goparsing.Schema }

// Check reports per-position failures in index order, a missingIndex
// failure for every absent position and an additionalIndex failure for
// every extra one.
func (c tupleChecker) Check(ctx context.Context, v any) (any, error) {
	in, ok := goparsing.AsSlice(v)
	if !ok {
		return nil, typeError(goparsing.CodeTupleType, v)
	}
	errs := goparsing.NewErrors()
	out := make([]any, len(c.items))
	for i, item := range c.items {
		path := strconv.Itoa(i)
		if i >= len(in) {
			errs.Add(path, goparsing.ErrorFor(goparsing.CodeTupleMissingIndex, map[string]any{"index": i}))
			continue
		}
		res, err := item.Parse(ctx, in[i])
		if err != nil {
			errs.Merge(path, goparsing.ErrorsFrom(err))
			continue
		}
		out[i] = res
	}
	for i := len(c.items); i < len(in); i++ {
		errs.Add(strconv.Itoa(i), goparsing.ErrorFor(goparsing.CodeTupleAdditionalIndex, map[string]any{"index": i}))
	}
	if !errs.Empty() {
		return nil, goparsing.NewParseError(errs)
	}
	return out, nil
}

func (c tupleChecker) Describe() (*js.Schema, error) {
	prefix := make([]*js.Schema, 0, len(c.items))
	for _, it := range c.items {
		d, err := goparsing.JSONSchema(it)
		if err != nil {
			return nil, err
		}
		prefix = append(prefix, d)
	}
	n := len(c.items)
	return &js.Schema{Type: "array", PrefixItems: prefix, MinItems: js.Int(n), MaxItems: js.Int(n)}, nil
}
