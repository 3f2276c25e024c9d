package dsl

import (
	"context"
	"maps"
	"slices"

	goparsing "github.com/reoring/goparsing"
	js "github.com/reoring/goparsing/jsonschema"
)

// objectShape is the immutable field table of an object schema. Builders
// clone it before every change.
type objectShape struct {
	names    []string
	fields   map[string]goparsing.Schema
	optional map[string]struct{}
	policy   goparsing.UnknownPolicy
	allow    map[string]struct{}
}

func newShape() *objectShape {
	return &objectShape{
		fields:   map[string]goparsing.Schema{},
		optional: map[string]struct{}{},
		allow:    map[string]struct{}{},
	}
}

func (o *objectShape) clone() *objectShape {
	return &objectShape{
		names:    slices.Clone(o.names),
		fields:   maps.Clone(o.fields),
		optional: maps.Clone(o.optional),
		policy:   o.policy,
		allow:    maps.Clone(o.allow),
	}
}

// set declares or replaces a field. A replaced field keeps its position.
func (o *objectShape) set(name string, s goparsing.Schema) {
	if _, exists := o.fields[name]; !exists {
		o.names = append(o.names, name)
	}
	o.fields[name] = s
}

func (o *objectShape) remove(name string) {
	if _, exists := o.fields[name]; !exists {
		return
	}
	delete(o.fields, name)
	delete(o.optional, name)
	o.names = slices.DeleteFunc(o.names, func(n string) bool { return n == name })
}

// objectChecker parses declared fields in declaration order, then handles
// unknown keys in sorted key order according to the unknown policy.
type objectChecker struct{ shape *objectShape }

// FieldSchema returns the schema declared for name.
func (c objectChecker) FieldSchema(name string) (goparsing.Schema, bool) {
	s, ok := c.shape.fields[name]
	return s, ok
}

func (c objectChecker) Check(ctx context.Context, v any) (any, error) {
	src, ok := goparsing.AsMap(v)
	if !ok {
		return nil, typeError(goparsing.CodeObjectType, v)
	}
	sh := c.shape
	errs := goparsing.NewErrors()
	out := make(map[string]any, len(sh.names))
	for _, name := range sh.names {
		val, present := src[name]
		if _, opt := sh.optional[name]; opt && !present {
			continue
		}
		res, err := sh.fields[name].Parse(ctx, val)
		if err != nil {
			errs.Merge(name, goparsing.ErrorsFrom(err))
			continue
		}
		out[name] = res
	}
	for _, k := range goparsing.SortedKeys(src) {
		if _, declared := sh.fields[k]; declared {
			continue
		}
		switch sh.policy {
		case goparsing.UnknownStrict:
			if _, allowed := sh.allow[k]; allowed {
				continue
			}
			errs.Add(k, goparsing.ErrorFor(goparsing.CodeObjectUnknownField, map[string]any{"fieldName": k}))
		case goparsing.UnknownPassthrough:
			out[k] = src[k]
		}
	}
	if !errs.Empty() {
		return nil, goparsing.NewParseError(errs)
	}
	return out, nil
}

func (c objectChecker) Describe() (*js.Schema, error) {
	sh := c.shape
	props := make(map[string]*js.Schema, len(sh.names)+len(sh.allow))
	req := []string{}
	for _, name := range sh.names {
		fs := sh.fields[name]
		d, err := goparsing.JSONSchema(fs)
		if err != nil {
			return nil, err
		}
		props[name] = d
		if _, opt := sh.optional[name]; !opt && goparsing.Required(fs) {
			req = append(req, name)
		}
	}
	var additional any = true
	if sh.policy == goparsing.UnknownStrict {
		additional = false
		for k := range sh.allow {
			if _, declared := props[k]; !declared {
				props[k] = &js.Schema{}
			}
		}
	}
	if len(req) == 0 {
		req = nil
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}
