package dsl

import (
	"context"

	goparsing "github.com/reoring/goparsing"
)

// FieldDef is one declared object field. Build it with Field.
type FieldDef struct {
	name   string
	schema goparsing.Schema
}

// Field declares an object field parsed by s.
func Field(name string, s goparsing.Schema) FieldDef { return FieldDef{name: name, schema: s} }

// ObjectSchema parses string-keyed maps field by field. The output is a
// map[string]any holding the declared fields (plus unknown keys under
// Passthrough).
//
// An absent field is parsed as nil, so it fails unless its schema is
// nullable or defaulted, or the field is listed in Optional. Unknown keys
// are dropped unless Strict or Passthrough is configured.
type ObjectSchema struct {
	goparsing.Node
	shape *objectShape
}

// Object declares an object schema. Fields keep their declaration order; a
// repeated name replaces the earlier schema in place.
func Object(fields ...FieldDef) *ObjectSchema {
	sh := newShape()
	for _, f := range fields {
		sh.set(f.name, f.schema)
	}
	return &ObjectSchema{Node: goparsing.NewNode(objectChecker{shape: sh}), shape: sh}
}

func (s *ObjectSchema) derive(fn func(sh *objectShape)) *ObjectSchema {
	sh := s.shape.clone()
	fn(sh)
	return &ObjectSchema{Node: s.Node.WithChecker(objectChecker{shape: sh}), shape: sh}
}

// fresh builds an object on sh that keeps the unknown policy but none of
// the hooks of s.
func fresh(sh *objectShape) *ObjectSchema {
	return &ObjectSchema{Node: goparsing.NewNode(objectChecker{shape: sh}), shape: sh}
}

// Strict reports every undeclared key as object.unknownField. Keys in allow
// are tolerated and dropped.
func (s *ObjectSchema) Strict(allow ...string) *ObjectSchema {
	return s.derive(func(sh *objectShape) {
		sh.policy = goparsing.UnknownStrict
		sh.allow = make(map[string]struct{}, len(allow))
		for _, k := range allow {
			sh.allow[k] = struct{}{}
		}
	})
}

// Passthrough copies undeclared keys into the output unchanged.
func (s *ObjectSchema) Passthrough() *ObjectSchema {
	return s.derive(func(sh *objectShape) { sh.policy = goparsing.UnknownPassthrough })
}

// Strip drops undeclared keys (the default).
func (s *ObjectSchema) Strip() *ObjectSchema {
	return s.derive(func(sh *objectShape) { sh.policy = goparsing.UnknownStrip })
}

// Optional lets the named fields be absent. An absent optional field is not
// parsed and does not appear in the output; an explicit null still reaches
// its schema.
func (s *ObjectSchema) Optional(names ...string) *ObjectSchema {
	return s.derive(func(sh *objectShape) {
		for _, n := range names {
			sh.optional[n] = struct{}{}
		}
	})
}

// Policy reports the unknown key policy.
func (s *ObjectSchema) Policy() goparsing.UnknownPolicy { return s.shape.policy }

// FieldNames returns the declared field names in declaration order.
func (s *ObjectSchema) FieldNames() []string { return append([]string(nil), s.shape.names...) }

// FieldSchema returns the schema declared for name.
func (s *ObjectSchema) FieldSchema(name string) (goparsing.Schema, bool) {
	f, ok := s.shape.fields[name]
	return f, ok
}

// Extend returns a new object with fields added or replaced. Hooks and the
// shared configuration of s are not carried over.
func (s *ObjectSchema) Extend(fields ...FieldDef) *ObjectSchema {
	sh := s.shape.clone()
	for _, f := range fields {
		sh.set(f.name, f.schema)
	}
	return fresh(sh)
}

// Pick returns a new object declaring only the named fields.
func (s *ObjectSchema) Pick(names ...string) *ObjectSchema {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	sh := s.shape.clone()
	for _, n := range s.shape.names {
		if _, ok := keep[n]; !ok {
			sh.remove(n)
		}
	}
	return fresh(sh)
}

// Omit returns a new object without the named fields.
func (s *ObjectSchema) Omit(names ...string) *ObjectSchema {
	sh := s.shape.clone()
	for _, n := range names {
		sh.remove(n)
	}
	return fresh(sh)
}

// Refine adds a cross-field check run on the parsed output. A non-nil error
// from fn is reported through the usual hook error normalisation.
func (s *ObjectSchema) Refine(fn func(ctx context.Context, v map[string]any) error) *ObjectSchema {
	return &ObjectSchema{
		Node: s.Node.WithPostParse(func(ctx context.Context, v any) (any, error) {
			m, ok := v.(map[string]any)
			if !ok {
				return nil, typeError(goparsing.CodeObjectType, v)
			}
			if err := fn(ctx, m); err != nil {
				return nil, err
			}
			return m, nil
		}),
		shape: s.shape,
	}
}
