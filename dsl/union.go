package dsl

import (
	"context"
	"fmt"

	goparsing "github.com/reoring/goparsing"
	js "github.com/reoring/goparsing/jsonschema"
)

// UnionSchema tries its candidates in declaration order and returns the
// output of the first one that succeeds.
type UnionSchema struct {
	goparsing.Node
}

// Union returns a first-match-wins union. When every candidate fails, the
// error holds the failures of all candidates, in candidate order, and
// errors.Is(err, goparsing.ErrUnionExhausted) holds.
//
// It panics with a *goparsing.ConfigError when called without candidates.
func Union(candidates ...goparsing.Schema) *UnionSchema {
	if len(candidates) == 0 {
		panic(&goparsing.ConfigError{Op: "dsl.Union", Reason: "at least one candidate is required", Err: goparsing.ErrInvalidSchema})
	}
	return &UnionSchema{Node: goparsing.NewNode(unionChecker{candidates: candidates})}
}

type unionChecker struct{ candidates []goparsing.Schema }

func (c unionChecker) Check(ctx context.Context, v any) (any, error) {
	errs := goparsing.NewErrors()
	for i, cand := range c.candidates {
		out, err := cand.Parse(ctx, v)
		if err == nil {
			return out, nil
		}
		ce := goparsing.ErrorsFrom(err)
		goparsing.Logger().Debug().Int("candidate", i).Int("errors", ce.Len()).Msg("goparsing: union candidate rejected input")
		errs.Merge("", ce)
	}
	return nil, goparsing.NewParseError(errs).WithCause(goparsing.ErrUnionExhausted)
}

func (c unionChecker) Describe() (*js.Schema, error) {
	alts := make([]*js.Schema, 0, len(c.candidates))
	for _, cand := range c.candidates {
		d, err := goparsing.JSONSchema(cand)
		if err != nil {
			return nil, err
		}
		alts = append(alts, d)
	}
	return &js.Schema{AnyOf: alts}, nil
}

// DiscriminatedUnionSchema dispatches on the value of one field to exactly
// one object candidate.
type DiscriminatedUnionSchema struct {
	goparsing.Node
}

// fieldLookup is implemented by object checkers.
type fieldLookup interface {
	FieldSchema(name string) (goparsing.Schema, bool)
}

// literalValuer is implemented by literal checkers.
type literalValuer interface {
	LiteralValue() any
}

func checkerOf(s goparsing.Schema) goparsing.Checker {
	if in, ok := s.(goparsing.Inspectable); ok {
		return in.Checker()
	}
	return nil
}

// DiscriminatedUnion returns a union that selects its candidate by the
// value of field. Every candidate must be an object schema (possibly
// configured) declaring field with a literal schema (possibly configured);
// otherwise a *goparsing.ConfigError wrapping goparsing.ErrInvalidSchema is
// returned.
func DiscriminatedUnion(field string, candidates ...goparsing.Schema) (*DiscriminatedUnionSchema, error) {
	if len(candidates) == 0 {
		return nil, &goparsing.ConfigError{Op: "dsl.DiscriminatedUnion", Reason: "at least one candidate is required", Err: goparsing.ErrInvalidSchema}
	}
	c := discriminatedChecker{field: field, candidates: candidates}
	for i, cand := range candidates {
		obj, ok := checkerOf(cand).(fieldLookup)
		if !ok {
			return nil, &goparsing.ConfigError{Op: "dsl.DiscriminatedUnion", Reason: fmt.Sprintf("candidate %d is not an object schema", i), Err: goparsing.ErrInvalidSchema}
		}
		fs, ok := obj.FieldSchema(field)
		if !ok {
			return nil, &goparsing.ConfigError{Op: "dsl.DiscriminatedUnion", Reason: fmt.Sprintf("candidate %d does not declare field %q", i, field), Err: goparsing.ErrInvalidSchema}
		}
		if _, ok := checkerOf(fs).(literalValuer); !ok {
			return nil, &goparsing.ConfigError{Op: "dsl.DiscriminatedUnion", Reason: fmt.Sprintf("field %q of candidate %d is not a literal schema", field, i), Err: goparsing.ErrInvalidSchema}
		}
		c.discriminators = append(c.discriminators, fs)
	}
	return &DiscriminatedUnionSchema{Node: goparsing.NewNode(c)}, nil
}

// MustDiscriminatedUnion is DiscriminatedUnion that panics on a
// configuration error.
func MustDiscriminatedUnion(field string, candidates ...goparsing.Schema) *DiscriminatedUnionSchema {
	s, err := DiscriminatedUnion(field, candidates...)
	if err != nil {
		panic(err)
	}
	return s
}

type discriminatedChecker struct {
	field          string
	candidates     []goparsing.Schema
	discriminators []goparsing.Schema
}

func (c discriminatedChecker) Check(ctx context.Context, v any) (any, error) {
	src, ok := goparsing.AsMap(v)
	if !ok {
		return nil, typeError(goparsing.CodeDiscriminatedUnionType, v)
	}
	dv, present := src[c.field]
	if !present || dv == nil {
		return nil, c.fail(goparsing.ErrorFor(goparsing.CodeDiscriminatedUnionDiscriminatorField, map[string]any{
			"discriminatorFieldName": c.field,
		}))
	}
	if isScalar(dv) {
		for i, disc := range c.discriminators {
			if disc.SafeParse(ctx, dv).Success {
				goparsing.Logger().Debug().Str("field", c.field).Int("candidate", i).Msg("goparsing: discriminated union dispatch")
				return c.candidates[i].Parse(ctx, v)
			}
		}
	}
	return nil, c.fail(goparsing.ErrorFor(goparsing.CodeDiscriminatedUnionNoMatch, map[string]any{
		"discriminatorFieldName": c.field,
		"given":                  dv,
	}))
}

func (c discriminatedChecker) fail(e goparsing.Error) *goparsing.ParseError {
	return goparsing.NewParseError(goparsing.NewErrors().Add(c.field, e))
}

func (c discriminatedChecker) Describe() (*js.Schema, error) {
	one := make([]*js.Schema, 0, len(c.candidates))
	for _, cand := range c.candidates {
		d, err := goparsing.JSONSchema(cand)
		if err != nil {
			return nil, err
		}
		one = append(one, d)
	}
	return &js.Schema{OneOf: one}, nil
}
