package dsl

import (
	"context"

	goparsing "github.com/reoring/goparsing"
)

// Violation is one failure reported by an external validator. Code and
// Template are forwarded as-is; Path is a dot path relative to the bridged
// value.
type Violation struct {
	Path      string
	Code      string
	Template  string
	Variables map[string]any
}

// Validator adapts a third-party validation library. Validate returns the
// (possibly transformed) value and the violations found; the value is
// ignored when violations are returned.
type Validator interface {
	Validate(ctx context.Context, v any) (any, []Violation)
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(ctx context.Context, v any) (any, []Violation)

func (f ValidatorFunc) Validate(ctx context.Context, v any) (any, []Violation) { return f(ctx, v) }

// BridgeSchema treats an external validator as one more schema variant.
type BridgeSchema struct {
	goparsing.Node
}

// Bridge wraps v. Its violations surface as errors at their paths, with
// kind goparsing.KindExternal unless the code is one this module owns.
func Bridge(v Validator) *BridgeSchema {
	return &BridgeSchema{Node: goparsing.NewNode(bridgeChecker{v: v})}
}

type bridgeChecker struct{ v Validator }

func (c bridgeChecker) Check(ctx context.Context, v any) (any, error) {
	out, violations := c.v.Validate(ctx, v)
	if len(violations) == 0 {
		return out, nil
	}
	errs := goparsing.NewErrors()
	for _, vi := range violations {
		errs.Add(vi.Path, goparsing.NewError(vi.Code, vi.Template, vi.Variables))
	}
	return nil, goparsing.NewParseError(errs)
}
