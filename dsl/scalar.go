package dsl

import (
	"context"

	js "github.com/reoring/goparsing/jsonschema"
)

// scalarChecker is the Checker of every leaf variant: one primitive type
// check plus the JSON Schema fragment accumulated by rule methods.
type scalarChecker struct {
	code  string
	check func(v any) (any, bool)
	doc   *js.Schema
}

func newScalar(code string, doc js.Schema, check func(v any) (any, bool)) scalarChecker {
	return scalarChecker{code: code, check: check, doc: &doc}
}

func (c scalarChecker) Check(_ context.Context, v any) (any, error) {
	out, ok := c.check(v)
	if !ok {
		return nil, typeError(c.code, v)
	}
	return out, nil
}

func (c scalarChecker) Describe() (*js.Schema, error) { return c.doc.Clone(), nil }

// annotate returns a copy of c whose document was modified by fn.
func (c scalarChecker) annotate(fn func(*js.Schema)) scalarChecker {
	if fn == nil {
		return c
	}
	doc := c.doc.Clone()
	fn(doc)
	c.doc = doc
	return c
}
