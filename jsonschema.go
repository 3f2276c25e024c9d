package goparsing

import (
	js "github.com/reoring/goparsing/jsonschema"
)

// Inspectable exposes the configuration of a schema built on Node.
type Inspectable interface {
	Checker() Checker
	IsNullable() bool
	DefaultValue() (any, bool)
}

// Describer is implemented by checkers that can project themselves into a
// JSON Schema document.
type Describer interface {
	Describe() (*js.Schema, error)
}

// JSONSchema projects s into a JSON Schema document. Checkers that do not
// implement Describer project to the empty (accept anything) schema. A
// nullable schema becomes anyOf [schema, {"type":"null"}].
//
// Hooks are opaque and are not reflected in the document.
func JSONSchema(s Schema) (*js.Schema, error) {
	in, ok := s.(Inspectable)
	if !ok {
		return &js.Schema{}, nil
	}
	out := &js.Schema{}
	if d, ok := in.Checker().(Describer); ok {
		doc, err := d.Describe()
		if err != nil {
			return nil, err
		}
		out = doc.Clone()
	}
	if in.IsNullable() {
		out = &js.Schema{AnyOf: []*js.Schema{out, {Type: "null"}}}
	}
	if dv, ok := in.DefaultValue(); ok {
		out.Default = dv
	}
	return out, nil
}

// Required reports whether an object field using s must be present: it is
// neither nullable nor defaulted.
func Required(s Schema) bool {
	in, ok := s.(Inspectable)
	if !ok {
		return true
	}
	_, hasDefault := in.DefaultValue()
	return !in.IsNullable() && !hasDefault
}
