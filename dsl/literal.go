package dsl

import (
	"context"
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"

	goparsing "github.com/reoring/goparsing"
	js "github.com/reoring/goparsing/jsonschema"
)

// LiteralSchema accepts exactly one scalar value. Numbers compare by value,
// so the JSON number 1 (float64 or json.Number) matches Literal(1). The
// output is always the declared value.
type LiteralSchema struct {
	goparsing.Node
}

// Literal returns a schema accepting only v. It panics with a
// *goparsing.ConfigError when v is not a string, bool or number.
func Literal(v any) *LiteralSchema {
	if !isScalar(v) {
		panic(&goparsing.ConfigError{Op: "dsl.Literal", Reason: fmt.Sprintf("literal must be a string, bool or number, got %T", v), Err: goparsing.ErrInvalidSchema})
	}
	return &LiteralSchema{Node: goparsing.NewNode(literalChecker{value: v})}
}

// Value returns the declared literal.
func (s *LiteralSchema) Value() any { return s.Checker().(literalChecker).value }

type literalChecker struct{ value any }

func (c literalChecker) LiteralValue() any { return c.value }

func (c literalChecker) Check(_ context.Context, v any) (any, error) {
	if !isScalar(v) {
		return nil, typeError(goparsing.CodeLiteralType, v)
	}
	if !scalarEqual(c.value, v) {
		return nil, goparsing.ErrorFor(goparsing.CodeLiteralEquals, map[string]any{"expected": c.value, "given": v})
	}
	return c.value, nil
}

func (c literalChecker) Describe() (*js.Schema, error) {
	return &js.Schema{Const: c.value}, nil
}

func isScalar(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(json.Number); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// scalarEqual compares two scalars: numbers by value, strings and bools by
// their underlying value regardless of named type. Two integral numbers are
// compared exactly; float64 is used only when one side has a fraction.
func scalarEqual(a, b any) bool {
	af, aNum := numeric(a)
	bf, bNum := numeric(b)
	if aNum || bNum {
		if !aNum || !bNum {
			return false
		}
		ai, aInt := integral(a)
		bi, bInt := integral(b)
		if aInt && bInt {
			return ai.Cmp(bi) == 0
		}
		return af == bf
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return ra.String() == rb.String()
	case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
		return ra.Bool() == rb.Bool()
	}
	return false
}

func numeric(v any) (float64, bool) {
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	if _, isNum := v.(json.Number); !isNum && reflect.ValueOf(v).Kind() == reflect.String {
		return 0, false
	}
	return toFloat(v)
}

// BackedEnumSchema resolves a string or integer input to one of the declared
// cases of E.
type BackedEnumSchema[E ~string | ~int] struct {
	goparsing.Node
}

// BackedEnum returns a schema accepting the values of cases. The output is
// the matching case, typed E.
func BackedEnum[E ~string | ~int](cases ...E) *BackedEnumSchema[E] {
	return &BackedEnumSchema[E]{Node: goparsing.NewNode(enumChecker[E]{cases: cases})}
}

type enumChecker[E ~string | ~int] struct{ cases []E }

func (c enumChecker[E]) stringBacked() bool { return reflect.TypeOf((*E)(nil)).Elem().Kind() == reflect.String }

func (c enumChecker[E]) values() []any {
	out := make([]any, len(c.cases))
	for i, e := range c.cases {
		if c.stringBacked() {
			out[i] = reflect.ValueOf(e).String()
		} else {
			out[i] = int(reflect.ValueOf(e).Int())
		}
	}
	return out
}

func (c enumChecker[E]) Check(_ context.Context, v any) (any, error) {
	var given any
	if c.stringBacked() {
		s, ok := asString(v)
		if !ok {
			return nil, goparsing.ErrorFor(goparsing.CodeBackedEnumType, map[string]any{"expected": "string", "given": goparsing.DataType(v)})
		}
		given = s
	} else {
		_, isBool := v.(bool)
		n, ok := toInt(v)
		if isBool || !ok {
			return nil, goparsing.ErrorFor(goparsing.CodeBackedEnumType, map[string]any{"expected": "int", "given": goparsing.DataType(v)})
		}
		given = n
	}
	for i, val := range c.values() {
		if val == given {
			return c.cases[i], nil
		}
	}
	return nil, goparsing.ErrorFor(goparsing.CodeBackedEnumValue, map[string]any{"cases": c.values(), "given": given})
}

func (c enumChecker[E]) Describe() (*js.Schema, error) {
	typ := "integer"
	if c.stringBacked() {
		typ = "string"
	}
	return &js.Schema{Type: typ, Enum: c.values()}, nil
}
