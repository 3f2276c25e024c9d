package goparsing

import (
	"context"
	"reflect"
)

// Schema is the contract shared by every schema variant.
//
// Parse resolves null and default handling, runs pre-parse hooks, the
// variant check and post-parse hooks, and falls back to the catch handler
// on failure. On failure the returned error is a *ParseError.
//
// Configuration methods never mutate the receiver; they return a new Schema
// carrying the extra configuration.
type Schema interface {
	Parse(ctx context.Context, v any) (any, error)
	// SafeParse is Parse folded into a Result. It never panics for
	// validation failures.
	SafeParse(ctx context.Context, v any) Result

	Nullable() Schema
	Default(v any) Schema
	PreParse(fn PreParseFunc) Schema
	PostParse(fn PostParseFunc) Schema
	// Transform is PostParse under a name that reads better for value
	// rewriting.
	Transform(fn PostParseFunc) Schema
	Catch(fn CatchFunc) Schema
}

// PreParseFunc rewrites the input before the variant check runs.
type PreParseFunc func(ctx context.Context, v any) (any, error)

// PostParseFunc rewrites or rejects a successfully checked value.
type PostParseFunc func(ctx context.Context, v any) (any, error)

// CatchFunc recovers from a failed parse. input is the value the schema
// received after default substitution.
type CatchFunc func(ctx context.Context, input any, err *ParseError) (any, error)

// Checker performs the variant-specific part of a parse: type check,
// delegation to children and merging of their failures.
type Checker interface {
	Check(ctx context.Context, v any) (any, error)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context, v any) (any, error)

func (f CheckerFunc) Check(ctx context.Context, v any) (any, error) { return f(ctx, v) }

// Result is the outcome of SafeParse. Success is true iff Error is nil.
type Result struct {
	Data    any
	Error   *ParseError
	Success bool
}

// TypedResult is the outcome of SafeParseAs.
type TypedResult[T any] struct {
	Data    T
	Error   *ParseError
	Success bool
}

// ParseAs parses v with s and asserts the output type.
// A type mismatch fails with a "parse.as" error at the root path.
func ParseAs[T any](ctx context.Context, s Schema, v any) (T, error) {
	var zero T
	out, err := s.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	if out == nil && nilable(reflect.TypeOf((*T)(nil)).Elem()) {
		return zero, nil
	}
	tv, ok := out.(T)
	if !ok {
		return zero, NewParseError(NewErrors().Add("", ErrorFor(CodeParseAs, map[string]any{
			"expected": reflect.TypeOf((*T)(nil)).Elem().String(),
			"given":    DataType(out),
		})))
	}
	return tv, nil
}

// SafeParseAs is ParseAs folded into a TypedResult.
func SafeParseAs[T any](ctx context.Context, s Schema, v any) TypedResult[T] {
	out, err := ParseAs[T](ctx, s, v)
	if err != nil {
		pe, ok := AsParseError(err)
		if !ok {
			pe = NewParseError(ErrorsFrom(err))
		}
		return TypedResult[T]{Error: pe}
	}
	return TypedResult[T]{Data: out, Success: true}
}

// MustParse is Parse that panics on failure. Intended for tests and
// package-level fixtures.
func MustParse(ctx context.Context, s Schema, v any) any {
	out, err := s.Parse(ctx, v)
	if err != nil {
		panic(err)
	}
	return out
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
