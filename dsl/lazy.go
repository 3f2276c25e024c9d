package dsl

import (
	"context"
	"sync"

	goparsing "github.com/reoring/goparsing"
	js "github.com/reoring/goparsing/jsonschema"
)

// LazySchema defers building its schema until first use, which allows a
// schema to refer to itself.
//
// Configuration methods panic: configure the schema the factory returns
// instead.
type LazySchema struct {
	factory func() goparsing.Schema
	once    sync.Once
	schema  goparsing.Schema
}

// Lazy wraps factory. The factory runs at most once, on the first Parse,
// and its result is reused by every later call.
//
//	var node goparsing.Schema
//	node = dsl.Object(
//		dsl.Field("name", dsl.String()),
//		dsl.Field("children", dsl.Array(dsl.Lazy(func() goparsing.Schema { return node }))),
//	)
func Lazy(factory func() goparsing.Schema) *LazySchema {
	return &LazySchema{factory: factory}
}

// Resolve returns the wrapped schema, running the factory on first call.
// It panics with a *goparsing.ConfigError when the factory returns nil.
func (l *LazySchema) Resolve() goparsing.Schema {
	l.once.Do(func() {
		l.schema = l.factory()
		goparsing.Logger().Debug().Msg("goparsing: lazy schema resolved")
	})
	if l.schema == nil {
		panic(&goparsing.ConfigError{Op: "dsl.Lazy", Reason: "factory returned a nil schema", Err: goparsing.ErrInvalidSchema})
	}
	return l.schema
}

func (l *LazySchema) Parse(ctx context.Context, v any) (any, error) {
	return l.Resolve().Parse(ctx, v)
}

func (l *LazySchema) SafeParse(ctx context.Context, v any) goparsing.Result {
	return l.Resolve().SafeParse(ctx, v)
}

func unsupported(method string) *goparsing.ConfigError {
	return &goparsing.ConfigError{Op: "dsl.Lazy." + method, Reason: "configure the schema returned by the factory", Err: goparsing.ErrUnsupported}
}

func (l *LazySchema) Nullable() goparsing.Schema                         { panic(unsupported("Nullable")) }
func (l *LazySchema) Default(any) goparsing.Schema                       { panic(unsupported("Default")) }
func (l *LazySchema) PreParse(goparsing.PreParseFunc) goparsing.Schema   { panic(unsupported("PreParse")) }
func (l *LazySchema) PostParse(goparsing.PostParseFunc) goparsing.Schema { panic(unsupported("PostParse")) }
func (l *LazySchema) Transform(goparsing.PostParseFunc) goparsing.Schema { panic(unsupported("Transform")) }
func (l *LazySchema) Catch(goparsing.CatchFunc) goparsing.Schema         { panic(unsupported("Catch")) }

// Checker exposes the lazy wrapper for introspection. Resolving is left to
// Parse so projection of recursive schemas terminates.
func (l *LazySchema) Checker() goparsing.Checker { return lazyChecker{l} }
func (l *LazySchema) IsNullable() bool           { return false }
func (l *LazySchema) DefaultValue() (any, bool)  { return nil, false }

type lazyChecker struct{ l *LazySchema }

func (c lazyChecker) Check(ctx context.Context, v any) (any, error) { return c.l.Parse(ctx, v) }

// Describe projects to the empty schema: a recursive graph has no finite
// inline document.
func (c lazyChecker) Describe() (*js.Schema, error) { return &js.Schema{}, nil }
