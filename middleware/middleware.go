// Package middleware adapts parse results to request-scoped plumbing: it
// carries a parsed value through a context and shapes failures as API
// problem payloads.
package middleware

import (
	"context"

	goparsing "github.com/reoring/goparsing"
)

// ctxKeyParsed is the context key under which a parsed value is stored.
// The type parameter keeps keys of different value types apart.
type ctxKeyParsed[T any] struct{}

// ContextWithParsed attaches v to ctx.
func ContextWithParsed[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyParsed[T]{}, v)
}

// ParsedFromContext retrieves the value stored by ContextWithParsed.
func ParsedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyParsed[T]{}).(T)
	return v, ok
}

// ParseInto parses v with s as T and, on success, returns a context
// carrying the result.
func ParseInto[T any](ctx context.Context, s goparsing.Schema, v any) (context.Context, error) {
	out, err := goparsing.ParseAs[T](ctx, s, v)
	if err != nil {
		return ctx, err
	}
	return ContextWithParsed(ctx, out), nil
}

// ErrorPayload shapes err for JSON responses: {"problems": [...]} with one
// API problem per entry of a ParseError. Any other error becomes a single
// problem with an empty name.
func ErrorPayload(err error) map[string]any {
	if pe, ok := goparsing.AsParseError(err); ok {
		return map[string]any{"problems": pe.Errors().APIProblems()}
	}
	return map[string]any{"problems": []goparsing.APIProblem{{
		Reason:  err.Error(),
		Details: map[string]any{},
	}}}
}
