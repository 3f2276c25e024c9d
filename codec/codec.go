// Package codec pairs a wire schema and a domain schema with the functions
// converting between them, so a value can be decoded from its wire form and
// encoded back with both sides validated.
package codec

import (
	"context"

	goparsing "github.com/reoring/goparsing"
)

// Func converts a value already accepted by one side of a Codec.
type Func func(ctx context.Context, v any) (any, error)

// Codec is a bidirectional conversion between wire and domain values.
type Codec struct {
	in     goparsing.Schema
	out    goparsing.Schema
	decode Func
	encode Func
}

// New builds a codec. in validates wire values, out validates domain values.
func New(in, out goparsing.Schema, decode, encode Func) *Codec {
	return &Codec{in: in, out: out, decode: decode, encode: encode}
}

func (c *Codec) In() goparsing.Schema  { return c.in }
func (c *Codec) Out() goparsing.Schema { return c.out }

// Decode parses v with In, converts it and parses the result with Out.
// Failures are always reported as a *goparsing.ParseError.
func (c *Codec) Decode(ctx context.Context, v any) (any, error) {
	return c.run(ctx, v, c.in, c.decode, c.out)
}

// Encode parses v with Out, converts it and parses the result with In.
func (c *Codec) Encode(ctx context.Context, v any) (any, error) {
	return c.run(ctx, v, c.out, c.encode, c.in)
}

func (c *Codec) run(ctx context.Context, v any, from goparsing.Schema, fn Func, to goparsing.Schema) (any, error) {
	src, err := from.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	conv, err := fn(ctx, src)
	if err != nil {
		return nil, goparsing.NewParseError(goparsing.ErrorsFrom(err))
	}
	return to.Parse(ctx, conv)
}

// Identity returns a codec that validates with s in both directions and
// leaves values unchanged.
func Identity(s goparsing.Schema) *Codec {
	same := func(_ context.Context, v any) (any, error) { return v, nil }
	return New(s, s, same, same)
}
