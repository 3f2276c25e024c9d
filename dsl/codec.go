package dsl

import (
	"context"

	goparsing "github.com/reoring/goparsing"
	"github.com/reoring/goparsing/codec"
	js "github.com/reoring/goparsing/jsonschema"
)

// CodecSchema decodes wire values through a codec.Codec, so a codec can sit
// anywhere in a schema tree. The output is the decoded domain value.
type CodecSchema struct {
	goparsing.Node
	c *codec.Codec
}

// Codec wraps c as a schema.
func Codec(c *codec.Codec) *CodecSchema {
	return &CodecSchema{Node: goparsing.NewNode(codecChecker{c: c}), c: c}
}

// Encode converts a domain value back to its wire form.
func (s *CodecSchema) Encode(ctx context.Context, v any) (any, error) { return s.c.Encode(ctx, v) }

type codecChecker struct{ c *codec.Codec }

func (k codecChecker) Check(ctx context.Context, v any) (any, error) { return k.c.Decode(ctx, v) }

// Describe documents the wire side.
func (k codecChecker) Describe() (*js.Schema, error) { return goparsing.JSONSchema(k.c.In()) }
