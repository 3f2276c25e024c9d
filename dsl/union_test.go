package dsl_test

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goparsing "github.com/reoring/goparsing"
	g "github.com/reoring/goparsing/dsl"
)

func TestUnion_FirstMatchWins(t *testing.T) {
	s := g.Union(g.Int(), g.String().ToInt(), g.String())
	assert.Equal(t, 28, parsed(t, s, 28))
	assert.Equal(t, 28, parsed(t, s, "28"))
	assert.Equal(t, "x", parsed(t, s, "x"))
}

func TestUnion_Exhausted(t *testing.T) {
	s := g.Union(g.Int(), g.Bool())
	_, err := s.Parse(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, goparsing.ErrUnionExhausted)
	kind, ok := goparsing.ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, goparsing.KindUnionExhausted, kind)

	pe, ok := goparsing.AsParseError(err)
	require.True(t, ok)
	en := pe.Errors().Entries()
	require.Len(t, en, 2)
	assert.Equal(t, goparsing.CodeIntType, en[0].Error.Code())
	assert.Equal(t, goparsing.CodeBoolType, en[1].Error.Code())
	assert.Equal(t, "", en[0].Path)
}

func TestUnion_NestedCandidateErrorsKeepPaths(t *testing.T) {
	s := g.Union(user(), g.Int())
	en := entries(t, s, map[string]any{"name": "", "age": 1})
	require.Len(t, en, 2)
	assert.Equal(t, "name", en[0].Path)
	assert.Equal(t, "", en[1].Path)
}

func TestUnion_PanicsWithoutCandidates(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, goparsing.ErrInvalidSchema))
	}()
	g.Union()
}

func contact() *g.DiscriminatedUnionSchema {
	return g.MustDiscriminatedUnion("type",
		g.Object(g.Field("type", g.Literal("email")), g.Field("address", g.String().Email())),
		g.Object(g.Field("type", g.Literal("phone")), g.Field("number", g.String())).Strict(),
	)
}

func TestDiscriminatedUnion(t *testing.T) {
	out := parsed(t, contact(), map[string]any{"type": "phone", "number": "555"})
	assert.Equal(t, map[string]any{"type": "phone", "number": "555"}, out)

	// only the selected candidate reports errors
	en := failure(t, contact(), map[string]any{"type": "email", "address": "nope"})
	assert.Equal(t, "address", en.Path)
	assert.Equal(t, goparsing.CodeStringEmail, en.Error.Code())
}

func TestDiscriminatedUnion_Failures(t *testing.T) {
	en := failure(t, contact(), map[string]any{"type": "fax"})
	assert.Equal(t, "type", en.Path)
	assert.Equal(t, goparsing.CodeDiscriminatedUnionNoMatch, en.Error.Code())
	assert.Equal(t, goparsing.KindDiscriminatorNoMatch, en.Error.Kind())
	assert.Equal(t, `Discriminator field "type" has no matching schema for "fax"`, en.Error.Message())

	en = failure(t, contact(), map[string]any{"number": "555"})
	assert.Equal(t, "type", en.Path)
	assert.Equal(t, goparsing.CodeDiscriminatedUnionDiscriminatorField, en.Error.Code())
	assert.Equal(t, goparsing.KindDiscriminatorMissing, en.Error.Kind())

	// null reads as absent
	en = failure(t, contact(), map[string]any{"type": nil, "number": "555"})
	assert.Equal(t, "type", en.Path)
	assert.Equal(t, goparsing.CodeDiscriminatedUnionDiscriminatorField, en.Error.Code())

	en = failure(t, contact(), map[string]any{"type": []any{"email"}})
	assert.Equal(t, goparsing.CodeDiscriminatedUnionNoMatch, en.Error.Code())

	en = failure(t, contact(), "email")
	assert.Equal(t, "", en.Path)
	assert.Equal(t, goparsing.CodeDiscriminatedUnionType, en.Error.Code())
}

func TestDiscriminatedUnion_NumericDiscriminator(t *testing.T) {
	s := g.MustDiscriminatedUnion("v",
		g.Object(g.Field("v", g.Literal(1)), g.Field("a", g.String())),
		g.Object(g.Field("v", g.Literal(2)), g.Field("b", g.String())),
	)
	out := parsed(t, s, map[string]any{"v": json.Number("2"), "b": "x"})
	assert.Equal(t, map[string]any{"v": 2, "b": "x"}, out)
}

func TestDiscriminatedUnion_ConfigErrors(t *testing.T) {
	cases := map[string][]goparsing.Schema{
		"no candidates":   nil,
		"not an object":   {g.String()},
		"missing field":   {g.Object(g.Field("kind", g.Literal("a")))},
		"not a literal":   {g.Object(g.Field("type", g.String()))},
		"second is wrong": {g.Object(g.Field("type", g.Literal("a"))), g.Int()},
	}
	for name, cands := range cases {
		_, err := g.DiscriminatedUnion("type", cands...)
		require.Error(t, err, name)
		var ce *goparsing.ConfigError
		require.ErrorAs(t, err, &ce, name)
		assert.Equal(t, "dsl.DiscriminatedUnion", ce.Op, name)
		assert.ErrorIs(t, err, goparsing.ErrInvalidSchema, name)
	}

	// configured objects and literals are still recognised
	_, err := g.DiscriminatedUnion("type",
		g.Object(g.Field("type", g.Literal("a").Default("a"))).Strict().Nullable(),
	)
	assert.NoError(t, err)
}
