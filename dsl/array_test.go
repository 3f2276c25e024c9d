package dsl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goparsing "github.com/reoring/goparsing"
	g "github.com/reoring/goparsing/dsl"
)

func TestArray(t *testing.T) {
	s := g.Array(g.String().ToInt())
	assert.Equal(t, []any{1, 2}, parsed(t, s, []string{"1", "2"}))
	assert.Equal(t, []any{}, parsed(t, s, []any{}))

	en := failure(t, s, "1,2")
	assert.Equal(t, goparsing.CodeArrayType, en.Error.Code())
	assert.Equal(t, `Type should be "array", "string" given`, en.Error.Message())
}

func TestArray_ReportsEveryElement(t *testing.T) {
	res := g.Array(g.Int()).SafeParse(context.Background(), []any{1, "a", 3, true})
	require.False(t, res.Success)

	en := res.Error.Errors().Entries()
	require.Len(t, en, 2)
	assert.Equal(t, "1", en[0].Path)
	assert.Equal(t, "3", en[1].Path)
	assert.Equal(t, goparsing.CodeIntType, en[1].Error.Code())
}

func TestArray_NestedPaths(t *testing.T) {
	s := g.Array(g.Array(g.Int()))
	en := failure(t, s, []any{[]any{1}, []any{2, "x"}})
	assert.Equal(t, "1.1", en.Path)
}

func TestArray_Rules(t *testing.T) {
	s := g.Array(g.String()).MinLength(1).MaxLength(2)
	en := failure(t, s, []any{})
	assert.Equal(t, goparsing.CodeArrayMinLength, en.Error.Code())
	assert.Equal(t, "Min length 1, 0 given", en.Error.Message())
	assert.Equal(t, goparsing.CodeArrayMaxLength, failure(t, s, []any{"a", "b", "c"}).Error.Code())
	assert.Equal(t, goparsing.CodeArrayLength, failure(t, g.Array(g.Int()).Length(2), []any{1}).Error.Code())

	tags := g.Array(g.String()).Includes("go")
	assert.Equal(t, []any{"rust", "go"}, parsed(t, tags, []any{"rust", "go"}))
	en = failure(t, tags, []any{"rust"})
	assert.Equal(t, goparsing.CodeArrayIncludes, en.Error.Code())
	assert.Equal(t, `["rust"] does not include "go"`, en.Error.Message())

	// element failures are reported before rules run
	en = failure(t, s, []any{1})
	assert.Equal(t, "0", en.Path)
}

func TestTuple(t *testing.T) {
	s := g.Tuple(g.String(), g.Int())
	assert.Equal(t, []any{"a", 1}, parsed(t, s, []any{"a", 1}))

	res := s.SafeParse(context.Background(), []any{1, "a"})
	require.False(t, res.Success)
	en := res.Error.Errors().Entries()
	require.Len(t, en, 2)
	assert.Equal(t, "0", en[0].Path)
	assert.Equal(t, goparsing.CodeStringType, en[0].Error.Code())
	assert.Equal(t, "1", en[1].Path)
	assert.Equal(t, goparsing.CodeIntType, en[1].Error.Code())
}

func TestTuple_Arity(t *testing.T) {
	s := g.Tuple(g.String(), g.String())

	en := failure(t, s, []any{"a"})
	assert.Equal(t, "1", en.Path)
	assert.Equal(t, goparsing.CodeTupleMissingIndex, en.Error.Code())
	assert.Equal(t, goparsing.KindMissingIndex, en.Error.Kind())
	assert.Equal(t, "Missing input at index 1", en.Error.Message())

	res := s.SafeParse(context.Background(), []any{"a", "b", "c", "d"})
	require.False(t, res.Success)
	entries := res.Error.Errors().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].Path)
	assert.Equal(t, goparsing.CodeTupleAdditionalIndex, entries[0].Error.Code())
	assert.Equal(t, "3", entries[1].Path)

	assert.Equal(t, goparsing.CodeTupleType, failure(t, s, map[string]any{}).Error.Code())
}
