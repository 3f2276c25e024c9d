package middleware_test

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goparsing "github.com/reoring/goparsing"
	"github.com/reoring/goparsing/dsl"
	"github.com/reoring/goparsing/middleware"
)

var signup = dsl.Object(
	dsl.Field("email", dsl.String().Email()),
	dsl.Field("items", dsl.Array(dsl.Object(dsl.Field("name", dsl.String().MinLength(1))))),
)

func TestParseInto(t *testing.T) {
	ctx, err := middleware.ParseInto[map[string]any](context.Background(), signup, map[string]any{
		"email": "a@example.com",
		"items": []any{},
	})
	require.NoError(t, err)

	got, ok := middleware.ParsedFromContext[map[string]any](ctx)
	require.True(t, ok)
	assert.Equal(t, "a@example.com", got["email"])

	_, ok = middleware.ParsedFromContext[string](ctx)
	assert.False(t, ok)
}

func TestErrorPayload(t *testing.T) {
	_, err := middleware.ParseInto[map[string]any](context.Background(), signup, map[string]any{
		"email": "a@example.com",
		"items": []any{map[string]any{"name": ""}},
	})
	require.Error(t, err)

	b, err := json.Marshal(middleware.ErrorPayload(err))
	require.NoError(t, err)
	assert.JSONEq(t, `{"problems":[{
		"name": "items[0][name]",
		"reason": "Min length 1, 0 given",
		"details": {"_template": "Min length {{minLength}}, {{given}} given", "minLength": 1, "given": 0}
	}]}`, string(b))
}

func TestErrorPayload_PlainError(t *testing.T) {
	p := middleware.ErrorPayload(errors.New("body too large"))
	problems := p["problems"].([]goparsing.APIProblem)
	require.Len(t, problems, 1)
	assert.Equal(t, "", problems[0].Name)
	assert.Equal(t, "body too large", problems[0].Reason)
}
