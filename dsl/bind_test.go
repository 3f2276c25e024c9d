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

type address struct {
	City string `json:"city"`
}

type member struct {
	Name     string            `json:"name"`
	Age      uint8             `goparsing:"name=age_years"`
	Nick     *string           `json:"nick,omitempty"`
	Tags     []string          `json:"tags"`
	Scores   map[string]int    `json:"scores"`
	Home     address           `json:"home"`
	Labels   map[string]string `json:"-"`
	Internal string
}

func memberSchema() *g.ObjectSchema {
	return g.Object(
		g.Field("name", g.String()),
		g.Field("age_years", g.Int().NonNegative()),
		g.Field("nick", g.String().Nullable()),
		g.Field("tags", g.Array(g.String())),
		g.Field("scores", g.Record(g.Int())),
		g.Field("home", g.MustBind[address](g.Object(g.Field("city", g.String())))),
		g.Field("Internal", g.String()),
	).Optional("Internal")
}

func TestBind(t *testing.T) {
	s := g.MustBind[member](memberSchema())
	out := parsed(t, s, map[string]any{
		"name":      "ann",
		"age_years": json.Number("42"),
		"nick":      "a",
		"tags":      []any{"x", "y"},
		"scores":    map[string]any{"go": 3},
		"home":      map[string]any{"city": "Kyoto"},
		"Internal":  "i",
	})
	nick := "a"
	assert.Equal(t, member{
		Name:     "ann",
		Age:      42,
		Nick:     &nick,
		Tags:     []string{"x", "y"},
		Scores:   map[string]int{"go": 3},
		Home:     address{City: "Kyoto"},
		Internal: "i",
	}, out)

	m, err := goparsing.ParseAs[member](context.Background(), s, map[string]any{
		"name": "bob", "age_years": 1, "nick": nil, "tags": []any{}, "scores": map[string]any{}, "home": map[string]any{"city": "Oslo"},
	})
	require.NoError(t, err)
	assert.Nil(t, m.Nick)
	assert.Equal(t, "Oslo", m.Home.City)
}

func TestBind_Pointer(t *testing.T) {
	s := g.MustBind[*address](g.Object(g.Field("city", g.String())))
	assert.Equal(t, &address{City: "Paris"}, parsed(t, s, map[string]any{"city": "Paris"}))
}

func TestBind_MismatchReportedAtKey(t *testing.T) {
	s := g.MustBind[member](g.Object(
		g.Field("name", g.Int()),
		g.Field("age_years", g.Int()),
	))
	en := entries(t, s, map[string]any{"name": 1, "age_years": 300})
	require.Len(t, en, 2)
	assert.Equal(t, "name", en[0].Path)
	assert.Equal(t, goparsing.CodeObjectBind, en[0].Error.Code())
	assert.Equal(t, goparsing.KindTypeMismatch, en[0].Error.Kind())
	assert.Equal(t, `Cannot bind "int" to "string"`, en[0].Error.Message())
	assert.Equal(t, "age_years", en[1].Path)
}

func TestBind_FieldFailuresComeFirst(t *testing.T) {
	en := entries(t, g.MustBind[member](memberSchema()), map[string]any{"name": 1})
	for _, e := range en {
		assert.NotEqual(t, goparsing.CodeObjectBind, e.Error.Code())
	}
}

func TestBind_RequiresStruct(t *testing.T) {
	_, err := g.Bind[map[string]any](g.Object())
	assert.True(t, errors.Is(err, goparsing.ErrInvalidSchema))
	assert.Panics(t, func() { g.MustBind[int](g.Object()) })
}
