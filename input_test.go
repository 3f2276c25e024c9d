package goparsing_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goparsing "github.com/reoring/goparsing"
)

func identity() goparsing.Schema { return goparsing.NewNode(nil) }

func TestParseJSON_KeepsNumbers(t *testing.T) {
	out, err := goparsing.ParseJSON(context.Background(), identity(), []byte(`{"id": 9007199254740993, "tags": ["a"]}`))
	require.NoError(t, err)
	m := out.(map[string]any)
	assert.Equal(t, json.Number("9007199254740993"), m["id"])
	assert.Equal(t, []any{"a"}, m["tags"])
}

func TestParseJSON_DecodeErrors(t *testing.T) {
	for _, in := range []string{`{"a":`, `{"a":1} {"b":2}`, ``} {
		_, err := goparsing.ParseJSON(context.Background(), identity(), []byte(in))
		pe, ok := goparsing.AsParseError(err)
		require.True(t, ok, "input %q", in)
		e := pe.Errors().Entries()[0].Error
		assert.Equal(t, goparsing.CodeInputDecode, e.Code())
		assert.Contains(t, e.Variables(), "reason")
	}
}

func TestParseYAML_NormalisesMaps(t *testing.T) {
	doc := []byte(`
name: demo
nested:
  1: one
  list:
    - k: v
`)
	out, err := goparsing.ParseYAML(context.Background(), identity(), doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name": "demo",
		"nested": map[string]any{
			"1":    "one",
			"list": []any{map[string]any{"k": "v"}},
		},
	}, out)
}

func TestParseYAML_DecodeError(t *testing.T) {
	_, err := goparsing.ParseYAML(context.Background(), identity(), []byte("a: [1, 2"))
	pe, ok := goparsing.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, goparsing.CodeInputDecode, pe.Errors().Entries()[0].Error.Code())
}

func TestParseYAML_EmptyDocumentIsNil(t *testing.T) {
	out, err := goparsing.ParseYAML(context.Background(), identity(), nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}
