package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goparsing "github.com/reoring/goparsing"
	"github.com/reoring/goparsing/dsl"
	"github.com/reoring/goparsing/rules"
)

func order(rs ...rules.Rule) goparsing.Schema {
	return dsl.Object(
		dsl.Field("status", dsl.String()),
		dsl.Field("total", dsl.Int()),
		dsl.Field("items", dsl.Array(dsl.Object(
			dsl.Field("sku", dsl.String()),
			dsl.Field("qty", dsl.Int()),
		))),
	).Refine(rules.Refinement(rs...))
}

func item(sku string) map[string]any { return map[string]any{"sku": sku, "qty": 1} }

func parseEntries(t *testing.T, s goparsing.Schema, v map[string]any) []goparsing.Entry {
	t.Helper()
	res := s.SafeParse(context.Background(), v)
	if res.Success {
		return nil
	}
	return res.Error.Errors().Entries()
}

func TestIfThen(t *testing.T) {
	s := order(rules.If("status", rules.Eq, "shipped").Then(rules.AtLeastOne("items")))

	assert.Empty(t, parseEntries(t, s, map[string]any{"status": "draft", "total": 0, "items": []any{}}))

	en := parseEntries(t, s, map[string]any{"status": "shipped", "total": 0, "items": []any{}})
	require.Len(t, en, 1)
	assert.Equal(t, "items", en[0].Path)
	assert.Equal(t, goparsing.CodeRulesAtLeastOne, en[0].Error.Code())
	assert.Equal(t, goparsing.KindConstraint, en[0].Error.Kind())
}

func TestConditionalComposition(t *testing.T) {
	big := rules.If("total", rules.Ge, 100)
	shipped := rules.If("status", rules.Eq, "shipped")
	s := order(big.And(shipped).Then(rules.AtLeastOne("items")))

	assert.Empty(t, parseEntries(t, s, map[string]any{"status": "shipped", "total": 99, "items": []any{}}))
	assert.Len(t, parseEntries(t, s, map[string]any{"status": "shipped", "total": 100, "items": []any{}}), 1)

	either := order(big.Or(rules.If("status", rules.Ne, "draft")).Then(rules.AtLeastOne("items")))
	assert.Len(t, parseEntries(t, either, map[string]any{"status": "paid", "total": 0, "items": []any{}}), 1)
	assert.Empty(t, parseEntries(t, either, map[string]any{"status": "draft", "total": 0, "items": []any{}}))

	// a missing path never satisfies a predicate
	assert.Empty(t, parseEntries(t, order(rules.If("coupon", rules.Eq, nil).Then(rules.AtLeastOne("items"))),
		map[string]any{"status": "draft", "total": 0, "items": []any{}}))
}

func TestUniqueBy(t *testing.T) {
	s := order(rules.UniqueBy("items", "sku"))
	assert.Empty(t, parseEntries(t, s, map[string]any{"status": "x", "total": 1, "items": []any{item("a"), item("b")}}))

	en := parseEntries(t, s, map[string]any{"status": "x", "total": 1, "items": []any{item("a"), item("b"), item("a"), item("a")}})
	require.Len(t, en, 2)
	assert.Equal(t, "items.2.sku", en[0].Path)
	assert.Equal(t, "items.3.sku", en[1].Path)
	assert.Equal(t, `Duplicate value "a", first seen at index 0`, en[0].Error.Message())
}

func TestAndOr(t *testing.T) {
	both := order(rules.And(rules.AtLeastOne("items"), rules.UniqueBy("items", "sku")))
	assert.Len(t, parseEntries(t, both, map[string]any{"status": "x", "total": 1, "items": []any{}}), 1)

	one := order(rules.Or(rules.AtLeastOne("items"), rules.If("total", rules.Eq, 1).Then()))
	assert.Empty(t, parseEntries(t, one, map[string]any{"status": "x", "total": 1, "items": []any{}}))
}

func TestRulesRunAfterFieldChecks(t *testing.T) {
	s := order(rules.AtLeastOne("items"))
	en := parseEntries(t, s, map[string]any{"status": 1, "total": 1, "items": []any{}})
	require.Len(t, en, 1)
	assert.Equal(t, "status", en[0].Path)
}
