package dsl_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goparsing "github.com/reoring/goparsing"
	g "github.com/reoring/goparsing/dsl"
)

// failure parses v with s and returns the single reported entry.
func failure(t *testing.T, s goparsing.Schema, v any) goparsing.Entry {
	t.Helper()
	res := s.SafeParse(context.Background(), v)
	require.False(t, res.Success, "expected failure for %#v", v)
	en := res.Error.Errors().Entries()
	require.Len(t, en, 1, res.Error.Error())
	return en[0]
}

func parsed(t *testing.T, s goparsing.Schema, v any) any {
	t.Helper()
	out, err := s.Parse(context.Background(), v)
	require.NoError(t, err)
	return out
}

type nickname string

func TestString(t *testing.T) {
	assert.Equal(t, "hello", parsed(t, g.String(), "hello"))
	assert.Equal(t, "bob", parsed(t, g.String(), nickname("bob")))

	en := failure(t, g.String(), 1)
	assert.Equal(t, goparsing.CodeStringType, en.Error.Code())
	assert.Equal(t, `Type should be "string", "int" given`, en.Error.Message())

	en = failure(t, g.String(), json.Number("1"))
	assert.Equal(t, goparsing.CodeStringType, en.Error.Code())

	en = failure(t, g.String(), nil)
	assert.Equal(t, `Type should be "string", "null" given`, en.Error.Message())
}

func TestString_Rules(t *testing.T) {
	s := g.String().MinLength(2).MaxLength(4)
	assert.Equal(t, "abc", parsed(t, s, "abc"))

	en := failure(t, s, "a")
	assert.Equal(t, goparsing.CodeStringMinLength, en.Error.Code())
	assert.Equal(t, "Min length 2, 1 given", en.Error.Message())

	en = failure(t, s, "abcde")
	assert.Equal(t, goparsing.CodeStringMaxLength, en.Error.Code())

	// length counts characters, not bytes
	assert.Equal(t, "日本", parsed(t, g.String().Length(2), "日本"))

	assert.Equal(t, goparsing.CodeStringIncludes, failure(t, g.String().Includes("@"), "ab").Error.Code())
	assert.Equal(t, goparsing.CodeStringStartsWith, failure(t, g.String().StartsWith("x"), "ab").Error.Code())
	assert.Equal(t, goparsing.CodeStringEndsWith, failure(t, g.String().EndsWith("x"), "ab").Error.Code())

	match := g.String().Match(regexp.MustCompile(`^[a-z]+$`))
	assert.Equal(t, "abc", parsed(t, match, "abc"))
	en = failure(t, match, "ABC")
	assert.Equal(t, goparsing.CodeStringMatch, en.Error.Code())
	assert.Equal(t, `"ABC" does not match "^[a-z]+$"`, en.Error.Message())

	assert.Equal(t, "a.b@example.com", parsed(t, g.String().Email(), "a.b@example.com"))
	assert.Equal(t, goparsing.CodeStringEmail, failure(t, g.String().Email(), "nope").Error.Code())

	id := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	assert.Equal(t, id, parsed(t, g.String().UUID(), id))
	assert.Equal(t, goparsing.CodeStringUUID, failure(t, g.String().UUID(), "{"+id+"}").Error.Code())
}

func TestString_RulesAreIndependent(t *testing.T) {
	base := g.String().MinLength(1)
	strict := base.MaxLength(2)

	assert.Equal(t, "abcdef", parsed(t, base, "abcdef"))
	assert.Equal(t, goparsing.CodeStringMaxLength, failure(t, strict, "abcdef").Error.Code())
}

func TestString_Transforms(t *testing.T) {
	s := g.String().Trim().ToLower().MinLength(1)
	assert.Equal(t, "mixed", parsed(t, s, "  MiXeD "))
	assert.Equal(t, goparsing.CodeStringMinLength, failure(t, s, "   ").Error.Code())
	assert.Equal(t, "UP", parsed(t, g.String().ToUpper(), "up"))
}

func TestString_ToInt(t *testing.T) {
	s := g.String().ToInt()
	assert.Equal(t, 28, parsed(t, s, "28"))
	assert.Equal(t, -3, parsed(t, s, "-3"))

	for _, in := range []string{"28.0", " 28", "028", "abc", ""} {
		en := failure(t, s, in)
		assert.Equal(t, goparsing.CodeStringInt, en.Error.Code(), "input %q", in)
		assert.Equal(t, goparsing.KindConversion, en.Error.Kind())
	}

	// the source schema still rejects non-strings
	assert.Equal(t, goparsing.CodeStringType, failure(t, s, 28).Error.Code())

	// rules apply to the converted value
	adult := g.String().ToInt().Gte(18)
	assert.Equal(t, goparsing.CodeIntGte, failure(t, adult, "17").Error.Code())
}

func TestString_OtherConversions(t *testing.T) {
	assert.Equal(t, 1.5, parsed(t, g.String().ToFloat(), "1.5"))
	assert.Equal(t, goparsing.CodeStringFloat, failure(t, g.String().ToFloat(), "x").Error.Code())

	assert.Equal(t, true, parsed(t, g.String().ToBool(), "true"))
	assert.Equal(t, false, parsed(t, g.String().ToBool(), "0"))
	assert.Equal(t, goparsing.CodeStringBool, failure(t, g.String().ToBool(), "maybe").Error.Code())

	at := parsed(t, g.String().ToDateTime(), "2024-01-02T03:04:05Z").(time.Time)
	assert.True(t, at.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
	day := parsed(t, g.String().ToDateTime("2006-01-02"), "2024-01-02").(time.Time)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, goparsing.CodeStringDateTime, failure(t, g.String().ToDateTime("2006-01-02"), "02/01/2024").Error.Code())

	d := parsed(t, g.String().ToDecimal(), "10.25").(decimal.Decimal)
	assert.True(t, d.Equal(decimal.RequireFromString("10.25")))
	assert.Equal(t, goparsing.CodeStringDecimal, failure(t, g.String().ToDecimal(), "ten").Error.Code())
}

func TestBool(t *testing.T) {
	assert.Equal(t, true, parsed(t, g.Bool(), true))
	assert.Equal(t, goparsing.CodeBoolType, failure(t, g.Bool(), "true").Error.Code())
	assert.Equal(t, 1, parsed(t, g.Bool().ToInt(), true))
	assert.Equal(t, "false", parsed(t, g.Bool().ToString(), false))
}

func TestDateTime(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	s := g.DateTime().From(from).To(to)

	mid := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mid, parsed(t, s, mid))
	assert.Equal(t, mid, parsed(t, s, &mid))

	en := failure(t, s, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, goparsing.CodeDateTimeFrom, en.Error.Code())
	assert.Equal(t, `From "2024-01-01T00:00:00Z", "2023-06-01T00:00:00Z" given`, en.Error.Message())
	assert.Equal(t, goparsing.CodeDateTimeTo, failure(t, s, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Error.Code())
	assert.Equal(t, goparsing.CodeDateTimeType, failure(t, s, "2024-06-01").Error.Code())

	assert.Equal(t, int(mid.Unix()), parsed(t, g.DateTime().ToInt(), mid))
	assert.Equal(t, "2024-06-01T00:00:00Z", parsed(t, g.DateTime().ToString(""), mid))
	assert.Equal(t, "2024-06-01", parsed(t, g.DateTime().ToString("2006-01-02"), mid))
}
