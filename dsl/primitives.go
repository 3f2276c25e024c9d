package dsl

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	goparsing "github.com/reoring/goparsing"
	"github.com/reoring/goparsing/codec"
	js "github.com/reoring/goparsing/jsonschema"
)

var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// StringSchema accepts Go strings (including named string types, which are
// converted to string).
//
// Rule and transform methods return a new *StringSchema; the shared
// configuration methods (Nullable, Default, ...) return a goparsing.Schema,
// so declare rules first.
type StringSchema struct {
	goparsing.Node
	c scalarChecker
}

// String returns a string schema.
func String() *StringSchema {
	c := newScalar(goparsing.CodeStringType, js.Schema{Type: "string"}, func(v any) (any, bool) {
		if s, ok := v.(string); ok {
			return s, true
		}
		return asString(v)
	})
	return &StringSchema{Node: goparsing.NewNode(c), c: c}
}

func asString(v any) (any, bool) {
	if _, ok := v.(interface{ Int64() (int64, error) }); ok {
		// json.Number is a string kind but is not a string input.
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.String {
		return nil, false
	}
	return rv.String(), true
}

func (s *StringSchema) with(fn goparsing.PostParseFunc, annotate func(*js.Schema)) *StringSchema {
	c := s.c.annotate(annotate)
	n := s.Node.WithChecker(c)
	if fn != nil {
		n = n.WithPostParse(fn)
	}
	return &StringSchema{Node: n, c: c}
}

func (s *StringSchema) lengthRule(code, name string, n int, ok func(int) bool, annotate func(*js.Schema)) *StringSchema {
	return s.with(rule(goparsing.CodeStringType, code, map[string]any{name: n},
		func(v string) bool { return ok(utf8.RuneCountInString(v)) },
		func(v string) any { return utf8.RuneCountInString(v) },
	), annotate)
}

// Length requires exactly n characters.
func (s *StringSchema) Length(n int) *StringSchema {
	return s.lengthRule(goparsing.CodeStringLength, "length", n, func(l int) bool { return l == n }, func(d *js.Schema) {
		d.MinLength, d.MaxLength = js.Int(n), js.Int(n)
	})
}

func (s *StringSchema) MinLength(n int) *StringSchema {
	return s.lengthRule(goparsing.CodeStringMinLength, "minLength", n, func(l int) bool { return l >= n }, func(d *js.Schema) {
		d.MinLength = js.Int(n)
	})
}

func (s *StringSchema) MaxLength(n int) *StringSchema {
	return s.lengthRule(goparsing.CodeStringMaxLength, "maxLength", n, func(l int) bool { return l <= n }, func(d *js.Schema) {
		d.MaxLength = js.Int(n)
	})
}

func (s *StringSchema) valueRule(code, name string, arg any, ok func(string) bool, annotate func(*js.Schema)) *StringSchema {
	vars := map[string]any{}
	if name != "" {
		vars[name] = arg
	}
	return s.with(rule(goparsing.CodeStringType, code, vars, ok, func(v string) any { return v }), annotate)
}

func (s *StringSchema) Includes(sub string) *StringSchema {
	return s.valueRule(goparsing.CodeStringIncludes, "includes", sub, func(v string) bool { return strings.Contains(v, sub) }, nil)
}

func (s *StringSchema) StartsWith(prefix string) *StringSchema {
	return s.valueRule(goparsing.CodeStringStartsWith, "startsWith", prefix, func(v string) bool { return strings.HasPrefix(v, prefix) }, nil)
}

func (s *StringSchema) EndsWith(suffix string) *StringSchema {
	return s.valueRule(goparsing.CodeStringEndsWith, "endsWith", suffix, func(v string) bool { return strings.HasSuffix(v, suffix) }, nil)
}

// Match requires re to match the value.
func (s *StringSchema) Match(re *regexp.Regexp) *StringSchema {
	return s.valueRule(goparsing.CodeStringMatch, "pattern", re.String(), re.MatchString, func(d *js.Schema) {
		d.Pattern = re.String()
	})
}

func (s *StringSchema) Email() *StringSchema {
	return s.valueRule(goparsing.CodeStringEmail, "", nil, emailPattern.MatchString, func(d *js.Schema) {
		d.Format = "email"
	})
}

// UUID requires the canonical 36 character hyphenated form.
func (s *StringSchema) UUID() *StringSchema {
	return s.valueRule(goparsing.CodeStringUUID, "", nil, func(v string) bool {
		if len(v) != 36 {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	}, func(d *js.Schema) {
		d.Format = "uuid"
	})
}

func (s *StringSchema) Trim() *StringSchema {
	return s.with(transform(goparsing.CodeStringType, strings.TrimSpace), nil)
}

func (s *StringSchema) ToLower() *StringSchema {
	return s.with(transform(goparsing.CodeStringType, strings.ToLower), nil)
}

func (s *StringSchema) ToUpper() *StringSchema {
	return s.with(transform(goparsing.CodeStringType, strings.ToUpper), nil)
}

func conversionError(code, given string) goparsing.Error {
	return goparsing.ErrorFor(code, map[string]any{"given": given})
}

// ToInt parses the value with s and converts it to an int. Only canonical
// decimal integers convert ("28" does, "28.0", " 28" and "028" do not).
func (s *StringSchema) ToInt() *IntSchema {
	i := Int()
	i.Node = i.Node.WithPreParse(convertFrom(s, func(v string) (any, error) {
		n, err := cast.ToIntE(v)
		if err != nil || strconv.Itoa(n) != v {
			return nil, conversionError(goparsing.CodeStringInt, v)
		}
		return n, nil
	}))
	return i
}

// ToFloat parses the value with s and converts it to a float64.
func (s *StringSchema) ToFloat() *FloatSchema {
	f := Float()
	f.Node = f.Node.WithPreParse(convertFrom(s, func(v string) (any, error) {
		if strings.TrimSpace(v) != v || v == "" {
			return nil, conversionError(goparsing.CodeStringFloat, v)
		}
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, conversionError(goparsing.CodeStringFloat, v)
		}
		return n, nil
	}))
	return f
}

// ToBool parses the value with s and converts it to a bool using the
// strconv.ParseBool spellings ("1", "t", "true", "0", "f", "false", ...).
func (s *StringSchema) ToBool() *BoolSchema {
	b := Bool()
	b.Node = b.Node.WithPreParse(convertFrom(s, func(v string) (any, error) {
		n, err := cast.ToBoolE(v)
		if err != nil || v == "" {
			return nil, conversionError(goparsing.CodeStringBool, v)
		}
		return n, nil
	}))
	return b
}

// ToDateTime parses the value with s and converts it to a time.Time. With
// no layouts, RFC3339 and the formats understood by
// cast.ToTimeE are tried.
func (s *StringSchema) ToDateTime(layouts ...string) *DateTimeSchema {
	d := DateTime()
	d.Node = d.Node.WithPreParse(convertFrom(s, func(v string) (any, error) {
		if len(layouts) == 0 {
			if t, err := codec.ParseRFC3339(v); err == nil {
				return t, nil
			}
			t, err := cast.ToTimeE(v)
			if err != nil || v == "" {
				return nil, conversionError(goparsing.CodeStringDateTime, v)
			}
			return t, nil
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return nil, conversionError(goparsing.CodeStringDateTime, v)
	}))
	return d
}

// ToDecimal parses the value with s and converts it to a decimal.Decimal.
func (s *StringSchema) ToDecimal() *DecimalSchema {
	d := Decimal()
	d.Node = d.Node.WithPreParse(convertFrom(s, func(v string) (any, error) {
		n, err := decimal.NewFromString(v)
		if err != nil {
			return nil, conversionError(goparsing.CodeStringDecimal, v)
		}
		return n, nil
	}))
	return d
}

// BoolSchema accepts Go bools.
type BoolSchema struct {
	goparsing.Node
	c scalarChecker
}

func Bool() *BoolSchema {
	c := newScalar(goparsing.CodeBoolType, js.Schema{Type: "boolean"}, func(v any) (any, bool) {
		b, ok := v.(bool)
		return b, ok
	})
	return &BoolSchema{Node: goparsing.NewNode(c), c: c}
}

// ToInt converts true to 1 and false to 0.
func (b *BoolSchema) ToInt() *IntSchema {
	i := Int()
	i.Node = i.Node.WithPreParse(convertFrom(b, func(v bool) (any, error) {
		if v {
			return 1, nil
		}
		return 0, nil
	}))
	return i
}

// ToString converts to "true" or "false".
func (b *BoolSchema) ToString() *StringSchema {
	s := String()
	s.Node = s.Node.WithPreParse(convertFrom(b, func(v bool) (any, error) {
		return strconv.FormatBool(v), nil
	}))
	return s
}
