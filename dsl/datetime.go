package dsl

import (
	"time"

	goparsing "github.com/reoring/goparsing"
	"github.com/reoring/goparsing/codec"
	js "github.com/reoring/goparsing/jsonschema"
)

// DateTimeSchema accepts time.Time and non-nil *time.Time values and
// outputs a time.Time. Strings convert through String().ToDateTime().
type DateTimeSchema struct {
	goparsing.Node
	c scalarChecker
}

func DateTime() *DateTimeSchema {
	c := newScalar(goparsing.CodeDateTimeType, js.Schema{Type: "string", Format: "date-time"}, func(v any) (any, bool) {
		switch t := v.(type) {
		case time.Time:
			return t, true
		case *time.Time:
			if t != nil {
				return *t, true
			}
		}
		return nil, false
	})
	return &DateTimeSchema{Node: goparsing.NewNode(c), c: c}
}

func (s *DateTimeSchema) bound(code, name string, at time.Time, ok func(time.Time) bool) *DateTimeSchema {
	fn := rule(goparsing.CodeDateTimeType, code, map[string]any{name: codec.FormatRFC3339(at)}, ok,
		func(v time.Time) any { return codec.FormatRFC3339(v) })
	return &DateTimeSchema{Node: s.Node.WithPostParse(fn), c: s.c}
}

// From rejects values before at.
func (s *DateTimeSchema) From(at time.Time) *DateTimeSchema {
	return s.bound(goparsing.CodeDateTimeFrom, "from", at, func(v time.Time) bool { return !v.Before(at) })
}

// To rejects values after at.
func (s *DateTimeSchema) To(at time.Time) *DateTimeSchema {
	return s.bound(goparsing.CodeDateTimeTo, "to", at, func(v time.Time) bool { return !v.After(at) })
}

// ToInt converts to Unix seconds.
func (s *DateTimeSchema) ToInt() *IntSchema {
	i := Int()
	i.Node = i.Node.WithPreParse(convertFrom(s, func(v time.Time) (any, error) { return int(v.Unix()), nil }))
	return i
}

// ToString formats with layout, or as UTC RFC3339 with trimmed fractional
// seconds when layout is empty.
func (s *DateTimeSchema) ToString(layout string) *StringSchema {
	str := String()
	str.Node = str.Node.WithPreParse(convertFrom(s, func(v time.Time) (any, error) {
		if layout == "" {
			return codec.FormatRFC3339(v), nil
		}
		return v.Format(layout), nil
	}))
	return str
}
