package codec

import (
	"context"
	"time"

	goparsing "github.com/reoring/goparsing"
)

// TimeRFC3339 converts between RFC3339 strings and time.Time. Encoding
// always produces the canonical UTC form.
func TimeRFC3339() *Codec {
	return New(wireString, domainTime,
		func(_ context.Context, v any) (any, error) {
			t, err := ParseRFC3339(v.(string))
			if err != nil {
				return nil, goparsing.ErrorFor(goparsing.CodeStringDateTime, map[string]any{"given": v})
			}
			return t, nil
		},
		func(_ context.Context, v any) (any, error) { return FormatRFC3339(v.(time.Time)), nil },
	)
}

var (
	wireString goparsing.Schema = goparsing.NewNode(goparsing.CheckerFunc(func(_ context.Context, v any) (any, error) {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return nil, goparsing.ErrorFor(goparsing.CodeStringType, map[string]any{"given": goparsing.DataType(v)})
	}))
	domainTime goparsing.Schema = goparsing.NewNode(goparsing.CheckerFunc(func(_ context.Context, v any) (any, error) {
		if t, ok := v.(time.Time); ok {
			return t, nil
		}
		return nil, goparsing.ErrorFor(goparsing.CodeDateTimeType, map[string]any{"given": goparsing.DataType(v)})
	}))
)

// ParseRFC3339 accepts RFC3339 with or without fractional seconds.
func ParseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

// FormatRFC3339 renders t in UTC with trailing fractional zeros trimmed.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
