package dsl

import (
	"context"
	"math"
	"math/big"
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"

	goparsing "github.com/reoring/goparsing"
)

// typeError builds the "<variant>.type" failure for v.
func typeError(code string, v any) goparsing.Error {
	return goparsing.ErrorFor(code, map[string]any{"given": goparsing.DataType(v)})
}

// rule builds a post-parse hook that asserts the value type T and rejects it
// with code when ok reports false. vars are the rule variables; "given" is
// filled from given(v).
func rule[T any](typeCode, code string, vars map[string]any, ok func(T) bool, given func(T) any) goparsing.PostParseFunc {
	return func(_ context.Context, v any) (any, error) {
		t, isT := v.(T)
		if !isT {
			return nil, typeError(typeCode, v)
		}
		if ok(t) {
			return t, nil
		}
		all := make(map[string]any, len(vars)+1)
		for k, x := range vars {
			all[k] = x
		}
		all["given"] = given(t)
		return nil, goparsing.ErrorFor(code, all)
	}
}

// transform builds a post-parse hook rewriting a value of type T.
func transform[T any](typeCode string, fn func(T) T) goparsing.PostParseFunc {
	return func(_ context.Context, v any) (any, error) {
		t, ok := v.(T)
		if !ok {
			return nil, typeError(typeCode, v)
		}
		return fn(t), nil
	}
}

// convertFrom builds the pre-parse hook of a conversion: the input is first
// parsed by src, then converted by fn.
func convertFrom[T any](src goparsing.Schema, fn func(T) (any, error)) goparsing.PreParseFunc {
	return func(ctx context.Context, v any) (any, error) {
		out, err := src.Parse(ctx, v)
		if err != nil {
			return nil, err
		}
		if out == nil {
			return nil, nil
		}
		t, ok := out.(T)
		if !ok {
			return out, nil
		}
		return fn(t)
	}
}

// toInt converts integer kinds, integral floats and integral json.Number
// values to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}
		return int(i), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		return floatToInt(rv.Float())
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

// integral returns v as an exact integer when it is an integer kind, an
// integral float, or a json.Number holding an integer.
func integral(v any) (*big.Int, bool) {
	if n, ok := v.(json.Number); ok {
		if i, ok := new(big.Int).SetString(n.String(), 10); ok {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return integralFloat(f)
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return integralFloat(rv.Float())
	}
	return nil, false
}

func integralFloat(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	i, _ := big.NewFloat(f).Int(nil)
	return i, true
}

// toFloat converts integer kinds, float kinds and json.Number to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// formatFloat renders f without exponent and without trailing zeros.
func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
