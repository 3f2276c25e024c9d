package dsl

import (
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	goparsing "github.com/reoring/goparsing"
	js "github.com/reoring/goparsing/jsonschema"
)

// IntSchema accepts Go integer kinds, integral floats and integral
// json.Number values. The output is always int.
type IntSchema struct {
	goparsing.Node
	c scalarChecker
}

func Int() *IntSchema {
	c := newScalar(goparsing.CodeIntType, js.Schema{Type: "integer"}, func(v any) (any, bool) {
		if _, isBool := v.(bool); isBool {
			return nil, false
		}
		return toInt(v)
	})
	return &IntSchema{Node: goparsing.NewNode(c), c: c}
}

func (s *IntSchema) bound(code, name string, n int, ok func(int) bool, annotate func(*js.Schema)) *IntSchema {
	c := s.c.annotate(annotate)
	fn := rule(goparsing.CodeIntType, code, map[string]any{name: n}, ok, func(v int) any { return v })
	return &IntSchema{Node: s.Node.WithChecker(c).WithPostParse(fn), c: c}
}

func (s *IntSchema) Gt(n int) *IntSchema {
	return s.bound(goparsing.CodeIntGt, "gt", n, func(v int) bool { return v > n }, func(d *js.Schema) {
		d.ExclusiveMinimum = js.Float(float64(n))
	})
}

func (s *IntSchema) Gte(n int) *IntSchema {
	return s.bound(goparsing.CodeIntGte, "gte", n, func(v int) bool { return v >= n }, func(d *js.Schema) {
		d.Minimum = js.Float(float64(n))
	})
}

func (s *IntSchema) Lt(n int) *IntSchema {
	return s.bound(goparsing.CodeIntLt, "lt", n, func(v int) bool { return v < n }, func(d *js.Schema) {
		d.ExclusiveMaximum = js.Float(float64(n))
	})
}

func (s *IntSchema) Lte(n int) *IntSchema {
	return s.bound(goparsing.CodeIntLte, "lte", n, func(v int) bool { return v <= n }, func(d *js.Schema) {
		d.Maximum = js.Float(float64(n))
	})
}

func (s *IntSchema) Positive() *IntSchema    { return s.Gt(0) }
func (s *IntSchema) Negative() *IntSchema    { return s.Lt(0) }
func (s *IntSchema) NonNegative() *IntSchema { return s.Gte(0) }

func (s *IntSchema) ToFloat() *FloatSchema {
	f := Float()
	f.Node = f.Node.WithPreParse(convertFrom(s, func(v int) (any, error) { return float64(v), nil }))
	return f
}

func (s *IntSchema) ToString() *StringSchema {
	str := String()
	str.Node = str.Node.WithPreParse(convertFrom(s, func(v int) (any, error) { return strconv.Itoa(v), nil }))
	return str
}

// FloatSchema accepts Go integer and float kinds and json.Number values. The
// output is always float64.
type FloatSchema struct {
	goparsing.Node
	c scalarChecker
}

func Float() *FloatSchema {
	c := newScalar(goparsing.CodeFloatType, js.Schema{Type: "number"}, func(v any) (any, bool) {
		if _, isBool := v.(bool); isBool {
			return nil, false
		}
		return toFloat(v)
	})
	return &FloatSchema{Node: goparsing.NewNode(c), c: c}
}

func (s *FloatSchema) bound(code, name string, n float64, ok func(float64) bool, annotate func(*js.Schema)) *FloatSchema {
	c := s.c.annotate(annotate)
	fn := rule(goparsing.CodeFloatType, code, map[string]any{name: n}, ok, func(v float64) any { return v })
	return &FloatSchema{Node: s.Node.WithChecker(c).WithPostParse(fn), c: c}
}

func (s *FloatSchema) Gt(n float64) *FloatSchema {
	return s.bound(goparsing.CodeFloatGt, "gt", n, func(v float64) bool { return v > n }, func(d *js.Schema) {
		d.ExclusiveMinimum = js.Float(n)
	})
}

func (s *FloatSchema) Gte(n float64) *FloatSchema {
	return s.bound(goparsing.CodeFloatGte, "gte", n, func(v float64) bool { return v >= n }, func(d *js.Schema) {
		d.Minimum = js.Float(n)
	})
}

func (s *FloatSchema) Lt(n float64) *FloatSchema {
	return s.bound(goparsing.CodeFloatLt, "lt", n, func(v float64) bool { return v < n }, func(d *js.Schema) {
		d.ExclusiveMaximum = js.Float(n)
	})
}

func (s *FloatSchema) Lte(n float64) *FloatSchema {
	return s.bound(goparsing.CodeFloatLte, "lte", n, func(v float64) bool { return v <= n }, func(d *js.Schema) {
		d.Maximum = js.Float(n)
	})
}

// ToInt converts integral values to int and rejects the others with
// float.int.
func (s *FloatSchema) ToInt() *IntSchema {
	i := Int()
	i.Node = i.Node.WithPreParse(convertFrom(s, func(v float64) (any, error) {
		n, ok := floatToInt(v)
		if !ok {
			return nil, goparsing.ErrorFor(goparsing.CodeFloatInt, map[string]any{"given": v})
		}
		return n, nil
	}))
	return i
}

func (s *FloatSchema) ToString() *StringSchema {
	str := String()
	str.Node = str.Node.WithPreParse(convertFrom(s, func(v float64) (any, error) { return formatFloat(v), nil }))
	return str
}

// DecimalSchema accepts decimal.Decimal, Go numeric kinds and json.Number
// values and outputs a decimal.Decimal. Strings convert through
// String().ToDecimal().
type DecimalSchema struct {
	goparsing.Node
	c scalarChecker
}

func Decimal() *DecimalSchema {
	c := newScalar(goparsing.CodeDecimalType, js.Schema{Type: "string", Format: "decimal"}, toDecimal)
	return &DecimalSchema{Node: goparsing.NewNode(c), c: c}
}

func toDecimal(v any) (any, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, true
	case *decimal.Decimal:
		if d == nil {
			return nil, false
		}
		return *d, true
	case json.Number:
		n, err := decimal.NewFromString(d.String())
		return n, err == nil
	case bool, nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := decimal.NewFromString(strconv.FormatUint(rv.Uint(), 10))
		return n, err == nil
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(rv.Float()), true
	}
	return nil, false
}

func (s *DecimalSchema) bound(code, name string, n decimal.Decimal, ok func(decimal.Decimal) bool) *DecimalSchema {
	fn := rule(goparsing.CodeDecimalType, code, map[string]any{name: n.String()}, ok, func(v decimal.Decimal) any { return v.String() })
	return &DecimalSchema{Node: s.Node.WithPostParse(fn), c: s.c}
}

func (s *DecimalSchema) Gte(n decimal.Decimal) *DecimalSchema {
	return s.bound(goparsing.CodeDecimalGte, "gte", n, func(v decimal.Decimal) bool { return v.GreaterThanOrEqual(n) })
}

func (s *DecimalSchema) Lte(n decimal.Decimal) *DecimalSchema {
	return s.bound(goparsing.CodeDecimalLte, "lte", n, func(v decimal.Decimal) bool { return v.LessThanOrEqual(n) })
}

// ToFloat converts to float64, possibly losing precision.
func (s *DecimalSchema) ToFloat() *FloatSchema {
	f := Float()
	f.Node = f.Node.WithPreParse(convertFrom(s, func(v decimal.Decimal) (any, error) {
		x, _ := v.Float64()
		return x, nil
	}))
	return f
}

func (s *DecimalSchema) ToString() *StringSchema {
	str := String()
	str.Node = str.Node.WithPreParse(convertFrom(s, func(v decimal.Decimal) (any, error) { return v.String(), nil }))
	return str
}
