package dsl

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"

	goparsing "github.com/reoring/goparsing"
)

// Bind returns o with a final step that copies the parsed map into a new T.
// T must be a struct or a pointer to a struct. Object keys resolve to
// exported fields by the `goparsing:"name=..."` tag, then the json tag name,
// then the Go field name; keys without a field are dropped.
//
// A value that cannot be stored in its field is reported at the key with
// code object.bind. Numbers are converted when no precision is lost; lists
// and string-keyed maps are copied element by element. Nested objects bind
// when their own schema is wrapped in Bind.
func Bind[T any](o *ObjectSchema) (goparsing.Schema, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	ptr := rt.Kind() == reflect.Pointer
	if ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, &goparsing.ConfigError{Op: "dsl.Bind", Reason: fmt.Sprintf("%s is not a struct", rt), Err: goparsing.ErrInvalidSchema}
	}
	fields := structKeys(rt)
	return o.PostParse(func(_ context.Context, v any) (any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeError(goparsing.CodeObjectType, v)
		}
		rv := reflect.New(rt)
		errs := goparsing.NewErrors()
		for _, key := range o.FieldNames() {
			idx, ok := fields[key]
			if !ok {
				continue
			}
			val, present := m[key]
			if !present || val == nil {
				continue
			}
			fv := rv.Elem().Field(idx)
			if !assign(fv, val) {
				errs.Add(key, goparsing.ErrorFor(goparsing.CodeObjectBind, map[string]any{
					"expected": fv.Type().String(),
					"given":    goparsing.DataType(val),
				}))
			}
		}
		if !errs.Empty() {
			return nil, goparsing.NewParseError(errs)
		}
		if ptr {
			return rv.Interface(), nil
		}
		return rv.Elem().Interface(), nil
	}), nil
}

// MustBind is Bind that panics on a configuration error.
func MustBind[T any](o *ObjectSchema) goparsing.Schema {
	s, err := Bind[T](o)
	if err != nil {
		panic(err)
	}
	return s
}

func structKeys(rt reflect.Type) map[string]int {
	out := make(map[string]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if name := structKey(sf); name != "-" && name != "" {
			out[name] = i
		}
	}
	return out
}

func structKey(sf reflect.StructField) string {
	if tag := sf.Tag.Get("goparsing"); tag != "" {
		for _, p := range strings.Split(tag, ",") {
			if name, ok := strings.CutPrefix(strings.TrimSpace(p), "name="); ok {
				return name
			}
		}
	}
	if tag := sf.Tag.Get("json"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	return sf.Name
}

// assign stores val in dst, reporting false when the kinds are incompatible
// or a number would lose precision.
func assign(dst reflect.Value, val any) bool {
	if val == nil {
		return true
	}
	src := reflect.ValueOf(val)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return true
	}
	switch dst.Kind() {
	case reflect.Pointer:
		elem := reflect.New(dst.Type().Elem())
		if !assign(elem.Elem(), val) {
			return false
		}
		dst.Set(elem)
		return true
	case reflect.String:
		s, ok := asString(val)
		if !ok {
			return false
		}
		dst.SetString(s.(string))
		return true
	case reflect.Bool:
		if src.Kind() != reflect.Bool {
			return false
		}
		dst.SetBool(src.Bool())
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if _, isBool := val.(bool); isBool {
			return false
		}
		n, ok := integral(val)
		if !ok || !n.IsInt64() || dst.OverflowInt(n.Int64()) {
			return false
		}
		dst.SetInt(n.Int64())
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if _, isBool := val.(bool); isBool {
			return false
		}
		n, ok := integral(val)
		if !ok || !n.IsUint64() || dst.OverflowUint(n.Uint64()) {
			return false
		}
		dst.SetUint(n.Uint64())
		return true
	case reflect.Float32, reflect.Float64:
		if _, isBool := val.(bool); isBool {
			return false
		}
		if _, isNum := val.(json.Number); !isNum && src.Kind() == reflect.String {
			return false
		}
		f, ok := toFloat(val)
		if !ok || math.IsInf(f, 0) || dst.OverflowFloat(f) {
			return false
		}
		dst.SetFloat(f)
		return true
	case reflect.Slice:
		items, ok := goparsing.AsSlice(val)
		if !ok {
			return false
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, it := range items {
			if !assign(out.Index(i), it) {
				return false
			}
		}
		dst.Set(out)
		return true
	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return false
		}
		entries, ok := goparsing.AsMap(val)
		if !ok {
			return false
		}
		out := reflect.MakeMapWithSize(dst.Type(), len(entries))
		for k, it := range entries {
			ev := reflect.New(dst.Type().Elem()).Elem()
			if !assign(ev, it) {
				return false
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(dst.Type().Key()), ev)
		}
		dst.Set(out)
		return true
	}
	return false
}
