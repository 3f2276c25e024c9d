// Package rules provides reusable cross-field checks for object schemas.
// A Rule inspects the parsed object and reports failures at dot paths;
// Refinement turns rules into a function for dsl.ObjectSchema.Refine.
//
//	order := dsl.Object(...).Refine(rules.Refinement(
//		rules.If("status", rules.Eq, "shipped").Then(rules.AtLeastOne("items")),
//		rules.UniqueBy("items", "sku"),
//	))
package rules

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	goparsing "github.com/reoring/goparsing"
)

// Rule checks a parsed object. It returns nil or an empty collection when
// the object is valid.
type Rule func(ctx context.Context, v map[string]any) *goparsing.Errors

// Refinement runs every rule and reports all failures at once.
func Refinement(rules ...Rule) func(ctx context.Context, v map[string]any) error {
	return func(ctx context.Context, v map[string]any) error {
		errs := And(rules...)(ctx, v)
		if errs.Empty() {
			return nil
		}
		return goparsing.NewParseError(errs)
	}
}

// Op is a comparison operator for If.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Conditional guards rules behind a predicate on the object.
type Conditional struct {
	path string
	op   Op
	want any
	all  []Conditional
	any  []Conditional
}

// If compares the value at path (a dot path) with want.
func If(path string, op Op, want any) Conditional {
	return Conditional{path: path, op: op, want: want}
}

// IfAll holds when every condition holds.
func IfAll(conds ...Conditional) Conditional { return Conditional{all: conds} }

// IfAny holds when any condition holds.
func IfAny(conds ...Conditional) Conditional { return Conditional{any: conds} }

func (c Conditional) And(others ...Conditional) Conditional {
	return IfAll(append([]Conditional{c}, others...)...)
}

func (c Conditional) Or(others ...Conditional) Conditional {
	return IfAny(append([]Conditional{c}, others...)...)
}

// Then runs rules only when the condition holds.
func (c Conditional) Then(rules ...Rule) Rule {
	inner := And(rules...)
	return func(ctx context.Context, v map[string]any) *goparsing.Errors {
		if !c.eval(v) {
			return nil
		}
		return inner(ctx, v)
	}
}

func (c Conditional) eval(v map[string]any) bool {
	if len(c.all) > 0 {
		for _, it := range c.all {
			if !it.eval(v) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, it := range c.any {
			if it.eval(v) {
				return true
			}
		}
		return false
	}
	cur, ok := valueAt(v, c.path)
	if !ok {
		return false
	}
	return compare(cur, c.op, c.want)
}

// AtLeastOne requires the list at path to be non-empty. A missing value or
// a value that is not a list is left to the field schema.
func AtLeastOne(path string) Rule {
	return func(_ context.Context, v map[string]any) *goparsing.Errors {
		val, ok := valueAt(v, path)
		if !ok {
			return nil
		}
		items, ok := goparsing.AsSlice(val)
		if !ok || len(items) > 0 {
			return nil
		}
		return goparsing.NewErrors().Add(path, goparsing.ErrorFor(goparsing.CodeRulesAtLeastOne, map[string]any{"minItems": 1}))
	}
}

// UniqueBy requires the elements of the list at collectionPath to have
// distinct values at keyPath (relative to each element). Keys are compared
// by their fmt.Sprint rendering.
func UniqueBy(collectionPath, keyPath string) Rule {
	return func(_ context.Context, v map[string]any) *goparsing.Errors {
		val, ok := valueAt(v, collectionPath)
		if !ok {
			return nil
		}
		items, ok := goparsing.AsSlice(val)
		if !ok {
			return nil
		}
		errs := goparsing.NewErrors()
		seen := map[string]int{}
		for i, el := range items {
			kv, ok := valueAt(el, keyPath)
			if !ok {
				continue
			}
			key := fmt.Sprint(kv)
			if first, dup := seen[key]; dup {
				errs.Add(goparsing.JoinPath(collectionPath, strconv.Itoa(i), keyPath), goparsing.ErrorFor(goparsing.CodeRulesUnique, map[string]any{
					"first": first,
					"dup":   i,
					"key":   key,
				}))
				continue
			}
			seen[key] = i
		}
		return errs
	}
}

// And runs every rule and concatenates their failures.
func And(rules ...Rule) Rule {
	return func(ctx context.Context, v map[string]any) *goparsing.Errors {
		out := goparsing.NewErrors()
		for _, r := range rules {
			if r == nil {
				continue
			}
			out.Merge("", r(ctx, v))
		}
		return out
	}
}

// Or succeeds when any rule succeeds. When all fail, the failures of the
// rule reporting the fewest entries are returned.
func Or(rules ...Rule) Rule {
	return func(ctx context.Context, v map[string]any) *goparsing.Errors {
		var best *goparsing.Errors
		for _, r := range rules {
			if r == nil {
				continue
			}
			errs := r(ctx, v)
			if errs.Empty() {
				return nil
			}
			if best == nil || errs.Len() < best.Len() {
				best = errs
			}
		}
		return best
	}
}

// valueAt walks maps and lists along a dot path.
func valueAt(v any, path string) (any, bool) {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if m, ok := goparsing.AsMap(cur); ok {
			next, present := m[seg]
			if !present {
				return nil, false
			}
			cur = next
			continue
		}
		if items, ok := goparsing.AsSlice(cur); ok {
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(items) {
				return nil, false
			}
			cur = items[i]
			continue
		}
		return nil, false
	}
	return cur, true
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return equal(cur, want)
	case Ne:
		return !equal(cur, want)
	}
	a, errA := number(cur)
	b, errB := number(want)
	if errA != nil || errB != nil {
		return false
	}
	switch op {
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	}
	return false
}

func equal(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	x, errA := number(a)
	y, errB := number(b)
	return errA == nil && errB == nil && x == y
}

// number converts numeric kinds only; strings and bools are not numbers
// here even though cast would accept them.
func number(v any) (float64, error) {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return cast.ToFloat64E(v)
	}
	return 0, fmt.Errorf("rules: %T is not a number", v)
}
