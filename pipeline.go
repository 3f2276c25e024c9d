package goparsing

import (
	"context"
	"slices"
)

// Node carries the configuration shared by all schema variants: nullability,
// default value, pre/post parse hooks and the catch handler, around a
// variant-specific Checker.
//
// Variants embed Node by value. Every configuration method copies the node,
// so a configured schema never affects the schema it was derived from.
type Node struct {
	checker      Checker
	nullable     bool
	hasDefault   bool
	defaultValue any
	preParses    []PreParseFunc
	postParses   []PostParseFunc
	catch        CatchFunc
}

// NewNode returns a node around c. A nil checker accepts every input as-is.
func NewNode(c Checker) Node { return Node{checker: c} }

// Checker returns the variant check, for introspection.
func (n Node) Checker() Checker { return n.checker }

func (n Node) IsNullable() bool { return n.nullable }

// DefaultValue reports the configured default, if any.
func (n Node) DefaultValue() (any, bool) { return n.defaultValue, n.hasDefault }

// WithChecker returns a copy of n using c.
func (n Node) WithChecker(c Checker) Node {
	n.checker = c
	return n
}

// WithPreParse returns a copy of n with fn appended to the pre-parse hooks.
func (n Node) WithPreParse(fn PreParseFunc) Node {
	n.preParses = append(slices.Clip(n.preParses), fn)
	return n
}

// WithPostParse returns a copy of n with fn appended to the post-parse hooks.
func (n Node) WithPostParse(fn PostParseFunc) Node {
	n.postParses = append(slices.Clip(n.postParses), fn)
	return n
}

func (n Node) Nullable() Schema {
	n.nullable = true
	return n
}

// Default substitutes v when the input is nil.
func (n Node) Default(v any) Schema {
	n.hasDefault = true
	n.defaultValue = v
	return n
}

func (n Node) PreParse(fn PreParseFunc) Schema   { return n.WithPreParse(fn) }
func (n Node) PostParse(fn PostParseFunc) Schema { return n.WithPostParse(fn) }
func (n Node) Transform(fn PostParseFunc) Schema { return n.WithPostParse(fn) }

func (n Node) Catch(fn CatchFunc) Schema {
	n.catch = fn
	return n
}

// Parse implements Schema.
func (n Node) Parse(ctx context.Context, v any) (any, error) {
	if v == nil && n.hasDefault {
		v = n.defaultValue
	}
	if v == nil && n.nullable {
		return nil, nil
	}
	out, err := n.run(ctx, v)
	if err == nil {
		return out, nil
	}
	pe := toParseError(err)
	if n.catch == nil {
		return nil, pe
	}
	Logger().Debug().Int("errors", pe.Errors().Len()).Msg("goparsing: catch handler invoked")
	rec, err := n.catch(ctx, v, pe)
	if err != nil {
		return nil, toParseError(err)
	}
	return rec, nil
}

// SafeParse implements Schema.
func (n Node) SafeParse(ctx context.Context, v any) Result {
	return ToResult(n.Parse(ctx, v))
}

func (n Node) run(ctx context.Context, v any) (any, error) {
	var err error
	for _, fn := range n.preParses {
		if v, err = fn(ctx, v); err != nil {
			return nil, err
		}
	}
	if n.checker != nil {
		if v, err = n.checker.Check(ctx, v); err != nil {
			return nil, err
		}
	}
	for _, fn := range n.postParses {
		if v, err = fn(ctx, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ToResult folds a Parse return pair into a Result.
func ToResult(out any, err error) Result {
	if err != nil {
		return Result{Error: toParseError(err)}
	}
	return Result{Data: out, Success: true}
}

func toParseError(err error) *ParseError {
	if pe, ok := AsParseError(err); ok {
		return pe
	}
	return NewParseError(ErrorsFrom(err))
}
