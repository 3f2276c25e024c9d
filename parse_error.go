package goparsing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnionExhausted is wrapped by the ParseError a union returns when no
	// candidate accepted the input.
	ErrUnionExhausted = errors.New("goparsing: no union candidate accepted the input")
	// ErrInvalidSchema reports a schema that was assembled from incompatible
	// parts (for example a discriminated union candidate without a literal
	// discriminator).
	ErrInvalidSchema = errors.New("goparsing: invalid schema")
	// ErrUnsupported reports a configuration method a variant does not offer.
	ErrUnsupported = errors.New("goparsing: unsupported operation")
)

// ParseError is the error returned by Parse. It carries the full ordered
// collection of failures; use Errors() to inspect or render it.
type ParseError struct {
	errs  *Errors
	cause error
}

// NewParseError wraps errs. A nil collection is treated as empty.
func NewParseError(errs *Errors) *ParseError {
	if errs == nil {
		errs = NewErrors()
	}
	return &ParseError{errs: errs}
}

// Errors returns the failure collection.
func (e *ParseError) Errors() *Errors { return e.errs }

// Error renders every entry, one per line.
func (e *ParseError) Error() string { return e.errs.String() }

// Unwrap returns the cause, if any.
func (e *ParseError) Unwrap() error { return e.cause }

// WithCause returns a copy of e whose Unwrap reports cause.
func (e *ParseError) WithCause(cause error) *ParseError {
	return &ParseError{errs: e.errs, cause: cause}
}

// AsParseError extracts a *ParseError from err using errors.As.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ErrorKind reports the failure category of err: KindUnionExhausted when it
// wraps ErrUnionExhausted, otherwise the kind of its first entry. It reports
// false for nil and for errors that carry no entries.
func ErrorKind(err error) (Kind, bool) {
	if err == nil {
		return "", false
	}
	if errors.Is(err, ErrUnionExhausted) {
		return KindUnionExhausted, true
	}
	if pe, ok := AsParseError(err); ok {
		if en := pe.errs.Entries(); len(en) > 0 {
			return en[0].Error.Kind(), true
		}
		return "", false
	}
	var single Error
	if errors.As(err, &single) {
		return single.Kind(), true
	}
	return "", false
}

// ErrorsFrom normalises any error into an Errors collection:
// a *ParseError yields its entries, an Error a single root entry, and any
// other error a root entry with code "custom" whose template is the error
// text.
func ErrorsFrom(err error) *Errors {
	if err == nil {
		return NewErrors()
	}
	if pe, ok := AsParseError(err); ok {
		return NewErrors().Merge("", pe.errs)
	}
	var single Error
	if errors.As(err, &single) {
		return NewErrors().Add("", single)
	}
	return NewErrors().Add("", NewError(CodeCustom, err.Error(), nil))
}

// ConfigError reports a schema construction or configuration mistake. It
// wraps one of ErrInvalidSchema or ErrUnsupported.
type ConfigError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }
