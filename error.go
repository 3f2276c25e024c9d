package goparsing

import (
	"maps"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/goparsing/i18n"
)

// unencodable replaces a variable whose value cannot be JSON encoded.
const unencodable = "<unencodable>"

// Error is a single templated validation failure. The zero value is not
// useful; build one with NewError or ErrorFor.
type Error struct {
	code      string
	template  string
	variables map[string]any
}

// NewError creates an Error. The variables map is copied.
func NewError(code, template string, variables map[string]any) Error {
	vars := make(map[string]any, len(variables))
	maps.Copy(vars, variables)
	return Error{code: code, template: template, variables: vars}
}

// ErrorFor creates an Error using the current i18n template for code.
func ErrorFor(code string, variables map[string]any) Error {
	return NewError(code, i18n.T(code), variables)
}

func (e Error) Code() string     { return e.code }
func (e Error) Template() string { return e.template }
func (e Error) Kind() Kind       { return KindOf(e.code) }

// Variables returns the named template variables. The map must not be
// modified.
func (e Error) Variables() map[string]any { return e.variables }

// Message renders the template, replacing each {{name}} placeholder with the
// JSON encoding of the matching variable.
func (e Error) Message() string {
	if len(e.variables) == 0 {
		return e.template
	}
	pairs := make([]string, 0, len(e.variables)*2)
	for name, v := range e.variables {
		pairs = append(pairs, "{{"+name+"}}", encodeVariable(v))
	}
	return strings.NewReplacer(pairs...).Replace(e.template)
}

// Error implements error.
func (e Error) Error() string { return e.Message() }

// ErrorJSON is the JSON view of an Error.
type ErrorJSON struct {
	Code      string         `json:"code"`
	Template  string         `json:"template"`
	Variables map[string]any `json:"variables"`
}

func (e Error) view() ErrorJSON {
	vars := e.variables
	if vars == nil {
		vars = map[string]any{}
	}
	return ErrorJSON{Code: e.code, Template: e.template, Variables: vars}
}

// MarshalJSON encodes the error as {"code","template","variables"}.
func (e Error) MarshalJSON() ([]byte, error) { return json.Marshal(e.view()) }

func encodeVariable(v any) string {
	b, err := json.MarshalNoEscape(v)
	if err != nil {
		return unencodable
	}
	return string(b)
}
