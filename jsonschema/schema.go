package jsonschema

// Schema is a JSON Schema (2020-12 vocabulary subset) document used to
// export a parsing schema for documentation or client generation.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	Const       any    `json:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	MinItems    *int      `json:"minItems,omitempty"`
	MaxItems    *int      `json:"maxItems,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Clone returns a shallow copy of s with its own slices and property map.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return &Schema{}
	}
	c := *s
	if s.Enum != nil {
		c.Enum = append([]any(nil), s.Enum...)
	}
	if s.Required != nil {
		c.Required = append([]string(nil), s.Required...)
	}
	if s.Properties != nil {
		c.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			c.Properties[k] = v
		}
	}
	return &c
}

// Int returns a pointer to v, for the optional integer keywords.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for the optional numeric keywords.
func Float(v float64) *float64 { return &v }
