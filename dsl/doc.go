// Package dsl provides the schema variants of goparsing.
//
// Overview
//   - Scalars: String(), Int(), Float(), Bool(), DateTime(), Decimal(),
//     Literal(v), BackedEnum(cases...).
//   - Composites: Object(Field(...)...), Record(v), Array(item),
//     Tuple(items...).
//   - Alternatives: Union(candidates...), DiscriminatedUnion(field, ...).
//   - Recursion: Lazy(factory).
//   - External validators: Bridge(validator).
//   - Bidirectional conversions: Codec(c) with a codec.Codec.
//   - Struct output: Bind[T](object) copies a parsed object into T.
//
// Every variant embeds goparsing.Node, so all of them offer Nullable,
// Default, PreParse, PostParse, Transform and Catch. Those return a
// goparsing.Schema; variant-specific methods (MinLength, Strict, Gte, ...)
// return the variant type and must be called first.
//
// Conversions
//
// Conversion methods return the target variant with a pre-parse hook that
// first parses the input with the source schema:
//
//	age := dsl.String().Trim().ToInt().Gte(0) // "42" -> 42
//
// Error model
//
// Composite variants never stop at the first failure. Every child failure is
// merged under its field name or index, so one parse reports all problems:
//
//	_, err := dsl.Object(
//		dsl.Field("name", dsl.String()),
//		dsl.Field("tags", dsl.Array(dsl.String())),
//	).Strict().Parse(ctx, map[string]any{"name": 1, "tags": []any{"a", 2}, "x": true})
//	// name: Type should be "string", "int" given
//	// tags.1: Type should be "string", "int" given
//	// x: Unknown field "x"
//
// Unions report the failures of every candidate, in candidate order, and
// the returned error matches goparsing.ErrUnionExhausted.
//
// JSON Schema output
//
//	doc, _ := goparsing.JSONSchema(schema)
//	// Strict objects => additionalProperties=false
//	// Nullable        => anyOf [schema, {"type":"null"}]
//	// Lazy            => {} (recursive graphs are not inlined)
package dsl
