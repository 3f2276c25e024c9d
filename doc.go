// Package goparsing parses dynamically-typed input (decoded JSON or YAML,
// form maps, loosely typed Go values) against a declaratively composed
// schema.
//
// A parse either yields an output value or a *ParseError holding every
// failure, each addressed by a dot path into the input (for example
// "items.0.name") and rendered from a localised template.
//
// Design policy:
//   - The root package holds the schema contract (Schema, Node), the error
//     model (Error, Errors, ParseError) and input decoding helpers.
//   - Concrete variants live under dsl/, message templates under i18n/.
//   - Schemas are immutable once built and safe for concurrent use.
//
// Typical usage:
//
//	user := dsl.Object(
//		dsl.Field("name", dsl.String().MinLength(1)),
//		dsl.Field("age", dsl.Union(dsl.Int(), dsl.String().ToInt())),
//	).Strict()
//
//	out, err := user.Parse(ctx, input)
//	if pe, ok := goparsing.AsParseError(err); ok {
//		fmt.Println(pe.Errors().String())
//	}
package goparsing
