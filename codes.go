package goparsing

// Kind classifies an error code into a failure category shared by all schema
// variants.
type Kind string

const (
	KindTypeMismatch         Kind = "type_mismatch"
	KindValueMismatch        Kind = "value_mismatch"
	KindUnknownField         Kind = "unknown_field"
	KindMissingIndex         Kind = "missing_index"
	KindAdditionalIndex      Kind = "additional_index"
	KindDiscriminatorMissing Kind = "discriminator_missing"
	KindDiscriminatorNoMatch Kind = "discriminator_no_match"
	// KindUnionExhausted names the failure of a whole union. No code maps to
	// it: the union's error carries its candidates' entries (each with its own
	// kind) and wraps ErrUnionExhausted. Use ErrorKind to observe it.
	KindUnionExhausted       Kind = "union_exhausted"
	KindConstraint           Kind = "constraint"
	KindConversion           Kind = "conversion"
	KindCustom               Kind = "custom"
	// KindExternal is reported for codes this package does not own, such as
	// violations forwarded by a bridged validator.
	KindExternal Kind = "external"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeStringType       = "string.type"
	CodeStringLength     = "string.length"
	CodeStringMinLength  = "string.minLength"
	CodeStringMaxLength  = "string.maxLength"
	CodeStringIncludes   = "string.includes"
	CodeStringStartsWith = "string.startsWith"
	CodeStringEndsWith   = "string.endsWith"
	CodeStringMatch      = "string.match"
	CodeStringEmail      = "string.email"
	CodeStringUUID       = "string.uuid"
	CodeStringInt        = "string.int"
	CodeStringFloat      = "string.float"
	CodeStringBool       = "string.bool"
	CodeStringDateTime   = "string.datetime"
	CodeStringDecimal    = "string.decimal"

	CodeIntType = "int.type"
	CodeIntGt   = "int.gt"
	CodeIntGte  = "int.gte"
	CodeIntLt   = "int.lt"
	CodeIntLte  = "int.lte"

	CodeFloatType = "float.type"
	CodeFloatGt   = "float.gt"
	CodeFloatGte  = "float.gte"
	CodeFloatLt   = "float.lt"
	CodeFloatLte  = "float.lte"
	CodeFloatInt  = "float.int"

	CodeBoolType = "bool.type"

	CodeDateTimeType = "datetime.type"
	CodeDateTimeFrom = "datetime.from"
	CodeDateTimeTo   = "datetime.to"

	CodeDecimalType = "decimal.type"
	CodeDecimalGte  = "decimal.gte"
	CodeDecimalLte  = "decimal.lte"

	CodeLiteralType   = "literal.type"
	CodeLiteralEquals = "literal.equals"

	CodeBackedEnumType  = "backedEnum.type"
	CodeBackedEnumValue = "backedEnum.value"

	CodeArrayType      = "array.type"
	CodeArrayLength    = "array.length"
	CodeArrayMinLength = "array.minLength"
	CodeArrayMaxLength = "array.maxLength"
	CodeArrayIncludes  = "array.includes"

	CodeTupleType            = "tuple.type"
	CodeTupleMissingIndex    = "tuple.missingIndex"
	CodeTupleAdditionalIndex = "tuple.additionalIndex"

	CodeObjectType         = "object.type"
	CodeObjectUnknownField = "object.unknownField"
	CodeObjectBind         = "object.bind"

	CodeRecordType = "record.type"

	CodeDiscriminatedUnionType               = "discriminatedUnion.type"
	CodeDiscriminatedUnionDiscriminatorField = "discriminatedUnion.discriminatorField"
	CodeDiscriminatedUnionNoMatch            = "discriminatedUnion.noMatch"

	CodeCustom             = "custom"
	CodeParseAs            = "parse.as"
	CodeInputDecode        = "input.decode"
	CodeServiceUnavailable = "service.unavailable"

	CodeRulesAtLeastOne = "rules.atLeastOne"
	CodeRulesUnique     = "rules.unique"
)

var codeKinds = map[string]Kind{
	CodeStringType:       KindTypeMismatch,
	CodeStringLength:     KindConstraint,
	CodeStringMinLength:  KindConstraint,
	CodeStringMaxLength:  KindConstraint,
	CodeStringIncludes:   KindConstraint,
	CodeStringStartsWith: KindConstraint,
	CodeStringEndsWith:   KindConstraint,
	CodeStringMatch:      KindConstraint,
	CodeStringEmail:      KindConstraint,
	CodeStringUUID:       KindConstraint,
	CodeStringInt:        KindConversion,
	CodeStringFloat:      KindConversion,
	CodeStringBool:       KindConversion,
	CodeStringDateTime:   KindConversion,
	CodeStringDecimal:    KindConversion,

	CodeIntType: KindTypeMismatch,
	CodeIntGt:   KindConstraint,
	CodeIntGte:  KindConstraint,
	CodeIntLt:   KindConstraint,
	CodeIntLte:  KindConstraint,

	CodeFloatType: KindTypeMismatch,
	CodeFloatGt:   KindConstraint,
	CodeFloatGte:  KindConstraint,
	CodeFloatLt:   KindConstraint,
	CodeFloatLte:  KindConstraint,
	CodeFloatInt:  KindConversion,

	CodeBoolType: KindTypeMismatch,

	CodeDateTimeType: KindTypeMismatch,
	CodeDateTimeFrom: KindConstraint,
	CodeDateTimeTo:   KindConstraint,

	CodeDecimalType: KindTypeMismatch,
	CodeDecimalGte:  KindConstraint,
	CodeDecimalLte:  KindConstraint,

	CodeLiteralType:   KindTypeMismatch,
	CodeLiteralEquals: KindValueMismatch,

	CodeBackedEnumType:  KindTypeMismatch,
	CodeBackedEnumValue: KindValueMismatch,

	CodeArrayType:      KindTypeMismatch,
	CodeArrayLength:    KindConstraint,
	CodeArrayMinLength: KindConstraint,
	CodeArrayMaxLength: KindConstraint,
	CodeArrayIncludes:  KindConstraint,

	CodeTupleType:            KindTypeMismatch,
	CodeTupleMissingIndex:    KindMissingIndex,
	CodeTupleAdditionalIndex: KindAdditionalIndex,

	CodeObjectType:         KindTypeMismatch,
	CodeObjectUnknownField: KindUnknownField,
	CodeObjectBind:         KindTypeMismatch,

	CodeRecordType: KindTypeMismatch,

	CodeDiscriminatedUnionType:               KindTypeMismatch,
	CodeDiscriminatedUnionDiscriminatorField: KindDiscriminatorMissing,
	CodeDiscriminatedUnionNoMatch:            KindDiscriminatorNoMatch,

	CodeCustom:             KindCustom,
	CodeParseAs:            KindTypeMismatch,
	CodeInputDecode:        KindTypeMismatch,
	CodeServiceUnavailable: KindCustom,

	CodeRulesAtLeastOne: KindConstraint,
	CodeRulesUnique:     KindConstraint,
}

// KindOf returns the failure category of code. Codes not owned by this
// package report KindExternal.
func KindOf(code string) Kind {
	if k, ok := codeKinds[code]; ok {
		return k
	}
	return KindExternal
}
