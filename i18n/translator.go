package i18n

import "sync/atomic"

// Translator retrieves the message template for an error code. Templates
// reference error variables as {{name}} placeholders.
type Translator interface {
	Template(code string) string
}

var en = map[string]string{
	"string.type":       `Type should be "string", {{given}} given`,
	"string.length":     `Length {{length}}, {{given}} given`,
	"string.minLength":  `Min length {{minLength}}, {{given}} given`,
	"string.maxLength":  `Max length {{maxLength}}, {{given}} given`,
	"string.includes":   `{{given}} does not include {{includes}}`,
	"string.startsWith": `{{given}} does not start with {{startsWith}}`,
	"string.endsWith":   `{{given}} does not end with {{endsWith}}`,
	"string.match":      `{{given}} does not match {{pattern}}`,
	"string.email":      `Invalid email {{given}}`,
	"string.uuid":       `Invalid uuid {{given}}`,
	"string.int":        `Cannot convert {{given}} to int`,
	"string.float":      `Cannot convert {{given}} to float`,
	"string.bool":       `Cannot convert {{given}} to bool`,
	"string.datetime":   `Cannot convert {{given}} to datetime`,
	"string.decimal":    `Cannot convert {{given}} to decimal`,

	"int.type": `Type should be "int", {{given}} given`,
	"int.gt":   `Value should be greater than {{gt}}, {{given}} given`,
	"int.gte":  `Value should be greater than or equal {{gte}}, {{given}} given`,
	"int.lt":   `Value should be lesser than {{lt}}, {{given}} given`,
	"int.lte":  `Value should be lesser than or equal {{lte}}, {{given}} given`,

	"float.type": `Type should be "float", {{given}} given`,
	"float.gt":   `Value should be greater than {{gt}}, {{given}} given`,
	"float.gte":  `Value should be greater than or equal {{gte}}, {{given}} given`,
	"float.lt":   `Value should be lesser than {{lt}}, {{given}} given`,
	"float.lte":  `Value should be lesser than or equal {{lte}}, {{given}} given`,
	"float.int":  `Cannot convert {{given}} to int`,

	"bool.type": `Type should be "bool", {{given}} given`,

	"datetime.type": `Type should be "datetime", {{given}} given`,
	"datetime.from": `From {{from}}, {{given}} given`,
	"datetime.to":   `To {{to}}, {{given}} given`,

	"decimal.type": `Type should be "decimal", {{given}} given`,
	"decimal.gte":  `Value should be greater than or equal {{gte}}, {{given}} given`,
	"decimal.lte":  `Value should be lesser than or equal {{lte}}, {{given}} given`,

	"literal.type":   `Type should be "bool|float|int|string", {{given}} given`,
	"literal.equals": `Input should be {{expected}}, {{given}} given`,

	"backedEnum.type":  `Type should be {{expected}}, {{given}} given`,
	"backedEnum.value": `Value should be one of {{cases}}, {{given}} given`,

	"array.type":      `Type should be "array", {{given}} given`,
	"array.length":    `Length {{length}}, {{given}} given`,
	"array.minLength": `Min length {{minLength}}, {{given}} given`,
	"array.maxLength": `Max length {{maxLength}}, {{given}} given`,
	"array.includes":  `{{given}} does not include {{includes}}`,

	"tuple.type":            `Type should be "array", {{given}} given`,
	"tuple.missingIndex":    `Missing input at index {{index}}`,
	"tuple.additionalIndex": `Additional input at index {{index}}`,

	"object.type":         `Type should be "object", {{given}} given`,
	"object.unknownField": `Unknown field {{fieldName}}`,
	"object.bind":         `Cannot bind {{given}} to {{expected}}`,

	"record.type": `Type should be "object", {{given}} given`,

	"discriminatedUnion.type":               `Type should be "object", {{given}} given`,
	"discriminatedUnion.discriminatorField": `Input does not contain the discriminator field {{discriminatorFieldName}}`,
	"discriminatedUnion.noMatch":            `Discriminator field {{discriminatorFieldName}} has no matching schema for {{given}}`,

	"parse.as":            `Type should be {{expected}}, {{given}} given`,
	"input.decode":        `Cannot decode input: {{reason}}`,
	"service.unavailable": `Service {{service}} is not available`,

	"rules.atLeastOne": `At least one item is required`,
	"rules.unique":     `Duplicate value {{key}}, first seen at index {{first}}`,
}

var ja = map[string]string{
	"string.type":      `型は "string" である必要があります ({{given}} が渡されました)`,
	"string.minLength": `最小長は {{minLength}} です ({{given}} が渡されました)`,
	"string.maxLength": `最大長は {{maxLength}} です ({{given}} が渡されました)`,
	"string.int":       `{{given}} を int に変換できません`,

	"int.type":   `型は "int" である必要があります ({{given}} が渡されました)`,
	"float.type": `型は "float" である必要があります ({{given}} が渡されました)`,
	"bool.type":  `型は "bool" である必要があります ({{given}} が渡されました)`,

	"literal.equals":   `入力は {{expected}} である必要があります ({{given}} が渡されました)`,
	"backedEnum.value": `値は {{cases}} のいずれかである必要があります ({{given}} が渡されました)`,

	"array.type":            `型は "array" である必要があります ({{given}} が渡されました)`,
	"tuple.missingIndex":    `インデックス {{index}} の入力が不足しています`,
	"tuple.additionalIndex": `インデックス {{index}} に余分な入力があります`,

	"object.type":         `型は "object" である必要があります ({{given}} が渡されました)`,
	"object.unknownField": `未知のフィールドです: {{fieldName}}`,
	"object.bind":         `{{given}} を {{expected}} に割り当てられません`,

	"discriminatedUnion.discriminatorField": `判別フィールド {{discriminatorFieldName}} がありません`,
	"discriminatedUnion.noMatch":            `判別フィールド {{discriminatorFieldName}} の値 {{given}} に一致するスキーマがありません`,

	"rules.atLeastOne": `少なくとも 1 つの要素が必要です`,
	"rules.unique":     `値 {{key}} が重複しています (最初の出現はインデックス {{first}})`,
}

// dictTranslator is the built-in dictionary-based Translator. Codes missing
// from a language fall back to English; unknown codes return the code itself.
type dictTranslator struct{ lang string }

func (t dictTranslator) Template(code string) string {
	if t.lang == "ja" {
		if tpl, ok := ja[code]; ok {
			return tpl
		}
	}
	if tpl, ok := en[code]; ok {
		return tpl
	}
	return code
}

var currentTranslator atomic.Pointer[Translator]

func init() { SetTranslator(nil) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary. Safe to call
// while other goroutines parse.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	currentTranslator.Store(&tr)
}

// T fetches the template for the given code using the current Translator.
func T(code string) string { return (*currentTranslator.Load()).Template(code) }
