package i18n

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	assert.Equal(t, `Type should be "string", {{given}} given`, T("string.type"))

	SetLanguage("ja")
	defer SetLanguage("en")

	assert.NotEqual(t, `Type should be "string", {{given}} given`, T("string.type"))
	assert.Contains(t, T("string.type"), "{{given}}")

	// codes without a japanese entry fall back to english
	assert.Equal(t, `Invalid uuid {{given}}`, T("string.uuid"))
}

func TestTranslator_UnknownCodeReturnsCode(t *testing.T) {
	assert.Equal(t, "acme.rule", T("acme.rule"))
}

type fixedTranslator struct{}

func (fixedTranslator) Template(code string) string { return "fixed " + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(fixedTranslator{})
	defer SetTranslator(nil)

	assert.Equal(t, "fixed int.type", T("int.type"))

	SetTranslator(nil)
	assert.Equal(t, `Type should be "int", {{given}} given`, T("int.type"))
}

func TestSetLanguage_ConcurrentWithLookups(t *testing.T) {
	defer SetLanguage("en")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Contains(t, T("string.type"), "{{given}}")
			}
		}()
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				SetLanguage("ja")
			} else {
				SetLanguage("en")
			}
		}(i)
	}
	wg.Wait()
}
