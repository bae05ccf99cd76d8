package locale

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcnerd/internal/calc"
)

func TestLookup(t *testing.T) {
	m, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "Результат: ", m.ResultPrefix)

	m, err = Lookup("EN")
	require.NoError(t, err)
	assert.Equal(t, "Result: ", m.ResultPrefix)

	_, err = Lookup("de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en, ru")
}

func TestCatalogsComplete(t *testing.T) {
	for _, lang := range Supported() {
		m := MustLookup(Language(lang))
		v := reflect.ValueOf(m)
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			if f.Kind() == reflect.String {
				assert.NotEmpty(t, f.String(), "%s: %s is empty", lang, v.Type().Field(i).Name)
			}
		}
		for _, op := range calc.Operations {
			assert.NotEmpty(t, m.OperationNames[op], "%s: missing name for %s", lang, op)
		}
	}
}

func TestMenuLines(t *testing.T) {
	lines := MustLookup(Russian).MenuLines()
	require.Len(t, lines, 7)
	assert.Equal(t, "Пожалуйста, выберите операцию:", lines[0])
	assert.Equal(t, "1. Сложение (+)", lines[1])
	assert.Equal(t, "5. Возведение в степень (^)", lines[5])
}

func TestResult(t *testing.T) {
	assert.Equal(t, "Result: 5", MustLookup(English).Result(5))
	assert.Equal(t, "Результат: 0.25", MustLookup(Russian).Result(0.25))
}

func TestMustLookupPanics(t *testing.T) {
	assert.Panics(t, func() { MustLookup("xx") })
}

func TestLookupForConfiguredWords(t *testing.T) {
	m, err := LookupFor(Russian, []string{"q"}, []string{" ", "y"})
	require.NoError(t, err)
	assert.Equal(t, "Введите номер операции (или 'q' для завершения):", m.MenuFooter)
	assert.Equal(t, "Некорректный ввод. Пожалуйста, введите номер операции от 1 до 5 или 'q'.", m.InvalidSelection)
	assert.Equal(t, "Введите два числа через пробел (или 'q' для завершения):", m.OperandPrompt)
	assert.Equal(t, "Хотите выполнить еще один расчет? Введите 'y' или 'нет':", m.ContinuePrompt)

	// The language's own word wins when it is among the configured ones.
	m, err = LookupFor(English, []string{"выход", "EXIT"}, []string{"да", "yes"})
	require.NoError(t, err)
	assert.Equal(t, "Enter the operation number (or 'EXIT' to quit):", m.MenuFooter)
	assert.Equal(t, "Do you want to do another calculation? Enter 'yes' or 'no':", m.ContinuePrompt)

	_, err = LookupFor("de", nil, nil)
	require.Error(t, err)
}

func TestLookupDefaultWords(t *testing.T) {
	ru := MustLookup(Russian)
	assert.Equal(t, "Введите номер операции (или 'выход' для завершения):", ru.MenuFooter)
	assert.Equal(t, "Хотите выполнить еще один расчет? Введите 'да' или 'нет':", ru.ContinuePrompt)

	en := MustLookup(English)
	assert.Equal(t, "Enter two numbers separated by a space (or 'exit' to cancel):", en.OperandPrompt)
	assert.Equal(t, "Invalid input. Please enter an operation number from 1 to 5 or 'exit'.", en.InvalidSelection)
}
