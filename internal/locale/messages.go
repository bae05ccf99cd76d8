// Package locale holds the user-facing text of the calculator session.
// Russian is the primary catalog; English is provided for non-Russian terminals.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"calcnerd/internal/calc"
)

// Language identifies a message catalog.
type Language string

const (
	Russian Language = "ru"
	English Language = "en"
)

// Default is the catalog used when no language is configured.
const Default = Russian

// Messages is the full set of strings printed by a session.
type Messages struct {
	Welcome          string
	MenuHeader       string
	OperationNames   map[calc.Operation]string
	MenuFooter       string
	InvalidSelection string
	Farewell         string
	OperandPrompt    string
	OperandCount     string
	InvalidFirst     string
	InvalidSecond    string
	UserQuit         string
	ResultPrefix     string
	DivisionByZero   string
	ContinuePrompt   string
	Goodbye          string
}

// catalog is a language's fixed text plus the prompt templates that name a
// keyword. Templates take the quit word (or confirm word) as their only verb.
type catalog struct {
	base        Messages
	quitWord    string
	confirmWord string

	menuFooter       string
	invalidSelection string
	operandPrompt    string
	continuePrompt   string
}

var catalogs = map[Language]catalog{
	Russian: {
		quitWord:         "выход",
		confirmWord:      "да",
		menuFooter:       "Введите номер операции (или '%s' для завершения):",
		invalidSelection: "Некорректный ввод. Пожалуйста, введите номер операции от 1 до 5 или '%s'.",
		operandPrompt:    "Введите два числа через пробел (или '%s' для завершения):",
		continuePrompt:   "Хотите выполнить еще один расчет? Введите '%s' или 'нет':",
		base: Messages{
			Welcome:    "Добро пожаловать в калькулятор!",
			MenuHeader: "Пожалуйста, выберите операцию:",
			OperationNames: map[calc.Operation]string{
				calc.Add:            "Сложение",
				calc.Subtract:       "Вычитание",
				calc.Multiply:       "Умножение",
				calc.Divide:         "Деление",
				calc.Exponentiation: "Возведение в степень",
			},
			Farewell:       "Завершение работы калькулятора. До свидания!",
			OperandCount:   "Пожалуйста, введите ровно два числа через пробел.",
			InvalidFirst:   "Некорректное первое число. Попробуйте снова.",
			InvalidSecond:  "Некорректное второе число. Попробуйте снова.",
			UserQuit:       "Завершение по желанию пользователя.",
			ResultPrefix:   "Результат: ",
			DivisionByZero: "Ошибка: деление на ноль.",
			Goodbye:        "Спасибо за использование калькулятора! До свидания!",
		},
	},
	English: {
		quitWord:         "exit",
		confirmWord:      "yes",
		menuFooter:       "Enter the operation number (or '%s' to quit):",
		invalidSelection: "Invalid input. Please enter an operation number from 1 to 5 or '%s'.",
		operandPrompt:    "Enter two numbers separated by a space (or '%s' to cancel):",
		continuePrompt:   "Do you want to do another calculation? Enter '%s' or 'no':",
		base: Messages{
			Welcome:    "Welcome to the calculator!",
			MenuHeader: "Please choose an operation:",
			OperationNames: map[calc.Operation]string{
				calc.Add:            "Addition",
				calc.Subtract:       "Subtraction",
				calc.Multiply:       "Multiplication",
				calc.Divide:         "Division",
				calc.Exponentiation: "Exponentiation",
			},
			Farewell:       "Shutting down the calculator. Goodbye!",
			OperandCount:   "Please enter exactly two numbers separated by a space.",
			InvalidFirst:   "The first number is invalid. Try again.",
			InvalidSecond:  "The second number is invalid. Try again.",
			UserQuit:       "Cancelled by user.",
			ResultPrefix:   "Result: ",
			DivisionByZero: "Error: division by zero.",
			Goodbye:        "Thank you for using the calculator! Goodbye!",
		},
	},
}

// Lookup returns the catalog for lang with its own quit and confirm words
// in the prompts. An empty lang selects Default.
func Lookup(lang Language) (Messages, error) {
	return LookupFor(lang, nil, nil)
}

// LookupFor returns the catalog for lang with prompts naming one of the
// configured words. The language's own word is preferred when configured,
// otherwise the first non-empty configured word is shown.
func LookupFor(lang Language, quitWords, confirmWords []string) (Messages, error) {
	if lang == "" {
		lang = Default
	}
	c, ok := catalogs[Language(strings.ToLower(string(lang)))]
	if !ok {
		return Messages{}, fmt.Errorf("unsupported language %q (valid: %s)", lang, strings.Join(Supported(), ", "))
	}

	quit := pickWord(c.quitWord, quitWords)
	confirm := pickWord(c.confirmWord, confirmWords)

	m := c.base
	m.MenuFooter = fmt.Sprintf(c.menuFooter, quit)
	m.InvalidSelection = fmt.Sprintf(c.invalidSelection, quit)
	m.OperandPrompt = fmt.Sprintf(c.operandPrompt, quit)
	m.ContinuePrompt = fmt.Sprintf(c.continuePrompt, confirm)
	return m, nil
}

func pickWord(preferred string, configured []string) string {
	first := ""
	for _, w := range configured {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if strings.EqualFold(w, preferred) {
			return w
		}
		if first == "" {
			first = w
		}
	}
	if first != "" {
		return first
	}
	return preferred
}

// MustLookup is Lookup for languages known to be valid.
func MustLookup(lang Language) Messages {
	m, err := Lookup(lang)
	if err != nil {
		panic(err)
	}
	return m
}

// Supported returns the available language codes, sorted.
func Supported() []string {
	out := make([]string, 0, len(catalogs))
	for l := range catalogs {
		out = append(out, string(l))
	}
	sort.Strings(out)
	return out
}

// MenuLines renders the numbered operation list followed by the footer.
func (m Messages) MenuLines() []string {
	lines := make([]string, 0, len(calc.Operations)+2)
	lines = append(lines, m.MenuHeader)
	for _, op := range calc.Operations {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", op.Code(), m.OperationNames[op], op.Symbol()))
	}
	lines = append(lines, m.MenuFooter)
	return lines
}

// Result formats a successful evaluation.
func (m Messages) Result(v float64) string {
	return m.ResultPrefix + calc.FormatResult(v)
}
