package session

import "strings"

// Keywords holds the words that end an interaction or confirm continuation.
// Matching is case-insensitive and ignores surrounding whitespace.
type Keywords struct {
	Quit    []string
	Confirm []string
}

// DefaultKeywords accepts both the Russian and English forms.
func DefaultKeywords() Keywords {
	return Keywords{
		Quit:    []string{"выход", "exit"},
		Confirm: []string{"да", "yes"},
	}
}

// IsQuit reports whether line is a quit keyword.
func (k Keywords) IsQuit(line string) bool {
	return matchAny(line, k.Quit)
}

// IsConfirm reports whether line is an affirmative answer.
func (k Keywords) IsConfirm(line string) bool {
	return matchAny(line, k.Confirm)
}

func matchAny(line string, words []string) bool {
	line = strings.TrimSpace(line)
	for _, w := range words {
		if strings.EqualFold(line, strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}
