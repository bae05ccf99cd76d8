package main

import (
	"testing"

	"calcnerd/internal/locale"
)

func mustMessages(t *testing.T, lang string) locale.Messages {
	t.Helper()
	m, err := locale.Lookup(locale.Language(lang))
	if err != nil {
		t.Fatalf("lookup %s: %v", lang, err)
	}
	return m
}
