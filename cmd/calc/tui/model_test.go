package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"calcnerd/cmd/calc/ui"
	"calcnerd/internal/locale"
	"calcnerd/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := session.New(locale.MustLookup(locale.English))
	return New(s, ui.NewStyles(ui.PlainTheme(), &bytes.Buffer{}), nil)
}

func submit(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewShowsGreetingAndMenu(t *testing.T) {
	m := newTestModel(t)
	tr := m.Transcript()
	require.NotEmpty(t, tr)
	assert.Equal(t, "Welcome to the calculator!", tr[0])
	assert.Contains(t, m.View(), "1. Addition (+)")
}

func TestSubmitRunsCalculation(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(t, m, "3")
	assert.Nil(t, cmd)
	m, _ = submit(t, m, "6 7")

	joined := strings.Join(m.Transcript(), "\n")
	assert.Contains(t, joined, "> 6 7")
	assert.Contains(t, joined, "Result: 42")
	assert.Empty(t, m.input.Value(), "input is cleared after submit")
	assert.False(t, m.Done())

	m, cmd = submit(t, m, "no")
	assert.True(t, m.Done())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "Thank you for using the calculator! Goodbye!")
}

func TestTypingUpdatesInput(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	m = next.(Model)
	assert.Equal(t, "4", m.input.Value())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Done())
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	assert.True(t, m.ready)
	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 28, m.viewport.Height)
	assert.Equal(t, 96, m.input.Width)
}
