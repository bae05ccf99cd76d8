// Package tui runs a calculator session inside a bubbletea terminal UI.
// The session semantics are identical to the line-based loop; only the
// presentation differs.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"calcnerd/cmd/calc/ui"
	"calcnerd/internal/session"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	inputHeight   = 2
)

// Model is the bubbletea model wrapping one session.
type Model struct {
	session  *session.Session
	styles   ui.Styles
	logger   *zap.Logger
	input    textinput.Model
	viewport viewport.Model

	transcript []string
	ready      bool
}

// New creates a model and records the session greeting.
func New(s *session.Session, styles ui.Styles, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "1-5, numbers, exit…"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = defaultWidth - 4
	ti.PromptStyle = styles.Prompt
	ti.Focus()

	m := Model{
		session:  s,
		styles:   styles,
		logger:   logger,
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
	m.appendLines(s.Start())
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Debug("interrupted", zap.String("state", m.session.State().String()))
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		height := msg.Height - inputHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = msg.Width - 4
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	m.transcript = append(m.transcript, m.styles.Text.Render("> "+line))
	m.appendLines(m.session.Feed(line))

	if m.session.Done() {
		m.logger.Debug("session finished", zap.Int("cycles", m.session.Cycles()))
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) appendLines(lines []session.Line) {
	for _, l := range lines {
		m.transcript = append(m.transcript, m.styles.Render(l))
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if m.session.Done() {
		return strings.Join(m.transcript, "\n") + "\n"
	}
	return m.viewport.View() + "\n" + m.input.View()
}

// Transcript returns every rendered line shown so far.
func (m Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

// Done reports whether the wrapped session has terminated.
func (m Model) Done() bool {
	return m.session.Done()
}

// Run starts the program and blocks until the session ends or the user
// interrupts it. The returned model reflects the final state.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, err
}
