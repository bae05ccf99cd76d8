package session

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"calcnerd/internal/calc"
	"calcnerd/internal/locale"
)

// State is a node of the session state machine.
type State int

const (
	StatePrompting State = iota
	StateReadingOperands
	StateEvaluating
	StateAskingContinue
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateReadingOperands:
		return "reading_operands"
	case StateEvaluating:
		return "evaluating"
	case StateAskingContinue:
		return "asking_continue"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// LineKind classifies an output line so front ends can style it.
type LineKind int

const (
	KindText LineKind = iota
	KindMenu
	KindPrompt
	KindError
	KindResult
	KindFarewell
)

// Line is one line of session output.
type Line struct {
	Kind LineKind
	Text string
}

// Session holds the state of one calculator run. It is not safe for
// concurrent use.
type Session struct {
	id     string
	msgs   locale.Messages
	kw     Keywords
	logger *zap.Logger

	state  State
	op     calc.Operation
	cycles int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger. The session adds its id as a field.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKeywords overrides the quit and confirmation words.
func WithKeywords(kw Keywords) Option {
	return func(s *Session) {
		s.kw = kw
	}
}

// New creates a session in the Prompting state.
func New(msgs locale.Messages, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		msgs:   msgs,
		kw:     DefaultKeywords(),
		logger: zap.NewNop(),
		state:  StatePrompting,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Done reports whether the session has terminated.
func (s *Session) Done() bool { return s.state == StateTerminated }

// Cycles returns the number of completed evaluations.
func (s *Session) Cycles() int { return s.cycles }

// Start returns the greeting and the first menu.
func (s *Session) Start() []Line {
	s.logger.Info("session started")
	out := []Line{{Kind: KindText, Text: s.msgs.Welcome}}
	return append(out, s.menu()...)
}

// Feed consumes one input line and returns the output it produces.
// Feeding a terminated session is a no-op.
func (s *Session) Feed(input string) []Line {
	switch s.state {
	case StatePrompting:
		return s.handleSelection(input)
	case StateReadingOperands:
		return s.handleOperands(input)
	case StateAskingContinue:
		return s.handleContinue(input)
	default:
		return nil
	}
}

func (s *Session) handleSelection(input string) []Line {
	sel := SelectOperation(input, s.kw)
	switch sel.Kind {
	case SelectionOperation:
		s.op = sel.Op
		s.transition(StateReadingOperands)
		s.logger.Debug("operation selected", zap.Stringer("op", sel.Op))
		return []Line{{Kind: KindPrompt, Text: s.msgs.OperandPrompt}}
	case SelectionQuit:
		s.transition(StateTerminated)
		return []Line{{Kind: KindFarewell, Text: s.msgs.Farewell}}
	default:
		s.logger.Info("invalid selection ends session", zap.Error(sel.Err))
		s.transition(StateTerminated)
		return []Line{
			{Kind: KindError, Text: s.msgs.InvalidSelection},
			{Kind: KindFarewell, Text: s.msgs.Farewell},
		}
	}
}

func (s *Session) handleOperands(input string) []Line {
	a, b, err := ParseOperands(input, s.kw)
	switch {
	case err == nil:
	case errors.Is(err, ErrUserQuit):
		s.logger.Debug("operand entry cancelled")
		s.transition(StatePrompting)
		out := []Line{{Kind: KindError, Text: s.msgs.UserQuit}}
		return append(out, s.menu()...)
	default:
		s.logger.Debug("malformed operands", zap.Error(err))
		return []Line{
			{Kind: KindError, Text: s.malformedMessage(err)},
			{Kind: KindPrompt, Text: s.msgs.OperandPrompt},
		}
	}

	s.transition(StateEvaluating)
	out := []Line{s.evaluate(a, b)}
	s.transition(StateAskingContinue)
	return append(out,
		Line{Kind: KindText},
		Line{Kind: KindPrompt, Text: s.msgs.ContinuePrompt},
	)
}

func (s *Session) evaluate(a, b float64) Line {
	s.cycles++
	v, err := calc.Evaluate(s.op, a, b)
	if err != nil {
		s.logger.Info("evaluation failed",
			zap.Stringer("op", s.op), zap.Float64("a", a), zap.Float64("b", b), zap.Error(err))
		if errors.Is(err, calc.ErrDivisionByZero) {
			return Line{Kind: KindError, Text: s.msgs.DivisionByZero}
		}
		return Line{Kind: KindError, Text: err.Error()}
	}
	s.logger.Info("evaluated",
		zap.Stringer("op", s.op), zap.Float64("a", a), zap.Float64("b", b), zap.Float64("result", v))
	return Line{Kind: KindResult, Text: s.msgs.Result(v)}
}

func (s *Session) handleContinue(input string) []Line {
	if s.kw.IsConfirm(input) {
		s.transition(StatePrompting)
		return s.menu()
	}
	s.transition(StateTerminated)
	return []Line{{Kind: KindFarewell, Text: s.msgs.Goodbye}}
}

func (s *Session) malformedMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFirst):
		return s.msgs.InvalidFirst
	case errors.Is(err, ErrInvalidSecond):
		return s.msgs.InvalidSecond
	default:
		return s.msgs.OperandCount
	}
}

func (s *Session) menu() []Line {
	lines := s.msgs.MenuLines()
	out := make([]Line, 0, len(lines)+1)
	out = append(out, Line{Kind: KindText})
	for i, text := range lines {
		kind := KindMenu
		if i == len(lines)-1 {
			kind = KindPrompt
		}
		out = append(out, Line{Kind: kind, Text: text})
	}
	return out
}

func (s *Session) transition(to State) {
	if to == StateTerminated {
		s.logger.Info("session terminated", zap.Int("cycles", s.cycles))
	}
	s.logger.Debug("state transition", zap.Stringer("from", s.state), zap.Stringer("to", to))
	s.state = to
}
