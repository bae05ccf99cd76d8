package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"calcnerd/internal/calc"
)

// ErrInvalidSelection is carried by a Selection whose text was neither a quit
// keyword nor an operation code.
var ErrInvalidSelection = errors.New("invalid operation selection")

// SelectionKind distinguishes the three outcomes of reading a menu choice.
type SelectionKind int

const (
	SelectionInvalid SelectionKind = iota
	SelectionQuit
	SelectionOperation
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionQuit:
		return "quit"
	case SelectionOperation:
		return "operation"
	default:
		return "invalid"
	}
}

// Selection is the result of interpreting one menu line.
// Op is set only for SelectionOperation; Err only for SelectionInvalid.
type Selection struct {
	Kind SelectionKind
	Op   calc.Operation
	Err  error
}

// SelectOperation interprets a menu line.
func SelectOperation(line string, kw Keywords) Selection {
	trimmed := strings.TrimSpace(line)
	if kw.IsQuit(trimmed) {
		return Selection{Kind: SelectionQuit}
	}

	// One leading '+' is allowed, as in "+3".
	code, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 64)
	if err != nil {
		return Selection{Kind: SelectionInvalid, Err: fmt.Errorf("%w: %q", ErrInvalidSelection, trimmed)}
	}
	op, ok := calc.FromCode(code)
	if !ok {
		return Selection{Kind: SelectionInvalid, Err: fmt.Errorf("%w: code %d out of range 1-5", ErrInvalidSelection, code)}
	}
	return Selection{Kind: SelectionOperation, Op: op}
}
