// Package session implements the interactive arithmetic loop.
//
// A Session is a line-fed state machine:
//
//	Prompting -> ReadingOperands -> Evaluating -> AskingContinue -> Prompting
//	     \                                              /
//	      `--------------> Terminated <----------------'
//
// Each call to Feed consumes exactly one input line and returns the lines to
// print. Run drives a Session over an io.Reader/io.Writer pair; the terminal
// UI in cmd/calc/tui drives the same Session from key events.
package session
