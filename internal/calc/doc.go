// Package calc implements the arithmetic core of calcnerd.
//
// An Operation is one of five binary transformations over float64 operands.
// Operations are selected by their menu code (1-5) and evaluated with
// Evaluate, which is a pure function: the only failure it reports is
// ErrDivisionByZero. Everything else, including NaN and infinities produced
// by IEEE-754 arithmetic, is returned as a plain value.
package calc
