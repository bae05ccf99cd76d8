package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Operand entry errors. ErrUserQuit aborts the current calculation; the
// others ask the user to re-enter the operands.
var (
	ErrUserQuit      = errors.New("terminated by user")
	ErrOperandCount  = errors.New("expected exactly two operands")
	ErrInvalidFirst  = errors.New("invalid first operand")
	ErrInvalidSecond = errors.New("invalid second operand")
)

// ParseOperands reads two whitespace-separated float64 values from line.
func ParseOperands(line string, kw Keywords) (float64, float64, error) {
	trimmed := strings.TrimSpace(line)
	if kw.IsQuit(trimmed) {
		return 0, 0, ErrUserQuit
	}

	parts := strings.Fields(trimmed)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrOperandCount, len(parts))
	}

	a, err := parseFloat(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidFirst, err)
	}
	b, err := parseFloat(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidSecond, err)
	}
	return a, b, nil
}

// IsMalformed reports whether err asks for the operands to be re-entered.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrOperandCount) ||
		errors.Is(err, ErrInvalidFirst) ||
		errors.Is(err, ErrInvalidSecond)
}

// errNotDecimal rejects the hexadecimal and digit-separator forms that
// strconv.ParseFloat accepts beyond plain decimal literals.
var errNotDecimal = errors.New("not a decimal number")

// parseFloat accepts out-of-range literals as ±Inf, which is what
// strconv.ParseFloat returns alongside ErrRange.
func parseFloat(tok string) (float64, error) {
	digits := strings.TrimLeft(tok, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") || strings.Contains(tok, "_") {
		return 0, fmt.Errorf("%w: %q", errNotDecimal, tok)
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, err
	}
	return v, nil
}
