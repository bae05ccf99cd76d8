package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrDivisionByZero is returned by Evaluate when dividing by exactly 0.0.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned for an Operation outside the enum.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Evaluate applies op to a and b.
//
// Division compares the divisor against 0.0 with exact equality, so tiny
// non-zero divisors succeed and may overflow to an infinity. Exponentiation
// follows math.Pow, including NaN for a negative base with a fractional
// exponent.
func Evaluate(op Operation, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0.0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case Exponentiation:
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOperation, uint8(op))
	}
}

// FormatResult renders v using the shortest decimal form that round-trips.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
