package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperands(t *testing.T) {
	kw := DefaultKeywords()

	tests := []struct {
		line string
		a, b float64
	}{
		{"3 4", 3, 4},
		{"  -1.5\t\t2e3  ", -1.5, 2000},
		{"+7 .5", 7, 0.5},
		{"0 -0", 0, 0},
	}
	for _, tt := range tests {
		a, b, err := ParseOperands(tt.line, kw)
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.a, a)
		assert.Equal(t, tt.b, b)
	}
}

func TestParseOperandsOutOfRange(t *testing.T) {
	a, b, err := ParseOperands("1e400 -1e400", DefaultKeywords())
	require.NoError(t, err)
	assert.True(t, math.IsInf(a, 1))
	assert.True(t, math.IsInf(b, -1))
}

func TestParseOperandsErrors(t *testing.T) {
	kw := DefaultKeywords()

	tests := []struct {
		line string
		want error
	}{
		{"3", ErrOperandCount},
		{"3 4 5", ErrOperandCount},
		{"", ErrOperandCount},
		{"x 4", ErrInvalidFirst},
		{"3,5 4", ErrInvalidFirst},
		{"4 y", ErrInvalidSecond},
		{"0x1p3 1", ErrInvalidFirst},
		{"-0X10 1", ErrInvalidFirst},
		{"1 1_000", ErrInvalidSecond},
		{"exit", ErrUserQuit},
		{" Выход ", ErrUserQuit},
	}
	for _, tt := range tests {
		_, _, err := ParseOperands(tt.line, kw)
		assert.ErrorIs(t, err, tt.want, "line %q", tt.line)
	}
}

func TestIsMalformed(t *testing.T) {
	_, _, err := ParseOperands("1", DefaultKeywords())
	assert.True(t, IsMalformed(err))

	_, _, err = ParseOperands("exit", DefaultKeywords())
	assert.False(t, IsMalformed(err))
}
