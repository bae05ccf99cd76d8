package calc

import "fmt"

// Operation identifies one of the supported arithmetic transformations.
type Operation uint8

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
	Exponentiation
)

// Operations lists every operation in menu order.
var Operations = []Operation{Add, Subtract, Multiply, Divide, Exponentiation}

var operationNames = map[Operation]string{
	Add:            "add",
	Subtract:       "subtract",
	Multiply:       "multiply",
	Divide:         "divide",
	Exponentiation: "exponentiation",
}

var operationSymbols = map[Operation]string{
	Add:            "+",
	Subtract:       "-",
	Multiply:       "*",
	Divide:         "/",
	Exponentiation: "^",
}

// FromCode maps a menu code to its operation.
// The second return value is false for codes outside 1-5.
func FromCode(code uint64) (Operation, bool) {
	if code < uint64(Add) || code > uint64(Exponentiation) {
		return 0, false
	}
	return Operation(code), true
}

// Code returns the menu code of the operation.
func (o Operation) Code() int {
	return int(o)
}

// Valid reports whether o is one of the five defined operations.
func (o Operation) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

// Symbol returns the conventional operator symbol.
func (o Operation) Symbol() string {
	if s, ok := operationSymbols[o]; ok {
		return s
	}
	return "?"
}

func (o Operation) String() string {
	if n, ok := operationNames[o]; ok {
		return n
	}
	return fmt.Sprintf("operation(%d)", uint8(o))
}
