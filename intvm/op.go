package intvm

import "fmt"

type OpCode int64

const (
	OpAdd         OpCode = 1
	OpMul         OpCode = 2
	OpInput       OpCode = 3
	OpOutput      OpCode = 4
	OpJumpIfTrue  OpCode = 5
	OpJumpIfFalse OpCode = 6
	OpLessThan    OpCode = 7
	OpEquals      OpCode = 8
	OpAdjustBase  OpCode = 9
	OpHalt        OpCode = 99
)

var opNames = map[OpCode]string{
	OpAdd:         "add",
	OpMul:         "mul",
	OpInput:       "in",
	OpOutput:      "out",
	OpJumpIfTrue:  "jnz",
	OpJumpIfFalse: "jz",
	OpLessThan:    "lt",
	OpEquals:      "eq",
	OpAdjustBase:  "arb",
	OpHalt:        "halt",
}

// Params returns the number of operands following the instruction word.
func (o OpCode) Params() int {
	switch o {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput, OpAdjustBase:
		return 1
	}
	return 0
}

func (o OpCode) Valid() bool {
	_, ok := opNames[o]
	return ok
}

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int64(o))
}
