package intvm

import "errors"

var (
	ErrUnknownOpCode     = errors.New("unknown opcode")
	ErrUnknownMode       = errors.New("unrecognized addressing mode")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrImmediateWrite    = errors.New("write through immediate operand")
	ErrInputStarved      = errors.New("input queue empty")
	ErrHalted            = errors.New("machine halted")
)
