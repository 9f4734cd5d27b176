package network

import "errors"

var (
	ErrBadPhases = errors.New("invalid phase settings")
	ErrDeadlock  = errors.New("every machine is waiting for input")
	ErrNoOutput  = errors.New("machine halted without output")
)
