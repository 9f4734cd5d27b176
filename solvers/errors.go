package solvers

import "errors"

var (
	ErrUnknownDay       = errors.New("no solver for day")
	ErrNoSolution       = errors.New("no solution")
	ErrDiagnosticFailed = errors.New("diagnostic test failed")
)
