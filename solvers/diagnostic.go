package solvers

import (
	"fmt"

	"github.com/reusee/intcode/intvm"
)

// Diagnostic runs the program for a system id. Every output but the last is a test result
// and must be zero; the last is the diagnostic code.
func Diagnostic(load intvm.Load, program []int64, systemID int64) (int64, error) {
	outputs, err := load(program, systemID).RunToCompletion()
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 {
		return 0, fmt.Errorf("system %d: no output: %w", systemID, ErrDiagnosticFailed)
	}
	for i, v := range outputs[:len(outputs)-1] {
		if v != 0 {
			return 0, fmt.Errorf("system %d, test %d reported %d: %w", systemID, i, v, ErrDiagnosticFailed)
		}
	}
	return outputs[len(outputs)-1], nil
}

// Boost runs the program with a single mode input and returns every output.
func Boost(load intvm.Load, program []int64, mode int64) ([]int64, error) {
	return load(program, mode).RunToCompletion()
}
