package solvers

import (
	"context"
	"fmt"
	"slices"

	"github.com/reusee/intcode/intvm"
)

// Alarm patches addresses 1 and 2 with noun and verb, runs the program, and reads address 0.
func Alarm(load intvm.Load, program []int64, noun, verb int64) (int64, error) {
	if len(program) < 3 {
		return 0, fmt.Errorf("program too short to patch: %d", len(program))
	}
	program = slices.Clone(program)
	program[1] = noun
	program[2] = verb
	vm := load(program)
	if _, err := vm.RunToCompletion(); err != nil {
		return 0, err
	}
	return vm.Memory[0], nil
}

// FindNounVerb searches nouns and verbs in 0..99 for the pair producing target,
// returning 100*noun+verb. ctx is checked between attempts.
func FindNounVerb(ctx context.Context, load intvm.Load, program []int64, target int64) (int64, error) {
	for noun := range int64(100) {
		for verb := range int64(100) {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			res, err := Alarm(load, program, noun, verb)
			if err != nil {
				// some pairs point outside memory or at garbage; skip them
				continue
			}
			if res == target {
				return 100*noun + verb, nil
			}
		}
	}
	return 0, fmt.Errorf("target %d: %w", target, ErrNoSolution)
}
