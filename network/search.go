package network

import (
	"context"
	"fmt"
	"slices"
)

type Best struct {
	Signal int64
	Phases []int64
}

// Runner evaluates one phase ordering, as RunChain and RunFeedback do.
type Runner func(ctx context.Context, phases []int64) (int64, error)

// MaxSignal tries every ordering of phaseValues and keeps the highest signal.
// Ties keep the first ordering found.
func MaxSignal(ctx context.Context, phaseValues []int64, run Runner) (best Best, err error) {
	found := false
	for phases := range Permutations(phaseValues) {
		signal, err := run(ctx, phases)
		if err != nil {
			return best, fmt.Errorf("phases %v: %w", phases, err)
		}
		if !found || signal > best.Signal {
			found = true
			best = Best{
				Signal: signal,
				Phases: slices.Clone(phases),
			}
		}
	}
	if !found {
		return best, fmt.Errorf("no phases: %w", ErrBadPhases)
	}
	return best, nil
}
