package network

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Intvm intvm.Module
	Logs  logs.Module
}

// Amplify finds the best phase ordering for a program, in series or as a feedback loop.
type Amplify func(ctx context.Context, program []int64, phaseValues []int64, feedback bool) (Best, error)

func (Module) Amplify(
	load intvm.Load,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Amplify {
	return func(ctx context.Context, program []int64, phaseValues []int64, feedback bool) (Best, error) {
		ctx, _ = newSpan(ctx, "")
		run := func(ctx context.Context, phases []int64) (int64, error) {
			if feedback {
				f, err := NewFeedback(load, program, phases)
				if err != nil {
					return 0, err
				}
				f.Logger = logger
				return f.Run(ctx)
			}
			return RunChain(ctx, load, program, phases)
		}
		best, err := MaxSignal(ctx, phaseValues, run)
		if err != nil {
			return best, logs.WrapSpan(ctx, err)
		}
		logger.InfoContext(ctx, "best phases",
			"feedback", feedback,
			"phases", best.Phases,
			"signal", best.Signal,
		)
		return best, nil
	}
}
