package network

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/procs"
)

// RunChain runs one machine per phase in series. Each machine gets its phase and the previous
// machine's first output; the first machine gets 0. The last machine's first output is returned.
func RunChain(ctx context.Context, load intvm.Load, program []int64, phases []int64) (int64, error) {
	if err := checkPhases(phases, 1); err != nil {
		return 0, err
	}

	var stages procs.Procs[*int64]
	for i, phase := range phases {
		stages = append(stages, procs.Func[*int64](func(signal *int64) (procs.Proc[*int64], error) {
			vm := load(program, phase, *signal)
			interrupt, err := vm.Resume()
			if err != nil {
				return nil, fmt.Errorf("amplifier %d: %w", i, err)
			}
			if !interrupt.Output {
				return nil, fmt.Errorf("amplifier %d: %w", i, ErrNoOutput)
			}
			*signal = interrupt.Value
			return nil, nil
		}))
	}

	var signal int64
	if err := procs.Drive(ctx, &signal, stages); err != nil {
		return 0, err
	}
	return signal, nil
}
