package network

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/procs"
)

// Feedback is a cycle of machines where machine i's outputs feed machine (i+1) mod N.
type Feedback struct {
	VMs    []*intvm.VM
	Logger logs.Logger
}

// NewFeedback seeds machine i with phases[i], and machine 0 additionally with the start signal 0.
func NewFeedback(load intvm.Load, program []int64, phases []int64) (*Feedback, error) {
	if err := checkPhases(phases, 2); err != nil {
		return nil, err
	}
	f := &Feedback{
		VMs: make([]*intvm.VM, len(phases)),
	}
	for i, phase := range phases {
		f.VMs[i] = load(program, phase)
	}
	f.VMs[0].PushInput(0)
	return f, nil
}

type feedbackState struct {
	ctx        context.Context
	logger     logs.Logger
	vms        []*intvm.VM
	last       []int64
	emitted    []bool
	live       int
	idle       int
	lastHalted int
}

type amplifier struct {
	index int
	vm    *intvm.VM
}

var _ procs.Proc[*feedbackState] = new(amplifier)

func (a *amplifier) Run(state *feedbackState) (procs.Proc[*feedbackState], error) {
	interrupt, err := a.vm.Resume()
	if err != nil {
		return nil, logs.WrapSpan(
			logs.WithEngine(state.ctx, a.index),
			fmt.Errorf("amplifier %d: %w", a.index, err),
		)
	}

	switch {

	case interrupt.Output:
		state.idle = 0
		state.last[a.index] = interrupt.Value
		state.emitted[a.index] = true
		state.vms[(a.index+1)%len(state.vms)].PushInput(interrupt.Value)
		return a, nil

	case interrupt.Input:
		state.idle++
		if state.idle >= state.live {
			return nil, logs.WrapSpan(state.ctx, ErrDeadlock)
		}
		return a, nil

	}

	state.idle = 0
	state.live--
	state.lastHalted = a.index
	state.logger.DebugContext(logs.WithEngine(state.ctx, a.index), "amplifier halted",
		"live", state.live,
	)
	return nil, nil
}

// Run drives the machines round-robin, one event per turn, until every machine halts.
// It returns the last output of the machine that halted last.
func (f *Feedback) Run(ctx context.Context) (int64, error) {
	logger := f.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	state := &feedbackState{
		ctx:     ctx,
		logger:  logger,
		vms:     f.VMs,
		last:    make([]int64, len(f.VMs)),
		emitted: make([]bool, len(f.VMs)),
		live:    len(f.VMs),
	}
	ring := make(procs.Ring[*feedbackState], len(f.VMs))
	for i, vm := range f.VMs {
		ring[i] = &amplifier{
			index: i,
			vm:    vm,
		}
	}

	if err := procs.Drive(ctx, state, ring); err != nil {
		return 0, err
	}

	if !state.emitted[state.lastHalted] {
		return 0, fmt.Errorf("amplifier %d: %w", state.lastHalted, ErrNoOutput)
	}
	return state.last[state.lastHalted], nil
}

// RunFeedback builds and runs a feedback network in one call.
func RunFeedback(ctx context.Context, load intvm.Load, program []int64, phases []int64) (int64, error) {
	f, err := NewFeedback(load, program, phases)
	if err != nil {
		return 0, err
	}
	return f.Run(ctx)
}
