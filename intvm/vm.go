package intvm

import (
	"fmt"
	"math"
	"slices"
)

type VM struct {
	Memory       Memory
	IP           int64
	RelativeBase int64
	Input        []int64
	Halted       bool
	Config       Config
	fault        error
}

func NewVM(program []int64, inputs []int64, config Config) *VM {
	config = config.normalized()
	return &VM{
		Memory: NewMemory(config.MemorySize, program),
		Input:  slices.Clone(inputs),
		Config: config,
	}
}

// PushInput appends values to the back of the input queue.
func (v *VM) PushInput(values ...int64) {
	v.Input = append(v.Input, values...)
}

func (v *VM) popInput() (int64, bool) {
	if len(v.Input) == 0 {
		return 0, false
	}
	value := v.Input[0]
	v.Input = v.Input[1:]
	return value, true
}

// Err returns the fault that stopped the machine, if any.
func (v *VM) Err() error {
	return v.fault
}

func (v *VM) Clone() *VM {
	ret := *v
	ret.Memory = slices.Clone(v.Memory)
	ret.Input = slices.Clone(v.Input)
	return &ret
}

func (v *VM) param(n int) (int64, error) {
	return v.Memory.Load(v.IP + int64(n))
}

func (v *VM) read(inst Instruction, n int) (int64, error) {
	raw, err := v.param(n)
	if err != nil {
		return 0, err
	}
	switch inst.Modes[n-1] {
	case ModeImmediate:
		return raw, nil
	case ModeRelative:
		addr, err := v.relative(raw)
		if err != nil {
			return 0, err
		}
		return v.Memory.Load(addr)
	}
	return v.Memory.Load(raw)
}

func (v *VM) read2(inst Instruction) (a, b int64, err error) {
	if a, err = v.read(inst, 1); err != nil {
		return
	}
	b, err = v.read(inst, 2)
	return
}

func (v *VM) write(inst Instruction, n int, value int64) error {
	raw, err := v.param(n)
	if err != nil {
		return err
	}
	switch inst.Modes[n-1] {
	case ModeImmediate:
		return ErrImmediateWrite
	case ModeRelative:
		addr, err := v.relative(raw)
		if err != nil {
			return err
		}
		return v.Memory.Store(addr, value)
	}
	return v.Memory.Store(raw, value)
}

// relative resolves an offset against the relative base, rejecting sums that overflow.
func (v *VM) relative(offset int64) (int64, error) {
	base := v.RelativeBase
	if (offset > 0 && base > math.MaxInt64-offset) || (offset < 0 && base < math.MinInt64-offset) {
		return 0, fmt.Errorf("relative base %d, offset %d: %w", base, offset, ErrAddressOutOfRange)
	}
	return base + offset, nil
}
