package intvm

import "fmt"

// Resume executes instructions from the current IP until the machine halts, emits an output,
// or parks on an input instruction with an empty queue.
// Faults are sticky: once an error is returned, every later call returns it again.
func (v *VM) Resume() (*Interrupt, error) {
	if v.fault != nil {
		return nil, v.fault
	}
	if v.Halted {
		return nil, ErrHalted
	}
	interrupt, err := v.exec()
	if err != nil {
		v.fault = err
		return nil, err
	}
	return interrupt, nil
}

func (v *VM) exec() (*Interrupt, error) {
	for {
		word, err := v.Memory.Load(v.IP)
		if err != nil {
			return nil, fmt.Errorf("fetch at ip %d: %w", v.IP, err)
		}
		inst, err := decode(word, v.Config.Modes)
		if err != nil {
			return nil, fmt.Errorf("ip %d: %w", v.IP, err)
		}

		switch inst.Op {

		case OpAdd, OpMul, OpLessThan, OpEquals:
			a, b, err := v.read2(inst)
			if err != nil {
				return nil, v.errorf(inst, err)
			}
			var res int64
			switch inst.Op {
			case OpAdd:
				res = v.Config.Width.wrap(a + b)
			case OpMul:
				res = v.Config.Width.wrap(a * b)
			case OpLessThan:
				if a < b {
					res = 1
				}
			case OpEquals:
				if a == b {
					res = 1
				}
			}
			if err := v.write(inst, 3, res); err != nil {
				return nil, v.errorf(inst, err)
			}
			v.IP += 4

		case OpInput:
			value, ok := v.popInput()
			if !ok {
				if v.Config.StrictInput {
					return nil, v.errorf(inst, ErrInputStarved)
				}
				// stay on this instruction so it re-executes once input arrives
				return InterruptInput, nil
			}
			if err := v.write(inst, 1, value); err != nil {
				return nil, v.errorf(inst, err)
			}
			v.IP += 2

		case OpOutput:
			a, err := v.read(inst, 1)
			if err != nil {
				return nil, v.errorf(inst, err)
			}
			v.IP += 2
			return outputInterrupt(a), nil

		case OpJumpIfTrue, OpJumpIfFalse:
			cond, target, err := v.read2(inst)
			if err != nil {
				return nil, v.errorf(inst, err)
			}
			if (cond != 0) == (inst.Op == OpJumpIfTrue) {
				v.IP = target
			} else {
				v.IP += 3
			}

		case OpAdjustBase:
			a, err := v.read(inst, 1)
			if err != nil {
				return nil, v.errorf(inst, err)
			}
			base, err := v.relative(a)
			if err != nil {
				return nil, v.errorf(inst, err)
			}
			v.RelativeBase = base
			v.IP += 2

		case OpHalt:
			v.Halted = true
			return InterruptHalt, nil

		}
	}
}

func (v *VM) errorf(inst Instruction, err error) error {
	return fmt.Errorf("ip %d (%s): %w", v.IP, inst, err)
}

// Run iterates over successive interrupts. Iteration ends after a halt, an input wait, or an error.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for {
		interrupt, err := v.Resume()
		if !yield(interrupt, err) {
			return
		}
		if err != nil || !interrupt.Output {
			return
		}
	}
}

// RunToCompletion collects every output in order until the machine halts.
// A machine waiting for input cannot complete and reports ErrInputStarved.
func (v *VM) RunToCompletion() ([]int64, error) {
	var outputs []int64
	for interrupt, err := range v.Run {
		if err != nil {
			return outputs, err
		}
		if interrupt.Input {
			return outputs, fmt.Errorf("ip %d: %w", v.IP, ErrInputStarved)
		}
		if interrupt.Output {
			outputs = append(outputs, interrupt.Value)
		}
	}
	return outputs, nil
}
