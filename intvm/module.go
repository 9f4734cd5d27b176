package intvm

import (
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Load creates a machine from a program and its initial inputs.
type Load func(program []int64, inputs ...int64) *VM

func (Module) Load(
	config Config,
) Load {
	return func(program []int64, inputs ...int64) *VM {
		return NewVM(program, inputs, config)
	}
}
