package vmconfigs

import (
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/vars"
)

var (
	memoryFlag      = cmds.Var[int]("-memory")
	widthFlag       = cmds.Var[int]("-width")
	strictInputFlag = cmds.Switch("-strict-input")
)

func (Module) MachineConfig(
	loader configs.Loader,
) intvm.Config {
	config := intvm.DefaultConfig()

	if n := vars.FirstNonZero(
		*memoryFlag,
		configs.First[int](loader, "memory_size"),
	); n > 0 {
		config.MemorySize = n
	}

	if w := intvm.Width(vars.FirstNonZero(
		*widthFlag,
		configs.First[int](loader, "width"),
	)); w.Valid() {
		config.Width = w
	}

	config.StrictInput = vars.FirstNonZero(
		*strictInputFlag,
		configs.First[bool](loader, "strict_input"),
	)

	return config
}
