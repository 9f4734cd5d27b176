package debugs

import (
	"github.com/reusee/intcode/intvm"
)

// MachineGlobals exposes a machine's registers and memory to a tap session.
func MachineGlobals(vm *intvm.VM) map[string]any {
	return map[string]any{
		"ip":            vm.IP,
		"relative_base": vm.RelativeBase,
		"halted":        vm.Halted,
		"input":         vm.Input,
		"memory_size":   len(vm.Memory),
		"fault":         errString(vm.Err()),
		"peek": func(addr int64) int64 {
			v, err := vm.Memory.Load(addr)
			if err != nil {
				return 0
			}
			return v
		},
		"decode": func(word int64) string {
			inst, err := intvm.Decode(word)
			if err != nil {
				return err.Error()
			}
			return inst.String()
		},
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
