package intvm

type Interrupt struct {
	Halt   bool
	Input  bool
	Output bool
	Value  int64
}

var (
	InterruptHalt = &Interrupt{
		Halt: true,
	}
	// InterruptInput reports that the machine is parked on an input instruction with an empty queue.
	InterruptInput = &Interrupt{
		Input: true,
	}
)

func outputInterrupt(value int64) *Interrupt {
	return &Interrupt{
		Output: true,
		Value:  value,
	}
}
