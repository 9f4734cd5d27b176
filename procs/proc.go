package procs

// Proc is one resumable unit of work. Run performs a step and returns the proc to continue with,
// or nil when finished.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

// Func adapts a function to Proc.
type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}
