package procs

// Ring steps its members in turn, one step each, and drops members as they finish.
type Ring[C any] []Proc[C]

var _ Proc[any] = Ring[any]{}

func (r Ring[C]) Run(ctx C) (Proc[C], error) {
	if len(r) == 0 {
		return nil, nil
	}
	proc, err := r[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	next := make(Ring[C], 0, len(r))
	next = append(next, r[1:]...)
	if proc != nil {
		next = append(next, proc)
	}
	if len(next) == 0 {
		return nil, nil
	}
	return next, nil
}
