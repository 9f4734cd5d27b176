package procs

import "context"

// Drive steps proc until it finishes, fails, or ctx is done.
func Drive[C any](ctx context.Context, state C, proc Proc[C]) error {
	for proc != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		proc, err = proc.Run(state)
		if err != nil {
			return err
		}
	}
	return nil
}
