package solvers

import (
	"context"

	"github.com/reusee/intcode/grid"
	"github.com/reusee/intcode/intvm"
)

func Paint(ctx context.Context, load intvm.Load, program []int64, start grid.Color) (*grid.Controller, error) {
	c := grid.NewController(load(program), start)
	if err := c.Run(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
