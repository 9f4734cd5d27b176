package solvers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/network"
	"github.com/reusee/intcode/vmconfigs"
)

type Module struct {
	dscope.Module
	Network   network.Module
	Vmconfigs vmconfigs.Module
}

func (Module) Env(
	load intvm.Load,
	amplify network.Amplify,
	logger logs.Logger,
	glyphs vmconfigs.Glyphs,
) Env {
	return Env{
		Load:    load,
		Amplify: amplify,
		Logger:  logger,
		Glyphs:  glyphs,
	}
}

// Solve reads <inputs>/day<N>.txt and runs that day's solver.
type Solve func(ctx context.Context, day int) ([]Answer, error)

func (Module) Solve(
	env Env,
	dir vmconfigs.InputsDir,
	newSpan logs.NewSpan,
) Solve {
	return func(ctx context.Context, day int) ([]Answer, error) {
		solver, ok := Solvers[day]
		if !ok {
			return nil, wrap(fmt.Errorf("day %d: %w", day, ErrUnknownDay))
		}

		path := filepath.Join(string(dir), fmt.Sprintf("day%d.txt", day))
		f, err := os.Open(path)
		if err != nil {
			return nil, wrap(err)
		}
		defer f.Close()
		program, err := intvm.ReadProgram(f)
		if err != nil {
			return nil, wrap(fmt.Errorf("%s: %w", path, err))
		}

		ctx, _ = newSpan(ctx, "")
		env.Logger.InfoContext(ctx, "solve",
			"day", day,
			"path", path,
			"program", len(program),
		)
		answers, err := solver(ctx, env, program)
		if err != nil {
			return nil, wrap(logs.WrapSpan(ctx, fmt.Errorf("day %d: %w", day, err)))
		}
		return answers, nil
	}
}
