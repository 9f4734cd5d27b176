package solvers

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/intcode/grid"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/network"
	"github.com/reusee/intcode/vmconfigs"
)

type Answer struct {
	Part  int
	Value string
}

func (a Answer) String() string {
	if strings.Contains(a.Value, "\n") {
		return fmt.Sprintf("part%d:\n%s", a.Part, a.Value)
	}
	return fmt.Sprintf("part%d: %s", a.Part, a.Value)
}

// Env carries what solvers need from the scope.
type Env struct {
	Load    intvm.Load
	Amplify network.Amplify
	Logger  logs.Logger
	Glyphs  vmconfigs.Glyphs
}

type Solver func(ctx context.Context, env Env, program []int64) ([]Answer, error)

var Solvers = map[int]Solver{
	2:  solveDay2,
	5:  solveDay5,
	7:  solveDay7,
	9:  solveDay9,
	11: solveDay11,
}

func Days() []int {
	return slices.Sorted(maps.Keys(Solvers))
}

func answers(values ...string) []Answer {
	ret := make([]Answer, len(values))
	for i, v := range values {
		ret[i] = Answer{
			Part:  i + 1,
			Value: v,
		}
	}
	return ret
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func solveDay2(ctx context.Context, env Env, program []int64) ([]Answer, error) {
	res, err := Alarm(env.Load, program, 12, 2)
	if err != nil {
		return nil, err
	}
	nounVerb, err := FindNounVerb(ctx, env.Load, program, 19690720)
	if err != nil {
		return nil, err
	}
	return answers(itoa(res), itoa(nounVerb)), nil
}

func solveDay5(_ context.Context, env Env, program []int64) ([]Answer, error) {
	air, err := Diagnostic(env.Load, program, 1)
	if err != nil {
		return nil, err
	}
	radiator, err := Diagnostic(env.Load, program, 5)
	if err != nil {
		return nil, err
	}
	return answers(itoa(air), itoa(radiator)), nil
}

func solveDay7(ctx context.Context, env Env, program []int64) ([]Answer, error) {
	serial, err := env.Amplify(ctx, program, []int64{0, 1, 2, 3, 4}, false)
	if err != nil {
		return nil, err
	}
	feedback, err := env.Amplify(ctx, program, []int64{5, 6, 7, 8, 9}, true)
	if err != nil {
		return nil, err
	}
	return answers(itoa(serial.Signal), itoa(feedback.Signal)), nil
}

func solveDay9(_ context.Context, env Env, program []int64) ([]Answer, error) {
	var values []string
	for _, mode := range []int64{1, 2} {
		outputs, err := Boost(env.Load, program, mode)
		if err != nil {
			return nil, fmt.Errorf("mode %d: %w", mode, err)
		}
		values = append(values, intvm.FormatProgram(outputs))
	}
	return answers(values...), nil
}

func solveDay11(ctx context.Context, env Env, program []int64) ([]Answer, error) {
	black, err := Paint(ctx, env.Load, program, grid.Black)
	if err != nil {
		return nil, err
	}
	env.Logger.InfoContext(ctx, "hull painted",
		"start", "black",
		"steps", black.Steps,
		"painted", black.Painted(),
	)

	white, err := Paint(ctx, env.Load, program, grid.White)
	if err != nil {
		return nil, err
	}
	buf := new(strings.Builder)
	if err := white.Render(buf, env.Glyphs.Blank, env.Glyphs.Filled); err != nil {
		return nil, err
	}
	return answers(strconv.Itoa(black.Painted()), strings.TrimRight(buf.String(), "\n")), nil
}
