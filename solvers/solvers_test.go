package solvers

import (
	"context"
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/grid"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/vmconfigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(program []int64, inputs ...int64) *intvm.VM {
	return intvm.NewVM(program, inputs, intvm.DefaultConfig())
}

func parse(t *testing.T, text string) []int64 {
	t.Helper()
	program, err := intvm.ParseProgram(text)
	require.NoError(t, err)
	return program
}

func TestAlarm(t *testing.T) {
	program := parse(t, "1,9,10,3,2,3,11,0,99,30,40,50")
	res, err := Alarm(load, program, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), res)
	// input untouched
	assert.Equal(t, int64(9), program[1])

	_, err = Alarm(load, []int64{99}, 0, 0)
	assert.Error(t, err)
}

func TestFindNounVerb(t *testing.T) {
	ctx := context.Background()
	// memory[0] = noun + verb
	res, err := FindNounVerb(ctx, load, parse(t, "1101,0,0,0,99"), 150)
	require.NoError(t, err)
	assert.Equal(t, int64(5199), res)

	// memory[0] = memory[noun] + memory[verb]
	res, err = FindNounVerb(ctx, load, parse(t, "1,0,0,0,99"), 198)
	require.NoError(t, err)
	assert.Equal(t, int64(404), res)

	_, err = FindNounVerb(ctx, load, parse(t, "1101,0,0,0,99"), 1000)
	assert.True(t, errors.Is(err, ErrNoSolution))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = FindNounVerb(canceled, load, parse(t, "1101,0,0,0,99"), 150)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDiagnostic(t *testing.T) {
	compare := parse(t, "3,9,8,9,10,9,4,9,99,-1,8")
	res, err := Diagnostic(load, compare, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res)
	res, err = Diagnostic(load, compare, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res)

	// passing tests then a code
	res, err = Diagnostic(load, parse(t, "104,0,104,0,3,0,4,0,99"), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res)

	_, err = Diagnostic(load, parse(t, "104,3,104,7,99"), 1)
	assert.True(t, errors.Is(err, ErrDiagnosticFailed))

	_, err = Diagnostic(load, parse(t, "99"), 1)
	assert.True(t, errors.Is(err, ErrDiagnosticFailed))
}

func TestBoost(t *testing.T) {
	quine := parse(t, "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99")
	outputs, err := Boost(load, quine, 1)
	require.NoError(t, err)
	assert.Equal(t, quine, outputs)

	outputs, err = Boost(load, parse(t, "3,0,4,0,99"), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, outputs)
}

func TestPaint(t *testing.T) {
	// reads a color, paints white and turns right, four times around a square
	program := parse(t, "3,100,104,1,104,1,3,100,104,1,104,1,3,100,104,1,104,1,3,100,104,1,104,1,99")
	c, err := Paint(context.Background(), load, program, grid.Black)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Painted())
	assert.Equal(t, 4, c.Steps)
	assert.Equal(t, grid.Point{}, c.Position)
	assert.Equal(t, grid.Up, c.Facing)
}

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() vmconfigs.InputsDir {
			return "testdata"
		},
	)
}

func TestSolve(t *testing.T) {
	testScope(t).Call(func(
		solve Solve,
	) {
		ctx := context.Background()

		answers, err := solve(ctx, 9)
		require.NoError(t, err)
		require.Len(t, answers, 2)
		quine := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
		assert.Equal(t, Answer{Part: 1, Value: quine}, answers[0])
		assert.Equal(t, Answer{Part: 2, Value: quine}, answers[1])
		assert.Equal(t, "part1: "+quine, answers[0].String())

		_, err = solve(ctx, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "day 3")

		// missing input file
		_, err = solve(ctx, 11)
		require.Error(t, err)
	})
}

func TestEnv(t *testing.T) {
	testScope(t).Call(func(
		env Env,
	) {
		assert.Equal(t, vmconfigs.Glyphs{Blank: ".", Filled: "#"}, env.Glyphs)
		outputs, err := env.Load(parse(t, "3,0,4,0,99"), 7).RunToCompletion()
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, outputs)

		best, err := env.Amplify(
			context.Background(),
			parse(t, "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"),
			[]int64{0, 1, 2, 3, 4},
			false,
		)
		require.NoError(t, err)
		assert.Equal(t, int64(43210), best.Signal)
		assert.Equal(t, []int64{4, 3, 2, 1, 0}, best.Phases)
	})
}

func TestDays(t *testing.T) {
	assert.Equal(t, []int{2, 5, 7, 9, 11}, Days())
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "part2:\n.#\n#.", Answer{Part: 2, Value: ".#\n#."}.String())
}
