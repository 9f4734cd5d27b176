package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/solvers"
)

var (
	days    = cmds.Collect[int]("day")
	allDays = cmds.Switch("all")

	runFile   string
	runInputs []int64
	tapFlag   bool
)

func init() {
	cmds.Define("run", cmds.Sub(map[string]*cmds.Command{
		"-input": cmds.Func(func(v int64) {
			runInputs = append(runInputs, v)
		}).Desc("queue an input value").Alias("-i"),
		"-tap": cmds.Func(func() {
			tapFlag = true
		}).Desc("open a starlark REPL on the final machine state"),
	}).Do(func(path string) {
		runFile = path
	}).Desc("run a program file").Alias("exec"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if runFile != "" {
		if err := runProgram(ctx, scope, runFile, runInputs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	toSolve := *days
	if *allDays {
		toSolve = solvers.Days()
	}
	if len(toSolve) == 0 {
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	scope.Call(func(
		solve solvers.Solve,
		logger logs.Logger,
	) {
		for _, day := range toSolve {
			answers, err := solve(ctx, day)
			if err != nil {
				logger.ErrorContext(ctx, "solve failed",
					"day", day,
					"error", err,
				)
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, answer := range answers {
				fmt.Printf("day%d %s\n", day, answer)
			}
		}
	})
}
