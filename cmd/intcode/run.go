package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
)

// runProgram runs an arbitrary program, printing outputs and reading missing inputs from stdin.
func runProgram(ctx context.Context, scope dscope.Scope, path string, inputs []int64) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	program, err := intvm.ReadProgram(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	scope.Call(func(
		load intvm.Load,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		vm := load(program, inputs...)
		if tapFlag {
			defer func() {
				tap(ctx, path, debugs.MachineGlobals(vm))
			}()
		}

		stdin := bufio.NewScanner(os.Stdin)
		for {
			if err = ctx.Err(); err != nil {
				return
			}
			var interrupt *intvm.Interrupt
			for interrupt, err = range vm.Run {
				if err != nil {
					return
				}
				if interrupt.Output {
					fmt.Println(interrupt.Value)
				}
			}
			if interrupt.Halt {
				logger.InfoContext(ctx, "halted",
					"path", path,
					"ip", vm.IP,
				)
				return
			}
			// waiting for input
			fmt.Fprint(os.Stderr, "> ")
			if !stdin.Scan() {
				err = fmt.Errorf("ip %d: %w", vm.IP, intvm.ErrInputStarved)
				return
			}
			var value int64
			value, err = strconv.ParseInt(strings.TrimSpace(stdin.Text()), 10, 64)
			if err != nil {
				return
			}
			vm.PushInput(value)
		}
	})

	return
}
