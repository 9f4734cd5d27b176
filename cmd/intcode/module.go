package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/solvers"
)

type Module struct {
	dscope.Module
	Solvers solvers.Module
	Debugs  debugs.Module
}
