package vmconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
