package vmconfigs

import (
	"os"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

// InputsDir holds the puzzle input files, named day<N>.txt.
type InputsDir string

var inputsDirFlag = cmds.Var[string]("-inputs")

// InputsDir prefers the flag, then the first configured directory that exists.
func (Module) InputsDir(
	loader configs.Loader,
) InputsDir {
	if *inputsDirFlag != "" {
		return InputsDir(*inputsDirFlag)
	}
	var configured []string
	for dir := range configs.All[string](loader, "inputs_dir") {
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			return InputsDir(dir)
		}
		configured = append(configured, dir)
	}
	if len(configured) > 0 {
		return InputsDir(configured[0])
	}
	return "inputs"
}

type Glyphs struct {
	Blank  string `json:"blank"`
	Filled string `json:"filled"`
}

func (Module) Glyphs(
	loader configs.Loader,
) Glyphs {
	glyphs := configs.First[Glyphs](loader, "glyphs")
	return Glyphs{
		Blank:  vars.FirstNonZero(glyphs.Blank, "."),
		Filled: vars.FirstNonZero(glyphs.Filled, "#"),
	}
}
