package vmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit files first
	paths = append(paths, *configFiles...)

	filenames := []string{
		"intcode.cue",
		".intcode.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir, filenames)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir, filenames)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc", filenames)...)

	return configs.NewLoader(paths, schema)
}

func existing(dir string, filenames []string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
