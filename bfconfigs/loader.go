package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
)

//go:embed schema.cue
var Schema string

var configFile = cmds.Var[string]("-config", "config file")

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit file wins over everything found on disk
	if *configFile != "" {
		paths = append(paths, *configFile)
	}

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, Schema)
	}

	filenames := []string{
		"bftape.cue",
		".bftape.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, Schema)
}
