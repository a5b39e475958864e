package config

import (
	"os"
	"path/filepath"
)

// ConfigPathEnv names the environment variable that points at a config file.
const ConfigPathEnv = "DMP_CONFIG"

var defaultConfigFiles = []string{"dmp.yaml", "dmp.yml"}

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the -config command-line flag
// 2. the DMP_CONFIG environment variable
// 3. dmp.yaml or dmp.yml in the current working directory
// 4. dmp.yaml or dmp.yml in the executable's directory
// It returns "" when no file exists.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if fileExists(configFilePathFlag) {
			return configFilePathFlag
		}
		// An explicit path that does not exist is reported by Load.
		return ""
	}

	if envPath := os.Getenv(ConfigPathEnv); envPath != "" && fileExists(envPath) {
		return envPath
	}

	cwd, errCwd := os.Getwd()
	exePath, errExe := os.Executable()

	var locations []string
	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if errExe == nil {
		if exeDir := filepath.Dir(exePath); errCwd != nil || exeDir != cwd {
			locations = append(locations, exeDir)
		}
	}

	for _, loc := range locations {
		for _, file := range defaultConfigFiles {
			path := filepath.Join(loc, file)
			if fileExists(path) {
				return path
			}
		}
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
