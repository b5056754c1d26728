package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "wifiprof"

	EnvConfigDir = "WIFIPROF_CONFIG_DIR"
	EnvDataDir   = "WIFIPROF_DATA_DIR"
	EnvStateDir  = "WIFIPROF_STATE_DIR"

	ConfigFileName = "config.toml"
	StoreFileName  = "networks.toml"
	LogFileName    = "wifiprof.log"
)

// ConfigDir returns the directory holding the user configuration
func ConfigDir() string {
	return resolve(EnvConfigDir, xdg.ConfigHome)
}

// DataDir returns the directory holding persistent data
func DataDir() string {
	return resolve(EnvDataDir, xdg.DataHome)
}

// StateDir returns the directory holding logs
func StateDir() string {
	return resolve(EnvStateDir, xdg.StateHome)
}

// ConfigFile returns the default user configuration path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StoreFile returns the default file credential store path
func StoreFile() string {
	return filepath.Join(DataDir(), StoreFileName)
}

// LogFile returns the log file path
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

func resolve(envVar, base string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(base, AppDirName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
