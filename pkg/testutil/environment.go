package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/paths"
)

// Environment holds the isolated directories of one test.
type Environment struct {
	Root      string
	ConfigDir string
	DataDir   string
	StateDir  string
}

// Isolate points the wifiprof config, data and state directories at a
// fresh temp dir. The variables are restored when the test ends.
func Isolate(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:      root,
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
		StateDir:  filepath.Join(root, "state"),
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	return env
}
