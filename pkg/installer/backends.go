// Package installer selects the credential store the dispatcher installs
// into. Backends register a factory under a name; configuration picks one.
package installer

import (
	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/installer/filestore"
	"github.com/arthur-debert/wifiprof/pkg/installer/networkmanager"
	"github.com/arthur-debert/wifiprof/pkg/installer/runner"
	"github.com/arthur-debert/wifiprof/pkg/installer/wpasupplicant"
	"github.com/arthur-debert/wifiprof/pkg/registry"
	"github.com/arthur-debert/wifiprof/pkg/types"
)

const (
	BackendFile           = "file"
	BackendNetworkManager = "networkmanager"
	BackendWPASupplicant  = "wpa_supplicant"
)

// Settings carries everything any backend might need
type Settings struct {
	Backend    string
	StorePath  string
	NmcliPath  string
	WpaCliPath string
	Interface  string
	// Runner overrides command execution; nil uses os/exec
	Runner runner.Runner
}

// Factory builds a backend from settings
type Factory func(Settings) (types.Backend, error)

var backends = registry.New[Factory]()

func init() {
	registry.MustRegister(backends, BackendFile, func(s Settings) (types.Backend, error) {
		if s.StorePath == "" {
			return nil, errors.New(errors.ErrConfigValid, "installer.store_path is required for the file backend")
		}
		return filestore.New(filestore.Options{Path: s.StorePath}), nil
	})
	registry.MustRegister(backends, BackendNetworkManager, func(s Settings) (types.Backend, error) {
		return networkmanager.New(networkmanager.Options{
			Binary:    s.NmcliPath,
			Interface: s.Interface,
			Runner:    s.Runner,
		}), nil
	})
	registry.MustRegister(backends, BackendWPASupplicant, func(s Settings) (types.Backend, error) {
		return wpasupplicant.New(wpasupplicant.Options{
			Binary:    s.WpaCliPath,
			Interface: s.Interface,
			Runner:    s.Runner,
		}), nil
	})
}

// Register adds a backend factory
func Register(name string, factory Factory) error {
	return backends.Register(name, factory)
}

// Backends lists registered backend names
func Backends() []string {
	return backends.List()
}

// Open builds the backend named in settings
func Open(settings Settings) (types.Backend, error) {
	factory, err := backends.Get(settings.Backend)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackendNotFound, "unknown installer backend %q", settings.Backend).
			WithDetail("known", backends.List())
	}
	return factory(settings)
}
