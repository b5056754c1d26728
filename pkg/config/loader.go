package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/logging"
	"github.com/arthur-debert/wifiprof/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "WIFIPROF_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options controls where Load looks
type Options struct {
	// File is an explicit config path; it must exist. Empty means the
	// XDG config file, which may be absent.
	File string
	// SkipFile ignores config files entirely
	SkipFile bool
	// SkipEnv ignores WIFIPROF_ variables
	SkipEnv bool
	// Overrides are dotted keys applied last, typically from CLI flags
	Overrides map[string]interface{}
}

// Load merges defaults, the config file and the environment
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	if !opts.SkipFile {
		path, required := opts.File, true
		if path == "" {
			path, required = paths.ConfigFile(), false
		}
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded config file")
		} else if required {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path)
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	// 6. Post-process
	postProcessConfig(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults without reading files or the
// environment
func Default() *Config {
	cfg, err := Load(Options{SkipFile: true, SkipEnv: true})
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// envKey maps WIFIPROF_SERVER_MAX_UPLOAD_BYTES to server.max_upload_bytes.
// Only the first underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func postProcessConfig(cfg *Config) {
	if cfg.Installer.StorePath == "" {
		cfg.Installer.StorePath = paths.StoreFile()
	}
	if cfg.Server.UploadDir == "" {
		cfg.Server.UploadDir = filepath.Join(paths.DataDir(), "profiles")
	}
	cfg.Installer.StorePath = paths.ExpandHome(cfg.Installer.StorePath)
	cfg.Server.UploadDir = paths.ExpandHome(cfg.Server.UploadDir)
	cfg.Installer.Backend = strings.ToLower(strings.TrimSpace(cfg.Installer.Backend))
}

// Validate checks values that would otherwise fail much later
func Validate(cfg *Config) error {
	invalid := func(key, msg string) error {
		return errors.Newf(errors.ErrConfigValid, "%s %s", key, msg).WithDetail("key", key)
	}

	switch {
	case cfg.Installer.Backend == "":
		return invalid("installer.backend", "must be set")
	case cfg.Installer.Timeout <= 0:
		return invalid("installer.timeout", "must be positive")
	case cfg.Client.Timeout <= 0:
		return invalid("client.timeout", "must be positive")
	case cfg.Server.Listen == "":
		return invalid("server.listen", "must be set")
	case cfg.Server.MaxUploadBytes <= 0:
		return invalid("server.max_upload_bytes", "must be positive")
	}
	return nil
}
