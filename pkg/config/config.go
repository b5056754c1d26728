package config

import "time"

// Config is the fully merged configuration
type Config struct {
	Client    Client    `koanf:"client" yaml:"client" json:"client"`
	Installer Installer `koanf:"installer" yaml:"installer" json:"installer"`
	Server    Server    `koanf:"server" yaml:"server" json:"server"`
}

// Client configures profile downloads
type Client struct {
	URL       string        `koanf:"url" yaml:"url" json:"url"`
	Timeout   time.Duration `koanf:"timeout" yaml:"timeout" json:"timeout"`
	UserAgent string        `koanf:"user_agent" yaml:"user_agent" json:"user_agent"`
}

// Installer selects and configures the credential store
type Installer struct {
	Backend    string        `koanf:"backend" yaml:"backend" json:"backend"`
	Timeout    time.Duration `koanf:"timeout" yaml:"timeout" json:"timeout"`
	StorePath  string        `koanf:"store_path" yaml:"store_path" json:"store_path"`
	NmcliPath  string        `koanf:"nmcli_path" yaml:"nmcli_path" json:"nmcli_path"`
	WpaCliPath string        `koanf:"wpa_cli_path" yaml:"wpa_cli_path" json:"wpa_cli_path"`
	Interface  string        `koanf:"interface" yaml:"interface" json:"interface"`
}

// Server configures `wifiprof serve`
type Server struct {
	Listen         string `koanf:"listen" yaml:"listen" json:"listen"`
	UploadDir      string `koanf:"upload_dir" yaml:"upload_dir" json:"upload_dir"`
	ActiveProfile  string `koanf:"active_profile" yaml:"active_profile" json:"active_profile"`
	MaxUploadBytes int64  `koanf:"max_upload_bytes" yaml:"max_upload_bytes" json:"max_upload_bytes"`
	TeamID         string `koanf:"team_id" yaml:"team_id" json:"team_id"`
	BundleID       string `koanf:"bundle_id" yaml:"bundle_id" json:"bundle_id"`
	Debug          bool   `koanf:"debug" yaml:"debug" json:"debug"`
}
