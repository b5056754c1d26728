// Package paths provides centralized path handling for wifiprof.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/wifiprof (config.toml)
//   - Data: $XDG_DATA_HOME/wifiprof (file credential store)
//   - State: $XDG_STATE_HOME/wifiprof (log file)
//
// # Environment Variables
//
//   - WIFIPROF_CONFIG_DIR: override the config directory
//   - WIFIPROF_DATA_DIR: override the data directory
//   - WIFIPROF_STATE_DIR: override the state directory
package paths
