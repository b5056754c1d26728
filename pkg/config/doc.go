// Package config loads wifiprof settings. Layers, lowest first: the
// embedded defaults, the user's config file (TOML or YAML) and WIFIPROF_
// environment variables.
package config
