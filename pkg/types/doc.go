// Package types defines the data model shared by the profile parser, the
// installation dispatcher and the installer backends: the parsed
// ConfigurationRecord, its join-strategy Kind, the three Request variants
// and the Installer/Querier/Remover capabilities.
package types
