// Package registry provides a generic, thread-safe name to value registry.
// Installer backends register their factories here.
package registry
