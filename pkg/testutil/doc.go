// Package testutil provides shared test helpers for wifiprof packages.
//
// Key components:
//   - Isolate: points every wifiprof directory at a per-test temp dir
//   - MockInstaller: testify mock of the platform backend
//   - MockRunner: testify mock of the command runner used by shell backends
package testutil
