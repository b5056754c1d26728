package testutil

import (
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestIsolate(t *testing.T) {
	env := Isolate(t)

	assert.Equal(t, env.ConfigDir, paths.ConfigDir())
	assert.Equal(t, env.DataDir, paths.DataDir())
	assert.Equal(t, env.StateDir, paths.StateDir())
}
