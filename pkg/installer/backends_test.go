package installer_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/installer"
	"github.com/arthur-debert/wifiprof/pkg/installer/filestore"
	"github.com/arthur-debert/wifiprof/pkg/installer/networkmanager"
	"github.com/arthur-debert/wifiprof/pkg/installer/wpasupplicant"
	"github.com/arthur-debert/wifiprof/pkg/testutil"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuiltinBackends(t *testing.T) {
	assert.Subset(t, installer.Backends(), []string{"file", "networkmanager", "wpa_supplicant"})
}

func TestOpen(t *testing.T) {
	store := filepath.Join(t.TempDir(), "networks.toml")

	b, err := installer.Open(installer.Settings{Backend: installer.BackendFile, StorePath: store})
	require.NoError(t, err)
	assert.IsType(t, &filestore.Store{}, b)

	b, err = installer.Open(installer.Settings{Backend: installer.BackendNetworkManager})
	require.NoError(t, err)
	assert.IsType(t, &networkmanager.Backend{}, b)

	b, err = installer.Open(installer.Settings{Backend: installer.BackendWPASupplicant})
	require.NoError(t, err)
	assert.IsType(t, &wpasupplicant.Backend{}, b)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := installer.Open(installer.Settings{Backend: "iwd"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackendNotFound))
}

func TestOpenFileBackendNeedsPath(t *testing.T) {
	_, err := installer.Open(installer.Settings{Backend: installer.BackendFile})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestOpenPassesRunner(t *testing.T) {
	run := new(testutil.MockRunner)
	run.On("Run", mock.Anything, "/sbin/nmcli", []string{"connection", "delete", "id", "Home"}).Return(nil, nil).Once()

	b, err := installer.Open(installer.Settings{
		Backend:   installer.BackendNetworkManager,
		NmcliPath: "/sbin/nmcli",
		Runner:    run,
	})
	require.NoError(t, err)
	require.NoError(t, b.Remove(context.Background(), "Home"))
	run.AssertExpectations(t)
}

func TestRegisterCustomBackend(t *testing.T) {
	mockBackend := new(testutil.MockInstaller)
	require.NoError(t, installer.Register("mock-for-test", func(installer.Settings) (types.Backend, error) {
		return mockBackend, nil
	}))

	b, err := installer.Open(installer.Settings{Backend: "mock-for-test"})
	require.NoError(t, err)
	assert.Same(t, mockBackend, b)

	err = installer.Register(installer.BackendFile, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}
