package filestore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/installer/filestore"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ types.Backend = (*filestore.Store)(nil)

func newStore(t *testing.T) (*filestore.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	fixed := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	store := filestore.New(filestore.Options{
		Path: "/data/wifiprof/networks.toml",
		FS:   fs,
		Now:  func() time.Time { return fixed },
	})
	return store, fs
}

func TestEmptyStore(t *testing.T) {
	store, _ := newStore(t)

	ids, err := store.ListInstalledNetworkIdentifiers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestInstallAndList(t *testing.T) {
	ctx := context.Background()
	store, fs := newStore(t)

	require.NoError(t, store.InstallPSK(ctx, "Home", "hunter22"))
	require.NoError(t, store.InstallEAP(ctx, "Corp", "bob", "pw", []string{"radius.corp"}))
	require.NoError(t, store.InstallPasspoint(ctx, "example.net", "alice", "s3cret", []string{"5A03BA0000"}))

	ids, err := store.ListInstalledNetworkIdentifiers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Corp", "example.net"}, ids)

	networks, err := store.Networks()
	require.NoError(t, err)
	require.Len(t, networks, 3)

	assert.Equal(t, "psk", networks[0].Kind)
	assert.Equal(t, "hunter22", networks[0].Passphrase)
	assert.Equal(t, []string{"radius.corp"}, networks[1].TrustedServerNames)
	assert.Equal(t, "example.net", networks[2].Domain)
	assert.Equal(t, []string{"5A03BA0000"}, networks[2].RoamingConsortiumOIs)
	assert.True(t, networks[0].InstalledAt.Equal(time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)))

	info, err := fs.Stat("/data/wifiprof/networks.toml")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestReinstallOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.InstallPSK(ctx, "Home", "old"))
	require.NoError(t, store.InstallPSK(ctx, "Office", "x"))
	require.NoError(t, store.InstallEAP(ctx, "Home", "bob", "pw", nil))

	networks, err := store.Networks()
	require.NoError(t, err)
	require.Len(t, networks, 2)
	assert.Equal(t, "Home", networks[0].Identifier)
	assert.Equal(t, "eap", networks[0].Kind)
	assert.Empty(t, networks[0].Passphrase)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.InstallPSK(ctx, "Home", "x"))
	require.NoError(t, store.InstallPSK(ctx, "Office", "y"))

	require.NoError(t, store.Remove(ctx, "Home"))
	ids, err := store.ListInstalledNetworkIdentifiers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Office"}, ids)

	err = store.Remove(ctx, "Home")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestCorruptStore(t *testing.T) {
	store, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, store.Path(), []byte("network = [[[ not toml"), 0600))

	_, err := store.ListInstalledNetworkIdentifiers(context.Background())
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreLoad))

	err = store.InstallPSK(context.Background(), "Home", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreLoad))
}

func TestConcurrentInstalls(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			assert.NoError(t, store.InstallPSK(ctx, name, "passphrase"))
		}(name)
	}
	wg.Wait()

	ids, err := store.ListInstalledNetworkIdentifiers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, names, ids)
}
