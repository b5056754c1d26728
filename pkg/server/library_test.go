package server

import (
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"corp.mobileconfig":              "corp.mobileconfig",
		"../../etc/passwd.mobileconfig":  "passwd.mobileconfig",
		`C:\Users\me\wifi.mobileconfig`:  "wifi.mobileconfig",
		"My Home  Wi-Fi.mobileconfig":    "My_Home_Wi-Fi.mobileconfig",
		"caf\u00e9 <guest>.mobileconfig": "caf_guest.mobileconfig",
		".hidden.mobileconfig":           "hidden.mobileconfig",
		"..":                             "",
		"":                               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeName(in), in)
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("a.mobileconfig"))
	assert.True(t, Allowed("A.MOBILECONFIG"))
	assert.False(t, Allowed(".mobileconfig"))
	assert.False(t, Allowed("a.plist"))
}

func TestLibrary(t *testing.T) {
	lib, err := NewLibrary(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	name, err := lib.Save("b.mobileconfig", []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, "b.mobileconfig", name)
	_, err = lib.Save("a.mobileconfig", []byte("a"))
	require.NoError(t, err)

	names, err := lib.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mobileconfig", "b.mobileconfig"}, names)

	_, _, err = lib.ActiveData()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = lib.SetActive("b.mobileconfig")
	require.NoError(t, err)
	active, data, err := lib.ActiveData()
	require.NoError(t, err)
	assert.Equal(t, "b.mobileconfig", active)
	assert.Equal(t, []byte("b"), data)

	wasActive, err := lib.Delete("a.mobileconfig")
	require.NoError(t, err)
	assert.False(t, wasActive)
	assert.Equal(t, "b.mobileconfig", lib.Active())

	_, err = lib.Read("a.mobileconfig")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = lib.Save("evil.sh", []byte("x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLibraryActiveFileRemovedExternally(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p.mobileconfig", []byte("p"), 0644))
	lib, err := NewLibrary(fs, "p.mobileconfig")
	require.NoError(t, err)

	require.NoError(t, fs.Remove("/p.mobileconfig"))
	_, _, err = lib.ActiveData()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
