package server

import (
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/spf13/afero"
)

// ProfileExt is the only extension the library stores
const ProfileExt = ".mobileconfig"

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeName reduces an uploaded file name to a safe base name: path
// components are dropped, whitespace becomes "_", and anything outside
// [A-Za-z0-9._-] is removed. It returns "" when nothing usable is left.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeName.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._")
	return name
}

// Allowed reports whether name has the profile extension
func Allowed(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ProfileExt) && len(name) > len(ProfileExt)
}

// Library is the set of uploaded profiles plus the one currently served.
// All names are sanitized base names inside the library root.
type Library struct {
	mu     sync.RWMutex
	fs     afero.Fs
	active string
}

// NewLibrary creates a library over fs, which should already be rooted
// at the upload directory
func NewLibrary(fs afero.Fs, active string) (*Library, error) {
	if err := fs.MkdirAll("/", 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to create profile directory")
	}
	return &Library{fs: fs, active: SanitizeName(active)}, nil
}

func (l *Library) resolve(name string) (string, error) {
	clean := SanitizeName(name)
	if clean == "" || !Allowed(clean) {
		return "", errors.Newf(errors.ErrInvalidInput, "%q is not a %s file", name, ProfileExt)
	}
	return clean, nil
}

// List returns stored profile names, sorted
func (l *Library) List() ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries, err := afero.ReadDir(l.fs, "/")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileRead, "failed to list profiles")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && Allowed(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Save stores data under the sanitized name and returns that name
func (l *Library) Save(name string, data []byte) (string, error) {
	clean, err := l.resolve(name)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := afero.WriteFile(l.fs, "/"+clean, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to save %s", clean)
	}
	return clean, nil
}

// Read returns a stored profile
func (l *Library) Read(name string) ([]byte, error) {
	clean, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.readLocked(clean)
}

func (l *Library) readLocked(clean string) ([]byte, error) {
	data, err := afero.ReadFile(l.fs, "/"+clean)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "profile %s not found", clean)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", clean)
	}
	return data, nil
}

// Delete removes a stored profile. Deleting the active profile leaves no
// profile active; the returned flag reports that.
func (l *Library) Delete(name string) (bool, error) {
	clean, err := l.resolve(name)
	if err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.fs.Remove("/" + clean); err != nil {
		if os.IsNotExist(err) {
			return false, errors.Newf(errors.ErrNotFound, "profile %s not found", clean)
		}
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to delete %s", clean)
	}
	if l.active == clean {
		l.active = ""
		return true, nil
	}
	return false, nil
}

// Active returns the name of the served profile, possibly ""
func (l *Library) Active() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// SetActive selects a stored profile for serving
func (l *Library) SetActive(name string) (string, error) {
	clean, err := l.resolve(name)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if exists, _ := afero.Exists(l.fs, "/"+clean); !exists {
		return "", errors.Newf(errors.ErrNotFound, "profile %s not found", clean)
	}
	l.active = clean
	return clean, nil
}

// ActiveData returns the active profile's name and bytes. It fails with
// ErrNotFound when no profile is active or the file is gone.
func (l *Library) ActiveData() (string, []byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.active == "" {
		return "", nil, errors.New(errors.ErrNotFound, "no active profile")
	}
	data, err := l.readLocked(l.active)
	return l.active, data, err
}
