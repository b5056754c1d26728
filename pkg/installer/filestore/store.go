// Package filestore is a credential store kept in a TOML file. It stands
// in for the OS credential store on machines without NetworkManager or
// wpa_supplicant, and in tests.
package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/logging"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Network is one stored entry
type Network struct {
	Identifier           string    `toml:"identifier"`
	Kind                 string    `toml:"kind"`
	SSID                 string    `toml:"ssid,omitempty"`
	Passphrase           string    `toml:"passphrase,omitempty"`
	Domain               string    `toml:"domain,omitempty"`
	Username             string    `toml:"username,omitempty"`
	Password             string    `toml:"password,omitempty"`
	TrustedServerNames   []string  `toml:"trusted_server_names,omitempty"`
	RoamingConsortiumOIs []string  `toml:"roaming_consortium_ois,omitempty"`
	InstalledAt          time.Time `toml:"installed_at"`
}

type document struct {
	Networks []Network `toml:"network"`
}

// Store persists networks to a single file. Writes are serialized; a
// second install of the same identifier replaces the first.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
	now  func() time.Time
}

// Options configures a Store
type Options struct {
	Path string
	// FS defaults to the OS filesystem
	FS afero.Fs
	// Now defaults to time.Now
	Now func() time.Time
}

// New creates a store backed by opts.Path
func New(opts Options) *Store {
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{fs: fs, path: opts.Path, now: now}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

func (s *Store) InstallPSK(ctx context.Context, ssid, passphrase string) error {
	return s.put(Network{
		Identifier: ssid,
		Kind:       string(types.KindPSK),
		SSID:       ssid,
		Passphrase: passphrase,
	})
}

func (s *Store) InstallEAP(ctx context.Context, ssid, username, password string, trustedServerNames []string) error {
	return s.put(Network{
		Identifier:         ssid,
		Kind:               string(types.KindEAP),
		SSID:               ssid,
		Username:           username,
		Password:           password,
		TrustedServerNames: trustedServerNames,
	})
}

func (s *Store) InstallPasspoint(ctx context.Context, domain, username, password string, roamingConsortiumOIs []string) error {
	return s.put(Network{
		Identifier:           domain,
		Kind:                 string(types.KindPasspoint),
		Domain:               domain,
		Username:             username,
		Password:             password,
		RoamingConsortiumOIs: roamingConsortiumOIs,
	})
}

// ListInstalledNetworkIdentifiers returns identifiers in install order
func (s *Store) ListInstalledNetworkIdentifiers(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(doc.Networks))
	for _, n := range doc.Networks {
		ids = append(ids, n.Identifier)
	}
	return ids, nil
}

// Networks returns every stored entry
func (s *Store) Networks() ([]Network, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Networks, nil
}

// Remove deletes the entry with the given identifier
func (s *Store) Remove(ctx context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	for i, n := range doc.Networks {
		if n.Identifier == identifier {
			doc.Networks = append(doc.Networks[:i], doc.Networks[i+1:]...)
			return s.save(doc)
		}
	}
	return errors.Newf(errors.ErrNotFound, "no stored network named %q", identifier)
}

func (s *Store) put(n Network) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	n.InstalledAt = s.now().UTC().Truncate(time.Second)

	replaced := false
	for i := range doc.Networks {
		if doc.Networks[i].Identifier == n.Identifier {
			doc.Networks[i] = n
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Networks = append(doc.Networks, n)
	}

	if err := s.save(doc); err != nil {
		return err
	}

	logger := logging.GetLogger("filestore")
	logger.Debug().
		Str("network", n.Identifier).
		Str("kind", n.Kind).
		Bool("replaced", replaced).
		Str("path", s.path).
		Msg("Stored network")
	return nil
}

func (s *Store) load() (*document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreLoad, "failed to read %s", s.path)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreLoad, "failed to parse %s", s.path)
	}
	return &doc, nil
}

func (s *Store) save(doc *document) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreSave, "failed to encode network store")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrapf(err, errors.ErrStoreSave, "failed to create %s", filepath.Dir(s.path))
	}

	// Written beside the store and renamed into place.
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0600); err != nil {
		return errors.Wrapf(err, errors.ErrStoreSave, "failed to write %s", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, errors.ErrStoreSave, "failed to replace %s", s.path)
	}
	return nil
}
