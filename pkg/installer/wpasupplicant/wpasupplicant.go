// Package wpasupplicant installs networks into a running wpa_supplicant
// through wpa_cli. PSK and EAP networks become network blocks; Passpoint
// credentials become cred blocks. Every successful install ends with
// save_config so the change survives a restart.
package wpasupplicant

import (
	"context"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/installer/runner"
	"github.com/arthur-debert/wifiprof/pkg/logging"
)

const (
	DefaultBinary    = "wpa_cli"
	DefaultInterface = "wlan0"

	replyFail = "FAIL"
	replyOK   = "OK"
)

// Options configures a Backend
type Options struct {
	// Binary defaults to DefaultBinary
	Binary string
	// Interface defaults to DefaultInterface
	Interface string
	Runner    runner.Runner
}

// Backend drives wpa_cli
type Backend struct {
	binary string
	iface  string
	run    runner.Runner
}

// New creates a Backend
func New(opts Options) *Backend {
	b := &Backend{binary: opts.Binary, iface: opts.Interface, run: opts.Runner}
	if b.binary == "" {
		b.binary = DefaultBinary
	}
	if b.iface == "" {
		b.iface = DefaultInterface
	}
	if b.run == nil {
		b.run = runner.Exec{}
	}
	return b
}

// entry is one row of list_networks or list_creds
type entry struct {
	id   string
	name string
}

// setting is one set_network or set_cred field
type setting struct {
	field string
	value string
}

func quote(s string) string {
	return `"` + s + `"`
}

func (b *Backend) InstallPSK(ctx context.Context, ssid, passphrase string) error {
	ctx = runner.WithSecrets(ctx, passphrase)
	return b.installNetwork(ctx, ssid, []setting{
		{"key_mgmt", "WPA-PSK"},
		{"psk", quote(passphrase)},
	})
}

func (b *Backend) InstallEAP(ctx context.Context, ssid, username, password string, trustedServerNames []string) error {
	ctx = runner.WithSecrets(ctx, password)
	settings := []setting{
		{"key_mgmt", "WPA-EAP"},
		{"eap", "TTLS"},
		{"identity", quote(username)},
		{"password", quote(password)},
		{"phase2", quote("auth=PAP")},
	}
	if len(trustedServerNames) > 0 {
		settings = append(settings, setting{"domain_suffix_match", quote(strings.Join(trustedServerNames, ";"))})
	}
	return b.installNetwork(ctx, ssid, settings)
}

func (b *Backend) InstallPasspoint(ctx context.Context, domain, username, password string, roamingConsortiumOIs []string) error {
	ctx = runner.WithSecrets(ctx, password)

	creds, err := b.listCreds(ctx)
	if err != nil {
		return err
	}

	settings := []setting{
		{"realm", quote(domain)},
		{"domain", quote(domain)},
		{"username", quote(username)},
		{"password", quote(password)},
		{"eap", "TTLS"},
		{"phase2", quote("auth=PAP")},
		{"domain_suffix_match", quote(domain)},
	}
	if len(roamingConsortiumOIs) > 0 {
		settings = append(settings, setting{"roaming_consortiums", quote(strings.Join(roamingConsortiumOIs, ","))})
	}

	if _, err := b.configure(ctx, "add_cred", "set_cred", "remove_cred", settings); err != nil {
		return err
	}
	b.removeReplaced(ctx, "remove_cred", creds, domain)
	return b.command(ctx, "save_config")
}

// ListInstalledNetworkIdentifiers returns network SSIDs followed by
// credential domains
func (b *Backend) ListInstalledNetworkIdentifiers(ctx context.Context) ([]string, error) {
	networks, err := b.listNetworks(ctx)
	if err != nil {
		return nil, err
	}
	creds, err := b.listCreds(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(networks)+len(creds))
	for _, n := range networks {
		ids = append(ids, n.name)
	}
	for _, c := range creds {
		ids = append(ids, c.name)
	}
	return ids, nil
}

// Remove deletes every network with the given SSID and every credential
// with the given domain
func (b *Backend) Remove(ctx context.Context, identifier string) error {
	networks, err := b.listNetworks(ctx)
	if err != nil {
		return err
	}
	creds, err := b.listCreds(ctx)
	if err != nil {
		return err
	}

	removed := 0
	for _, n := range networks {
		if n.name == identifier {
			if err := b.command(ctx, "remove_network", n.id); err != nil {
				return err
			}
			removed++
		}
	}
	for _, c := range creds {
		if c.name == identifier {
			if err := b.command(ctx, "remove_cred", c.id); err != nil {
				return err
			}
			removed++
		}
	}
	if removed == 0 {
		return errors.Newf(errors.ErrNotFound, "no network or credential named %q", identifier)
	}
	return b.command(ctx, "save_config")
}

// installNetwork adds the new network first and removes older networks
// with the same SSID only once it is fully configured. A failure on the
// way leaves them untouched.
func (b *Backend) installNetwork(ctx context.Context, ssid string, settings []setting) error {
	networks, err := b.listNetworks(ctx)
	if err != nil {
		return err
	}

	// ssid goes over hex so spaces and quotes need no escaping
	all := append([]setting{{"ssid", hex.EncodeToString([]byte(ssid))}}, settings...)
	id, err := b.configure(ctx, "add_network", "set_network", "remove_network", all)
	if err != nil {
		return err
	}

	if err := b.command(ctx, "enable_network", id); err != nil {
		b.rollback(ctx, "remove_network", id)
		return err
	}
	b.removeReplaced(ctx, "remove_network", networks, ssid)
	return b.command(ctx, "save_config")
}

// configure creates an entry with addVerb and applies settings with
// setVerb, removing the entry again if any step fails
func (b *Backend) configure(ctx context.Context, addVerb, setVerb, removeVerb string, settings []setting) (string, error) {
	id, err := b.add(ctx, addVerb)
	if err != nil {
		return "", err
	}
	for _, s := range settings {
		if err := b.command(ctx, setVerb, id, s.field, s.value); err != nil {
			b.rollback(ctx, removeVerb, id)
			return "", err
		}
	}
	return id, nil
}

// removeReplaced removes the entries named name that existed before the
// new one was added
func (b *Backend) removeReplaced(ctx context.Context, verb string, previous []entry, name string) {
	logger := logging.GetLogger("wpasupplicant")
	for _, e := range previous {
		if e.name != name {
			continue
		}
		if err := b.command(ctx, verb, e.id); err != nil {
			logger.Warn().Str("id", e.id).Str("name", name).Err(err).Msg("Failed to remove replaced entry")
		}
	}
}

func (b *Backend) rollback(ctx context.Context, verb, id string) {
	if err := b.command(ctx, verb, id); err != nil {
		logger := logging.GetLogger("wpasupplicant")
		logger.Warn().Str("id", id).Err(err).Msg("Failed to remove partially configured entry")
	}
}

// exec runs one wpa_cli command against the configured interface
func (b *Backend) exec(ctx context.Context, args ...string) (string, error) {
	out, err := b.run.Run(ctx, b.binary, append([]string{"-i", b.iface}, args...)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// command runs a command whose only reply is OK or FAIL
func (b *Backend) command(ctx context.Context, args ...string) error {
	reply, err := b.exec(ctx, args...)
	if err != nil {
		return err
	}
	if reply != replyOK {
		return errors.Newf(errors.ErrPlatform, "wpa_cli %s: %s", args[0], reply).
			WithDetail("interface", b.iface)
	}
	return nil
}

// add runs add_network or add_cred and returns the new id
func (b *Backend) add(ctx context.Context, verb string) (string, error) {
	reply, err := b.exec(ctx, verb)
	if err != nil {
		return "", err
	}
	if _, convErr := strconv.Atoi(reply); convErr != nil {
		if reply == "" {
			reply = replyFail
		}
		return "", errors.Newf(errors.ErrPlatform, "wpa_cli %s: %s", verb, reply).
			WithDetail("interface", b.iface)
	}
	return reply, nil
}

// listNetworks parses list_networks: id, ssid, bssid, flags
func (b *Backend) listNetworks(ctx context.Context) ([]entry, error) {
	out, err := b.exec(ctx, "list_networks")
	if err != nil {
		return nil, err
	}
	return parseTable(out, 1), nil
}

// listCreds parses list_creds: id, realm, username, domain, imsi
func (b *Backend) listCreds(ctx context.Context) ([]entry, error) {
	out, err := b.exec(ctx, "list_creds")
	if err != nil {
		return nil, err
	}
	return parseTable(out, 3), nil
}

// parseTable reads the tab-separated rows wpa_cli prints below its header.
// Rows whose first column is not a numeric id are skipped.
func parseTable(out string, column int) []entry {
	var entries []entry
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) <= column {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		entries = append(entries, entry{id: fields[0], name: fields[column]})
	}
	return entries
}
