// Package networkmanager installs networks through NetworkManager's nmcli.
// NetworkManager has no Passpoint credential support, so Passpoint
// installs fail with an unsupported-platform error.
package networkmanager

import (
	"context"
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/installer/runner"
	"github.com/arthur-debert/wifiprof/pkg/logging"
)

const (
	DefaultBinary = "nmcli"

	wirelessType = "802-11-wireless"
)

// Options configures a Backend
type Options struct {
	// Binary defaults to DefaultBinary
	Binary string
	// Interface pins connections to one device; empty means any
	Interface string
	Runner    runner.Runner
}

// Backend drives nmcli
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
	if b.run == nil {
		b.run = runner.Exec{}
	}
	return b
}

func (b *Backend) ifname() string {
	if b.iface == "" {
		return "*"
	}
	return b.iface
}

func (b *Backend) baseArgs(ssid string) []string {
	return []string{
		"connection", "add",
		"type", "wifi",
		"con-name", ssid,
		"ifname", b.ifname(),
		"ssid", ssid,
	}
}

// InstallPSK replaces any connection named ssid with a WPA-PSK profile
func (b *Backend) InstallPSK(ctx context.Context, ssid, passphrase string) error {
	ctx = runner.WithSecrets(ctx, passphrase)
	return b.replace(ctx, ssid, append(b.baseArgs(ssid),
		"wifi-sec.key-mgmt", "wpa-psk",
		"wifi-sec.psk", passphrase,
	))
}

// InstallEAP replaces any connection named ssid with a WPA-Enterprise
// profile using TTLS/PAP. Trusted server names become the domain suffix
// match list.
func (b *Backend) InstallEAP(ctx context.Context, ssid, username, password string, trustedServerNames []string) error {
	ctx = runner.WithSecrets(ctx, password)
	args := append(b.baseArgs(ssid),
		"wifi-sec.key-mgmt", "wpa-eap",
		"802-1x.eap", "ttls",
		"802-1x.phase2-auth", "pap",
		"802-1x.identity", username,
		"802-1x.password", password,
	)
	if len(trustedServerNames) > 0 {
		args = append(args, "802-1x.domain-suffix-match", strings.Join(trustedServerNames, ";"))
	}
	return b.replace(ctx, ssid, args)
}

func (b *Backend) InstallPasspoint(ctx context.Context, domain, username, password string, roamingConsortiumOIs []string) error {
	return errors.New(errors.ErrUnsupported, "NetworkManager does not support Passpoint credentials").
		WithDetail("domain", domain)
}

// ListInstalledNetworkIdentifiers returns the names of Wi-Fi connections
func (b *Backend) ListInstalledNetworkIdentifiers(ctx context.Context) ([]string, error) {
	out, err := b.run.Run(ctx, b.binary, "--terse", "--fields", "TYPE,NAME", "connection", "show")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		fields := splitTerse(line)
		if len(fields) != 2 || fields[0] != wirelessType {
			continue
		}
		names = append(names, fields[1])
	}
	return names, nil
}

// Remove deletes the connection named identifier
func (b *Backend) Remove(ctx context.Context, identifier string) error {
	_, err := b.run.Run(ctx, b.binary, "connection", "delete", "id", identifier)
	return err
}

// replace adds the connection described by addArgs and only then deletes
// the connections previously named ssid. A failed add leaves them intact.
func (b *Backend) replace(ctx context.Context, ssid string, addArgs []string) error {
	previous, err := b.connectionUUIDs(ctx, ssid)
	if err != nil {
		return err
	}

	if _, err := b.run.Run(ctx, b.binary, addArgs...); err != nil {
		return err
	}

	logger := logging.GetLogger("networkmanager")
	for _, uuid := range previous {
		if _, err := b.run.Run(ctx, b.binary, "connection", "delete", "uuid", uuid); err != nil {
			logger.Warn().Str("network", ssid).Str("uuid", uuid).Err(err).Msg("Failed to delete replaced connection")
		}
	}
	return nil
}

// connectionUUIDs returns the UUIDs of Wi-Fi connections named ssid
func (b *Backend) connectionUUIDs(ctx context.Context, ssid string) ([]string, error) {
	out, err := b.run.Run(ctx, b.binary, "--terse", "--fields", "UUID,TYPE,NAME", "connection", "show")
	if err != nil {
		return nil, err
	}

	var uuids []string
	for _, line := range strings.Split(string(out), "\n") {
		fields := splitTerse(line)
		if len(fields) == 3 && fields[1] == wirelessType && fields[2] == ssid {
			uuids = append(uuids, fields[0])
		}
	}
	return uuids, nil
}

// splitTerse splits one line of nmcli --terse output. Literal colons and
// backslashes inside values arrive escaped with a backslash.
func splitTerse(line string) []string {
	var fields []string
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, cur.String())
}
