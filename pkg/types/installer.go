package types

import "context"

// Installer registers network credentials with the platform. Each call is
// a single blocking operation; a nil error means the credential store
// accepted the configuration, and a non-nil error carries the platform's
// failure reason. Installers must not retry.
type Installer interface {
	InstallPSK(ctx context.Context, ssid, passphrase string) error
	InstallEAP(ctx context.Context, ssid, username, password string, trustedServerNames []string) error
	InstallPasspoint(ctx context.Context, domain, username, password string, roamingConsortiumOIs []string) error
}

// Querier lists the identifiers of networks already present in the
// credential store. Used for display only.
type Querier interface {
	ListInstalledNetworkIdentifiers(ctx context.Context) ([]string, error)
}

// Remover deletes a stored network by identifier
type Remover interface {
	Remove(ctx context.Context, identifier string) error
}

// Backend is a credential store that can install, list and remove
type Backend interface {
	Installer
	Querier
	Remover
}
