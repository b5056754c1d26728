package types

// Request is one installation attempt. It is built fresh for each install
// and discarded once the installer returns. The three implementations are
// the only ones; dispatch code switches on the concrete type.
type Request interface {
	Kind() Kind
	// Identifier is the SSID or passpoint domain being installed
	Identifier() string
	isRequest()
}

// PSKRequest joins a passphrase-protected network
type PSKRequest struct {
	SSID       string
	Passphrase string
}

func (PSKRequest) Kind() Kind           { return KindPSK }
func (r PSKRequest) Identifier() string { return r.SSID }
func (PSKRequest) isRequest()           {}

// EAPRequest joins an enterprise network with username/password credentials
type EAPRequest struct {
	SSID               string
	Username           string
	Password           string
	TrustedServerNames []string
}

func (EAPRequest) Kind() Kind           { return KindEAP }
func (r EAPRequest) Identifier() string { return r.SSID }
func (EAPRequest) isRequest()           {}

// PasspointRequest registers domain-scoped roaming credentials
type PasspointRequest struct {
	Domain               string
	Username             string
	Password             string
	RoamingConsortiumOIs []string
}

func (PasspointRequest) Kind() Kind           { return KindPasspoint }
func (r PasspointRequest) Identifier() string { return r.Domain }
func (PasspointRequest) isRequest()           {}
