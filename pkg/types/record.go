package types

// Kind is the join strategy a record or request describes
type Kind string

const (
	KindUnclassified Kind = "unclassified"
	KindPSK          Kind = "psk"
	KindEAP          Kind = "eap"
	KindPasspoint    Kind = "passpoint"
)

// ConfigurationRecord is the managed-network payload extracted from a
// profile. Every field is optional: a nil pointer or nil slice means the
// key was absent or carried the wrong type. Records are not modified after
// parsing.
type ConfigurationRecord struct {
	SSID          *string `json:"ssid,omitempty" yaml:"ssid,omitempty"`
	Passphrase    *string `json:"passphrase,omitempty" yaml:"passphrase,omitempty"`
	Username      *string `json:"username,omitempty" yaml:"username,omitempty"`
	Password      *string `json:"password,omitempty" yaml:"password,omitempty"`
	Domain        *string `json:"domain,omitempty" yaml:"domain,omitempty"`
	OuterIdentity *string `json:"outer_identity,omitempty" yaml:"outer_identity,omitempty"`

	TrustedServerNames   []string `json:"trusted_server_names,omitempty" yaml:"trusted_server_names,omitempty"`
	RoamingConsortiumOIs []string `json:"roaming_consortium_ois,omitempty" yaml:"roaming_consortium_ois,omitempty"`

	// Rendering hints for non-Apple clients
	Hidden         *bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	EncryptionType *string `json:"encryption_type,omitempty" yaml:"encryption_type,omitempty"`
}

// Classify reports which join strategy the record describes, by presence
// only: Passpoint if a domain is set, else EAP if username and password are
// set, else PSK if ssid and passphrase are set. It does not validate.
func (r ConfigurationRecord) Classify() Kind {
	switch {
	case r.Domain != nil:
		return KindPasspoint
	case r.Username != nil && r.Password != nil:
		return KindEAP
	case r.SSID != nil && r.Passphrase != nil:
		return KindPSK
	default:
		return KindUnclassified
	}
}

// Identifier returns the name the network is stored under: the passpoint
// domain when present, otherwise the SSID.
func (r ConfigurationRecord) Identifier() string {
	if r.Domain != nil {
		return *r.Domain
	}
	return Value(r.SSID)
}

// String returns a pointer to s
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}

// Value dereferences an optional string, returning "" when absent
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NonEmpty reports whether an optional string is present and not ""
func NonEmpty(s *string) bool {
	return s != nil && *s != ""
}
