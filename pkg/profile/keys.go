package profile

// Property list keys. These names are a wire contract and must match the
// profile byte for byte.
const (
	KeyPayloadContent = "PayloadContent"
	KeyPayloadType    = "PayloadType"

	PayloadTypeManagedWiFi = "com.apple.wifi.managed"

	KeySSID                 = "SSID_STR"
	KeyPassword             = "Password"
	KeyHidden               = "HIDDEN_NETWORK"
	KeyEncryptionType       = "EncryptionType"
	KeyDomainName           = "HS20DomainName"
	KeyRoamingConsortiumOIs = "HS20RoamingConsortiumOIs"

	KeyEAPClientConfiguration = "EAPClientConfiguration"
	KeyUserName               = "UserName"
	KeyUserPassword           = "UserPassword"
	KeyTrustedServerNames     = "TLSTrustedServerNames"
	KeyOuterIdentity          = "OuterIdentity"
)
