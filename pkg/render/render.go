package render

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/beevik/etree"
)

// DefaultSecurity is assumed when a profile names no encryption type
const DefaultSecurity = "WPA2"

// Security returns the record's encryption type or DefaultSecurity
func Security(rec *types.ConfigurationRecord) string {
	if types.NonEmpty(rec.EncryptionType) {
		return *rec.EncryptionType
	}
	return DefaultSecurity
}

// secret is the credential a client types in: the PSK passphrase, or the
// EAP password when there is none
func secret(rec *types.ConfigurationRecord) string {
	if rec.Passphrase != nil {
		return *rec.Passphrase
	}
	return types.Value(rec.Password)
}

func hidden(rec *types.ConfigurationRecord) bool {
	return rec.Hidden != nil && *rec.Hidden
}

// AndroidXML renders rec as an Android WifiConfiguration document. The
// SSID is wrapped in double quotes the way Android stores it.
func AndroidXML(rec *types.ConfigurationRecord) ([]byte, error) {
	if rec == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration to render")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("WifiConfiguration")
	root.CreateElement("SSID").SetText(strconv.Quote(types.Value(rec.SSID)))
	root.CreateElement("security").SetText(Security(rec))
	root.CreateElement("password").SetText(secret(rec))
	root.CreateElement("hiddenSSID").SetText(strconv.FormatBool(hidden(rec)))

	doc.Indent(4)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode Android configuration")
	}
	return out, nil
}

// QRSecurity maps an encryption type onto the T: field of a WIFI: payload
func QRSecurity(encryption string) string {
	switch strings.ToUpper(encryption) {
	case "WPA", "WPA2", "WPA3", "ANY":
		return "WPA"
	case "WEP":
		return "WEP"
	default:
		return "nopass"
	}
}

var qrEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// WiFiQRPayload renders the WIFI:T:..;S:..;P:..;H:..;; string that phone
// cameras join from. It fails when rec has no SSID.
func WiFiQRPayload(rec *types.ConfigurationRecord) (string, error) {
	if rec == nil || !types.NonEmpty(rec.SSID) {
		return "", errors.New(errors.ErrMissingNetworkName, "a Wi-Fi QR code needs an SSID")
	}

	security := QRSecurity(Security(rec))
	password := ""
	if security != "nopass" {
		password = secret(rec)
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(security)
	b.WriteString(";S:")
	b.WriteString(qrEscaper.Replace(*rec.SSID))
	b.WriteString(";P:")
	b.WriteString(qrEscaper.Replace(password))
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(hidden(rec)))
	b.WriteString(";;")
	return b.String(), nil
}
