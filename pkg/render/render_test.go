package render_test

import (
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/render"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var s = types.String

func TestAndroidXML(t *testing.T) {
	hidden := true
	rec := &types.ConfigurationRecord{
		SSID:           s("Cafe <Guest>"),
		Passphrase:     s("espresso&42"),
		EncryptionType: s("WPA3"),
		Hidden:         &hidden,
	}

	out, err := render.AndroidXML(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml version="1.0" encoding="utf-8"?>`)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("WifiConfiguration")
	require.NotNil(t, root)

	assert.Equal(t, `"Cafe <Guest>"`, root.SelectElement("SSID").Text())
	assert.Equal(t, "WPA3", root.SelectElement("security").Text())
	assert.Equal(t, "espresso&42", root.SelectElement("password").Text())
	assert.Equal(t, "true", root.SelectElement("hiddenSSID").Text())
}

func TestAndroidXMLDefaults(t *testing.T) {
	rec := &types.ConfigurationRecord{SSID: s("Freedom"), Username: s("bob"), Password: s("pw")}

	out, err := render.AndroidXML(rec)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("WifiConfiguration")

	assert.Equal(t, "WPA2", root.SelectElement("security").Text())
	assert.Equal(t, "pw", root.SelectElement("password").Text())
	assert.Equal(t, "false", root.SelectElement("hiddenSSID").Text())
}

func TestAndroidXMLNil(t *testing.T) {
	_, err := render.AndroidXML(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestQRSecurity(t *testing.T) {
	tests := map[string]string{
		"WPA2":  "WPA",
		"WPA3":  "WPA",
		"WPA":   "WPA",
		"Any":   "WPA",
		"WEP":   "WEP",
		"None":  "nopass",
		"":      "nopass",
		"bogus": "nopass",
	}
	for in, want := range tests {
		assert.Equal(t, want, render.QRSecurity(in), in)
	}
}

func TestWiFiQRPayload(t *testing.T) {
	tests := []struct {
		name string
		rec  types.ConfigurationRecord
		want string
	}{
		{
			name: "psk defaults to WPA",
			rec:  types.ConfigurationRecord{SSID: s("Home"), Passphrase: s("hunter22")},
			want: "WIFI:T:WPA;S:Home;P:hunter22;H:false;;",
		},
		{
			name: "special characters are escaped",
			rec:  types.ConfigurationRecord{SSID: s(`a;b,c:d"e\f`), Passphrase: s("p;w")},
			want: `WIFI:T:WPA;S:a\;b\,c\:d\"e\\f;P:p\;w;H:false;;`,
		},
		{
			name: "wep",
			rec:  types.ConfigurationRecord{SSID: s("Old"), Passphrase: s("12345"), EncryptionType: s("WEP")},
			want: "WIFI:T:WEP;S:Old;P:12345;H:false;;",
		},
		{
			name: "open network drops the password",
			rec:  types.ConfigurationRecord{SSID: s("Open"), Passphrase: s("ignored"), EncryptionType: s("None")},
			want: "WIFI:T:nopass;S:Open;P:;H:false;;",
		},
		{
			name: "eap password and hidden flag",
			rec:  types.ConfigurationRecord{SSID: s("Freedom"), Username: s("bob"), Password: s("pw"), Hidden: func() *bool { b := true; return &b }()},
			want: "WIFI:T:WPA;S:Freedom;P:pw;H:true;;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.WiFiQRPayload(&tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWiFiQRPayloadNeedsSSID(t *testing.T) {
	_, err := render.WiFiQRPayload(&types.ConfigurationRecord{Domain: s("example.net")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingNetworkName))

	_, err = render.WiFiQRPayload(nil)
	assert.Error(t, err)
}

func TestSummaryMasksSecrets(t *testing.T) {
	rec := &types.ConfigurationRecord{
		Domain:               s("example.net"),
		Username:             s("alice"),
		Password:             s("s3cret"),
		RoamingConsortiumOIs: []string{"5A03BA0000", "004096"},
	}

	assert.Equal(t, []render.Field{
		{Key: "Kind", Value: "passpoint"},
		{Key: "Domain", Value: "example.net"},
		{Key: "Username", Value: "alice"},
		{Key: "Password", Value: render.Mask},
		{Key: "Roaming consortium OIs", Value: "5A03BA0000, 004096"},
	}, render.Summary(rec))
}

func TestSummaryKeepsEmptyFields(t *testing.T) {
	fields := render.Summary(&types.ConfigurationRecord{SSID: s(""), Passphrase: s("")})
	assert.Equal(t, []render.Field{
		{Key: "Kind", Value: "psk"},
		{Key: "SSID", Value: ""},
		{Key: "Passphrase", Value: render.Mask},
	}, fields)
	assert.Nil(t, render.Summary(nil))
}

func TestMasked(t *testing.T) {
	rec := &types.ConfigurationRecord{SSID: s("Home"), Passphrase: s("hunter22")}
	masked := render.Masked(rec)

	assert.Equal(t, render.Mask, *masked.Passphrase)
	assert.Nil(t, masked.Password)
	assert.Equal(t, "hunter22", *rec.Passphrase, "original must be untouched")
}
