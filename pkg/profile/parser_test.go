package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/profile"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func encode(t *testing.T, v interface{}, format int) []byte {
	t.Helper()
	data, err := plist.Marshal(v, format)
	require.NoError(t, err)
	return data
}

func wifiProfile(payloads ...map[string]interface{}) map[string]interface{} {
	content := make([]interface{}, 0, len(payloads))
	for _, p := range payloads {
		content = append(content, p)
	}
	return map[string]interface{}{
		"PayloadType":    "Configuration",
		"PayloadContent": content,
	}
}

func TestParseEAPExample(t *testing.T) {
	record, ok := profile.Parse(fixture(t, "eap.mobileconfig"))
	require.True(t, ok)

	assert.Equal(t, &types.ConfigurationRecord{
		SSID:           types.String("Freedom"),
		Username:       types.String("bob"),
		Password:       types.String("pw"),
		EncryptionType: types.String("WPA2"),
	}, record)
	assert.Equal(t, types.KindEAP, record.Classify())
}

func TestParsePasspoint(t *testing.T) {
	record, ok := profile.Parse(fixture(t, "passpoint.mobileconfig"))
	require.True(t, ok)

	assert.Nil(t, record.SSID)
	assert.Equal(t, "hotspot.freedomwifi.net", types.Value(record.Domain))
	assert.Equal(t, []string{"5A03BA0000", "004096"}, record.RoamingConsortiumOIs)
	assert.Equal(t, "alice@freedomwifi.net", types.Value(record.Username))
	assert.Equal(t, "s3cret", types.Value(record.Password))
	assert.Equal(t, "anonymous@freedomwifi.net", types.Value(record.OuterIdentity))
	assert.Equal(t, []string{"radius.freedomwifi.net"}, record.TrustedServerNames)
	assert.Equal(t, types.KindPasspoint, record.Classify())
}

func TestParsePSK(t *testing.T) {
	record, ok := profile.Parse(fixture(t, "psk.mobileconfig"))
	require.True(t, ok)

	assert.Equal(t, "Cafe Guest", types.Value(record.SSID))
	assert.Equal(t, "espresso42", types.Value(record.Passphrase))
	require.NotNil(t, record.Hidden)
	assert.False(t, *record.Hidden)
	assert.Equal(t, types.KindPSK, record.Classify())
}

func TestParseFirstManagedPayloadWins(t *testing.T) {
	record, ok := profile.Parse(fixture(t, "two-wifi-payloads.mobileconfig"))
	require.True(t, ok)

	assert.Equal(t, "First", types.Value(record.SSID))
	assert.Equal(t, "first-pass", types.Value(record.Passphrase))
	// Fields that only the second payload carries must not leak in.
	assert.Nil(t, record.Domain)
	assert.Nil(t, record.Username)
	assert.Equal(t, types.KindPSK, record.Classify())
}

func TestParseIsDeterministic(t *testing.T) {
	data := fixture(t, "passpoint.mobileconfig")
	first, ok := profile.Parse(data)
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		again, ok := profile.Parse(data)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestParseBinaryPlist(t *testing.T) {
	data := encode(t, wifiProfile(map[string]interface{}{
		"PayloadType": "com.apple.wifi.managed",
		"SSID_STR":    "Binary",
		"Password":    "bplist00",
	}), plist.BinaryFormat)

	record, ok := profile.Parse(data)
	require.True(t, ok)
	assert.Equal(t, "Binary", types.Value(record.SSID))
	assert.Equal(t, "bplist00", types.Value(record.Passphrase))
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		code errors.ErrorCode
	}{
		{"empty", nil, errors.ErrProfileDecode},
		{"garbage", []byte("\x00\x01\x02 not a plist <<<"), errors.ErrProfileDecode},
		{"root is an array", encode(t, []interface{}{"a"}, plist.XMLFormat), errors.ErrProfileDecode},
		{"no payload content", encode(t, map[string]interface{}{"PayloadType": "Configuration"}, plist.XMLFormat), errors.ErrProfileDecode},
		{"payload content is a string", encode(t, map[string]interface{}{"PayloadContent": "nope"}, plist.XMLFormat), errors.ErrProfileDecode},
		{"payload entry is not a dictionary", encode(t, map[string]interface{}{"PayloadContent": []interface{}{"nope"}}, plist.XMLFormat), errors.ErrProfileDecode},
		{"no wifi payload", fixture(t, "no-wifi.mobileconfig"), errors.ErrProfileNoPayload},
		{"payload type wrong type", encode(t, wifiProfile(map[string]interface{}{"PayloadType": 7, "SSID_STR": "x"}), plist.XMLFormat), errors.ErrProfileNoPayload},
		{"empty payload content", encode(t, wifiProfile(), plist.XMLFormat), errors.ErrProfileNoPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, ok := profile.Parse(tt.data)
			assert.False(t, ok)
			assert.Nil(t, record)

			_, err := profile.Decode(tt.data)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestParseWrongTypedFieldsAreLeftUnset(t *testing.T) {
	data := encode(t, wifiProfile(map[string]interface{}{
		"PayloadType":              "com.apple.wifi.managed",
		"SSID_STR":                 42,
		"Password":                 []interface{}{"x"},
		"HS20DomainName":           true,
		"HS20RoamingConsortiumOIs": []interface{}{"5A03BA0000", 12},
		"HIDDEN_NETWORK":           "yes",
		"EAPClientConfiguration": map[string]interface{}{
			"UserName":              "carol",
			"UserPassword":          3.5,
			"TLSTrustedServerNames": "radius.example.net",
			"OuterIdentity":         map[string]interface{}{},
		},
	}), plist.XMLFormat)

	record, ok := profile.Parse(data)
	require.True(t, ok)

	assert.Nil(t, record.SSID)
	assert.Nil(t, record.Passphrase)
	assert.Nil(t, record.Domain)
	assert.Nil(t, record.RoamingConsortiumOIs)
	assert.Nil(t, record.Hidden)
	assert.Nil(t, record.Password)
	assert.Nil(t, record.TrustedServerNames)
	assert.Nil(t, record.OuterIdentity)
	assert.Equal(t, "carol", types.Value(record.Username))
}

func TestParseEAPConfigurationWrongType(t *testing.T) {
	data := encode(t, wifiProfile(map[string]interface{}{
		"PayloadType":            "com.apple.wifi.managed",
		"SSID_STR":               "Corp",
		"EAPClientConfiguration": []interface{}{"UserName", "bob"},
	}), plist.XMLFormat)

	record, ok := profile.Parse(data)
	require.True(t, ok)
	assert.Equal(t, "Corp", types.Value(record.SSID))
	assert.Nil(t, record.Username)
	assert.Equal(t, types.KindUnclassified, record.Classify())
}

func TestParseKeepsStringsVerbatim(t *testing.T) {
	data := encode(t, wifiProfile(map[string]interface{}{
		"PayloadType": "com.apple.wifi.managed",
		"SSID_STR":    "  Mixed Case SSID ",
		"Password":    "",
	}), plist.XMLFormat)

	record, ok := profile.Parse(data)
	require.True(t, ok)
	assert.Equal(t, "  Mixed Case SSID ", types.Value(record.SSID))
	require.NotNil(t, record.Passphrase)
	assert.Equal(t, "", *record.Passphrase)
}

func TestParseEmptyStringArrayIsPresent(t *testing.T) {
	data := encode(t, wifiProfile(map[string]interface{}{
		"PayloadType":              "com.apple.wifi.managed",
		"HS20DomainName":           "example.net",
		"HS20RoamingConsortiumOIs": []interface{}{},
	}), plist.XMLFormat)

	record, ok := profile.Parse(data)
	require.True(t, ok)
	assert.NotNil(t, record.RoamingConsortiumOIs)
	assert.Empty(t, record.RoamingConsortiumOIs)
}
