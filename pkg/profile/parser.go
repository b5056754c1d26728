package profile

import (
	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/logging"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"howett.net/plist"
)

type dict = map[string]interface{}

// Parse decodes a profile and returns the managed-wifi record it carries.
// The boolean is false when the bytes are not a property list or when no
// managed-wifi payload is present; no partial record is ever returned.
func Parse(data []byte) (*types.ConfigurationRecord, bool) {
	record, err := Decode(data)
	if err != nil {
		logger := logging.GetLogger("profile")
		logger.Debug().
			Err(err).
			Int("bytes", len(data)).
			Msg("Profile could not be parsed")
		return nil, false
	}
	return record, true
}

// Decode is Parse with the failure reason kept, for diagnostics. It
// returns ErrProfileDecode for undecodable documents and
// ErrProfileNoPayload when no managed-wifi payload exists.
func Decode(data []byte) (*types.ConfigurationRecord, error) {
	if len(data) == 0 {
		return nil, errors.New(errors.ErrProfileDecode, "profile is empty")
	}

	var root interface{}
	format, err := plist.Unmarshal(data, &root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileDecode, "profile is not a property list")
	}

	top, ok := root.(dict)
	if !ok {
		return nil, errors.New(errors.ErrProfileDecode, "profile root is not a dictionary").
			WithDetail("format", plist.FormatNames[format])
	}

	payloads, ok := dictArray(top[KeyPayloadContent])
	if !ok {
		return nil, errors.Newf(errors.ErrProfileDecode, "%s is missing or not an array of dictionaries", KeyPayloadContent)
	}

	for _, payload := range payloads {
		if payloadType, _ := payload[KeyPayloadType].(string); payloadType == PayloadTypeManagedWiFi {
			return extract(payload), nil
		}
	}

	return nil, errors.Newf(errors.ErrProfileNoPayload, "no %s payload in profile", PayloadTypeManagedWiFi).
		WithDetail("payloads", len(payloads))
}

func extract(payload dict) *types.ConfigurationRecord {
	record := &types.ConfigurationRecord{
		SSID:                 str(payload[KeySSID]),
		Passphrase:           str(payload[KeyPassword]),
		Domain:               str(payload[KeyDomainName]),
		RoamingConsortiumOIs: strs(payload[KeyRoamingConsortiumOIs]),
		EncryptionType:       str(payload[KeyEncryptionType]),
	}
	if hidden, ok := payload[KeyHidden].(bool); ok {
		record.Hidden = &hidden
	}

	if eap, ok := payload[KeyEAPClientConfiguration].(dict); ok {
		record.Username = str(eap[KeyUserName])
		record.Password = str(eap[KeyUserPassword])
		record.TrustedServerNames = strs(eap[KeyTrustedServerNames])
		record.OuterIdentity = str(eap[KeyOuterIdentity])
	}

	return record
}

func str(v interface{}) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// strs accepts only arrays whose every element is a string.
func strs(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}

// dictArray accepts only arrays whose every element is a dictionary.
func dictArray(v interface{}) ([]dict, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]dict, 0, len(items))
	for _, item := range items {
		d, ok := item.(dict)
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}
