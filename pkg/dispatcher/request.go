package dispatcher

import (
	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/types"
)

// BuildRequest picks the strategy for record and validates it. Empty
// strings count as absent. The order is fixed: a record with a domain is
// always treated as passpoint, even if it also carries a usable
// ssid/passphrase pair.
func BuildRequest(record types.ConfigurationRecord) (types.Request, error) {
	switch {
	case record.Domain != nil:
		if !types.NonEmpty(record.Domain) {
			return nil, errors.New(errors.ErrMissingCredentials, "passpoint profile has an empty domain")
		}
		if !types.NonEmpty(record.Username) || !types.NonEmpty(record.Password) {
			return nil, errors.New(errors.ErrMissingCredentials, "passpoint profile is missing username or password").
				WithDetail("domain", *record.Domain)
		}
		return types.PasspointRequest{
			Domain:               *record.Domain,
			Username:             *record.Username,
			Password:             *record.Password,
			RoamingConsortiumOIs: record.RoamingConsortiumOIs,
		}, nil

	case types.NonEmpty(record.Username) && types.NonEmpty(record.Password):
		if !types.NonEmpty(record.SSID) {
			return nil, errors.New(errors.ErrMissingNetworkName, "enterprise profile has credentials but no network name")
		}
		return types.EAPRequest{
			SSID:               *record.SSID,
			Username:           *record.Username,
			Password:           *record.Password,
			TrustedServerNames: record.TrustedServerNames,
		}, nil

	case types.NonEmpty(record.SSID) && types.NonEmpty(record.Passphrase):
		return types.PSKRequest{
			SSID:       *record.SSID,
			Passphrase: *record.Passphrase,
		}, nil

	default:
		return nil, errors.New(errors.ErrInsufficientData, "profile describes no installable network")
	}
}
