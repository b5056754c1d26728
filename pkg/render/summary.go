package render

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/types"
)

// Mask replaces every secret in summaries. Its length is fixed so the
// secret's length is not revealed.
const Mask = "********"

// Field is one labelled line of a summary
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Summary lists the fields present in rec in a fixed order, secrets
// masked. Absent fields are omitted; present but empty ones are kept.
func Summary(rec *types.ConfigurationRecord) []Field {
	if rec == nil {
		return nil
	}

	fields := []Field{{Key: "Kind", Value: string(rec.Classify())}}
	add := func(key string, v *string, masked bool) {
		if v == nil {
			return
		}
		value := *v
		if masked {
			value = Mask
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	addList := func(key string, v []string) {
		if v != nil {
			fields = append(fields, Field{Key: key, Value: strings.Join(v, ", ")})
		}
	}

	add("SSID", rec.SSID, false)
	add("Domain", rec.Domain, false)
	add("Encryption", rec.EncryptionType, false)
	if rec.Hidden != nil {
		fields = append(fields, Field{Key: "Hidden", Value: strconv.FormatBool(*rec.Hidden)})
	}
	add("Passphrase", rec.Passphrase, true)
	add("Username", rec.Username, false)
	add("Outer identity", rec.OuterIdentity, false)
	add("Password", rec.Password, true)
	addList("Trusted servers", rec.TrustedServerNames)
	addList("Roaming consortium OIs", rec.RoamingConsortiumOIs)
	return fields
}

// Masked returns a copy of rec with secrets replaced by Mask, for
// structured output
func Masked(rec *types.ConfigurationRecord) *types.ConfigurationRecord {
	if rec == nil {
		return nil
	}
	out := *rec
	if out.Passphrase != nil {
		out.Passphrase = types.String(Mask)
	}
	if out.Password != nil {
		out.Password = types.String(Mask)
	}
	return &out
}
