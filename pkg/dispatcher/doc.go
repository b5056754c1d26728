// Package dispatcher turns a parsed ConfigurationRecord into exactly one
// installer call.
//
// BuildRequest selects the join strategy in a fixed order (passpoint, then
// EAP, then PSK) and validates the fields that strategy needs. Install hands
// the request to the injected types.Installer and normalizes the outcome
// into a Result. The dispatcher keeps no state between calls, never retries
// and imposes no timeout of its own; callers bound the call through the
// context they pass in.
package dispatcher
