package dispatcher

import (
	stderrors "errors"
	"time"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/types"
)

// State is a step of a single install attempt:
//
//	Idle -> Validating -> Rejected
//	                   -> Dispatched -> Succeeded | Failed
//
// Rejected, Succeeded and Failed are terminal.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateDispatched State = "dispatched"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Terminal reports whether no further transition follows s
func (s State) Terminal() bool {
	return s == StateRejected || s == StateSucceeded || s == StateFailed
}

// Result is the normalized outcome of one install attempt
type Result struct {
	State State
	Kind  types.Kind

	// Request is nil when the attempt was rejected
	Request types.Request

	// Err is a validation error when Rejected and a PLATFORM error when Failed
	Err error

	// Skipped is set for dry runs: the request was valid but not sent
	Skipped bool

	Duration time.Duration
}

// Succeeded reports whether the installer accepted the request
func (r Result) Succeeded() bool {
	return r.State == StateSucceeded
}

// Reason returns the failure text: the validation message when rejected, or
// the installer's own message when the platform failed.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	var e *errors.Error
	if stderrors.As(r.Err, &e) {
		if e.Code == errors.ErrPlatform {
			return e.Reason()
		}
		return e.Message
	}
	return r.Err.Error()
}
