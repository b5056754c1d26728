package dispatcher

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/logging"
	"github.com/arthur-debert/wifiprof/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the dispatcher
type Options struct {
	Installer types.Installer
	DryRun    bool

	// Logger defaults to the "dispatcher" component logger
	Logger *zerolog.Logger

	// OnTransition, when set, is called for every state the attempt enters
	OnTransition func(State)
}

// Dispatcher validates records and forwards them to an installer
type Dispatcher struct {
	installer    types.Installer
	dryRun       bool
	logger       zerolog.Logger
	onTransition func(State)
}

// New creates a dispatcher around the given installer
func New(opts Options) *Dispatcher {
	logger := logging.GetLogger("dispatcher")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Dispatcher{
		installer:    opts.Installer,
		dryRun:       opts.DryRun,
		logger:       logger,
		onTransition: opts.OnTransition,
	}
}

// Install sends req to installer and returns the normalized result
func Install(ctx context.Context, req types.Request, installer types.Installer) Result {
	return New(Options{Installer: installer}).Install(ctx, req)
}

// Run validates record and, if it is valid, installs it
func Run(ctx context.Context, record types.ConfigurationRecord, installer types.Installer) Result {
	return New(Options{Installer: installer}).Run(ctx, record)
}

// Run validates record and, if it is valid, installs it. A rejected record
// never reaches the installer.
func (d *Dispatcher) Run(ctx context.Context, record types.ConfigurationRecord) Result {
	start := time.Now()
	d.enter(StateIdle)
	d.enter(StateValidating)

	req, err := BuildRequest(record)
	if err != nil {
		d.enter(StateRejected)
		d.logger.Info().
			Str("classification", string(record.Classify())).
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Profile rejected")
		return Result{
			State:    StateRejected,
			Kind:     record.Classify(),
			Err:      err,
			Duration: time.Since(start),
		}
	}

	return d.dispatch(ctx, req, start)
}

// Install performs exactly one installer call for req
func (d *Dispatcher) Install(ctx context.Context, req types.Request) Result {
	start := time.Now()
	d.enter(StateIdle)
	if req == nil {
		d.enter(StateRejected)
		return Result{
			State:    StateRejected,
			Kind:     types.KindUnclassified,
			Err:      errors.New(errors.ErrInsufficientData, "no installation request"),
			Duration: time.Since(start),
		}
	}
	return d.dispatch(ctx, req, start)
}

func (d *Dispatcher) dispatch(ctx context.Context, req types.Request, start time.Time) Result {
	d.enter(StateDispatched)

	d.logger.Debug().
		Str("kind", string(req.Kind())).
		Str("network", req.Identifier()).
		Bool("dry_run", d.dryRun).
		Msg("Dispatching install request")

	if d.dryRun {
		d.enter(StateSucceeded)
		return Result{
			State:    StateSucceeded,
			Kind:     req.Kind(),
			Request:  req,
			Skipped:  true,
			Duration: time.Since(start),
		}
	}

	if d.installer == nil {
		d.enter(StateFailed)
		return Result{
			State:    StateFailed,
			Kind:     req.Kind(),
			Request:  req,
			Err:      errors.Wrap(stderrors.New("no installer configured"), errors.ErrPlatform, "installer reported failure"),
			Duration: time.Since(start),
		}
	}

	var err error
	switch r := req.(type) {
	case types.PSKRequest:
		err = d.installer.InstallPSK(ctx, r.SSID, r.Passphrase)
	case types.EAPRequest:
		err = d.installer.InstallEAP(ctx, r.SSID, r.Username, r.Password, r.TrustedServerNames)
	case types.PasspointRequest:
		err = d.installer.InstallPasspoint(ctx, r.Domain, r.Username, r.Password, r.RoamingConsortiumOIs)
	}

	if err != nil {
		d.enter(StateFailed)
		d.logger.Error().
			Err(err).
			Str("kind", string(req.Kind())).
			Str("network", req.Identifier()).
			Msg("Installer reported failure")
		return Result{
			State:    StateFailed,
			Kind:     req.Kind(),
			Request:  req,
			Err:      errors.Wrap(err, errors.ErrPlatform, "installer reported failure"),
			Duration: time.Since(start),
		}
	}

	d.enter(StateSucceeded)
	d.logger.Info().
		Str("kind", string(req.Kind())).
		Str("network", req.Identifier()).
		Dur("duration", time.Since(start)).
		Msg("Network installed")

	return Result{
		State:    StateSucceeded,
		Kind:     req.Kind(),
		Request:  req,
		Duration: time.Since(start),
	}
}

func (d *Dispatcher) enter(s State) {
	if d.onTransition != nil {
		d.onTransition(s)
	}
}
