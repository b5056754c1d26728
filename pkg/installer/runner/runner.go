// Package runner executes the platform tools the OS-backed installers
// drive (nmcli, wpa_cli).
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/wifiprof/pkg/logging"
)

// Runner runs one external command and returns its standard output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type secretsKey struct{}

// WithSecrets returns a context whose commands log the given values as
// "***".
func WithSecrets(ctx context.Context, secrets ...string) context.Context {
	prev, _ := ctx.Value(secretsKey{}).([]string)
	all := append(append([]string{}, prev...), secrets...)
	return context.WithValue(ctx, secretsKey{}, all)
}

// Secrets returns the values registered with WithSecrets
func Secrets(ctx context.Context) []string {
	secrets, _ := ctx.Value(secretsKey{}).([]string)
	return secrets
}

// Exec runs commands with os/exec
type Exec struct {
	// Redact lists argument values that must not appear in logs
	Redact []string
}

// Run executes name with args. On a non-zero exit the returned error
// carries the tool's own stderr (or stdout) text so it can be shown to the
// user as the platform's failure reason.
func (e Exec) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logger := logging.GetLogger("runner")
	logger.Debug().
		Str("command", name).
		Strs("args", RedactArgs(args, append(Secrets(ctx), e.Redact...))).
		Msg("Executing command")

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			return stdout.Bytes(), err
		}
		return stdout.Bytes(), stderrors.New(msg)
	}

	return stdout.Bytes(), nil
}

// RedactArgs returns a copy of args with every secret replaced by "***"
func RedactArgs(args []string, secrets []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg
		for _, secret := range secrets {
			if secret != "" && strings.Contains(arg, secret) {
				out[i] = "***"
				break
			}
		}
	}
	return out
}
