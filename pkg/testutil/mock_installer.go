package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockInstaller is a testify mock of types.Backend.
type MockInstaller struct {
	mock.Mock
}

func (m *MockInstaller) InstallPSK(ctx context.Context, ssid, passphrase string) error {
	args := m.Called(ctx, ssid, passphrase)
	return args.Error(0)
}

func (m *MockInstaller) InstallEAP(ctx context.Context, ssid, username, password string, trustedServerNames []string) error {
	args := m.Called(ctx, ssid, username, password, trustedServerNames)
	return args.Error(0)
}

func (m *MockInstaller) InstallPasspoint(ctx context.Context, domain, username, password string, roamingConsortiumOIs []string) error {
	args := m.Called(ctx, domain, username, password, roamingConsortiumOIs)
	return args.Error(0)
}

func (m *MockInstaller) ListInstalledNetworkIdentifiers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInstaller) Remove(ctx context.Context, identifier string) error {
	args := m.Called(ctx, identifier)
	return args.Error(0)
}

// MockRunner is a testify mock of runner.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	called := m.Called(ctx, name, args)
	out, _ := called.Get(0).([]byte)
	return out, called.Error(1)
}
