package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/sigil/internal/domain"
)

type stubTheme struct{ err error }

func (s stubTheme) Load(context.Context) (domain.Theme, error) {
	return domain.Theme{ThemeFormatVersion: "1", ColorProfile: "truecolor"}, s.err
}

type stubInspector struct {
	status domain.RepositoryStatus
	err    error
}

func (s stubInspector) ComputeStatus(context.Context, string) (domain.RepositoryStatus, error) {
	return s.status, s.err
}

type stubEnvironment domain.EnvironmentSnapshot

func (s stubEnvironment) Collect(context.Context) domain.EnvironmentSnapshot {
	return domain.EnvironmentSnapshot(s)
}

type stubIntegrator struct{ status domain.ShellStatus }

func (s stubIntegrator) Script(domain.ShellName) (string, error) { return "", nil }
func (s stubIntegrator) Install(string, bool) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}
func (s stubIntegrator) Uninstall(string) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}
func (s stubIntegrator) Status(string) domain.ShellStatus { return s.status }
func (s stubIntegrator) DetectShell() string              { return "/bin/zsh" }

func findCheck(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	require.Failf(t, "check not found", "%s", name)
	return domain.HealthCheck{}
}

func TestRunHealthy(t *testing.T) {
	svc := &Service{
		ThemeProvider: stubTheme{},
		Inspector:     stubInspector{status: domain.RepositoryStatus{Branch: "main", Ahead: 1}},
		Environment: stubEnvironment{
			Home: "/home/alice", HasHome: true,
			HasSSH: true, Hostname: "devbox", HasHostname: true,
			VirtualEnv: "/home/alice/proj/.venv", VirtualEnvName: "proj", HasVirtualEnv: true,
		},
		ShellIntegrator: stubIntegrator{status: domain.ShellStatus{Shell: domain.ShellZsh, ScriptExists: true, LinePresent: true}},
	}

	report, err := svc.Run(context.Background(), "/home/alice/proj")
	require.NoError(t, err)
	assert.Zero(t, report.Count(domain.HealthWarn))
	assert.Zero(t, report.Count(domain.HealthError))
	assert.Equal(t, "main▲1", findCheck(t, report, "Repository").Details)
	assert.Equal(t, "remote session on devbox", findCheck(t, report, "SSH").Details)
	assert.Equal(t, "proj (/home/alice/proj/.venv)", findCheck(t, report, "Virtualenv").Details)
	assert.Equal(t, "zsh ready", findCheck(t, report, "Shell integration").Details)
}

func TestRunDegraded(t *testing.T) {
	svc := &Service{
		ThemeProvider:   stubTheme{},
		Inspector:       stubInspector{err: domain.ErrNotARepository},
		Environment:     stubEnvironment{HasSSH: true},
		ShellIntegrator: stubIntegrator{},
	}

	report, err := svc.Run(context.Background(), "/tmp")
	require.NoError(t, err)
	assert.Equal(t, domain.HealthOK, findCheck(t, report, "Repository").Status)
	assert.Equal(t, domain.HealthWarn, findCheck(t, report, "HOME").Status)
	assert.Equal(t, domain.HealthWarn, findCheck(t, report, "SSH").Status)
	assert.Equal(t, domain.HealthWarn, findCheck(t, report, "Shell integration").Status)
	assert.Equal(t, 3, report.Count(domain.HealthWarn))
}

func TestRunRepositoryFailure(t *testing.T) {
	svc := &Service{
		ThemeProvider: stubTheme{},
		Inspector:     stubInspector{err: errors.New("permission denied")},
	}

	report, err := svc.Run(context.Background(), "/srv")
	require.NoError(t, err)
	assert.Equal(t, domain.HealthError, findCheck(t, report, "Repository").Status)
}

func TestRunStopsOnThemeError(t *testing.T) {
	svc := &Service{ThemeProvider: stubTheme{err: errors.New("bad yaml")}}

	report, err := svc.Run(context.Background(), "/")
	require.Error(t, err)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, domain.HealthError, report.Checks[0].Status)
}
