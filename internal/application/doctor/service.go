package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/sigil/internal/application/gitstatus"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ThemeProvider   ports.ThemeProvider
	Inspector       ports.RepositoryInspector
	Environment     ports.EnvironmentCollector
	ShellIntegrator ports.ShellIntegrator
}

// Run executes checks against dir and returns a report.
func (s *Service) Run(ctx context.Context, dir string) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	theme, err := s.ThemeProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Theme", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Theme", fmt.Sprintf("format %s, %s colours", theme.ThemeFormatVersion, theme.ColorProfile)))

	if s.Environment != nil {
		checks = append(checks, environmentChecks(s.Environment.Collect(ctx))...)
	}

	if s.Inspector != nil {
		checks = append(checks, repositoryCheck(ctx, s.Inspector, dir))
	}

	if s.ShellIntegrator != nil {
		status := s.ShellIntegrator.Status("")
		switch {
		case status.Error != "":
			checks = append(checks, warn("Shell integration", status.Error))
		case status.ScriptExists && status.LinePresent && len(status.Warnings) == 0:
			checks = append(checks, ok("Shell integration", fmt.Sprintf("%s ready", status.Shell)))
		case status.ScriptExists && status.LinePresent:
			checks = append(checks, warn("Shell integration", status.Warnings[0]))
		default:
			checks = append(checks, warn("Shell integration", "not installed; run sigil install"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func environmentChecks(env domain.EnvironmentSnapshot) []domain.HealthCheck {
	var checks []domain.HealthCheck

	if env.HasHome {
		checks = append(checks, ok("HOME", env.Home))
	} else {
		checks = append(checks, warn("HOME", "unset; paths are shown from the filesystem root"))
	}

	switch {
	case !env.HasSSH:
		checks = append(checks, ok("SSH", "local session"))
	case env.HasHostname:
		checks = append(checks, ok("SSH", "remote session on "+env.Hostname))
	default:
		checks = append(checks, warn("SSH", "remote session but hostname lookup failed"))
	}

	if env.HasVirtualEnv {
		checks = append(checks, ok("Virtualenv", fmt.Sprintf("%s (%s)", env.VirtualEnvName, env.VirtualEnv)))
	}
	return checks
}

func repositoryCheck(ctx context.Context, inspector ports.RepositoryInspector, dir string) domain.HealthCheck {
	status, err := inspector.ComputeStatus(ctx, dir)
	switch {
	case errors.Is(err, domain.ErrNotARepository):
		return ok("Repository", "no repository at "+dir)
	case err != nil:
		return fail("Repository", err.Error())
	}

	summary := gitstatus.Format(status)
	if summary == "" {
		summary = "empty repository"
	}
	return ok("Repository", summary)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
