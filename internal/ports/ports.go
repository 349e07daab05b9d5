// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the rendering core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces keep the prompt pipeline independent of git libraries, the
// process environment, and the CLI framework.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., RepositoryInspector, ThemeProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/sigil/internal/domain"
)

// ThemeProvider loads the glyph and colour theme.
// The default implementation parses the embedded assets/defaults/theme.yaml.
type ThemeProvider interface {
	Load(context.Context) (domain.Theme, error)
}

// RepositoryInspector summarizes the repository enclosing a directory.
// It returns domain.ErrNotARepository when no repository is found; every other
// lookup failure is folded into zero values of the returned status.
type RepositoryInspector interface {
	ComputeStatus(ctx context.Context, dir string) (domain.RepositoryStatus, error)
}

// EnvironmentCollector gathers the environment signals the prompt reacts to
// (virtualenv, SSH session, home directory, hostname).
type EnvironmentCollector interface {
	Collect(context.Context) domain.EnvironmentSnapshot
}

// ShellIntegrator manages shell integration hooks (bash, zsh, fish).
// Handles installation and removal of the hook script and its rc-file source line.
type ShellIntegrator interface {
	Script(shell domain.ShellName) (string, error)
	Install(shell string, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell string) (domain.ShellInstallResult, error)
	Status(shell string) domain.ShellStatus
	DetectShell() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, no-op).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
