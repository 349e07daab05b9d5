package helpers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/sigil/internal/domain"
)

const (
	// ShellFlag is the global flag selecting the prompt dialect.
	ShellFlag = "shell"

	shellAuto = "auto"
	shellAll  = "all"
)

// TargetShells resolves the --shell value of install, uninstall and reload.
// An empty or "auto" value picks the detected shell, or every supported
// shell when detection fails.
func TargetShells(flag, detected string) ([]domain.ShellName, error) {
	switch value := strings.ToLower(strings.TrimSpace(flag)); value {
	case "", shellAuto:
		if shell := ParseShellName(detected); shell != domain.ShellUnknown {
			return []domain.ShellName{shell}, nil
		}
		return domain.SupportedShells(), nil
	case shellAll:
		return domain.SupportedShells(), nil
	default:
		if shell := ParseShellName(value); shell != domain.ShellUnknown {
			return []domain.ShellName{shell}, nil
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedShell, flag)
	}
}

// PromptShell returns the dialect chosen with the global --shell flag.
// Missing or unknown values fall back to zsh.
func PromptShell(cmd *cobra.Command) domain.ShellName {
	if flag := cmd.Flag(ShellFlag); flag != nil {
		if shell := ParseShellName(flag.Value.String()); shell != domain.ShellUnknown {
			return shell
		}
	}
	return domain.ShellZsh
}

// ParseShellName accepts a bare name or an executable path such as $SHELL.
func ParseShellName(value string) domain.ShellName {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(value)))
	for _, shell := range domain.SupportedShells() {
		if string(shell) == name {
			return shell
		}
	}
	return domain.ShellUnknown
}
