package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/sigil/internal/app"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/infrastructure/cli/helpers"
	"github.com/doeshing/sigil/internal/ports"
)

// shellAction applies one integration change to a single shell and reports
// the outcome. Warnings go to errOut.
type shellAction func(out, errOut io.Writer, integrator ports.ShellIntegrator, shell domain.ShellName) error

// NewInstallCommand creates the install command
func NewInstallCommand(container *app.Container) *cobra.Command {
	var force bool
	cmd := newShellCommand(container, "install", "Install the sigil prompt hook into the shell rc file",
		func(out, errOut io.Writer, integrator ports.ShellIntegrator, shell domain.ShellName) error {
			result, err := integrator.Install(string(shell), force)
			if err != nil {
				return fmt.Errorf("install %s: %w", shell, err)
			}
			fmt.Fprintln(out, describeInstall(result))
			if result.ScriptUpdated || result.RCUpdated {
				fmt.Fprintf(out, "%s: open a new shell or run: source %s\n", result.Shell, result.RCFile)
			}
			helpers.PrintWarnings(errOut, result.Warnings)
			return nil
		})
	cmd.Flags().BoolVar(&force, FlagForce, false, "Rewrite the hook script and rc entry, backing up the rc file")
	return cmd
}

// NewUninstallCommand creates the uninstall command
func NewUninstallCommand(container *app.Container) *cobra.Command {
	return newShellCommand(container, "uninstall", "Remove the sigil prompt hook",
		func(out, errOut io.Writer, integrator ports.ShellIntegrator, shell domain.ShellName) error {
			result, err := integrator.Uninstall(string(shell))
			if err != nil {
				return fmt.Errorf("uninstall %s: %w", shell, err)
			}
			if result.RCUpdated {
				fmt.Fprintf(out, "%s: removed sigil from %s\n", result.Shell, result.RCFile)
			}
			if result.ScriptUpdated {
				fmt.Fprintf(out, "%s: deleted %s\n", result.Shell, result.ScriptPath)
			}
			helpers.PrintWarnings(errOut, result.Warnings)
			return nil
		})
}

// NewReloadCommand creates the reload command. It only prints what the
// current shell has to run; a child process cannot re-source its parent.
func NewReloadCommand(container *app.Container) *cobra.Command {
	return newShellCommand(container, "reload", "Show how to reload the prompt hook",
		func(out, errOut io.Writer, integrator ports.ShellIntegrator, shell domain.ShellName) error {
			status := integrator.Status(string(shell))
			if status.Error != "" {
				fmt.Fprintf(errOut, "%s: %s\n", shell, status.Error)
				return nil
			}
			fmt.Fprintln(out, describeStatus(status))
			helpers.PrintWarnings(errOut, status.Warnings)
			return nil
		})
}

func newShellCommand(container *app.Container, use, short string, action shellAction) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ShellIntegrator == nil {
				return errors.New(ErrShellInstallerUnavailable)
			}
			shells, err := helpers.TargetShells(target, container.ShellIntegrator.DetectShell())
			if err != nil {
				return err
			}
			for _, sh := range shells {
				if err := action(cmd.OutOrStdout(), cmd.ErrOrStderr(), container.ShellIntegrator, sh); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, helpers.ShellFlag, "", "Target shell: zsh, bash, fish or all (default $SHELL)")
	return cmd
}

func describeInstall(result domain.ShellInstallResult) string {
	switch {
	case result.RCUpdated:
		return fmt.Sprintf("%s: %s now sources %s", result.Shell, result.RCFile, result.ScriptPath)
	case result.ScriptUpdated:
		return fmt.Sprintf("%s: refreshed %s", result.Shell, result.ScriptPath)
	default:
		return fmt.Sprintf("%s: already installed in %s", result.Shell, result.RCFile)
	}
}

func describeStatus(status domain.ShellStatus) string {
	switch {
	case !status.LinePresent:
		return fmt.Sprintf("%s: not installed, run: sigil install --shell %s", status.Shell, status.Shell)
	case !status.ScriptExists:
		return fmt.Sprintf("%s: %s is missing, run: sigil install --shell %s --force", status.Shell, status.ScriptPath, status.Shell)
	default:
		return fmt.Sprintf("%s: open a new shell or run: source %s", status.Shell, status.RCFile)
	}
}
