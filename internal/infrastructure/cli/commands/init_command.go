package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/sigil/internal/app"
	"github.com/doeshing/sigil/internal/infrastructure/cli/helpers"
)

// NewInitCommand creates the init command printing the shell hook script.
func NewInitCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print the shell integration script",
		Long: `Print the hook script wiring sigil into the shell's prompt and
pre-execution hooks. Evaluate it from your rc file:

  zsh:  eval "$(sigil --shell zsh init)"
  bash: eval "$(sigil --shell bash init)"
  fish: sigil --shell fish init | source`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ShellIntegrator == nil {
				return fmt.Errorf(ErrShellInstallerUnavailable)
			}
			script, err := container.ShellIntegrator.Script(helpers.PromptShell(cmd))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}
}
