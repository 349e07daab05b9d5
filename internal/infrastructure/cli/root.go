package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/sigil/internal/app"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/infrastructure/cli/commands"
	"github.com/doeshing/sigil/internal/infrastructure/cli/helpers"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	return newRootCommand(container), nil
}

func newRootCommand(container *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:   "sigil",
		Short: "sigil - shell prompt renderer",
		Long: "sigil prints a one-line prompt summarizing exit status, SSH host, virtualenv,\n" +
			"repository state and a shortened working directory for zsh, bash or fish.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if container.Logger != nil {
				_ = container.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().String(helpers.ShellFlag, string(domain.ShellZsh), "Prompt dialect (zsh|bash|fish)")

	root.AddCommand(commands.NewPromptCommand(container))
	root.AddCommand(commands.NewInitCommand(container))
	root.AddCommand(commands.NewPreexecCommand())
	root.AddCommand(commands.NewPrecmdCommand())
	root.AddCommand(commands.NewInstallCommand(container))
	root.AddCommand(commands.NewUninstallCommand(container))
	root.AddCommand(commands.NewReloadCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
