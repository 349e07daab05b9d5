package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/sigil/internal/app"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/infrastructure/cli/helpers"
)

// NewPromptCommand creates the command printing the prompt line.
func NewPromptCommand(container *app.Container) *cobra.Command {
	var lastError string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt for the selected shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, container, lastError)
		},
	}

	cmd.Flags().StringVar(&lastError, FlagLastError, "", "Exit status of the previous command")

	return cmd
}

func runPrompt(cmd *cobra.Command, container *app.Container, lastError string) error {
	if container.PromptService == nil {
		return fmt.Errorf(ErrPromptServiceUnavailable)
	}

	// An unreadable working directory is rendered as the failure sentinel.
	cwd, _ := os.Getwd()

	req := domain.PromptRequest{
		Shell:        helpers.PromptShell(cmd),
		LastError:    lastError,
		HasLastError: cmd.Flags().Changed(FlagLastError),
		WorkingDir:   cwd,
	}

	fmt.Fprint(cmd.OutOrStdout(), container.PromptService.Render(cmd.Context(), req))
	return nil
}
