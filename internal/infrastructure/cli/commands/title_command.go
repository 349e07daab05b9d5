package commands

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// NewPreexecCommand creates the command titling the terminal with the command about to run.
func NewPreexecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preexec <command>",
		Short: "Set the terminal title to the running command",
		RunE: func(cmd *cobra.Command, args []string) error {
			setTitle(cmd, strings.Join(args, " "))
			return nil
		},
	}
}

// NewPrecmdCommand creates the command clearing the terminal title.
func NewPrecmdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "precmd",
		Short: "Reset the terminal title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setTitle(cmd, "")
			return nil
		},
	}
}

// setTitle writes the OSC 2 sequence. "&" would end the title early in
// some terminals, so it is replaced.
func setTitle(cmd *cobra.Command, title string) {
	title = strings.ReplaceAll(title, "&", titleSeparator)
	output := termenv.NewOutput(cmd.OutOrStdout(), termenv.WithProfile(termenv.Ascii))
	output.SetWindowTitle(title)
}
