package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/sigil/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show sigil version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionLine())
			return err
		},
	}
}

// versionLine renders e.g. "sigil v1.2.0 4f2a9c1 2026-01-05 (go1.22.4 linux/amd64)".
// Commit and build date are omitted when not injected.
func versionLine() string {
	fields := []string{"sigil", version.Version}
	for _, extra := range []string{version.Commit, version.BuildDate} {
		if extra != "" {
			fields = append(fields, extra)
		}
	}
	return fmt.Sprintf("%s (%s %s/%s)", strings.Join(fields, " "), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
