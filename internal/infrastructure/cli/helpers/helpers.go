package helpers

import (
	"fmt"
	"io"
	"strings"
)

// PrintWarnings writes each non-blank warning on its own line.
func PrintWarnings(out io.Writer, warnings []string) {
	for _, warning := range warnings {
		warning = strings.TrimSpace(warning)
		if warning == "" {
			continue
		}
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
}
