package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/infrastructure/cli"
)

// Errors are reported on stderr; the exit status is always 0.
func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
}

func isVerbose() bool {
	value := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
