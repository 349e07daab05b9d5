// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/doeshing/sigil/internal/version.Version=v1.2.0"
package version

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
