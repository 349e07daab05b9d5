package environment

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/ports"
)

// virtualEnvPattern captures the directory holding the environment, so
// ~/code/api/.venv is reported as "api".
var virtualEnvPattern = regexp.MustCompile(`([^/]*)/[^/]*$`)

// Collector implements ports.EnvironmentCollector over the process environment.
type Collector struct {
	lookupEnv func(string) (string, bool)
	hostname  func() (string, error)
}

// NewCollector reads the real process environment.
func NewCollector() *Collector {
	return NewCollectorWith(os.LookupEnv, os.Hostname)
}

// NewCollectorWith uses the given lookups instead of the process environment.
func NewCollectorWith(lookupEnv func(string) (string, bool), hostname func() (string, error)) *Collector {
	return &Collector{lookupEnv: lookupEnv, hostname: hostname}
}

// Collect gathers the environment signals. Absent variables disable their
// segment; they are never errors.
func (c *Collector) Collect(ctx context.Context) domain.EnvironmentSnapshot {
	var snapshot domain.EnvironmentSnapshot

	if venv, ok := c.present(domain.EnvVirtualEnv); ok {
		snapshot.VirtualEnv = venv
		snapshot.VirtualEnvName = VirtualEnvName(venv)
		snapshot.HasVirtualEnv = true
	}

	if _, ok := c.lookupEnv(domain.EnvSSHConnection); ok {
		snapshot.HasSSH = true
		if host, err := c.hostname(); err == nil && host != "" {
			snapshot.Hostname = host
			snapshot.HasHostname = true
		}
	}

	if home, ok := c.present(domain.EnvHome); ok {
		snapshot.Home = home
		snapshot.HasHome = true
	}

	return snapshot
}

func (c *Collector) present(key string) (string, bool) {
	value, ok := c.lookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// VirtualEnvName extracts the component before the last one of a virtualenv
// path. Paths without a separator yield "".
func VirtualEnvName(path string) string {
	match := virtualEnvPattern.FindStringSubmatch(path)
	if match == nil {
		return ""
	}
	return match[1]
}

var _ ports.EnvironmentCollector = (*Collector)(nil)
