// Package pathdisplay shortens the working directory for the prompt.
package pathdisplay

import (
	"path/filepath"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/doeshing/sigil/internal/domain"
)

const rootComponent = "/"

// Render canonicalizes cwd and shortens it. It never fails: an unresolvable
// directory yields domain.PathFailureSentinel. An empty home disables home
// substitution.
func Render(cwd, home string, opts domain.PathDisplayOptions) string {
	canonical, err := Canonicalize(cwd)
	if err != nil {
		return domain.PathFailureSentinel
	}
	if home != "" {
		if resolved, err := Canonicalize(home); err == nil {
			home = resolved
		} else {
			home = filepath.Clean(home)
		}
	}
	return Shorten(canonical, home, opts)
}

// Canonicalize returns the absolute, symlink-free form of path.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Shorten builds the display string for an already canonical absolute path.
func Shorten(canonical, home string, opts domain.PathDisplayOptions) string {
	separator := opts.Separator
	if separator == "" {
		separator = domain.DefaultPathSeparator
	}

	var parts []string
	if opts.HomeMarker != "" && home != "" {
		if rel, ok := relativeToHome(canonical, home); ok {
			parts = append([]string{opts.HomeMarker}, components(rel)...)
		}
	}
	if parts == nil {
		parts = append([]string{rootComponent}, components(canonical)...)
		// The root only turns into "" when something follows it, so joining
		// still starts with a separator and "/" alone stays "/".
		if len(parts) > 1 {
			parts[0] = ""
		}
	}

	if opts.Shorten {
		truncateMiddle(parts)
	}

	return strings.Join(parts, separator)
}

// relativeToHome reports the part of path below home, "" for home itself.
func relativeToHome(path, home string) (string, bool) {
	home = filepath.Clean(home)
	switch {
	case path == home:
		return "", true
	case home == rootComponent:
		return strings.TrimPrefix(path, rootComponent), true
	case strings.HasPrefix(path, home+rootComponent):
		return strings.TrimPrefix(path, home+rootComponent), true
	default:
		return "", false
	}
}

func components(path string) []string {
	var out []string
	for _, part := range strings.Split(path, rootComponent) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// truncateMiddle keeps the first and last components whole and cuts every
// other one to its first grapheme cluster.
func truncateMiddle(parts []string) {
	for i := 1; i < len(parts)-1; i++ {
		parts[i] = firstGrapheme(parts[i])
	}
}

func firstGrapheme(s string) string {
	if s == "" {
		return s
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}
