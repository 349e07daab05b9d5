package theme

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	rootassets "github.com/doeshing/sigil/assets"
	themevalidation "github.com/doeshing/sigil/internal/application/theme"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/ports"
)

// EmbeddedLoader parses the theme compiled into the binary.
type EmbeddedLoader struct {
	raw []byte
}

// NewEmbeddedLoader builds a loader over assets/defaults/theme.yaml.
func NewEmbeddedLoader() *EmbeddedLoader {
	return NewLoaderFromBytes(rootassets.DefaultThemeYAML)
}

// NewLoaderFromBytes builds a loader over an arbitrary YAML document.
func NewLoaderFromBytes(raw []byte) *EmbeddedLoader {
	return &EmbeddedLoader{raw: raw}
}

// Load implements ports.ThemeProvider.
func (l *EmbeddedLoader) Load(context.Context) (domain.Theme, error) {
	var theme domain.Theme
	if err := yaml.Unmarshal(l.raw, &theme); err != nil {
		return domain.Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	theme = hydrateDefaults(theme)
	if err := themevalidation.Validate(theme); err != nil {
		return domain.Theme{}, err
	}
	return theme, nil
}

// DefaultTheme is the theme used when the embedded one cannot be loaded.
func DefaultTheme() domain.Theme {
	return hydrateDefaults(domain.Theme{
		ThemeFormatVersion: "1",
		Path: domain.PathDisplayOptions{
			HomeMarker: domain.DefaultHomeMarker,
			Shorten:    true,
		},
	})
}

func hydrateDefaults(theme domain.Theme) domain.Theme {
	if theme.ColorProfile == "" {
		theme.ColorProfile = "truecolor"
	}
	setDefault(&theme.Colors.Accent, "#0093ff")
	setDefault(&theme.Colors.Text, "#33e81d")
	setDefault(&theme.Colors.Success, theme.Colors.Text)
	setDefault(&theme.Colors.Failure, "#ff3b30")
	setDefault(&theme.Glyphs.Success, "✔")
	setDefault(&theme.Glyphs.Failure, "✘")
	setDefault(&theme.Glyphs.SSH, "⇄")
	setDefault(&theme.Glyphs.VirtualEnv, "PY")
	setDefault(&theme.Glyphs.Repository, "GIT")
	setDefault(&theme.Glyphs.Prompt, "∴")
	setDefault(&theme.Path.Separator, domain.DefaultPathSeparator)
	if theme.Layout.WrapWidth == 0 {
		theme.Layout.WrapWidth = domain.DefaultWrapWidth
	}
	return theme
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

var _ ports.ThemeProvider = (*EmbeddedLoader)(nil)
