package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/sigil/internal/domain"
)

func TestEmbeddedThemeLoads(t *testing.T) {
	theme, err := NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1", theme.ThemeFormatVersion)
	assert.Equal(t, "#0093ff", theme.Colors.Accent)
	assert.Equal(t, "GIT", theme.Glyphs.Repository)
	assert.Equal(t, "∴", theme.Glyphs.Prompt)
	assert.Equal(t, domain.PathDisplayOptions{HomeMarker: "~", Separator: "/", Shorten: true}, theme.Path)
	assert.Equal(t, domain.DefaultWrapWidth, theme.Layout.WrapWidth)
}

func TestLoaderHydratesMissingFields(t *testing.T) {
	theme, err := NewLoaderFromBytes([]byte("glyphs:\n  prompt: \"$\"\n")).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "$", theme.Glyphs.Prompt)
	assert.Equal(t, "✔", theme.Glyphs.Success)
	assert.Equal(t, "/", theme.Path.Separator)
	assert.Empty(t, theme.Path.HomeMarker)
	assert.Equal(t, 80, theme.Layout.WrapWidth)
}

func TestLoaderRejectsInvalidTheme(t *testing.T) {
	_, err := NewLoaderFromBytes([]byte("colors:\n  accent: \"not-a-colour\"\n")).Load(context.Background())
	assert.Error(t, err)

	_, err = NewLoaderFromBytes([]byte("glyphs: [")).Load(context.Background())
	assert.Error(t, err)
}

func TestDefaultThemeIsValid(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, "truecolor", theme.ColorProfile)
	assert.Equal(t, "PY", theme.Glyphs.VirtualEnv)
}
