package theme

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/sigil/internal/domain"
)

func validTheme() domain.Theme {
	return domain.Theme{
		ColorProfile: "truecolor",
		Colors:       domain.ThemeColors{Accent: "#0093ff", Text: "#33e81d", Success: "2", Failure: "196"},
		Glyphs:       domain.ThemeGlyphs{Prompt: "∴", Failure: "✘"},
		Path:         domain.PathDisplayOptions{Separator: "/"},
		Layout:       domain.ThemeLayout{WrapWidth: 80},
	}
}

func TestValidateAcceptsValidTheme(t *testing.T) {
	require.NoError(t, Validate(validTheme()))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Theme)
	}{
		{"unknown profile", func(th *domain.Theme) { th.ColorProfile = "sepia" }},
		{"bad hex", func(th *domain.Theme) { th.Colors.Accent = "#zzzzzz" }},
		{"short hex", func(th *domain.Theme) { th.Colors.Text = "#fff" }},
		{"index out of range", func(th *domain.Theme) { th.Colors.Failure = "300" }},
		{"missing prompt glyph", func(th *domain.Theme) { th.Glyphs.Prompt = "" }},
		{"missing separator", func(th *domain.Theme) { th.Path.Separator = "" }},
		{"zero wrap width", func(th *domain.Theme) { th.Layout.WrapWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := validTheme()
			tt.mutate(&theme)
			assert.Error(t, Validate(theme))
		})
	}
}

func TestProfile(t *testing.T) {
	profile, err := Profile("ANSI256")
	require.NoError(t, err)
	assert.Equal(t, termenv.ANSI256, profile)

	_, err = Profile("")
	assert.Error(t, err)
}
