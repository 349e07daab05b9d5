package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/doeshing/sigil/internal/domain"
)

var profiles = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"ansi256":   termenv.ANSI256,
	"ansi":      termenv.ANSI,
}

// Validate ensures the theme can be rendered.
func Validate(theme domain.Theme) error {
	if _, err := Profile(theme.ColorProfile); err != nil {
		return err
	}
	if err := validateColors(theme.Colors); err != nil {
		return err
	}
	if err := validateGlyphs(theme.Glyphs); err != nil {
		return err
	}
	if theme.Path.Separator == "" {
		return fmt.Errorf("path.separator must be set")
	}
	if theme.Layout.WrapWidth <= 0 {
		return fmt.Errorf("layout.wrap_width must be > 0")
	}
	return nil
}

// Profile maps a color_profile value to a termenv profile.
func Profile(name string) (termenv.Profile, error) {
	profile, ok := profiles[strings.ToLower(name)]
	if !ok {
		return termenv.Ascii, fmt.Errorf("color_profile must be truecolor|ansi256|ansi, got %s", name)
	}
	return profile, nil
}

func validateColors(colors domain.ThemeColors) error {
	named := []struct {
		key   string
		value string
	}{
		{"colors.accent", colors.Accent},
		{"colors.text", colors.Text},
		{"colors.success", colors.Success},
		{"colors.failure", colors.Failure},
	}
	for _, c := range named {
		if !validColor(c.value) {
			return fmt.Errorf("%s must be #rrggbb or 0-255, got %q", c.key, c.value)
		}
	}
	return nil
}

func validColor(value string) bool {
	if strings.HasPrefix(value, "#") {
		return len(value) == 7 && termenv.RGBColor(value).Sequence(false) != ""
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}

func validateGlyphs(glyphs domain.ThemeGlyphs) error {
	if glyphs.Prompt == "" {
		return fmt.Errorf("glyphs.prompt must be set")
	}
	if glyphs.Failure == "" {
		return fmt.Errorf("glyphs.failure must be set")
	}
	return nil
}
