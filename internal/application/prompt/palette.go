package prompt

import (
	"github.com/muesli/termenv"

	themevalidation "github.com/doeshing/sigil/internal/application/theme"
	"github.com/doeshing/sigil/internal/domain"
)

// palette holds the escaped style runs for one shell and theme.
type palette struct {
	opener  string
	accent  string
	text    string
	success string
	failure string
	reset   string
}

func newPalette(shell domain.ShellName, theme domain.Theme) palette {
	profile, err := themevalidation.Profile(theme.ColorProfile)
	if err != nil {
		profile = termenv.TrueColor
	}
	accent := sgr(profile, theme.Colors.Accent)

	return palette{
		// Bold and the accent colour share a single zero-width run.
		opener:  shell.Escape(termenv.CSI+termenv.BoldSeq+"m", accent),
		accent:  shell.Escape(accent, ""),
		text:    shell.Escape(sgr(profile, theme.Colors.Text), ""),
		success: shell.Escape(sgr(profile, theme.Colors.Success), ""),
		failure: shell.Escape(sgr(profile, theme.Colors.Failure), ""),
		reset:   shell.Escape(termenv.CSI+termenv.ResetSeq+"m", ""),
	}
}

// sgr converts a theme colour to a foreground SGR sequence. Colours the
// profile cannot express produce no sequence.
func sgr(profile termenv.Profile, value string) string {
	color := profile.Color(value)
	if color == nil {
		return ""
	}
	seq := color.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
