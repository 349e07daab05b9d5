// Package prompt composes the prompt line from repository, environment and
// path signals.
package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/doeshing/sigil/internal/application/gitstatus"
	"github.com/doeshing/sigil/internal/application/pathdisplay"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/ports"
)

const successCode = "0"

// Service renders the prompt. Every collaborator is optional; a missing one
// only removes its segment.
type Service struct {
	ThemeProvider ports.ThemeProvider
	Inspector     ports.RepositoryInspector
	Environment   ports.EnvironmentCollector
	Fallback      domain.Theme
	Logger        ports.Logger
}

// Render composes the prompt for req. It never fails.
func (s *Service) Render(ctx context.Context, req domain.PromptRequest) string {
	if ctx == nil {
		ctx = context.Background()
	}

	theme := s.theme(ctx)
	env := s.environment(ctx)
	colors := newPalette(req.Shell, theme)

	var b strings.Builder
	b.WriteString(colors.opener)
	writeExitStatus(&b, colors, theme.Glyphs, req)

	if env.HasSSH && env.HasHostname {
		writeSegment(&b, req.Shell, colors, theme.Glyphs.SSH, env.Hostname)
	}

	if env.HasVirtualEnv {
		name := ""
		if theme.Layout.ShowVirtualEnv {
			name = env.VirtualEnvName
		}
		writeSegment(&b, req.Shell, colors, theme.Glyphs.VirtualEnv, name)
	}

	if summary, ok := s.repository(ctx, req.WorkingDir); ok {
		writeSegment(&b, req.Shell, colors, theme.Glyphs.Repository, summary)
	}

	// Measured in encoded bytes, escape sequences included.
	if b.Len() > theme.Layout.WrapWidth {
		b.WriteString("\n")
		b.WriteString(colors.opener)
	}

	home := ""
	if env.HasHome {
		home = env.Home
	}
	b.WriteString(colors.text)
	b.WriteString(req.Shell.Literal(pathdisplay.Render(req.WorkingDir, home, theme.Path)))
	b.WriteString(" ")
	b.WriteString(colors.accent)
	b.WriteString(req.Shell.Literal(theme.Glyphs.Prompt))
	b.WriteString(" ")
	b.WriteString(colors.reset)

	return b.String()
}

func (s *Service) theme(ctx context.Context) domain.Theme {
	if s.ThemeProvider == nil {
		return s.Fallback
	}
	theme, err := s.ThemeProvider.Load(ctx)
	if err != nil {
		s.logError("load theme", err, nil)
		return s.Fallback
	}
	return theme
}

func (s *Service) environment(ctx context.Context) domain.EnvironmentSnapshot {
	if s.Environment == nil {
		return domain.EnvironmentSnapshot{}
	}
	return s.Environment.Collect(ctx)
}

func (s *Service) repository(ctx context.Context, dir string) (string, bool) {
	if s.Inspector == nil || ctx.Err() != nil {
		return "", false
	}
	status, err := s.Inspector.ComputeStatus(ctx, dir)
	if err != nil {
		if !errors.Is(err, domain.ErrNotARepository) {
			s.logError("compute repository status", err, map[string]interface{}{"dir": dir})
		}
		return "", false
	}
	return gitstatus.Format(status), true
}

func (s *Service) logError(msg string, err error, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Error(msg, err, fields)
	}
}

func writeExitStatus(b *strings.Builder, colors palette, glyphs domain.ThemeGlyphs, req domain.PromptRequest) {
	if !req.HasLastError || req.LastError == "" || req.LastError == successCode {
		b.WriteString(colors.success)
		b.WriteString(req.Shell.Literal(glyphs.Success))
		b.WriteString(" ")
		return
	}
	b.WriteString(colors.failure)
	b.WriteString(req.Shell.Literal(glyphs.Failure))
	b.WriteString(colors.text)
	b.WriteString(req.Shell.Literal(req.LastError))
	b.WriteString(" ")
}

// writeSegment emits glyph in the accent colour followed by text, both
// quoted for shell.
func writeSegment(b *strings.Builder, shell domain.ShellName, colors palette, glyph, text string) {
	b.WriteString(colors.accent)
	b.WriteString(shell.Literal(glyph))
	if text != "" {
		b.WriteString(colors.text)
		b.WriteString(shell.Literal(text))
	}
	b.WriteString(" ")
}
