package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellEscape(t *testing.T) {
	tests := []struct {
		shell    ShellName
		expected string
	}{
		{ShellZsh, "%{\x1b[1m\x1b[38;5;33m%}"},
		{ShellBash, "\x01\x1b[1m\x1b[38;5;33m\x02"},
		{ShellFish, "\x1b[1m\x1b[38;5;33m"},
		{ShellUnknown, "%{\x1b[1m\x1b[38;5;33m%}"},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.shell.Escape("\x1b[1m", "\x1b[38;5;33m"))
		})
	}
}

func TestShellEscapeEmptyPayload(t *testing.T) {
	assert.Equal(t, "%{%}", ShellZsh.Escape("", ""))
	assert.Equal(t, "", ShellFish.Escape("", ""))
}

func TestShellLiteral(t *testing.T) {
	const hostile = "$(touch pwned) `id` 100% C:\\tmp"
	tests := []struct {
		shell    ShellName
		expected string
	}{
		{ShellBash, `\\$(touch pwned) \\` + "`id\\\\`" + ` 100% C:\\\\tmp`},
		{ShellZsh, "$(touch pwned) `id` 100%% C:\\tmp"},
		{ShellFish, hostile},
		{ShellUnknown, "$(touch pwned) `id` 100%% C:\\tmp"},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.shell.Literal(hostile))
		})
	}
}

func TestShellLiteralPlainText(t *testing.T) {
	for _, shell := range SupportedShells() {
		assert.Equal(t, "~/p/app main□2", shell.Literal("~/p/app main□2"))
	}
}

func TestRepositoryStateString(t *testing.T) {
	assert.Equal(t, "Clean", StateClean.String())
	assert.Equal(t, "RebaseInteractive", StateRebaseInteractive.String())
	assert.Equal(t, "ApplyMailboxOrRebase", StateApplyMailboxOrRebase.String())
	assert.Equal(t, "Unknown", RepositoryState(99).String())

	var zero RepositoryStatus
	assert.Equal(t, StateClean, zero.State)
}

func TestHealthReportCount(t *testing.T) {
	report := HealthReport{Checks: []HealthCheck{
		{Name: "a", Status: HealthOK},
		{Name: "b", Status: HealthWarn},
		{Name: "c", Status: HealthOK},
	}}
	assert.Equal(t, 2, report.Count(HealthOK))
	assert.Equal(t, 1, report.Count(HealthWarn))
	assert.Equal(t, 0, report.Count(HealthError))
}
