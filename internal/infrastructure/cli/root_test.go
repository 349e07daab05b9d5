package cli

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/sigil/internal/app"
	"github.com/doeshing/sigil/internal/application/doctor"
	"github.com/doeshing/sigil/internal/application/prompt"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/infrastructure/shell"
	"github.com/doeshing/sigil/internal/infrastructure/theme"
	"github.com/doeshing/sigil/internal/pkg/logger"
	"github.com/doeshing/sigil/internal/version"
)

type stubInspector struct{}

func (stubInspector) ComputeStatus(context.Context, string) (domain.RepositoryStatus, error) {
	return domain.RepositoryStatus{Branch: "main", Ahead: 3}, nil
}

type stubEnvironment struct{}

func (stubEnvironment) Collect(context.Context) domain.EnvironmentSnapshot {
	return domain.EnvironmentSnapshot{}
}

func testContainer(t *testing.T) *app.Container {
	t.Helper()
	t.Setenv(domain.EnvShell, "/bin/zsh")
	themes := theme.NewEmbeddedLoader()
	installer := shell.NewInstallerAt(nil, t.TempDir(), "/usr/local/bin/sigil")
	return &app.Container{
		PromptService: &prompt.Service{
			ThemeProvider: themes,
			Inspector:     stubInspector{},
			Environment:   stubEnvironment{},
			Fallback:      theme.DefaultTheme(),
		},
		DoctorService: &doctor.Service{
			ThemeProvider:   themes,
			Inspector:       stubInspector{},
			Environment:     stubEnvironment{},
			ShellIntegrator: installer,
		},
		ThemeProvider:   themes,
		ShellIntegrator: installer,
		Logger:          logger.NewNop(),
	}
}

func execute(t *testing.T, container *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand(container)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestPromptCommand(t *testing.T) {
	container := testContainer(t)

	out, _, err := execute(t, container, "prompt", "--last-error", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "%{"))
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "main▲3")
	assert.NotContains(t, out, "✘")

	out, _, err = execute(t, container, "--shell", "bash", "prompt", "--last-error", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x01"))
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "2 ")
	assert.NotContains(t, out, "%{")

	out, _, err = execute(t, container, "--shell", "tcsh", "prompt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "%{"))
}

func TestTitleCommands(t *testing.T) {
	container := testContainer(t)

	out, _, err := execute(t, container, "preexec", "make", "&&", "echo", "done")
	require.NoError(t, err)
	assert.Equal(t, "\x1b]2;make ,, echo done\a", out)

	out, _, err = execute(t, container, "precmd")
	require.NoError(t, err)
	assert.Equal(t, "\x1b]2;\a", out)
}

func TestInitCommand(t *testing.T) {
	container := testContainer(t)

	out, _, err := execute(t, container, "--shell", "fish", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "function fish_prompt")
	assert.Contains(t, out, "'/usr/local/bin/sigil' --shell fish prompt")

	out, _, err = execute(t, container, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "add-zsh-hook precmd")
}

func TestInstallAndDoctorCommands(t *testing.T) {
	container := testContainer(t)

	out, _, err := execute(t, container, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[WARN] Shell integration - not installed")

	out, _, err = execute(t, container, "reload")
	require.NoError(t, err)
	assert.Contains(t, out, "zsh: not installed, run: sigil install --shell zsh")

	out, _, err = execute(t, container, "install", "--shell", "zsh")
	require.NoError(t, err)
	assert.Regexp(t, `zsh: \S+\.zshrc now sources \S+`, out)
	assert.Contains(t, out, "zsh: open a new shell or run: source ")

	out, _, err = execute(t, container, "install", "--shell", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "zsh: already installed in ")
	assert.NotContains(t, out, "open a new shell")

	out, _, err = execute(t, container, "reload")
	require.NoError(t, err)
	assert.Contains(t, out, "zsh: open a new shell or run: source ")

	out, _, err = execute(t, container, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK] Shell integration - zsh ready")
	assert.Contains(t, out, "[OK] Repository - main▲3")

	out, _, err = execute(t, container, "uninstall", "--shell", "zsh")
	require.NoError(t, err)
	assert.Regexp(t, `zsh: removed sigil from \S+\.zshrc`, out)
	assert.Contains(t, out, "zsh: deleted ")

	_, errOut, err := execute(t, container, "uninstall", "--shell", "zsh")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning: no sigil integration found in ")

	_, _, err = execute(t, container, "install", "--shell", "csh")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedShell))
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, testContainer(t), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sigil "+version.Version+" ("), out)
	assert.Contains(t, out, runtime.Version())
}
