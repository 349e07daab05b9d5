package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rootassets "github.com/doeshing/sigil/assets"
	"github.com/doeshing/sigil/internal/domain"
	"github.com/doeshing/sigil/internal/pkg/filesystem"
	"github.com/doeshing/sigil/internal/ports"
)

const (
	binaryPlaceholder = "__SIGIL_BIN__"
	defaultBinary     = "sigil"
	markerStart       = "# >>> sigil integration >>>"
	markerEnd         = "# <<< sigil integration <<<"
)

// Installer handles hook script deployment.
type Installer struct {
	logger ports.Logger
	home   string
	binary string
	now    func() time.Time
}

// NewInstaller builds an installer for the current user and executable.
func NewInstaller(logger ports.Logger) *Installer {
	binary, err := os.Executable()
	if err != nil {
		binary = defaultBinary
	}
	return NewInstallerAt(logger, filesystem.UserHomeDir(), binary)
}

// NewInstallerAt builds an installer rooted at home that wires binary into the hooks.
func NewInstallerAt(logger ports.Logger, home, binary string) *Installer {
	if binary == "" {
		binary = defaultBinary
	}
	return &Installer{logger: logger, home: home, binary: binary, now: time.Now}
}

// Script renders the hook script for shell with the binary path filled in.
func (i *Installer) Script(shell domain.ShellName) (string, error) {
	var template string
	switch shell {
	case domain.ShellZsh:
		template = rootassets.ZshHook
	case domain.ShellBash:
		template = rootassets.BashHook
	case domain.ShellFish:
		template = rootassets.FishHook
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedShell, shell)
	}
	return strings.ReplaceAll(template, binaryPlaceholder, quote(i.binary)), nil
}

// Install writes the hook script and sources it from the shell rc file.
// An empty shell name is auto-detected from $SHELL.
func (i *Installer) Install(shell string, force bool) (domain.ShellInstallResult, error) {
	name := i.normalizeShell(shell)
	script, err := i.Script(name)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	scriptPath, rcFile := i.scriptPaths(name)

	for _, dir := range []string{filepath.Dir(scriptPath), filepath.Dir(rcFile)} {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return domain.ShellInstallResult{}, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	scriptUpdated, err := writeIfChanged(scriptPath, script)
	if err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("write hook script: %w", err)
	}

	result := domain.ShellInstallResult{
		Shell:         name,
		ScriptPath:    scriptPath,
		RCFile:        rcFile,
		ScriptUpdated: scriptUpdated,
	}

	rcUpdated, backup, err := i.ensureBlock(rcFile, i.sourceLine(name, scriptPath), force)
	if err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("update %s: %w", rcFile, err)
	}
	result.RCUpdated = rcUpdated
	if backup != "" {
		result.Warnings = append(result.Warnings, "previous rc file saved to "+backup)
	}
	if detected := i.normalizeShell(""); detected != domain.ShellUnknown && detected != name {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("current shell is %s; the %s hook is only active in %s", detected, name, name))
	}

	i.debug("shell integration installed", map[string]interface{}{
		"shell":      string(name),
		"script":     scriptPath,
		"rc_updated": rcUpdated,
	})
	return result, nil
}

// Uninstall removes the integration block from the rc file and deletes the hook script.
func (i *Installer) Uninstall(shell string) (domain.ShellInstallResult, error) {
	name := i.normalizeShell(shell)
	if name == domain.ShellUnknown {
		return domain.ShellInstallResult{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedShell, shell)
	}
	scriptPath, rcFile := i.scriptPaths(name)

	updated, err := removeBlock(rcFile, i.sourceLine(name, scriptPath))
	if err != nil {
		return domain.ShellInstallResult{}, fmt.Errorf("update %s: %w", rcFile, err)
	}

	result := domain.ShellInstallResult{
		Shell:      name,
		ScriptPath: scriptPath,
		RCFile:     rcFile,
		RCUpdated:  updated,
	}
	switch err := os.Remove(scriptPath); {
	case err == nil:
		result.ScriptUpdated = true
	case !errors.Is(err, os.ErrNotExist):
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not remove %s: %v", scriptPath, err))
	}
	if !updated {
		result.Warnings = append(result.Warnings, "no sigil integration found in "+rcFile)
	}
	return result, nil
}

// Status reports the current integration state.
func (i *Installer) Status(shell string) domain.ShellStatus {
	name := i.normalizeShell(shell)
	status := domain.ShellStatus{Shell: name}
	if name == domain.ShellUnknown {
		status.Error = "unsupported shell"
		return status
	}
	status.ScriptPath, status.RCFile = i.scriptPaths(name)

	if info, err := os.Stat(status.ScriptPath); err == nil && info.Mode().IsRegular() {
		status.ScriptExists = true
		if script, err := i.Script(name); err == nil {
			if current, err := os.ReadFile(status.ScriptPath); err == nil && string(current) != script {
				status.Warnings = append(status.Warnings, "hook script is out of date; run sigil install --force")
			}
		}
	}

	if contents, err := os.ReadFile(status.RCFile); err == nil {
		status.LinePresent = strings.Contains(string(contents), i.sourceLine(name, status.ScriptPath))
	}
	return status
}

// DetectShell inspects the SHELL env var.
func (i *Installer) DetectShell() string {
	return os.Getenv(domain.EnvShell)
}

func (i *Installer) normalizeShell(shell string) domain.ShellName {
	if shell == "" {
		shell = filepath.Base(i.DetectShell())
	}
	switch strings.ToLower(shell) {
	case "zsh":
		return domain.ShellZsh
	case "bash":
		return domain.ShellBash
	case "fish":
		return domain.ShellFish
	default:
		return domain.ShellUnknown
	}
}

func (i *Installer) scriptPaths(shell domain.ShellName) (string, string) {
	dir := filepath.Join(i.home, ".sigil", "shell")
	switch shell {
	case domain.ShellBash:
		return filepath.Join(dir, "bash.sh"), filepath.Join(i.home, ".bashrc")
	case domain.ShellFish:
		return filepath.Join(dir, "sigil.fish"), filepath.Join(i.home, ".config", "fish", "config.fish")
	default:
		return filepath.Join(dir, "zsh.sh"), filepath.Join(i.home, ".zshrc")
	}
}

func (i *Installer) sourceLine(shell domain.ShellName, scriptPath string) string {
	path := filesystem.FriendlyPath(i.home, scriptPath)
	if shell == domain.ShellFish {
		return fmt.Sprintf("test -f %s; and source %s", path, path)
	}
	return fmt.Sprintf("[ -f %s ] && source %s", path, path)
}

// ensureBlock appends the integration block unless the source line is
// already present. force rewrites it and backs up the previous rc file.
func (i *Installer) ensureBlock(path, line string, force bool) (bool, string, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, "", os.WriteFile(path, []byte(block(line)), domain.FilePermissions)
	}
	if err != nil {
		return false, "", err
	}
	if strings.Contains(string(contents), line) && !force {
		return false, "", nil
	}

	backup := ""
	if force {
		backup = fmt.Sprintf("%s.sigil-backup.%s", path, i.now().Format("20060102-150405"))
		if err := os.WriteFile(backup, contents, domain.FilePermissions); err != nil {
			return false, "", fmt.Errorf("backup: %w", err)
		}
	}

	final := stripBlock(string(contents), line)
	if final != "" && !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	final += block(line)
	return true, backup, os.WriteFile(path, []byte(final), domain.FilePermissions)
}

func removeBlock(path, line string) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	final := stripBlock(string(contents), line)
	if final == string(contents) {
		return false, nil
	}
	return true, os.WriteFile(path, []byte(final), domain.FilePermissions)
}

// stripBlock drops the marker block and any bare copy of line.
func stripBlock(contents, line string) string {
	var kept []string
	inBlock := false
	for _, existing := range strings.Split(contents, "\n") {
		switch {
		case strings.Contains(existing, markerStart):
			inBlock = true
		case strings.Contains(existing, markerEnd):
			inBlock = false
		case inBlock, strings.Contains(existing, line):
		default:
			kept = append(kept, existing)
		}
	}
	return strings.Join(kept, "\n")
}

func block(line string) string {
	return markerStart + "\n" + line + "\n" + markerEnd + "\n"
}

func writeIfChanged(path, contents string) (bool, error) {
	if current, err := os.ReadFile(path); err == nil && string(current) == contents {
		return false, nil
	}
	return true, os.WriteFile(path, []byte(contents), domain.FilePermissions)
}

// quote wraps value in single quotes, understood by zsh, bash and fish alike.
func quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

func (i *Installer) debug(msg string, fields map[string]interface{}) {
	if i.logger != nil {
		i.logger.Debug(msg, fields)
	}
}

var _ ports.ShellIntegrator = (*Installer)(nil)
