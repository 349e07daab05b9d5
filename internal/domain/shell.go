package domain

import "strings"

// ShellName enumerates supported shells.
type ShellName string

const (
	ShellUnknown ShellName = "unknown"
	ShellZsh     ShellName = "zsh"
	ShellBash    ShellName = "bash"
	ShellFish    ShellName = "fish"
)

// Zero-width delimiters understood by each shell's prompt line editor.
const (
	zshIgnoreStart  = "%{"
	zshIgnoreEnd    = "%}"
	bashIgnoreStart = "\x01"
	bashIgnoreEnd   = "\x02"
)

// SupportedShells lists every shell with prompt escaping and hook scripts.
func SupportedShells() []ShellName {
	return []ShellName{ShellZsh, ShellBash, ShellFish}
}

// Escape renders a style directive and its payload so the target shell treats
// the bytes as zero width. Unknown shells are escaped like zsh, the default.
func (s ShellName) Escape(style, payload string) string {
	switch s {
	case ShellBash:
		return bashIgnoreStart + style + payload + bashIgnoreEnd
	case ShellFish:
		return style + payload
	default:
		return zshIgnoreStart + style + payload + zshIgnoreEnd
	}
}

// Prompt expansion rules applied to visible text. Bash decodes PS1
// backslash escapes before expanding it as a double-quoted string, so a
// literal needs two levels of quoting. zsh expands % sequences.
var (
	bashLiteral = strings.NewReplacer(`\`, `\\\\`, "$", `\\$`, "`", "\\\\`")
	zshLiteral  = strings.NewReplacer("%", "%%")
)

// Literal quotes visible text so the shell prints it verbatim instead of
// expanding it. Unknown shells are quoted like zsh.
func (s ShellName) Literal(text string) string {
	switch s {
	case ShellBash:
		return bashLiteral.Replace(text)
	case ShellFish:
		return text
	default:
		return zshLiteral.Replace(text)
	}
}

// ShellInstallResult describes install/uninstall outcomes.
type ShellInstallResult struct {
	Shell         ShellName
	ScriptPath    string
	RCFile        string
	ScriptUpdated bool
	RCUpdated     bool
	Warnings      []string
}

// ShellStatus captures current integration state.
type ShellStatus struct {
	Shell        ShellName
	ScriptPath   string
	RCFile       string
	ScriptExists bool
	LinePresent  bool
	Error        string
	Warnings     []string
}
