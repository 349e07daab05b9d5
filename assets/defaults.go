package assets

import (
	_ "embed"
)

// DefaultThemeYAML contains the embedded glyph and colour theme.
//
//go:embed defaults/theme.yaml
var DefaultThemeYAML []byte

// ZshHook is the zsh integration script; __SIGIL_BIN__ is replaced by the binary path.
//
//go:embed shell/zsh.sh
var ZshHook string

// BashHook is the bash integration script.
//
//go:embed shell/bash.sh
var BashHook string

// FishHook is the fish integration script.
//
//go:embed shell/fish.fish
var FishHook string
