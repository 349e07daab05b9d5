package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for generated hook scripts and rc files (rw-r--r--)
	FilePermissions = 0o644
)

// Rendering constants
const (
	// DefaultWrapWidth is the encoded length after which the path moves to a new line
	DefaultWrapWidth = 80
	// HashAbbrevLength is the number of hex characters shown for a detached HEAD
	HashAbbrevLength = 5
	// PathFailureSentinel is printed when the working directory cannot be resolved
	PathFailureSentinel = "!"
	// DefaultPathSeparator joins shortened path components
	DefaultPathSeparator = "/"
	// DefaultHomeMarker replaces the home directory prefix
	DefaultHomeMarker = "~"
)

// Environment variable names
const (
	EnvVirtualEnv    = "VIRTUAL_ENV"
	EnvSSHConnection = "SSH_CONNECTION"
	EnvHome          = "HOME"
	EnvShell         = "SHELL"
	EnvDebug         = "SIGIL_DEBUG"
)
