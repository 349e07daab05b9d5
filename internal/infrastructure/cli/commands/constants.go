package commands

// Flag names
const (
	FlagLastError = "last-error"
	FlagForce     = "force"
)

// Error messages
const (
	ErrPromptServiceUnavailable  = "prompt service unavailable"
	ErrDoctorServiceUnavailable  = "doctor service unavailable"
	ErrShellInstallerUnavailable = "shell installer unavailable"
)

// titleSeparator replaces "&" in window titles.
const titleSeparator = ","
