package domain

import "errors"

var (
	// ErrNotARepository is returned when no repository encloses the requested directory.
	ErrNotARepository = errors.New("not a git repository")

	// ErrUnsupportedShell is returned for shell names outside the supported set.
	ErrUnsupportedShell = errors.New("unsupported shell")
)
