package domain

// PromptRequest carries the per-invocation inputs of a prompt render.
type PromptRequest struct {
	Shell        ShellName
	LastError    string
	HasLastError bool
	WorkingDir   string
}

// EnvironmentSnapshot holds the environment signals the prompt reacts to.
// Each value is only meaningful when its Has flag is set.
type EnvironmentSnapshot struct {
	VirtualEnv     string
	VirtualEnvName string
	HasVirtualEnv  bool
	HasSSH         bool
	Home           string
	HasHome        bool
	Hostname       string
	HasHostname    bool
}
