package domain

// PathDisplayOptions controls how the working directory is shortened.
type PathDisplayOptions struct {
	// HomeMarker replaces the home directory prefix. Empty disables substitution.
	HomeMarker string `yaml:"home_marker"`
	Separator  string `yaml:"separator"`
	Shorten    bool   `yaml:"shorten"`
}
