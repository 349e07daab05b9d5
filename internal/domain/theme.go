package domain

// Theme mirrors assets/defaults/theme.yaml.
type Theme struct {
	ThemeFormatVersion string             `yaml:"theme_format_version"`
	ColorProfile       string             `yaml:"color_profile"`
	Colors             ThemeColors        `yaml:"colors"`
	Glyphs             ThemeGlyphs        `yaml:"glyphs"`
	Path               PathDisplayOptions `yaml:"path"`
	Layout             ThemeLayout        `yaml:"layout"`
}

// ThemeColors holds hex ("#rrggbb") or ANSI index ("0".."255") colours.
type ThemeColors struct {
	Accent  string `yaml:"accent"`
	Text    string `yaml:"text"`
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
}

// ThemeGlyphs are the fixed markers opening each segment.
type ThemeGlyphs struct {
	Success    string `yaml:"success"`
	Failure    string `yaml:"failure"`
	SSH        string `yaml:"ssh"`
	VirtualEnv string `yaml:"virtualenv"`
	Repository string `yaml:"repository"`
	Prompt     string `yaml:"prompt"`
}

// ThemeLayout tunes segment placement.
type ThemeLayout struct {
	WrapWidth      int  `yaml:"wrap_width"`
	ShowVirtualEnv bool `yaml:"show_virtualenv_name"`
}
