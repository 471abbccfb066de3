package config

// Settings mirrors the command-line flags. Unset fields leave the flag
// defaults in place; explicitly passed flags always win.
type Settings struct {
	Shell         string   `yaml:"shell,omitempty" validate:"omitempty,oneof=bare bash zsh"`
	Modules       []string `yaml:"modules,omitempty" validate:"omitempty,dive,module"`
	CwdMaxDepth   *int     `yaml:"cwd_max_depth,omitempty" validate:"omitempty,min=0,max=255"`
	CwdMaxDirSize *int     `yaml:"cwd_max_dir_size,omitempty" validate:"omitempty,min=0,max=255"`
	TimeFormat    string   `yaml:"time_format,omitempty"`
	Theme         string   `yaml:"theme,omitempty"`
	Newline       *bool    `yaml:"newline,omitempty"`
	RTL           *bool    `yaml:"rtl,omitempty"`
	StrictTheme   *bool    `yaml:"strict_theme,omitempty"`
	LogLevel      string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
}
