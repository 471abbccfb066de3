package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/powerline/internal/config"
	"github.com/alexisbeaulieu97/powerline/internal/logger"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// prepare loads the settings file into flags the user did not pass
// explicitly and returns the logger for the rest of the command.
func prepare(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	path := flags.configPath
	if path == "" {
		discovered, ok := config.DiscoverSettings()
		if ok {
			path = discovered
		}
	}

	if path != "" {
		settings, err := config.ParseSettings(path)
		if err != nil {
			return nil, newCommandError("load settings", path, err, "Fix the settings file or point --config at a valid one.")
		}
		applySettings(cmd, flags, settings, filepath.Dir(path))
	}

	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("configure logging", "parsing --log-level", err, "Use one of trace, debug, info, warn, error, disabled.")
	}
	if path != "" {
		log.WithFields(map[string]any{"path": path}).Debug("loaded settings")
	}
	return log, nil
}

func applySettings(cmd *cobra.Command, flags *rootFlags, s *config.Settings, dir string) {
	unset := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f == nil || !f.Changed
	}

	if s.Shell != "" && unset("shell") {
		flags.shell = s.Shell
	}
	if len(s.Modules) > 0 && unset("modules") {
		flags.modules = s.Modules
	}
	if s.CwdMaxDepth != nil && unset("cwd-max-depth") {
		flags.cwdMaxDepth = *s.CwdMaxDepth
	}
	if s.CwdMaxDirSize != nil && unset("cwd-max-dir-size") {
		flags.cwdMaxSize = *s.CwdMaxDirSize
	}
	if s.TimeFormat != "" && unset("time-format") {
		flags.timeFormat = s.TimeFormat
	}
	if s.Newline != nil && unset("newline") {
		flags.newline = *s.Newline
	}
	if s.RTL != nil && unset("rtl") {
		flags.rtl = *s.RTL
	}
	if s.StrictTheme != nil && unset("strict-theme") {
		flags.strictTheme = *s.StrictTheme
	}
	if s.LogLevel != "" && unset("log-level") {
		flags.logLevel = s.LogLevel
	}
	if s.Theme != "" && unset("theme") {
		flags.themePath = s.Theme
		if !filepath.IsAbs(s.Theme) {
			flags.themePath = filepath.Join(dir, s.Theme)
		}
	}
}

// loadTheme applies the theme override file on top of the defaults. A file
// that cannot be used falls back to the defaults unless strict is set.
func loadTheme(flags *rootFlags, log *logger.Logger, strict bool) (theme.Theme, error) {
	path := flags.themePath
	if path == "" {
		discovered, ok := config.DiscoverTheme()
		if !ok {
			return theme.Defaults(), nil
		}
		path = discovered
	}

	t, err := theme.Load(path)
	if err == nil {
		log.WithFields(map[string]any{"path": path}).Debug("loaded theme")
		return t, nil
	}
	if strict {
		return theme.Theme{}, newCommandError("load theme", path, err, "Fix the reported line; see `powerline theme dump` for the expected format.")
	}

	log.WithFields(map[string]any{"path": path, "error": err.Error()}).Warn("ignoring theme, using defaults")
	return theme.Defaults(), nil
}
