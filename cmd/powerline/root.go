package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/powerline/internal/segments"
)

type rootFlags struct {
	configPath  string
	themePath   string
	shell       string
	modules     []string
	cwdMaxDepth int
	cwdMaxSize  int
	timeFormat  string
	newline     bool
	rtl         bool
	strictTheme bool
	verbose     bool
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "powerline [exit-code]",
		Short: "Render a powerline-style shell prompt",
		Long: "Render a powerline-style shell prompt.\n\n" +
			"Pass the exit status of the previous command, e.g.\n" +
			"  PS1='$(powerline --shell bash $?)'",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, flags, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to settings file (default: $POWERLINE_CONFIG or $XDG_CONFIG_HOME/powerline/config.yaml)")
	pf.StringVarP(&flags.themePath, "theme", "t", "", "Path to theme override file (default: $XDG_CONFIG_HOME/powerline/theme)")
	pf.BoolVar(&flags.strictTheme, "strict-theme", false, "Fail instead of falling back to the default theme when the theme file is corrupt")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")

	f := cmd.Flags()
	f.StringVarP(&flags.shell, "shell", "s", "bash", "Prompt dialect (bare, bash, zsh)")
	f.StringSliceVarP(&flags.modules, "modules", "m", segments.DefaultModules, "Comma-separated list of modules to render")
	f.IntVar(&flags.cwdMaxDepth, "cwd-max-depth", 5, "Maximum number of directories shown by the cwd module (0 = unlimited)")
	f.IntVar(&flags.cwdMaxSize, "cwd-max-dir-size", 15, "Maximum display width of each non-final directory (0 = unlimited)")
	f.StringVar(&flags.timeFormat, "time-format", segments.DefaultTimeFormat, "strftime layout used by the time module")
	f.BoolVarP(&flags.newline, "newline", "n", false, "Print a trailing newline")
	f.BoolVar(&flags.rtl, "rtl", false, "Render right-to-left (for a right-hand prompt)")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
