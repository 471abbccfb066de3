package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/powerline/internal/logger"
	"github.com/alexisbeaulieu97/powerline/internal/powerline"
	"github.com/alexisbeaulieu97/powerline/internal/segments"
	"github.com/alexisbeaulieu97/powerline/internal/shell"
	"github.com/alexisbeaulieu97/powerline/internal/vcs"
)

func runPrompt(cmd *cobra.Command, flags *rootFlags, args []string) error {
	log, err := prepare(cmd, flags)
	if err != nil {
		return err
	}

	exitCode, err := parseExitCode(args)
	if err != nil {
		return newCommandError("render prompt", "reading the exit code", err, "Pass the previous command's status, e.g. `powerline $?`.")
	}

	dialect, err := shell.Parse(flags.shell)
	if err != nil {
		return newCommandError("render prompt", "selecting the shell", err, "")
	}

	th, err := loadTheme(flags, log, flags.strictTheme)
	if err != nil {
		return err
	}

	cwd := workingDir(log)
	ctx := &segments.Context{
		Options: segments.Options{
			CwdMaxDepth:   flags.cwdMaxDepth,
			CwdMaxDirSize: flags.cwdMaxSize,
			ExitCode:      exitCode,
			TimeFormat:    flags.timeFormat,
		},
		Env: segments.DefaultEnv(cwd),
		Git: vcs.New(cwd, log),
		Log: log,
	}

	p := powerline.New(th, dialect)
	if err := segments.Build(p, ctx, flags.modules); err != nil {
		return newCommandError("render prompt", "building segments", err, "")
	}

	direction := powerline.LeftToRight
	if flags.rtl {
		direction = powerline.RightToLeft
	}

	log.WithFields(map[string]any{
		"shell":     dialect.String(),
		"direction": direction.String(),
		"segments":  p.Len(),
	}).Debug("rendering prompt")

	out := p.Render(direction)
	if flags.newline {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

func parseExitCode(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("exit code %q is not a number", args[0])
	}
	return code, nil
}

// workingDir prefers the real directory; $PWD covers a directory that was
// removed from under the shell.
func workingDir(log *logger.Logger) string {
	cwd, err := os.Getwd()
	if err == nil {
		return cwd
	}
	log.Skip("cwd", err, "getwd failed, using $PWD")
	if pwd := os.Getenv("PWD"); pwd != "" {
		return pwd
	}
	return "/"
}
