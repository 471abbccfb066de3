package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/powerline/internal/theme"
	"github.com/alexisbeaulieu97/powerline/pkg/diff"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect the active theme",
	}
	cmd.AddCommand(newThemeDumpCmd(flags))
	cmd.AddCommand(newThemePreviewCmd(flags))
	cmd.AddCommand(newThemeDiffCmd(flags))
	return cmd
}

func newThemeDumpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the active theme in override-file syntax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := activeTheme(cmd, flags)
			if err != nil {
				return err
			}
			return theme.Dump(cmd.OutOrStdout(), th)
		},
	}
}

func newThemePreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show color swatches for every theme field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := activeTheme(cmd, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				return theme.Dump(out, th)
			}
			return writePreview(out, th)
		},
	}
}

func newThemeDiffCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how the active theme differs from the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := activeTheme(cmd, flags)
			if err != nil {
				return err
			}

			var defaults, active bytes.Buffer
			if err := theme.Dump(&defaults, theme.Defaults()); err != nil {
				return err
			}
			if err := theme.Dump(&active, th); err != nil {
				return err
			}

			label := flags.themePath
			if label == "" {
				label = "active"
			}
			out := diff.Lines(defaults.Bytes(), active.Bytes(), "defaults", label)
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "theme matches the defaults")
				return err
			}
			added, _ := diff.Changed(defaults.Bytes(), active.Bytes())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s%d field(s) overridden\n", out, added)
			return err
		},
	}
}

// Inspection commands always report a broken theme instead of hiding it.
func activeTheme(cmd *cobra.Command, flags *rootFlags) (theme.Theme, error) {
	log, err := prepare(cmd, flags)
	if err != nil {
		return theme.Theme{}, err
	}
	return loadTheme(flags, log, true)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	nameStyle    = lipgloss.NewStyle().Width(22)
)

func writePreview(w io.Writer, t theme.Theme) error {
	lines := []string{headingStyle.Render("colors")}
	for _, name := range theme.ColorNames() {
		value, _ := t.Color(name)
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(strconv.Itoa(int(value)))).
			Render("      ")
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, nameStyle.Render(name), swatch, fmt.Sprintf(" %3d", value)))
	}

	lines = append(lines, headingStyle.Render("glyphs"))
	for _, name := range theme.GlyphNames() {
		value, _ := t.Glyph(name)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, nameStyle.Render(name), fmt.Sprintf("%c  U+%04X", value, value)))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
