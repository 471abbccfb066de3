package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

func TestThemeDumpRoundTrips(t *testing.T) {
	isolateConfig(t)

	path := writeFile(t, filepath.Join(t.TempDir(), "theme"), "path_bg=17\ngit_ahead_char=2191\n")

	out, _, err := executeCommand(newRootCmd(), "theme", "dump", "--theme", path)
	require.NoError(t, err)
	require.Contains(t, out, "path_bg=17\n")

	loaded, err := theme.Read(strings.NewReader(out))
	require.NoError(t, err)

	want := theme.Defaults()
	want.PathBg = 17
	want.GitAheadChar = '↑'
	require.Equal(t, want, loaded)
}

func TestThemeDumpRejectsCorruptTheme(t *testing.T) {
	isolateConfig(t)

	path := writeFile(t, filepath.Join(t.TempDir(), "theme"), "path_bg=999\n")

	_, _, err := executeCommand(newRootCmd(), "theme", "dump", "--theme", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "path_bg")
}

func TestThemePreviewWithoutTerminalDumps(t *testing.T) {
	isolateConfig(t)

	preview, _, err := executeCommand(newRootCmd(), "theme", "preview")
	require.NoError(t, err)

	dump, _, err := executeCommand(newRootCmd(), "theme", "dump")
	require.NoError(t, err)
	require.Equal(t, dump, preview)
}

func TestWritePreviewListsEveryField(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, writePreview(buf, theme.Defaults()))

	out := buf.String()
	for _, name := range append(theme.ColorNames(), theme.GlyphNames()...) {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "U+E0B0")
}

func TestThemeDiffShowsOverrides(t *testing.T) {
	isolateConfig(t)

	out, _, err := executeCommand(newRootCmd(), "theme", "diff")
	require.NoError(t, err)
	require.Equal(t, "theme matches the defaults\n", out)

	path := writeFile(t, filepath.Join(t.TempDir(), "theme"), "path_bg=17\n")
	out, _, err = executeCommand(newRootCmd(), "theme", "diff", "--theme", path)
	require.NoError(t, err)
	require.Contains(t, out, "--- defaults\n+++ "+path+"\n")
	require.Contains(t, out, "-path_bg=236\n+path_bg=17\n")
	require.Contains(t, out, "1 field(s) overridden\n")
}
