package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

func TestLoadOverridesGlyphHex(t *testing.T) {
	t.Parallel()

	th, err := LoadOverrides([]string{"git_staged_char=2605"})
	require.NoError(t, err)
	require.Equal(t, '★', th.GitStagedChar)
}

func TestLoadOverridesGlyphLiteral(t *testing.T) {
	t.Parallel()

	th, err := LoadOverrides([]string{"git_staged_char=*"})
	require.NoError(t, err)
	require.Equal(t, '*', th.GitStagedChar)

	th, err = LoadOverrides([]string{"ssh_char = ✈ "})
	require.NoError(t, err)
	require.Equal(t, '✈', th.SSHChar)
}

func TestLoadOverridesUnknownFieldIsCorrupt(t *testing.T) {
	t.Parallel()

	th, err := LoadOverrides([]string{"path_bg=1", "bogus_field=5"})
	require.Error(t, err)

	var corrupt *powerlineerrors.CorruptError
	require.ErrorAs(t, err, &corrupt)
	require.Equal(t, 2, corrupt.Line)
	require.Equal(t, "bogus_field", corrupt.Field)
	require.Equal(t, Defaults(), th, "a corrupt load must not leak earlier assignments")
}

func TestLoadOverridesColors(t *testing.T) {
	t.Parallel()

	th, err := LoadOverrides([]string{
		"# a comment",
		"",
		"   ",
		"path_bg=0",
		"  path_fg  =  255  ",
		"git_dirty_fg=9",
	})
	require.NoError(t, err)
	require.Equal(t, uint8(0), th.PathBg)
	require.Equal(t, uint8(255), th.PathFg)
	require.Equal(t, uint8(9), th.GitDirtyFg)
	require.Equal(t, Defaults().HomeBg, th.HomeBg)
}

func TestLoadOverridesRejectsMalformedLines(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing equals":      "path_bg 5",
		"empty value":         "path_bg=",
		"empty name":          "=5",
		"out of range":        "path_bg=256",
		"negative":            "path_bg=-1",
		"not a number":        "path_bg=blue",
		"unknown glyph":       "bogus_char=*",
		"bad hex":             "git_staged_char=zz",
		"surrogate":           "git_staged_char=d800",
		"beyond unicode":      "git_staged_char=110000",
		"glyph on color name": "path_bg=★",
	}
	for name, line := range cases {
		_, err := LoadOverrides([]string{line})
		var corrupt *powerlineerrors.CorruptError
		require.ErrorAs(t, err, &corrupt, name)
		require.Equal(t, 1, corrupt.Line, name)
	}
}

func TestLoadOverridesSplitsOnFirstEquals(t *testing.T) {
	t.Parallel()

	th, err := LoadOverrides([]string{"git_ahead_char==="})
	require.Error(t, err, "'==' is two characters and not hex")

	th, err = LoadOverrides([]string{"git_ahead_char=="})
	require.NoError(t, err)
	require.Equal(t, '=', th.GitAheadChar)
}

func TestApplyKeepsBaseOnFailure(t *testing.T) {
	t.Parallel()

	base := Defaults()
	base.TimeBg = 1

	th, err := Apply(base, []string{"time_fg=2", "time_bg=999"})
	require.Error(t, err)
	require.Equal(t, base, th)

	th, err = Apply(base, []string{"time_fg=2"})
	require.NoError(t, err)
	require.Equal(t, uint8(1), th.TimeBg)
	require.Equal(t, uint8(2), th.TimeFg)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme")
	require.NoError(t, os.WriteFile(path, []byte("cmd_failed_bg=1\n#x\nro_char=e0a2\n"), 0o644))

	th, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint8(1), th.CmdFailedBg)
	require.Equal(t, '\ue0a2', th.ROChar)
}

func TestLoadCorruptFileReportsPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme")
	require.NoError(t, os.WriteFile(path, []byte("path_bg=1\nnope\n"), 0o644))

	th, err := Load(path)
	var corrupt *powerlineerrors.CorruptError
	require.ErrorAs(t, err, &corrupt)
	require.Equal(t, path, corrupt.Path)
	require.Equal(t, 2, corrupt.Line)
	require.Equal(t, Defaults(), th)
}

func TestLoadMissingFileIsNotCorrupt(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	var corrupt *powerlineerrors.CorruptError
	require.False(t, strings.Contains(err.Error(), "corrupt"))
	require.NotErrorAs(t, err, &corrupt)
}

func TestDumpRoundTrips(t *testing.T) {
	t.Parallel()

	custom := Defaults()
	custom.PathBg = 17
	custom.GitStagedChar = '*'
	custom.SeparatorChar = '>'

	buf := &bytes.Buffer{}
	require.NoError(t, Dump(buf, custom))
	require.Contains(t, buf.String(), "path_bg=17\n")
	require.Contains(t, buf.String(), "git_staged_char=002a\n")

	loaded, err := Read(buf)
	require.NoError(t, err)
	require.Equal(t, custom, loaded)
}

func TestFieldTablesAreConsistent(t *testing.T) {
	t.Parallel()

	for _, name := range GlyphNames() {
		require.True(t, strings.HasSuffix(name, "char"), name)
		_, ok := Defaults().Glyph(name)
		require.True(t, ok)
	}
	for _, name := range ColorNames() {
		require.False(t, strings.HasSuffix(name, "char"), name)
		_, ok := Defaults().Color(name)
		require.True(t, ok)
	}

	_, ok := Defaults().Color("bogus")
	require.False(t, ok)
	_, ok = Defaults().Glyph("bogus_char")
	require.False(t, ok)
}
