package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := map[string]Dialect{"bare": Bare, "bash": Bash, "zsh": Zsh, " ZSH ": Zsh}
	for name, want := range cases {
		got, err := Parse(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
		require.Equal(t, Names[want], got.String())
	}

	_, err := Parse("fish")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fish")
}

func TestColorSequences(t *testing.T) {
	t.Parallel()

	require.Equal(t, "\x1b[38;5;31m", Foreground(Bare, 31))
	require.Equal(t, "\x1b[48;5;0m", Background(Bare, 0))
	require.Equal(t, `\[\e[38;5;255m\]`, Foreground(Bash, 255))
	require.Equal(t, `\[\e[48;5;236m\]`, Background(Bash, 236))
	require.Equal(t, "%{\x1b[38;5;2m%}", Foreground(Zsh, 2))
	require.Equal(t, "%{\x1b[48;5;124m%}", Background(Zsh, 124))
}

func TestReset(t *testing.T) {
	t.Parallel()

	require.Equal(t, "\x1b[39m", Reset(Bare, true))
	require.Equal(t, "\x1b[49m", Reset(Bare, false))
	require.Equal(t, `\[\e[39m\]`, Reset(Bash, true))
	require.Equal(t, "%{\x1b[49m%}", Reset(Zsh, false))
}

func TestBold(t *testing.T) {
	t.Parallel()

	require.Equal(t, "\x1b[1mmain\x1b[22m", Bold(Bare, "main"))
	require.Equal(t, `\[\e[1m\]main\[\e[22m\]`, Bold(Bash, "main"))
	require.Equal(t, "%Bmain%b", Bold(Zsh, "main"))
}

func TestEscapeBareIsIdentity(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "plain", `a\b$c"d`, "%)`", "ünïcödé ✚"} {
		require.Equal(t, in, Escape(Bare, in))
	}
}

func TestEscapeBash(t *testing.T) {
	t.Parallel()

	require.Equal(t, `\$HOME`, Escape(Bash, "$HOME"))
	require.Equal(t, `a\\b`, Escape(Bash, `a\b`))
	require.Equal(t, `say \"hi\" \`+"`"+`id\`+"`", Escape(Bash, "say \"hi\" `id`"))
	require.Equal(t, "100%", Escape(Bash, "100%"))
}

func TestEscapeZsh(t *testing.T) {
	t.Parallel()

	require.Equal(t, "100%%", Escape(Zsh, "100%"))
	require.Equal(t, `\$PATH`, Escape(Zsh, "$PATH"))
	require.Equal(t, "(x%)", Escape(Zsh, "(x)"))
	require.Equal(t, `a\b`, Escape(Zsh, `a\b`))
}

func TestEscapeSinglePass(t *testing.T) {
	t.Parallel()

	// The backslash inserted for '$' must not itself be doubled.
	require.Equal(t, `\\\$`, Escape(Bash, `\$`))
	require.Equal(t, "%%%)", Escape(Zsh, "%)"))
}

func TestRootIndicator(t *testing.T) {
	t.Parallel()

	require.Equal(t, "$", RootIndicator(Bare))
	require.Equal(t, `\$`, RootIndicator(Bash))
	require.Equal(t, "%#", RootIndicator(Zsh))
}

func TestOutOfRangeDialectFallsBackToBare(t *testing.T) {
	t.Parallel()

	require.Equal(t, Foreground(Bare, 1), Foreground(Dialect(9), 1))
	require.Equal(t, "bare", Dialect(-1).String())
}
