package segments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/powerline/internal/shell"
)

func TestCwd(t *testing.T) {
	t.Parallel()

	last := func(d shell.Dialect, name string) string {
		return shell.Foreground(d, 254) + shell.Bold(d, name)
	}

	cases := []struct {
		name     string
		dialect  shell.Dialect
		cwd      string
		depth    int
		dirSize  int
		wantText string
		wantBg   uint8
	}{
		{
			name:     "home",
			dialect:  shell.Bare,
			cwd:      "/home/alice",
			wantText: shell.Bold(shell.Bare, "~"),
			wantBg:   31,
		},
		{
			name:     "filesystem root",
			dialect:  shell.Bare,
			cwd:      "/",
			wantText: shell.Bold(shell.Bare, "/"),
			wantBg:   236,
		},
		{
			name:     "inside home",
			dialect:  shell.Bare,
			cwd:      "/home/alice/src/powerline",
			wantText: "~/src" + "/" + last(shell.Bare, "powerline"),
			wantBg:   236,
		},
		{
			name:     "outside home",
			dialect:  shell.Bare,
			cwd:      "/usr/local/bin",
			wantText: "/usr/local/" + last(shell.Bare, "bin"),
			wantBg:   236,
		},
		{
			name:     "sibling of home is not home",
			dialect:  shell.Bare,
			cwd:      "/home/alice2",
			wantText: "/home/" + last(shell.Bare, "alice2"),
			wantBg:   236,
		},
		{
			name:     "depth limit",
			dialect:  shell.Bare,
			cwd:      "/home/alice/a/b/c/d",
			depth:    2,
			wantText: "~/…/c/" + last(shell.Bare, "d"),
			wantBg:   236,
		},
		{
			name:     "directory names are truncated except the last",
			dialect:  shell.Bare,
			cwd:      "/srv/averylongname/anotherlongname",
			dirSize:  5,
			wantText: "/srv/aver…/" + last(shell.Bare, "anotherlongname"),
			wantBg:   236,
		},
		{
			name:     "wide runes truncate by display width",
			dialect:  shell.Bare,
			cwd:      "/srv/日本語のディレクトリ/x",
			dirSize:  5,
			wantText: "/srv/日本…/" + last(shell.Bare, "x"),
			wantBg:   236,
		},
		{
			name:     "components are escaped",
			dialect:  shell.Zsh,
			cwd:      "/tmp/100%/$HOME",
			wantText: "/tmp/100%%/" + last(shell.Zsh, `\$HOME`),
			wantBg:   236,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := newPowerline(tc.dialect)
			ctx := newContext(t)
			ctx.Env.Cwd = tc.cwd
			ctx.Options.CwdMaxDepth = tc.depth
			ctx.Options.CwdMaxDirSize = tc.dirSize
			Cwd(p, ctx)

			segs := p.Segments()
			require.Len(t, segs, 1)
			require.Equal(t, tc.wantText, segs[0].Text)
			require.Equal(t, tc.wantBg, segs[0].Background)
			require.True(t, segs[0].Escaped)
		})
	}
}

func TestCwdWithoutHome(t *testing.T) {
	t.Parallel()

	p := newPowerline(shell.Bare)
	ctx := newContext(t)
	ctx.Env.Home = ""
	ctx.Env.Cwd = "/home/alice"
	Cwd(p, ctx)

	require.Equal(t, []string{"/home/" + shell.Foreground(shell.Bare, 254) + shell.Bold(shell.Bare, "alice")}, texts(p))
}
