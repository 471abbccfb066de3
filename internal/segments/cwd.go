package segments

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/powerline/internal/powerline"
	"github.com/alexisbeaulieu97/powerline/internal/shell"
)

const ellipsis = "…"

// Cwd renders the working directory relative to $HOME. At most CwdMaxDepth
// trailing components are shown (0 = all) and every component but the last
// is truncated to CwdMaxDirSize display cells (0 = unlimited).
func Cwd(p *powerline.Powerline, ctx *Context) {
	d := p.Shell
	path := filepath.Clean(ctx.Env.Cwd)

	inHome := false
	if home := ctx.Env.Home; home != "" {
		if rel, err := filepath.Rel(filepath.Clean(home), path); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			inHome = true
			path = rel
		}
	}

	var parts []string
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		bg, fg, text := p.Theme.PathBg, p.Theme.PathFg, "/"
		if inHome {
			bg, fg, text = p.Theme.HomeBg, p.Theme.HomeFg, "~"
		}
		p.Append(powerline.NewSegment(bg, fg, shell.Bold(d, text)).PreEscaped())
		return
	}

	var b strings.Builder
	if inHome {
		b.WriteString("~")
	}

	if depth := ctx.Options.CwdMaxDepth; depth > 0 && len(parts) > depth {
		parts = parts[len(parts)-depth:]
		b.WriteString("/" + ellipsis)
	}

	for i, part := range parts {
		b.WriteString("/")
		if i == len(parts)-1 {
			b.WriteString(shell.Foreground(d, p.Theme.CwdFg))
			b.WriteString(shell.Bold(d, shell.Escape(d, part)))
			break
		}
		b.WriteString(shell.Escape(d, truncateDir(part, ctx.Options.CwdMaxDirSize)))
	}

	p.Append(powerline.NewSegment(p.Theme.PathBg, p.Theme.PathFg, b.String()).PreEscaped())
}

func truncateDir(name string, width int) string {
	if width <= 0 || runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, ellipsis)
}
