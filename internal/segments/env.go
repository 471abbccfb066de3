package segments

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/powerline/internal/powerline"
)

// User renders the login name, highlighted for root.
func User(p *powerline.Powerline, ctx *Context) {
	if ctx.Env.Username == nil {
		return
	}
	name, err := ctx.Env.Username()
	if err != nil || name == "" {
		ctx.Log.Skip("user", err, "username unavailable")
		return
	}
	bg, fg := p.Theme.UsernameBg, p.Theme.UsernameFg
	if ctx.Env.UID == 0 {
		bg, fg = p.Theme.UsernameRootBg, p.Theme.UsernameRootFg
	}
	p.Append(powerline.NewSegment(bg, fg, name))
}

// Host renders the hostname up to its first dot.
func Host(p *powerline.Powerline, ctx *Context) {
	if ctx.Env.Hostname == nil {
		return
	}
	name, err := ctx.Env.Hostname()
	if err != nil || name == "" {
		ctx.Log.Skip("host", err, "hostname unavailable")
		return
	}
	short, _, _ := strings.Cut(name, ".")
	p.Append(powerline.NewSegment(p.Theme.HostnameBg, p.Theme.HostnameFg, short))
}

// SSH renders the ssh glyph inside a remote session.
func SSH(p *powerline.Powerline, ctx *Context) {
	if getenv(ctx, "SSH_CLIENT") == "" && getenv(ctx, "SSH_TTY") == "" {
		return
	}
	p.Append(powerline.NewSegment(p.Theme.SSHBg, p.Theme.SSHFg, string(p.Theme.SSHChar)))
}

// VirtualEnv renders the name of the active Python or conda environment.
func VirtualEnv(p *powerline.Powerline, ctx *Context) {
	for _, key := range []string{"VIRTUAL_ENV", "CONDA_ENV_PATH", "CONDA_DEFAULT_ENV"} {
		value := getenv(ctx, key)
		if value == "" {
			continue
		}
		name := filepath.Base(strings.TrimRight(value, "/"))
		if name == "" || name == "." || name == "/" {
			continue
		}
		p.Append(powerline.NewSegment(p.Theme.VirtualEnvBg, p.Theme.VirtualEnvFg, name))
		return
	}
}

// NixShell renders the nix-shell kind (pure or impure) when inside one.
func NixShell(p *powerline.Powerline, ctx *Context) {
	kind := getenv(ctx, "IN_NIX_SHELL")
	if kind == "" {
		return
	}
	if kind == "1" {
		kind = "nix"
	}
	p.Append(powerline.NewSegment(p.Theme.NixShellBg, p.Theme.NixShellFg, kind))
}

func getenv(ctx *Context, key string) string {
	if ctx.Env.Getenv == nil {
		return ""
	}
	return ctx.Env.Getenv(key)
}

func currentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
