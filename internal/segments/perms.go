package segments

import "github.com/alexisbeaulieu97/powerline/internal/powerline"

// Perms renders the read-only glyph when the working directory is not
// writable by the current user.
func Perms(p *powerline.Powerline, ctx *Context) {
	if ctx.Env.Writable == nil || ctx.Env.Writable(ctx.Env.Cwd) {
		return
	}
	p.Append(powerline.NewSegment(p.Theme.ROBg, p.Theme.ROFg, string(p.Theme.ROChar)))
}
