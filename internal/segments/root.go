package segments

import (
	"strconv"

	"github.com/alexisbeaulieu97/powerline/internal/powerline"
	"github.com/alexisbeaulieu97/powerline/internal/shell"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// Root renders the prompt character after a successful command, or the
// exit code of the last command otherwise.
func Root(p *powerline.Powerline, ctx *Context) {
	if code := ctx.Options.ExitCode; code != 0 {
		p.Append(powerline.NewSegment(p.Theme.CmdFailedBg, p.Theme.CmdFailedFg, strconv.Itoa(code)))
		return
	}
	p.Append(powerline.NewSegment(p.Theme.CmdPassedBg, p.Theme.CmdPassedFg, shell.RootIndicator(p.Shell)).PreEscaped())
}

// PS renders the prompt character unconditionally.
func PS(p *powerline.Powerline, _ *Context) {
	p.Append(powerline.NewSegment(p.Theme.PSBg, p.Theme.PSFg, shell.RootIndicator(p.Shell)).PreEscaped())
}

// LineBreak starts a new prompt line. It uses the neutral background so the
// preceding separator fades out instead of drawing a colored edge.
func LineBreak(p *powerline.Powerline, _ *Context) {
	p.Append(powerline.NewSegment(theme.Neutral, theme.Neutral, "\n").
		WithoutSpaceAfter().
		PreEscaped())
}
