package segments

import (
	"github.com/ncruces/go-strftime"

	"github.com/alexisbeaulieu97/powerline/internal/powerline"
)

// Time renders the current time using a strftime layout.
func Time(p *powerline.Powerline, ctx *Context) {
	if ctx.Env.Now == nil {
		return
	}
	layout := ctx.Options.TimeFormat
	if layout == "" {
		layout = DefaultTimeFormat
	}
	p.Append(powerline.NewSegment(p.Theme.TimeBg, p.Theme.TimeFg, strftime.Format(layout, ctx.Env.Now())))
}
