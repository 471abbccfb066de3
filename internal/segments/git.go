package segments

import (
	"strconv"

	"github.com/alexisbeaulieu97/powerline/internal/powerline"
)

const (
	branchGlyph = "\ue0a0"
	unbornText  = "Big Bang"
)

// Git renders the checked-out branch (or short commit id when detached)
// colored by whether the working tree is clean, followed by ahead/behind
// counts against the configured upstream.
func Git(p *powerline.Powerline, ctx *Context) {
	if ctx.Git == nil {
		return
	}
	head, ok := ctx.Git.Head()
	if !ok {
		return
	}
	t := p.Theme

	if head.Unborn {
		p.Append(powerline.NewSegment(t.GitDirtyBg, t.GitDirtyFg, unbornText))
		return
	}

	clean, ok := ctx.Git.Clean()
	if !ok {
		return
	}
	bg, fg := t.GitDirtyBg, t.GitDirtyFg
	if clean {
		bg, fg = t.GitCleanBg, t.GitCleanFg
	}
	p.Append(powerline.NewSegment(bg, fg, branchGlyph+" "+head.Name))

	ahead, behind, ok := ctx.Git.AheadBehind()
	if !ok {
		return
	}
	if ahead > 0 {
		p.Append(powerline.NewSegment(t.GitAheadBg, t.GitAheadFg, counted(t.GitAheadChar, ahead)))
	}
	if behind > 0 {
		p.Append(powerline.NewSegment(t.GitBehindBg, t.GitBehindFg, counted(t.GitBehindChar, behind)))
	}
}

// GitStage renders one segment per non-zero status category.
func GitStage(p *powerline.Powerline, ctx *Context) {
	if ctx.Git == nil {
		return
	}
	counts, ok := ctx.Git.Counts()
	if !ok {
		return
	}
	t := p.Theme

	stages := []struct {
		n      int
		bg, fg uint8
		glyph  rune
	}{
		{counts.Staged, t.GitStagedBg, t.GitStagedFg, t.GitStagedChar},
		{counts.Changed, t.GitChangedBg, t.GitChangedFg, t.GitChangedChar},
		{counts.Untracked, t.GitUntrackedBg, t.GitUntrackedFg, t.GitUntrackedChar},
		{counts.Conflicted, t.GitConflictedBg, t.GitConflictedFg, t.GitConflictedChar},
		{counts.Stashes, t.GitStashedBg, t.GitStashedFg, t.GitStashedChar},
	}
	for _, stage := range stages {
		if stage.n > 0 {
			p.Append(powerline.NewSegment(stage.bg, stage.fg, counted(stage.glyph, stage.n)))
		}
	}
}

func counted(glyph rune, n int) string {
	return string(glyph) + " " + strconv.Itoa(n)
}
