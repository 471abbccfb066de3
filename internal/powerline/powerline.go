// Package powerline composes segments into a prompt string.
package powerline

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/powerline/internal/shell"
	"github.com/alexisbeaulieu97/powerline/internal/theme"
)

// Direction selects the render order of separators.
type Direction int

const (
	// LeftToRight draws separators pointing right, after each segment.
	LeftToRight Direction = iota
	// RightToLeft draws separators pointing left, before each segment.
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Powerline owns the ordered segments contributed for one prompt.
type Powerline struct {
	Theme theme.Theme
	Shell shell.Dialect

	segments []Segment
}

// New creates an empty prompt for the given theme and dialect.
func New(t theme.Theme, d shell.Dialect) *Powerline {
	return &Powerline{Theme: t, Shell: d}
}

// Append adds segments in render order.
func (p *Powerline) Append(segments ...Segment) {
	p.segments = append(p.segments, segments...)
}

// Segments returns a copy of the current sequence.
func (p *Powerline) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len reports how many segments have been appended.
func (p *Powerline) Len() int {
	return len(p.segments)
}

// Render escapes every segment once and joins them in the given direction.
// Escaping is guarded per segment, so rendering twice yields identical output.
func (p *Powerline) Render(dir Direction) string {
	for i := range p.segments {
		p.segments[i].Escape(p.Shell)
	}

	var b strings.Builder
	for i := range p.segments {
		cur := &p.segments[i]
		var prev, next *Segment
		if i > 0 {
			prev = &p.segments[i-1]
		}
		if i+1 < len(p.segments) {
			next = &p.segments[i+1]
		}

		if dir == RightToLeft {
			p.writeRTL(&b, cur, prev, next)
		} else {
			p.writeLTR(&b, cur, next)
		}
	}
	return b.String()
}

func (p *Powerline) writeLTR(b *strings.Builder, cur, next *Segment) {
	d := p.Shell
	sep := string(p.Theme.SeparatorChar)

	b.WriteString(cur.Before)
	b.WriteString(shell.Foreground(d, cur.Foreground))
	b.WriteString(shell.Background(d, cur.Background))
	b.WriteByte(' ')
	p.writeText(b, cur)

	if !cur.NoSpaceAfter && (next == nil || next.Background != cur.Background) {
		b.WriteByte(' ')
	}

	switch {
	case next == nil:
		fmt.Fprintf(b, "%s%s%s%s", shell.Foreground(d, cur.Background), shell.Reset(d, false), sep, shell.Reset(d, true))
	case next.Conditional, next.Background == cur.Background:
	case cur.Background == theme.Neutral:
		fmt.Fprintf(b, "%s%s%s", shell.Foreground(d, next.Background), shell.Background(d, next.Background), sep)
	default:
		fmt.Fprintf(b, "%s%s%s", shell.Foreground(d, cur.Background), shell.Background(d, next.Background), sep)
	}

	b.WriteString(cur.After)
}

// writeRTL mirrors writeLTR: prev is the segment visually to the left, so the
// left-pointing separator between prev and cur is drawn before cur's text.
func (p *Powerline) writeRTL(b *strings.Builder, cur, prev, next *Segment) {
	d := p.Shell
	sep := string(p.Theme.SeparatorRTLChar)

	b.WriteString(cur.After)

	switch {
	case prev == nil:
		fmt.Fprintf(b, "%s%s", shell.Foreground(d, cur.Background), sep)
	case cur.Conditional, prev.Background == cur.Background:
	case cur.Background == theme.Neutral:
		fmt.Fprintf(b, "%s%s%s", shell.Foreground(d, prev.Background), shell.Background(d, prev.Background), sep)
	default:
		fmt.Fprintf(b, "%s%s%s", shell.Foreground(d, cur.Background), shell.Background(d, prev.Background), sep)
	}

	b.WriteString(shell.Foreground(d, cur.Foreground))
	b.WriteString(shell.Background(d, cur.Background))
	b.WriteByte(' ')
	p.writeText(b, cur)

	if !cur.NoSpaceAfter && (next == nil || next.Background != cur.Background) {
		b.WriteByte(' ')
	}

	b.WriteString(shell.Reset(d, false))
	b.WriteString(shell.Reset(d, true))
	b.WriteString(cur.Before)
}

func (p *Powerline) writeText(b *strings.Builder, s *Segment) {
	if s.Bold {
		b.WriteString(shell.Bold(p.Shell, s.Text))
		return
	}
	b.WriteString(s.Text)
}
