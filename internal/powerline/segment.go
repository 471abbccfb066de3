package powerline

import "github.com/alexisbeaulieu97/powerline/internal/shell"

// Segment is one colored unit of prompt text.
type Segment struct {
	Background uint8
	Foreground uint8
	Text       string

	// Before and After are emitted outside the colored region.
	Before string
	After  string

	// Conditional suppresses the separator drawn between this segment and
	// the one before it.
	Conditional  bool
	NoSpaceAfter bool
	Bold         bool

	// Escaped records that Text already went through shell.Escape.
	Escaped bool
}

// NewSegment creates a segment with default layout flags.
func NewSegment(bg, fg uint8, text string) Segment {
	return Segment{Background: bg, Foreground: fg, Text: text}
}

// PreEscaped marks text as already safe for the shell, e.g. when a producer
// embeds dialect codes or escapes pieces itself.
func (s Segment) PreEscaped() Segment {
	s.Escaped = true
	return s
}

// WithBold renders the text between bold on/off codes.
func (s Segment) WithBold() Segment {
	s.Bold = true
	return s
}

// WithBefore sets the literal emitted before the segment's color codes.
func (s Segment) WithBefore(before string) Segment {
	s.Before = before
	return s
}

// WithAfter sets the literal emitted after the segment.
func (s Segment) WithAfter(after string) Segment {
	s.After = after
	return s
}

// AsConditional marks the segment conditional.
func (s Segment) AsConditional() Segment {
	s.Conditional = true
	return s
}

// WithoutSpaceAfter suppresses the trailing padding space.
func (s Segment) WithoutSpaceAfter() Segment {
	s.NoSpaceAfter = true
	return s
}

// Escape applies dialect escaping to Text at most once.
func (s *Segment) Escape(d shell.Dialect) {
	if s.Escaped {
		return
	}
	s.Text = shell.Escape(d, s.Text)
	s.Escaped = true
}
