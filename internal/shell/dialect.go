// Package shell formats SGR color codes for the three prompt dialects.
//
// The bash and zsh dialects wrap every escape in the markers those shells use
// to exclude bytes from prompt width calculations (\[ \] and %{ %}).
package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects how escape sequences are emitted. It is chosen once per run.
type Dialect int

const (
	// Bare emits raw ANSI SGR sequences.
	Bare Dialect = iota
	// Bash emits sequences suitable for PS1.
	Bash
	// Zsh emits sequences suitable for PROMPT. Escaped text assumes
	// `setopt PROMPT_SUBST`; without it zsh prints the backslash in `\$`.
	Zsh
)

// Names lists the accepted dialect names in declaration order.
var Names = []string{"bare", "bash", "zsh"}

type codes struct {
	name    string
	wrap    func(sgr string) string
	boldOn  string
	boldOff string
	root    string
	escaper *strings.Replacer
}

var table = [...]codes{
	Bare: {
		name:    "bare",
		wrap:    func(sgr string) string { return "\x1b[" + sgr + "m" },
		boldOn:  "\x1b[1m",
		boldOff: "\x1b[22m",
		root:    "$",
	},
	Bash: {
		name:    "bash",
		wrap:    func(sgr string) string { return `\[\e[` + sgr + `m\]` },
		boldOn:  `\[\e[1m\]`,
		boldOff: `\[\e[22m\]`,
		root:    `\$`,
		escaper: strings.NewReplacer(`\`, `\\`, `$`, `\$`, `"`, `\"`, "`", "\\`"),
	},
	Zsh: {
		name:    "zsh",
		wrap:    func(sgr string) string { return "%{\x1b[" + sgr + "m%}" },
		boldOn:  "%B",
		boldOff: "%b",
		root:    "%#",
		escaper: strings.NewReplacer(`%`, `%%`, `$`, `\$`, `)`, `%)`),
	},
}

// Parse resolves a dialect name.
func Parse(name string) (Dialect, error) {
	for d, c := range table {
		if c.name == strings.ToLower(strings.TrimSpace(name)) {
			return Dialect(d), nil
		}
	}
	return Bare, fmt.Errorf("unknown shell %q (expected one of %s)", name, strings.Join(Names, ", "))
}

func (d Dialect) codes() codes {
	if d < Bare || d > Zsh {
		return table[Bare]
	}
	return table[d]
}

func (d Dialect) String() string {
	return d.codes().name
}

// Foreground returns the 256-color foreground sequence for color.
func Foreground(d Dialect, color uint8) string {
	return d.codes().wrap("38;5;" + strconv.Itoa(int(color)))
}

// Background returns the 256-color background sequence for color.
func Background(d Dialect, color uint8) string {
	return d.codes().wrap("48;5;" + strconv.Itoa(int(color)))
}

// Reset returns the sequence restoring the default foreground (39) or
// background (49) color.
func Reset(d Dialect, foreground bool) string {
	if foreground {
		return d.codes().wrap("39")
	}
	return d.codes().wrap("49")
}

// Bold wraps text in bold on/off codes. The text is not escaped.
func Bold(d Dialect, text string) string {
	c := d.codes()
	return c.boldOn + text + c.boldOff
}

// Escape rewrites the characters the shell would interpret inside a prompt
// string. It is the identity for Bare. Replacement is a single left-to-right
// pass, so inserted escape characters are never escaped again; applying it
// twice therefore double-escapes, and callers must guard against that.
func Escape(d Dialect, text string) string {
	c := d.codes()
	if c.escaper == nil {
		return text
	}
	return c.escaper.Replace(text)
}

// RootIndicator returns the already-escaped prompt character that the shell
// expands to '#' for root and '$' (or '%') otherwise.
func RootIndicator(d Dialect) string {
	return d.codes().root
}
