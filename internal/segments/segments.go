// Package segments contains the producers that contribute segments to a
// prompt. Each producer reads its data from a Context and appends zero or
// more segments; missing data means no segment, never an error.
package segments

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/powerline/internal/logger"
	"github.com/alexisbeaulieu97/powerline/internal/powerline"
	"github.com/alexisbeaulieu97/powerline/internal/vcs"
)

// DefaultModules is the module list used when none is configured.
var DefaultModules = []string{"user", "host", "ssh", "cwd", "perms", "git", "gitstage", "virtualenv", "root"}

// DefaultTimeFormat is the strftime layout of the time module.
const DefaultTimeFormat = "%I:%M %p"

// Options carries the user-tunable knobs of individual producers.
type Options struct {
	CwdMaxDepth   int
	CwdMaxDirSize int
	ExitCode      int
	TimeFormat    string
}

// Env abstracts the process environment so producers can be tested.
type Env struct {
	Cwd      string
	Home     string
	UID      int
	Getenv   func(string) string
	Hostname func() (string, error)
	Username func() (string, error)
	Now      func() time.Time
	Jobs     func() (int, error)
	Writable func(path string) bool
}

// Context is shared by every producer during one render.
type Context struct {
	Options Options
	Env     Env
	Git     *vcs.Aggregator
	Log     *logger.Logger
}

// Producer appends segments to p.
type Producer func(p *powerline.Powerline, ctx *Context)

var producers = map[string]Producer{
	"cwd":        Cwd,
	"git":        Git,
	"gitstage":   GitStage,
	"host":       Host,
	"jobs":       Jobs,
	"linebreak":  LineBreak,
	"nix-shell":  NixShell,
	"perms":      Perms,
	"ps":         PS,
	"root":       Root,
	"ssh":        SSH,
	"time":       Time,
	"user":       User,
	"virtualenv": VirtualEnv,
}

// Names returns every module name, sorted.
func Names() []string {
	names := make([]string, 0, len(producers))
	for name := range producers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds the producer registered under name.
func Lookup(name string) (Producer, bool) {
	producer, ok := producers[name]
	return producer, ok
}

// Build runs the named producers in order. All names are checked before any
// producer runs, so an unknown module leaves p untouched.
func Build(p *powerline.Powerline, ctx *Context, modules []string) error {
	run := make([]Producer, 0, len(modules))
	for _, name := range modules {
		producer, ok := Lookup(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("unknown module %q (expected one of %s)", name, strings.Join(Names(), ", "))
		}
		run = append(run, producer)
	}

	for _, producer := range run {
		producer(p, ctx)
	}
	return nil
}

// DefaultEnv reads the real process environment. cwd is resolved by the
// caller because the git producers need the same directory.
func DefaultEnv(cwd string) Env {
	home, _ := os.UserHomeDir()
	return Env{
		Cwd:      cwd,
		Home:     home,
		UID:      os.Getuid(),
		Getenv:   os.Getenv,
		Hostname: os.Hostname,
		Username: currentUsername,
		Now:      time.Now,
		Jobs:     countJobs,
		Writable: writable,
	}
}
