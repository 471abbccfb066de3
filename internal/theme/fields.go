package theme

import "sort"

// colorFields and glyphFields map override-file names to the field they set.
// Glyph names all end in "char"; the loader relies on that to pick a table.
var colorFields = map[string]func(*Theme) *uint8{
	"separator_fg": func(t *Theme) *uint8 { return &t.SeparatorFg },

	"home_bg": func(t *Theme) *uint8 { return &t.HomeBg },
	"home_fg": func(t *Theme) *uint8 { return &t.HomeFg },
	"path_bg": func(t *Theme) *uint8 { return &t.PathBg },
	"path_fg": func(t *Theme) *uint8 { return &t.PathFg },
	"cwd_fg":  func(t *Theme) *uint8 { return &t.CwdFg },

	"username_bg":      func(t *Theme) *uint8 { return &t.UsernameBg },
	"username_fg":      func(t *Theme) *uint8 { return &t.UsernameFg },
	"username_root_bg": func(t *Theme) *uint8 { return &t.UsernameRootBg },
	"username_root_fg": func(t *Theme) *uint8 { return &t.UsernameRootFg },
	"hostname_bg":      func(t *Theme) *uint8 { return &t.HostnameBg },
	"hostname_fg":      func(t *Theme) *uint8 { return &t.HostnameFg },

	"jobs_bg": func(t *Theme) *uint8 { return &t.JobsBg },
	"jobs_fg": func(t *Theme) *uint8 { return &t.JobsFg },

	"time_bg": func(t *Theme) *uint8 { return &t.TimeBg },
	"time_fg": func(t *Theme) *uint8 { return &t.TimeFg },

	"ssh_bg": func(t *Theme) *uint8 { return &t.SSHBg },
	"ssh_fg": func(t *Theme) *uint8 { return &t.SSHFg },

	"ro_bg": func(t *Theme) *uint8 { return &t.ROBg },
	"ro_fg": func(t *Theme) *uint8 { return &t.ROFg },

	"git_clean_bg":      func(t *Theme) *uint8 { return &t.GitCleanBg },
	"git_clean_fg":      func(t *Theme) *uint8 { return &t.GitCleanFg },
	"git_dirty_bg":      func(t *Theme) *uint8 { return &t.GitDirtyBg },
	"git_dirty_fg":      func(t *Theme) *uint8 { return &t.GitDirtyFg },
	"git_detached_bg":   func(t *Theme) *uint8 { return &t.GitDetachedBg },
	"git_detached_fg":   func(t *Theme) *uint8 { return &t.GitDetachedFg },
	"git_ahead_bg":      func(t *Theme) *uint8 { return &t.GitAheadBg },
	"git_ahead_fg":      func(t *Theme) *uint8 { return &t.GitAheadFg },
	"git_behind_bg":     func(t *Theme) *uint8 { return &t.GitBehindBg },
	"git_behind_fg":     func(t *Theme) *uint8 { return &t.GitBehindFg },
	"git_conflicted_bg": func(t *Theme) *uint8 { return &t.GitConflictedBg },
	"git_conflicted_fg": func(t *Theme) *uint8 { return &t.GitConflictedFg },
	"git_changed_bg":    func(t *Theme) *uint8 { return &t.GitChangedBg },
	"git_changed_fg":    func(t *Theme) *uint8 { return &t.GitChangedFg },
	"git_staged_bg":     func(t *Theme) *uint8 { return &t.GitStagedBg },
	"git_staged_fg":     func(t *Theme) *uint8 { return &t.GitStagedFg },
	"git_untracked_bg":  func(t *Theme) *uint8 { return &t.GitUntrackedBg },
	"git_untracked_fg":  func(t *Theme) *uint8 { return &t.GitUntrackedFg },
	"git_stashed_bg":    func(t *Theme) *uint8 { return &t.GitStashedBg },
	"git_stashed_fg":    func(t *Theme) *uint8 { return &t.GitStashedFg },

	"cmd_passed_bg": func(t *Theme) *uint8 { return &t.CmdPassedBg },
	"cmd_passed_fg": func(t *Theme) *uint8 { return &t.CmdPassedFg },
	"cmd_failed_bg": func(t *Theme) *uint8 { return &t.CmdFailedBg },
	"cmd_failed_fg": func(t *Theme) *uint8 { return &t.CmdFailedFg },

	"ps_bg": func(t *Theme) *uint8 { return &t.PSBg },
	"ps_fg": func(t *Theme) *uint8 { return &t.PSFg },

	"virtual_env_bg": func(t *Theme) *uint8 { return &t.VirtualEnvBg },
	"virtual_env_fg": func(t *Theme) *uint8 { return &t.VirtualEnvFg },

	"nixshell_bg": func(t *Theme) *uint8 { return &t.NixShellBg },
	"nixshell_fg": func(t *Theme) *uint8 { return &t.NixShellFg },
}

var glyphFields = map[string]func(*Theme) *rune{
	"ssh_char": func(t *Theme) *rune { return &t.SSHChar },
	"ro_char":  func(t *Theme) *rune { return &t.ROChar },

	"git_ahead_char":      func(t *Theme) *rune { return &t.GitAheadChar },
	"git_behind_char":     func(t *Theme) *rune { return &t.GitBehindChar },
	"git_staged_char":     func(t *Theme) *rune { return &t.GitStagedChar },
	"git_changed_char":    func(t *Theme) *rune { return &t.GitChangedChar },
	"git_untracked_char":  func(t *Theme) *rune { return &t.GitUntrackedChar },
	"git_conflicted_char": func(t *Theme) *rune { return &t.GitConflictedChar },
	"git_stashed_char":    func(t *Theme) *rune { return &t.GitStashedChar },

	"separator_char":     func(t *Theme) *rune { return &t.SeparatorChar },
	"separator_rtl_char": func(t *Theme) *rune { return &t.SeparatorRTLChar },
}

// ColorNames returns every color field name, sorted.
func ColorNames() []string {
	return sortedKeys(colorFields)
}

// GlyphNames returns every glyph field name, sorted.
func GlyphNames() []string {
	return sortedKeys(glyphFields)
}

// Color looks up a color field by name.
func (t Theme) Color(name string) (uint8, bool) {
	field, ok := colorFields[name]
	if !ok {
		return 0, false
	}
	return *field(&t), true
}

// Glyph looks up a glyph field by name.
func (t Theme) Glyph(name string) (rune, bool) {
	field, ok := glyphFields[name]
	if !ok {
		return 0, false
	}
	return *field(&t), true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
