// Package theme holds the prompt's named colors and glyphs and the loader
// for name=value override files.
package theme

// Theme is a closed set of 256-color indices and glyphs. It is built once at
// startup and read-only afterwards.
type Theme struct {
	SeparatorFg uint8

	HomeBg uint8
	HomeFg uint8
	PathBg uint8
	PathFg uint8
	CwdFg  uint8

	UsernameBg     uint8
	UsernameFg     uint8
	UsernameRootBg uint8
	UsernameRootFg uint8
	HostnameBg     uint8
	HostnameFg     uint8

	JobsBg uint8
	JobsFg uint8

	TimeBg uint8
	TimeFg uint8

	SSHBg   uint8
	SSHFg   uint8
	SSHChar rune

	ROBg   uint8
	ROFg   uint8
	ROChar rune

	GitCleanBg    uint8
	GitCleanFg    uint8
	GitDirtyBg    uint8
	GitDirtyFg    uint8
	GitDetachedBg uint8
	GitDetachedFg uint8

	GitAheadBg      uint8
	GitAheadFg      uint8
	GitBehindBg     uint8
	GitBehindFg     uint8
	GitConflictedBg uint8
	GitConflictedFg uint8
	GitChangedBg    uint8
	GitChangedFg    uint8
	GitStagedBg     uint8
	GitStagedFg     uint8
	GitUntrackedBg  uint8
	GitUntrackedFg  uint8
	GitStashedBg    uint8
	GitStashedFg    uint8

	GitAheadChar      rune
	GitBehindChar     rune
	GitStagedChar     rune
	GitChangedChar    rune
	GitUntrackedChar  rune
	GitConflictedChar rune
	GitStashedChar    rune

	CmdPassedBg uint8
	CmdPassedFg uint8
	CmdFailedBg uint8
	CmdFailedFg uint8

	PSBg uint8
	PSFg uint8

	VirtualEnvBg uint8
	VirtualEnvFg uint8

	NixShellBg uint8
	NixShellFg uint8

	SeparatorChar    rune
	SeparatorRTLChar rune
}

// Neutral is the background index treated as "no color" by the compositor.
const Neutral uint8 = 0

// Defaults returns the compiled-in baseline theme.
func Defaults() Theme {
	return Theme{
		SeparatorFg: 244,

		HomeBg: 31,
		HomeFg: 15,
		PathBg: 236,
		PathFg: 252,
		CwdFg:  254,

		UsernameBg:     32,
		UsernameFg:     231,
		UsernameRootBg: 124,
		UsernameRootFg: 231,
		HostnameBg:     24,
		HostnameFg:     231,

		JobsBg: 238,
		JobsFg: 39,

		TimeBg: 238,
		TimeFg: 250,

		SSHBg:   166,
		SSHFg:   254,
		SSHChar: '\ue0a2',

		ROBg:   172,
		ROFg:   231,
		ROChar: '\ue0a2',

		GitCleanBg:    236,
		GitCleanFg:    2,
		GitDirtyBg:    236,
		GitDirtyFg:    98,
		GitDetachedBg: 236,
		GitDetachedFg: 220,

		GitAheadBg:      236,
		GitAheadFg:      248,
		GitBehindBg:     236,
		GitBehindFg:     248,
		GitConflictedBg: 236,
		GitConflictedFg: 160,
		GitChangedBg:    236,
		GitChangedFg:    166,
		GitStagedBg:     236,
		GitStagedFg:     2,
		GitUntrackedBg:  236,
		GitUntrackedFg:  214,
		GitStashedBg:    236,
		GitStashedFg:    31,

		GitAheadChar:      '⬆',
		GitBehindChar:     '⬇',
		GitStagedChar:     '●',
		GitChangedChar:    '✚',
		GitUntrackedChar:  '…',
		GitConflictedChar: '✖',
		GitStashedChar:    '⚑',

		CmdPassedBg: 162,
		CmdPassedFg: 231,
		CmdFailedBg: 124,
		CmdFailedFg: 231,

		PSBg: 238,
		PSFg: 39,

		VirtualEnvBg: 233,
		VirtualEnvFg: 162,

		NixShellBg: 237,
		NixShellFg: 130,

		SeparatorChar:    '\ue0b0',
		SeparatorRTLChar: '\ue0b2',
	}
}
