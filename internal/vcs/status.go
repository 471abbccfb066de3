package vcs

import (
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Flags describes one path's index and worktree state.
type Flags uint16

// Index* bits describe the staged side of a path, Worktree* bits the
// working tree side. IndexRenamed, IndexTypeChange and Conflicted come from
// comparing the index with HEAD, since worktree status never reports them.
const (
	IndexNew Flags = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChange
	WorktreeNew
	WorktreeModified
	WorktreeDeleted
	Conflicted
)

const (
	stagedMask  = IndexNew | IndexModified | IndexDeleted | IndexRenamed | IndexTypeChange
	changedMask = WorktreeModified | WorktreeDeleted
)

// Has reports whether any bit of other is set.
func (f Flags) Has(other Flags) bool {
	return f&other != 0
}

// Counts are the per-category totals shown by the gitstage segments. A path
// can count as both staged and changed.
type Counts struct {
	Staged     int
	Changed    int
	Untracked  int
	Conflicted int
	Stashes    int
}

// Classify partitions status flags into counters. Stashes is left at zero.
func Classify(statuses []Flags) Counts {
	var c Counts
	for _, f := range statuses {
		if f.Has(stagedMask) {
			c.Staged++
		}
		if f.Has(changedMask) {
			c.Changed++
		}
		if f.Has(WorktreeNew) {
			c.Untracked++
		}
		if f.Has(Conflicted) {
			c.Conflicted++
		}
	}
	return c
}

func flagsFor(fs *git.FileStatus) Flags {
	var f Flags
	switch fs.Staging {
	case git.Added:
		f |= IndexNew
	case git.Modified:
		f |= IndexModified
	case git.Deleted:
		f |= IndexDeleted
	}
	switch fs.Worktree {
	case git.Untracked:
		f |= WorktreeNew
	case git.Modified:
		f |= WorktreeModified
	case git.Deleted:
		f |= WorktreeDeleted
	}
	return f
}

// detectStaged refines staged flags against HEAD. A staged deletion and a
// staged addition of the same blob become one rename on the new path, and a
// staged modification that swaps file kind (regular, symlink, submodule)
// becomes a type change. head is nil in an unborn repository.
func detectStaged(head *object.Tree, idx *index.Index, paths map[string]Flags) {
	if head == nil {
		return
	}

	staged := make(map[string]*index.Entry, len(idx.Entries))
	for _, e := range idx.Entries {
		if e.Stage == index.Merged {
			staged[e.Name] = e
		}
	}

	deleted := make(map[plumbing.Hash][]string)
	for _, path := range sortedPaths(paths) {
		f := paths[path]
		switch {
		case f.Has(IndexDeleted):
			entry, err := head.FindEntry(path)
			if err == nil {
				deleted[entry.Hash] = append(deleted[entry.Hash], path)
			}
		case f.Has(IndexModified):
			entry, err := head.FindEntry(path)
			if e, ok := staged[path]; ok && err == nil && kind(entry.Mode) != kind(e.Mode) {
				paths[path] = f&^IndexModified | IndexTypeChange
			}
		}
	}

	for _, path := range sortedPaths(paths) {
		f := paths[path]
		e, ok := staged[path]
		if !f.Has(IndexNew) || !ok {
			continue
		}
		sources := deleted[e.Hash]
		if len(sources) == 0 {
			continue
		}
		from := sources[0]
		deleted[e.Hash] = sources[1:]

		if rest := paths[from] &^ IndexDeleted; rest != 0 {
			paths[from] = rest
		} else {
			delete(paths, from)
		}
		paths[path] = f&^IndexNew | IndexRenamed
	}
}

// markConflicts replaces the flags of every path that has unmerged index
// stages with Conflicted alone.
func markConflicts(idx *index.Index, paths map[string]Flags) {
	for _, e := range idx.Entries {
		if e.Stage != index.Merged {
			paths[e.Name] = Conflicted
		}
	}
}

func kind(m filemode.FileMode) filemode.FileMode {
	if m == filemode.Executable || m == filemode.Deprecated {
		return filemode.Regular
	}
	return m
}

func sortedPaths(paths map[string]Flags) []string {
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)
	return keys
}
