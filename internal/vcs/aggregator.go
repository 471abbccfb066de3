// Package vcs gathers git repository state for the prompt. Every lookup is
// attempted at most once per Aggregator and failures are treated as "no
// data" rather than surfaced.
package vcs

import (
	"bufio"
	"errors"
	"strings"

	"github.com/go-git/go-billy/v5"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/alexisbeaulieu97/powerline/internal/logger"
)

const (
	shortHashLength = 7
	stashRef        = plumbing.ReferenceName("refs/stash")
	stashLogPath    = "logs/refs/stash"
)

// Head identifies what is checked out.
type Head struct {
	// Name is the branch name, or a short object id when Detached.
	Name     string
	Detached bool
	// Unborn is set for a repository without commits; Name is empty.
	Unborn   bool
	Local    plumbing.Hash
	Upstream plumbing.Hash
}

// HasUpstream reports whether both sides of an ahead/behind comparison are known.
func (h Head) HasUpstream() bool {
	return !h.Local.IsZero() && !h.Upstream.IsZero()
}

// Aggregator discovers the repository containing dir and memoizes its
// head, status and stash count. It is not safe for concurrent use.
type Aggregator struct {
	dir string
	log *logger.Logger

	repo    memo[*git.Repository]
	head    memo[Head]
	status  memo[[]Flags]
	stashes memo[int]
}

// New creates an Aggregator rooted at dir. Nothing is read until first use.
func New(dir string, log *logger.Logger) *Aggregator {
	return &Aggregator{dir: dir, log: log}
}

// Repository discovers the repository by walking up from dir.
func (a *Aggregator) Repository() (*git.Repository, bool) {
	return a.repo.get(func() (*git.Repository, bool) {
		repo, err := git.PlainOpenWithOptions(a.dir, &git.PlainOpenOptions{
			DetectDotGit:          true,
			EnableDotGitCommonDir: true,
		})
		if err != nil {
			a.log.Skip("git", err, "not inside a repository")
			return nil, false
		}
		return repo, true
	})
}

// Head resolves the checked-out branch and its upstream.
func (a *Aggregator) Head() (Head, bool) {
	return a.head.get(a.resolveHead)
}

func (a *Aggregator) resolveHead() (Head, bool) {
	repo, ok := a.Repository()
	if !ok {
		return Head{}, false
	}

	branches, err := repo.Branches()
	if err != nil {
		a.log.Skip("git", err, "listing branches failed")
		return Head{}, false
	}
	defer branches.Close()

	ref, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Head{Unborn: true}, true
	}
	if err != nil {
		a.log.Skip("git", err, "resolving HEAD failed")
		return Head{}, false
	}

	var head Head
	err = branches.ForEach(func(branch *plumbing.Reference) error {
		if branch.Name() != ref.Name() {
			return nil
		}
		head.Name = branch.Name().Short()
		head.Local = branch.Hash()
		head.Upstream = a.upstream(repo, head.Name)
		return storer.ErrStop
	})
	if err != nil {
		a.log.Skip("git", err, "iterating branches failed")
		return Head{}, false
	}

	if head.Name == "" {
		head.Detached = true
		head.Name = ref.Hash().String()[:shortHashLength]
	}
	return head, true
}

func (a *Aggregator) upstream(repo *git.Repository, branch string) plumbing.Hash {
	cfg, err := repo.Config()
	if err != nil {
		a.log.Skip("git", err, "reading repository config failed")
		return plumbing.ZeroHash
	}

	bc, ok := cfg.Branches[branch]
	if !ok || bc.Merge == "" {
		return plumbing.ZeroHash
	}

	name := bc.Merge
	if bc.Remote != "" && bc.Remote != "." {
		name = plumbing.NewRemoteReferenceName(bc.Remote, bc.Merge.Short())
	}

	ref, err := repo.Reference(name, true)
	if err != nil {
		a.log.Skip("git", err, "upstream reference missing")
		return plumbing.ZeroHash
	}
	return ref.Hash()
}

// Status fetches index and worktree status once. An empty, present result
// means the tree is clean.
func (a *Aggregator) Status() ([]Flags, bool) {
	return a.status.get(func() ([]Flags, bool) {
		repo, ok := a.Repository()
		if !ok {
			return nil, false
		}

		wt, err := repo.Worktree()
		if err != nil {
			a.log.Skip("git", err, "repository has no worktree")
			return nil, false
		}

		st, err := wt.Status()
		if err != nil {
			a.log.Skip("git", err, "status failed")
			return nil, false
		}

		paths := make(map[string]Flags, len(st))
		for path, fs := range st {
			if f := flagsFor(fs); f != 0 {
				paths[path] = f
			}
		}

		idx, err := repo.Storer.Index()
		if err != nil {
			a.log.Skip("git", err, "reading index failed")
			return nil, false
		}
		detectStaged(a.headTree(repo), idx, paths)
		markConflicts(idx, paths)

		flags := make([]Flags, 0, len(paths))
		for _, path := range sortedPaths(paths) {
			flags = append(flags, paths[path])
		}
		return flags, true
	})
}

func (a *Aggregator) headTree(repo *git.Repository) *object.Tree {
	ref, err := repo.Head()
	if err != nil {
		return nil
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		a.log.Skip("git", err, "reading HEAD commit failed")
		return nil
	}
	tree, err := commit.Tree()
	if err != nil {
		a.log.Skip("git", err, "reading HEAD tree failed")
		return nil
	}
	return tree
}

// Clean reports whether the status list is empty.
func (a *Aggregator) Clean() (bool, bool) {
	flags, ok := a.Status()
	return len(flags) == 0, ok
}

// Counts classifies the status list and adds the stash count.
func (a *Aggregator) Counts() (Counts, bool) {
	flags, ok := a.Status()
	if !ok {
		return Counts{}, false
	}
	counts := Classify(flags)
	counts.Stashes = a.Stashes()
	return counts, true
}

// Stashes counts entries in the stash reflog.
func (a *Aggregator) Stashes() int {
	n, _ := a.stashes.get(func() (int, bool) {
		repo, ok := a.Repository()
		if !ok {
			return 0, false
		}
		return a.countStashes(repo), true
	})
	return n
}

func (a *Aggregator) countStashes(repo *git.Repository) int {
	if _, err := repo.Reference(stashRef, false); err != nil {
		return 0
	}

	// A stash ref always has at least one entry even if its reflog is gone.
	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return 1
	}
	n, err := countLines(storage.Filesystem(), stashLogPath)
	if err != nil {
		a.log.Skip("gitstage", err, "reading stash reflog failed")
		return 1
	}
	return max(n, 1)
}

func countLines(fs billy.Filesystem, path string) (int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			n++
		}
	}
	return n, scanner.Err()
}

// AheadBehind counts commits reachable from the local branch but not its
// upstream, and the reverse. ok is false when there is no upstream.
func (a *Aggregator) AheadBehind() (ahead, behind int, ok bool) {
	head, ok := a.Head()
	if !ok || !head.HasUpstream() {
		return 0, 0, false
	}
	repo, _ := a.Repository()

	local, err := ancestors(repo, head.Local)
	if err != nil {
		a.log.Skip("git", err, "walking local history failed")
		return 0, 0, false
	}
	upstream, err := ancestors(repo, head.Upstream)
	if err != nil {
		a.log.Skip("git", err, "walking upstream history failed")
		return 0, 0, false
	}

	for hash := range local {
		if _, shared := upstream[hash]; !shared {
			ahead++
		}
	}
	for hash := range upstream {
		if _, shared := local[hash]; !shared {
			behind++
		}
	}
	return ahead, behind, true
}

func ancestors(repo *git.Repository, from plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	commit, err := repo.CommitObject(from)
	if err != nil {
		return nil, err
	}

	seen := make(map[plumbing.Hash]struct{})
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = struct{}{}
		return nil
	})
	return seen, err
}
