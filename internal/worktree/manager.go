package worktree

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spectrena/sw/internal/config"
	"github.com/spectrena/sw/internal/git"
)

// Git is the version-control surface the manager consumes. The default
// implementation shells out to git; tests inject a fake.
type Git interface {
	// Worktrees returns one consistent read of git's worktree registry.
	Worktrees(ctx context.Context) ([]git.WorktreeInfo, error)
	// BranchExists reports whether a local branch ref exists.
	BranchExists(ctx context.Context, branch string) bool
	// CurrentBranch returns the branch checked out in the main working tree.
	CurrentBranch(ctx context.Context) (string, error)
	// Status returns porcelain status output for the working tree at dir.
	Status(ctx context.Context, dir string) (string, error)
	// AddWorktree creates a worktree at path; newBranch creates the branch too.
	AddWorktree(ctx context.Context, path, branch string, newBranch bool) error
	// RemoveWorktree removes the worktree's working copy and registry entry.
	RemoveWorktree(ctx context.Context, path string, force bool) error
	// Checkout switches the main working tree to an existing branch.
	Checkout(ctx context.Context, branch string) error
	// Merge merges branch into the branch checked out in the main working
	// tree, recording a merge commit.
	Merge(ctx context.Context, branch string) error
	// DeleteBranch deletes a fully merged local branch ref.
	DeleteBranch(ctx context.Context, branch string) error
}

// ConflictChoice is the operator's answer when a creation target already
// exists on disk.
type ConflictChoice int

const (
	// ConflictStop aborts the creation, making no changes.
	ConflictStop ConflictChoice = iota
	// ConflictCleanup removes the existing worktree and retries.
	ConflictCleanup
	// ConflictSkip keeps the existing worktree and reports success.
	ConflictSkip
)

// Decider answers the interactive questions destructive operations ask.
// Implementations render the question however they like (terminal prompt,
// scripted answer, test fake); the manager only sees the decision.
type Decider interface {
	// ResolveConflict picks what to do with an existing target path.
	ResolveConflict(branch, path string) (ConflictChoice, error)
	// ConfirmDiscard gates removal of a worktree with uncommitted changes.
	// status is the porcelain output to show the operator.
	ConfirmDiscard(branch, status string) (bool, error)
	// ConfirmCleanup gates the batch removal of stale and orphaned
	// worktrees. One answer covers the whole batch.
	ConfirmCleanup(candidates []Candidate, totalSize string) (bool, error)
	// PickWorktree selects one branch from the menu; a negative index
	// cancels.
	PickWorktree(branches []string) (int, error)
}

// safeDecider answers every question with the non-destructive option.
type safeDecider struct{}

func (safeDecider) ResolveConflict(string, string) (ConflictChoice, error) { return ConflictStop, nil }
func (safeDecider) ConfirmDiscard(string, string) (bool, error)            { return false, nil }
func (safeDecider) ConfirmCleanup([]Candidate, string) (bool, error)       { return false, nil }
func (safeDecider) PickWorktree([]string) (int, error)                     { return -1, nil }

// Manager owns the worktree lifecycle for one repository.
type Manager struct {
	repoRoot  string
	baseRel   string // base directory relative to the repo root
	baseDir   string // absolute base directory
	protected []string
	pattern   *regexp.Regexp
	git       Git
	decider   Decider
}

// NewManager builds a manager for the repository at repoRoot. A nil g
// defaults to shelling out to git; a nil d defaults to the safe answers.
func NewManager(repoRoot string, cfg config.Config, g Git, d Decider) *Manager {
	if g == nil {
		g = gitAdapter{root: repoRoot}
	}
	if d == nil {
		d = safeDecider{}
	}
	return &Manager{
		repoRoot:  repoRoot,
		baseRel:   cfg.Worktrees.Dir,
		baseDir:   filepath.Join(repoRoot, cfg.Worktrees.Dir),
		protected: cfg.Worktrees.Protected,
		pattern:   regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}-[a-z0-9]+(?:-[a-z0-9]+)*$`, cfg.Specs.Padding)),
		git:       g,
		decider:   d,
	}
}

// BaseDir returns the absolute path of the managed base directory.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// Path returns where the worktree for branch lives, whether or not it
// exists yet.
func (m *Manager) Path(branch string) string {
	return filepath.Join(m.baseDir, branch)
}

// managed reports whether path is directly under the base directory.
// Matching is exact per path segment, not by string prefix, so a sibling
// like .worktrees-backup never counts.
func (m *Manager) managed(path string) bool {
	rel, err := filepath.Rel(m.baseDir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && filepath.Dir(rel) == "." && rel[0] != '.'
}

// gitAdapter binds the package-level git functions to one repository root.
type gitAdapter struct {
	root string
}

func (a gitAdapter) Worktrees(ctx context.Context) ([]git.WorktreeInfo, error) {
	return git.ListWorktrees(ctx, a.root)
}

func (a gitAdapter) BranchExists(ctx context.Context, branch string) bool {
	return git.BranchExists(ctx, a.root, branch)
}

func (a gitAdapter) CurrentBranch(ctx context.Context) (string, error) {
	return git.CurrentBranch(ctx, a.root)
}

func (a gitAdapter) Status(ctx context.Context, dir string) (string, error) {
	return git.Status(ctx, dir)
}

func (a gitAdapter) AddWorktree(ctx context.Context, path, branch string, newBranch bool) error {
	return git.AddWorktree(ctx, a.root, path, branch, newBranch)
}

func (a gitAdapter) RemoveWorktree(ctx context.Context, path string, force bool) error {
	return git.RemoveWorktree(ctx, a.root, path, force)
}

func (a gitAdapter) Checkout(ctx context.Context, branch string) error {
	return git.Checkout(ctx, a.root, branch)
}

func (a gitAdapter) Merge(ctx context.Context, branch string) error {
	return git.Merge(ctx, a.root, branch)
}

func (a gitAdapter) DeleteBranch(ctx context.Context, branch string) error {
	return git.DeleteBranch(ctx, a.root, branch)
}
