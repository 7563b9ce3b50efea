package worktree

import (
	"context"
	"fmt"
	"os"
	"slices"
)

// CreateResult describes what Create did.
type CreateResult struct {
	Branch string
	Path   string
	// NewBranch is true when the branch was created together with the
	// worktree, false when the worktree attached to an existing branch.
	NewBranch bool
	// Skipped is true when a pre-existing worktree was kept untouched.
	Skipped bool
}

// ValidateBranch checks that branch is a usable worktree target: non-empty,
// matching the numbered feature pattern, and not a protected branch.
func (m *Manager) ValidateBranch(branch string) error {
	if branch == "" {
		return fmt.Errorf("branch name is required")
	}
	if !m.pattern.MatchString(branch) {
		return fmt.Errorf("branch %q does not match the feature pattern %s (e.g. 001-user-auth)", branch, m.pattern)
	}
	if slices.Contains(m.protected, branch) {
		return fmt.Errorf("branch %q is protected and cannot get a worktree", branch)
	}
	return nil
}

// Create makes a worktree for branch under the base directory. An existing
// branch is attached as-is; a missing one is created from the current HEAD
// together with the worktree. When the target path already exists the
// decider picks between stopping, cleaning up and retrying, or keeping the
// existing worktree.
func (m *Manager) Create(ctx context.Context, branch string) (CreateResult, error) {
	if err := m.ValidateBranch(branch); err != nil {
		return CreateResult{}, err
	}

	if err := m.EnsureWorktreeIgnored(); err != nil {
		return CreateResult{}, err
	}
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return CreateResult{}, fmt.Errorf("failed to create %s: %w", m.baseRel, err)
	}

	path := m.Path(branch)
	if _, err := os.Stat(path); err == nil {
		choice, err := m.decider.ResolveConflict(branch, path)
		if err != nil {
			return CreateResult{}, err
		}
		switch choice {
		case ConflictSkip:
			return CreateResult{Branch: branch, Path: path, Skipped: true}, nil
		case ConflictCleanup:
			// The entry may already be gone from the registry; only the
			// directory matters for the retry.
			_ = m.git.RemoveWorktree(ctx, path, true)
			if err := os.RemoveAll(path); err != nil {
				return CreateResult{}, fmt.Errorf("failed to remove existing worktree directory: %w", err)
			}
		default:
			return CreateResult{}, fmt.Errorf("worktree for %q already exists at %s", branch, path)
		}
	}

	newBranch := !m.git.BranchExists(ctx, branch)
	if err := m.git.AddWorktree(ctx, path, branch, newBranch); err != nil {
		return CreateResult{}, err
	}

	return CreateResult{Branch: branch, Path: path, NewBranch: newBranch}, nil
}
