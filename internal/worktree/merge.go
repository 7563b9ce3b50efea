package worktree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MergeResult describes what one merge actually did.
type MergeResult struct {
	Branch        string
	Target        string
	RemovedPath   string
	BranchDeleted bool
}

// Merge integrates a finished feature branch into the default branch,
// removes its worktree, and optionally deletes the branch ref. The
// worktree removal is not forced, so uncommitted changes in it abort
// after the merge commit instead of being discarded.
func (m *Manager) Merge(ctx context.Context, branch string, deleteBranch bool) (MergeResult, error) {
	if branch == "" {
		return MergeResult{}, fmt.Errorf("branch name is required")
	}
	if !m.git.BranchExists(ctx, branch) {
		return MergeResult{}, fmt.Errorf("branch %q does not exist", branch)
	}

	target := ""
	for _, t := range []string{"main", "master"} {
		if m.git.BranchExists(ctx, t) {
			target = t
			break
		}
	}
	if target == "" {
		return MergeResult{}, fmt.Errorf("no main or master branch to merge into")
	}
	if branch == target {
		return MergeResult{}, fmt.Errorf("cannot merge %q into itself", branch)
	}

	path := m.registeredPath(ctx, branch)
	if path != "" {
		if cwd, err := os.Getwd(); err == nil && within(path, cwd) {
			return MergeResult{}, fmt.Errorf(
				"cannot merge from inside the worktree being removed; cd %s first", m.repoRoot)
		}
	}

	result := MergeResult{Branch: branch, Target: target}

	if err := m.git.Checkout(ctx, target); err != nil {
		return result, err
	}
	if err := m.git.Merge(ctx, branch); err != nil {
		return result, err
	}

	if path != "" {
		if err := m.git.RemoveWorktree(ctx, path, false); err != nil {
			return result, fmt.Errorf(
				"merged, but could not remove worktree: %w\nCommit or discard its changes, then run: sw remove %s", err, branch)
		}
		if _, err := os.Stat(path); err == nil {
			if err := os.RemoveAll(path); err != nil {
				return result, fmt.Errorf("failed to remove %s: %w", path, err)
			}
		}
		result.RemovedPath = path
	}

	if deleteBranch {
		if err := m.git.DeleteBranch(ctx, branch); err != nil {
			return result, err
		}
		result.BranchDeleted = true
	}
	return result, nil
}

// registeredPath returns the managed worktree path registered for
// branch, or "" when none is.
func (m *Manager) registeredPath(ctx context.Context, branch string) string {
	worktrees, err := m.git.Worktrees(ctx)
	if err != nil {
		return ""
	}
	for _, wt := range worktrees {
		if wt.Branch == branch && m.managed(wt.Path) {
			return wt.Path
		}
	}
	return ""
}

// within reports whether path is dir or inside it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
