package worktree

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// RemoveResult describes the outcome of a single removal.
type RemoveResult struct {
	Branch    string
	Path      string
	Reclaimed string
	// Cancelled is true when the operator backed out (menu cancel or a
	// declined confirmation). Cancellation is a clean no-op, not an error.
	Cancelled bool
	// NoWorktrees is true when Remove was called without a branch and
	// there was nothing to pick from.
	NoWorktrees bool
}

// Remove deletes the working copy and registry entry for one worktree.
// The branch ref and any spec directory stay untouched. With an empty
// branch the decider picks from a menu of managed worktrees. Uncommitted
// changes require an explicit typed confirmation before they are
// discarded.
func (m *Manager) Remove(ctx context.Context, branch string) (RemoveResult, error) {
	if branch == "" {
		var err error
		branch, err = m.pickBranch(ctx)
		if err != nil {
			return RemoveResult{}, err
		}
		if branch == "" {
			return RemoveResult{Cancelled: true}, nil
		}
		if branch == noWorktrees {
			return RemoveResult{NoWorktrees: true}, nil
		}
	}

	path := m.Path(branch)
	if _, err := os.Stat(path); err != nil {
		return RemoveResult{}, fmt.Errorf("no worktree found for %q (expected at %s)", branch, path)
	}

	// Snapshot the size before any mutation; it is gone afterwards.
	bytes, ok := DirSize(path)

	status, err := m.git.Status(ctx, path)
	if err != nil {
		return RemoveResult{}, fmt.Errorf("failed to check %q for uncommitted changes: %v", branch, err)
	}
	if strings.TrimSpace(status) != "" {
		confirmed, err := m.decider.ConfirmDiscard(branch, status)
		if err != nil {
			return RemoveResult{}, err
		}
		if !confirmed {
			return RemoveResult{Branch: branch, Cancelled: true}, nil
		}
	}

	if err := m.git.RemoveWorktree(ctx, path, true); err != nil {
		return RemoveResult{}, fmt.Errorf("failed to remove worktree for %q: %v\nTry: git worktree prune", branch, err)
	}
	// Git can leave the directory behind on some failure paths.
	if _, err := os.Stat(path); err == nil {
		if err := os.RemoveAll(path); err != nil {
			return RemoveResult{}, fmt.Errorf("worktree unregistered but directory remains: %w", err)
		}
	}

	return RemoveResult{
		Branch:    branch,
		Path:      path,
		Reclaimed: renderSize(bytes, ok),
	}, nil
}

// noWorktrees is an impossible branch name used as a pickBranch sentinel.
const noWorktrees = "\x00none"

// pickBranch lets the decider choose among the managed worktrees in the
// registry. Returns "" on cancel, noWorktrees when the menu would be
// empty.
func (m *Manager) pickBranch(ctx context.Context) (string, error) {
	worktrees, err := m.git.Worktrees(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read worktree registry: %v", err)
	}

	var branches []string
	for _, wt := range worktrees {
		if wt.Branch != "" && m.managed(wt.Path) {
			branches = append(branches, wt.Branch)
		}
	}
	if len(branches) == 0 {
		return noWorktrees, nil
	}

	idx, err := m.decider.PickWorktree(branches)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(branches) {
		return "", nil
	}
	return branches[idx], nil
}
