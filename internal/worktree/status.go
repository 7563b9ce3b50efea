package worktree

import (
	"context"
	"os"

	"github.com/spectrena/sw/internal/git"
)

// Status is the derived lifecycle state of a managed worktree.
type Status string

const (
	// StatusActive means registered in git and its branch ref exists.
	StatusActive Status = "active"
	// StatusStale means registered in git but its branch ref was deleted.
	StatusStale Status = "stale"
	// StatusOrphaned means the directory exists but git doesn't know it.
	StatusOrphaned Status = "orphaned"
	// StatusNone means no worktree directory exists for the branch.
	StatusNone Status = "none"
)

// Classify determines the lifecycle state of the worktree for branch.
// It reads the registry fresh; when a caller already holds a registry
// snapshot it should use classifyRegistered instead of re-querying.
// A failing registry query is treated as "not registered" so a corrupt
// registry degrades to orphaned rather than an error.
func (m *Manager) Classify(ctx context.Context, branch string) Status {
	path := m.Path(branch)
	if _, err := os.Stat(path); err != nil {
		return StatusNone
	}

	worktrees, err := m.git.Worktrees(ctx)
	if err != nil {
		worktrees = nil
	}
	if !registered(worktrees, path) {
		return StatusOrphaned
	}

	return m.classifyRegistered(ctx, branch)
}

// classifyRegistered resolves active vs stale for a worktree already known
// to be in the registry.
func (m *Manager) classifyRegistered(ctx context.Context, branch string) Status {
	if m.git.BranchExists(ctx, branch) {
		return StatusActive
	}
	return StatusStale
}

// registered reports whether path appears in the registry snapshot.
// Paths are compared exactly; prefix matching would mistake nested paths
// for each other.
func registered(worktrees []git.WorktreeInfo, path string) bool {
	for _, wt := range worktrees {
		if wt.Path == path {
			return true
		}
	}
	return false
}
