package git

import (
	"context"
	"fmt"
	"strings"
)

// WorktreeInfo is one entry from the worktree registry.
type WorktreeInfo struct {
	Path       string
	Branch     string // empty for detached or bare entries
	CommitHash string
	Detached   bool
}

// ParseWorktrees parses `git worktree list --porcelain` output into a typed
// sequence of entries. Each entry starts with a "worktree <path>" line,
// optionally followed by "HEAD <hash>", "branch refs/heads/<name>" or
// "detached" lines; entries are separated by blank lines.
//
// Pure function of its input so it can be tested without a git process.
func ParseWorktrees(output []byte) []WorktreeInfo {
	var worktrees []WorktreeInfo
	var current WorktreeInfo

	for _, line := range strings.Split(string(output), "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			if current.Path != "" {
				worktrees = append(worktrees, current)
			}
			current = WorktreeInfo{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "HEAD "):
			current.CommitHash = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch refs/heads/"):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			current.Detached = true
		}
	}
	if current.Path != "" {
		worktrees = append(worktrees, current)
	}

	return worktrees
}

// ListWorktrees returns all registry entries for the repository at dir.
func ListWorktrees(ctx context.Context, dir string) ([]WorktreeInfo, error) {
	output, err := outputGit(ctx, dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %v", err)
	}
	return ParseWorktrees(output), nil
}

// AddWorktree creates a worktree at path for branch in the repository at dir.
// If newBranch is true the branch is created from the current HEAD (-b);
// otherwise the existing branch is checked out into the worktree.
func AddWorktree(ctx context.Context, dir, path, branch string, newBranch bool) error {
	var err error
	if newBranch {
		err = runGit(ctx, dir, "worktree", "add", path, "-b", branch)
	} else {
		err = runGit(ctx, dir, "worktree", "add", path, branch)
	}
	if err != nil {
		return fmt.Errorf("failed to create worktree: %v", err)
	}
	return nil
}

// RemoveWorktree removes the worktree at path from the repository at dir.
// Removal only touches the working copy and its registry entry, never the
// branch ref. Git can leave the directory behind on some failure paths;
// callers must clean up residual directories themselves.
func RemoveWorktree(ctx context.Context, dir, path string, force bool) error {
	args := []string{"worktree", "remove", path}
	if force {
		args = append(args, "--force")
	}
	if err := runGit(ctx, dir, args...); err != nil {
		return fmt.Errorf("failed to remove worktree: %v", err)
	}
	return nil
}

// PruneWorktrees drops stale worktree registry entries for the repository at dir.
func PruneWorktrees(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "worktree", "prune")
}
