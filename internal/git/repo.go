package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNotARepository indicates the working directory is not inside a git
// repository. Worktree operations are meaningless without one.
var ErrNotARepository = fmt.Errorf("not in a git repository")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// RepoRoot resolves the absolute repository root from dir (empty for cwd).
// Returns ErrNotARepository if git fails or is not installed.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", ErrNotARepository
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the current branch name in dir.
// Returns "(detached)" for detached HEAD state.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// BranchExists checks if a local branch ref exists in the repository at dir.
// A non-zero exit from show-ref means the branch does not exist.
func BranchExists(ctx context.Context, dir, branch string) bool {
	return runGit(ctx, dir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// CreateBranch creates and checks out a new branch in dir.
func CreateBranch(ctx context.Context, dir, branch string) error {
	if err := runGit(ctx, dir, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("failed to create branch %q: %v", branch, err)
	}
	return nil
}

// Checkout switches the working tree at dir to an existing branch.
func Checkout(ctx context.Context, dir, branch string) error {
	if err := runGit(ctx, dir, "checkout", branch); err != nil {
		return fmt.Errorf("failed to checkout %q: %v", branch, err)
	}
	return nil
}

// Merge merges branch into the branch checked out at dir, always
// recording a merge commit.
func Merge(ctx context.Context, dir, branch string) error {
	if err := runGit(ctx, dir, "merge", "--no-ff", "-m", "Merge "+branch, branch); err != nil {
		return fmt.Errorf("failed to merge %q: %v", branch, err)
	}
	return nil
}

// DeleteBranch deletes a local branch at dir. Refuses unmerged branches,
// the same guard as git branch -d.
func DeleteBranch(ctx context.Context, dir, branch string) error {
	if err := runGit(ctx, dir, "branch", "-d", branch); err != nil {
		return fmt.Errorf("failed to delete branch %q: %v", branch, err)
	}
	return nil
}

// LocalBranches returns all local branch names in the repository at dir.
func LocalBranches(ctx context.Context, dir string) ([]string, error) {
	output, err := outputGit(ctx, dir, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %v", err)
	}
	var branches []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// Status returns the porcelain status output for the working tree at dir.
// The subprocess runs with dir as its working directory; the caller's cwd
// is never changed.
func Status(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %v", err)
	}
	return string(output), nil
}

// IsDirty returns true if the working tree at dir has uncommitted changes or
// untracked files. Errors are treated as clean, the safe default for display;
// destructive paths use Status directly and surface the error.
func IsDirty(ctx context.Context, dir string) bool {
	out, err := Status(ctx, dir)
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}
