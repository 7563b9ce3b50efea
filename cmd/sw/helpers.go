package main

import (
	"context"

	"github.com/spectrena/sw/internal/config"
	"github.com/spectrena/sw/internal/git"
	"github.com/spectrena/sw/internal/log"
	"github.com/spectrena/sw/internal/worktree"
)

// repoContext resolves the repository root from the current directory and
// loads its configuration. All worktree and feature commands start here;
// outside a git repository they fail fast.
func repoContext(ctx context.Context) (string, config.Config, error) {
	root, err := git.RepoRoot(ctx, "")
	if err != nil {
		return "", config.Config{}, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return "", config.Config{}, err
	}
	log.FromContext(ctx).Debug("resolved repository", "root", root, "worktrees", cfg.Worktrees.Dir)
	return root, cfg, nil
}

// newManager builds the worktree manager with the terminal decider wired
// in. In a non-interactive context the decider falls back to the safe
// answers (stop, decline, cancel).
func newManager(ctx context.Context) (*worktree.Manager, error) {
	root, cfg, err := repoContext(ctx)
	if err != nil {
		return nil, err
	}
	return worktree.NewManager(root, cfg, nil, newTerminalDecider(ctx)), nil
}
