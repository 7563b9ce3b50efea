// Package git provides git operations via shell commands.
//
// All operations call the git CLI through [os/exec] rather than a Go git
// library. This keeps the tool compatible with user configuration (hooks,
// credential helpers, aliases) and lets git's own locking protect the
// worktree registry.
//
// # Worktree Operations
//
//   - [ListWorktrees]: read the worktree registry (porcelain)
//   - [ParseWorktrees]: pure parser for the porcelain format
//   - [AddWorktree]: create a worktree, optionally with a new branch
//   - [RemoveWorktree]: forced or plain removal
//   - [PruneWorktrees]: drop stale registry entries
//
// # Repository Operations
//
//   - [RepoRoot]: resolve the repository root
//   - [CurrentBranch], [BranchExists], [CreateBranch]: branch queries
//   - [Status]: porcelain status for dirty detection
package git
