// Package worktree manages the lifecycle of feature worktrees under the
// repository's managed base directory (.worktrees/ by default).
//
// Every managed worktree is bound to exactly one numbered feature branch
// and lives at <repo-root>/<base>/<branch-name>. The main working tree is
// never treated as managed even though it appears in git's registry.
//
// A worktree's state is derived, never stored: membership in git's
// worktree registry crossed with existence of the bound branch ref yields
// active, stale, orphaned or none. See [Status].
//
// All interactive decisions go through the [Decider] interface so the
// same logic runs in tests and scripts; without a decider every
// destructive question resolves to the safe answer (stop, decline,
// cancel).
package worktree
