package worktree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Candidate is one stale or orphaned worktree proposed for removal.
type Candidate struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Status    Status `json:"status"`
	SizeBytes int64  `json:"size_bytes"`
	Size      string `json:"size"`
	// Dirty means the worktree still has uncommitted changes. Cleanup
	// forces removal after the batch confirmation, so dirty candidates
	// are flagged to the operator before they answer.
	Dirty bool `json:"dirty,omitempty"`
}

// CleanupReport summarizes one batch cleanup run.
type CleanupReport struct {
	Candidates []Candidate
	Removed    []string
	Skipped    []string
	// ReclaimedBytes sums the pre-removal sizes of the candidates that
	// were actually removed.
	ReclaimedBytes int64
	Reclaimed      string
	Cancelled      bool
	DryRun         bool
}

// StaleCandidates merges two independent discovery sources: registry
// entries under the base directory whose branch ref is gone, and
// directories under the base directory that the registry doesn't know
// about. The result is sorted by name.
func (m *Manager) StaleCandidates(ctx context.Context) ([]Candidate, error) {
	worktrees, err := m.git.Worktrees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree registry: %v", err)
	}

	tracked := make(map[string]bool)
	var candidates []Candidate

	for _, wt := range worktrees {
		if !m.managed(wt.Path) {
			continue
		}
		tracked[wt.Path] = true
		if wt.Branch != "" && m.git.BranchExists(ctx, wt.Branch) {
			continue
		}
		name := wt.Branch
		if name == "" {
			name = filepath.Base(wt.Path)
		}
		bytes, ok := DirSize(wt.Path)
		// With the branch ref gone HEAD no longer resolves and git status
		// reports nonsense, so only detached entries get a dirty check.
		dirty := false
		if wt.Branch == "" {
			status, statusErr := m.git.Status(ctx, wt.Path)
			dirty = statusErr == nil && strings.TrimSpace(status) != ""
		}
		candidates = append(candidates, Candidate{
			Name:      name,
			Path:      wt.Path,
			Status:    StatusStale,
			SizeBytes: bytes,
			Size:      renderSize(bytes, ok),
			Dirty:     dirty,
		})
	}

	entries, err := os.ReadDir(m.baseDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to scan %s: %w", m.baseRel, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := m.Path(entry.Name())
		if tracked[path] {
			continue
		}
		bytes, ok := DirSize(path)
		candidates = append(candidates, Candidate{
			Name:      entry.Name(),
			Path:      path,
			Status:    StatusOrphaned,
			SizeBytes: bytes,
			Size:      renderSize(bytes, ok),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})
	return candidates, nil
}

// CleanupStale removes every stale and orphaned worktree after one batch
// confirmation. A failing candidate is skipped, never aborting the rest.
// With dryRun the candidates are reported and nothing is touched.
func (m *Manager) CleanupStale(ctx context.Context, dryRun bool) (CleanupReport, error) {
	candidates, err := m.StaleCandidates(ctx)
	if err != nil {
		return CleanupReport{}, err
	}

	report := CleanupReport{
		Candidates: candidates,
		Reclaimed:  renderSize(0, true),
		DryRun:     dryRun,
	}
	if len(candidates) == 0 || dryRun {
		return report, nil
	}

	var total int64
	for _, c := range candidates {
		total += c.SizeBytes
	}
	confirmed, err := m.decider.ConfirmCleanup(candidates, renderSize(total, true))
	if err != nil {
		return CleanupReport{}, err
	}
	if !confirmed {
		report.Cancelled = true
		return report, nil
	}

	for _, c := range candidates {
		if err := m.removeCandidate(ctx, c); err != nil {
			report.Skipped = append(report.Skipped, c.Name)
			continue
		}
		report.Removed = append(report.Removed, c.Name)
		report.ReclaimedBytes += c.SizeBytes
	}
	report.Reclaimed = renderSize(report.ReclaimedBytes, true)
	return report, nil
}

// removeCandidate deletes one candidate. Registered entries must
// unregister cleanly before the directory goes away; deleting the
// directory under a still-registered worktree would leave a dangling
// registry entry.
func (m *Manager) removeCandidate(ctx context.Context, c Candidate) error {
	if c.Status == StatusStale {
		if err := m.git.RemoveWorktree(ctx, c.Path, true); err != nil {
			return err
		}
	}
	if _, err := os.Stat(c.Path); err == nil {
		return os.RemoveAll(c.Path)
	}
	return nil
}
