package worktree

import (
	"context"
	"fmt"
	"strings"
)

// Row is one managed worktree in a listing.
type Row struct {
	Branch    string `json:"branch"`
	Path      string `json:"path"`
	Status    Status `json:"status"`
	SizeBytes int64  `json:"size_bytes"`
	Size      string `json:"size"`
	Current   bool   `json:"current"`
	Dirty     bool   `json:"dirty"`
}

// ListResult is a live snapshot of all managed worktrees.
type ListResult struct {
	Rows []Row `json:"worktrees"`
	// TotalBytes aggregates over the whole base directory, not the row
	// sum, so orphaned content missing from Rows still counts.
	TotalBytes int64  `json:"total_bytes"`
	TotalSize  string `json:"total_size"`
}

// List reads the registry once and joins it with status classification
// and disk usage. Detached entries and anything outside the base
// directory are skipped; an empty result is normal, not an error.
func (m *Manager) List(ctx context.Context) (ListResult, error) {
	worktrees, err := m.git.Worktrees(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to read worktree registry: %v", err)
	}

	current, err := m.git.CurrentBranch(ctx)
	if err != nil {
		current = ""
	}

	var rows []Row
	for _, wt := range worktrees {
		if wt.Branch == "" || !m.managed(wt.Path) {
			continue
		}
		bytes, ok := DirSize(wt.Path)
		status := m.classifyRegistered(ctx, wt.Branch)
		// A stale worktree's HEAD points at a deleted ref, so git status
		// output there is unreliable; report it clean rather than dirty.
		dirty := false
		if status == StatusActive {
			out, statusErr := m.git.Status(ctx, wt.Path)
			dirty = statusErr == nil && strings.TrimSpace(out) != ""
		}
		rows = append(rows, Row{
			Branch:    wt.Branch,
			Path:      wt.Path,
			Status:    status,
			SizeBytes: bytes,
			Size:      renderSize(bytes, ok),
			Current:   wt.Branch == current,
			Dirty:     dirty,
		})
	}

	totalBytes, totalOK := DirSize(m.baseDir)
	return ListResult{
		Rows:       rows,
		TotalBytes: totalBytes,
		TotalSize:  renderSize(totalBytes, totalOK),
	}, nil
}
