package worktree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func gitignorePath(m *Manager) string {
	return filepath.Join(m.repoRoot, ".gitignore")
}

func countIgnoreEntries(t *testing.T, m *Manager) int {
	t.Helper()
	data, err := os.ReadFile(gitignorePath(m))
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.Trim(strings.TrimSpace(line), "/")
		if trimmed == ".worktrees" {
			count++
		}
	}
	return count
}

func TestEnsureWorktreeIgnoredCreates(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestManager(t)
	if err := m.EnsureWorktreeIgnored(); err != nil {
		t.Fatalf("EnsureWorktreeIgnored = %v, want nil", err)
	}
	if got := countIgnoreEntries(t, m); got != 1 {
		t.Errorf("entry count = %d, want 1", got)
	}
}

func TestEnsureWorktreeIgnoredIdempotent(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestManager(t)
	for range 3 {
		if err := m.EnsureWorktreeIgnored(); err != nil {
			t.Fatalf("EnsureWorktreeIgnored = %v, want nil", err)
		}
	}
	if got := countIgnoreEntries(t, m); got != 1 {
		t.Errorf("entry count after repeated calls = %d, want 1", got)
	}
}

func TestEnsureWorktreeIgnoredAppends(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestManager(t)
	existing := "node_modules/\n*.log"
	if err := os.WriteFile(gitignorePath(m), []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := m.EnsureWorktreeIgnored(); err != nil {
		t.Fatalf("EnsureWorktreeIgnored = %v, want nil", err)
	}

	data, err := os.ReadFile(gitignorePath(m))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, existing) {
		t.Errorf("existing entries were not preserved:\n%s", content)
	}
	if !strings.Contains(content, "\n\n# Worktrees directory (sw)\n.worktrees/\n") {
		t.Errorf("expected blank line, comment and entry appended, got:\n%s", content)
	}
}

func TestEnsureWorktreeIgnoredRecognizesVariants(t *testing.T) {
	t.Parallel()

	// Any slash variant of the entry counts as present.
	for _, variant := range []string{".worktrees", "/.worktrees", ".worktrees/", "/.worktrees/"} {
		t.Run(variant, func(t *testing.T) {
			t.Parallel()

			m, _, _ := newTestManager(t)
			if err := os.WriteFile(gitignorePath(m), []byte(variant+"\n"), 0o644); err != nil {
				t.Fatal(err)
			}

			if err := m.EnsureWorktreeIgnored(); err != nil {
				t.Fatalf("EnsureWorktreeIgnored = %v, want nil", err)
			}
			if got := countIgnoreEntries(t, m); got != 1 {
				t.Errorf("entry count = %d, want 1", got)
			}
		})
	}
}
