package worktree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureWorktreeIgnored makes sure the base directory is excluded from
// version control. Idempotent: an entry already present in any of its
// slash variants ("X", "/X", "X/", "/X/") is left alone; repeated calls
// never produce duplicates.
func (m *Manager) EnsureWorktreeIgnored() error {
	gitignore := filepath.Join(m.repoRoot, ".gitignore")
	entry := m.baseRel + "/"

	data, err := os.ReadFile(gitignore)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read .gitignore: %w", err)
		}
		content := fmt.Sprintf("# Worktrees directory (sw)\n%s\n", entry)
		if err := os.WriteFile(gitignore, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to create .gitignore: %w", err)
		}
		return nil
	}

	if hasIgnoreEntry(string(data), m.baseRel) {
		return nil
	}

	var b strings.Builder
	b.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("\n# Worktrees directory (sw)\n%s\n", entry))

	if err := os.WriteFile(gitignore, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}
	return nil
}

// hasIgnoreEntry scans content line by line for an entry matching base in
// any leading/trailing slash variant.
func hasIgnoreEntry(content, base string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimPrefix(trimmed, "/")
		trimmed = strings.TrimSuffix(trimmed, "/")
		if trimmed == base {
			return true
		}
	}
	return false
}
