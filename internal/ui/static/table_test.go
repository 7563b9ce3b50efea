package static

import (
	"strings"
	"testing"
)

func TestRenderTableEmpty(t *testing.T) {
	t.Parallel()

	if out := RenderTable([]string{"BRANCH", "STATUS"}, nil); out != "" {
		t.Errorf("RenderTable with no rows = %q, want empty", out)
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	out := RenderTable(
		[]string{"BRANCH", "STATUS", "SIZE", "PATH"},
		[][]string{
			{"001-auth", "active", "230.1M", "/repo/.worktrees/001-auth"},
			{"002-api", "stale", "1.5K", "/repo/.worktrees/002-api"},
		},
	)

	for _, want := range []string{"BRANCH", "001-auth", "002-api", "230.1M", "/repo/.worktrees/002-api"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTable output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("RenderTable output should end with a newline")
	}
}

func TestWorktreeRow(t *testing.T) {
	t.Parallel()

	row := WorktreeRow("001-auth", "active", "1.5K", "/repo/.worktrees/001-auth", false)

	// Must have exactly 4 columns matching headers: BRANCH, STATUS, SIZE, PATH
	if len(row) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(row))
	}
	if row[0] != "001-auth" {
		t.Errorf("column 0 (BRANCH) = %q, want %q", row[0], "001-auth")
	}
	if !strings.Contains(row[1], "active") {
		t.Errorf("column 1 (STATUS) = %q, want it to contain %q", row[1], "active")
	}
	if row[2] != "1.5K" {
		t.Errorf("column 2 (SIZE) = %q, want %q", row[2], "1.5K")
	}
	if !strings.Contains(row[3], "/repo/.worktrees/001-auth") {
		t.Errorf("column 3 (PATH) = %q, want it to contain the path", row[3])
	}
}

func TestWorktreeRowDirty(t *testing.T) {
	t.Parallel()

	row := WorktreeRow("002-api", "stale", "N/A", "/repo/.worktrees/002-api", true)

	if row[0] != "002-api*" {
		t.Errorf("dirty BRANCH cell = %q, want %q", row[0], "002-api*")
	}
}
