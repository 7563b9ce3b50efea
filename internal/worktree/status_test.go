package worktree

import (
	"errors"
	"os"
	"testing"
)

func TestClassifyNone(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestManager(t)
	if got := m.Classify(t.Context(), "001-auth"); got != StatusNone {
		t.Errorf("Classify without directory = %q, want %q", got, StatusNone)
	}
}

func TestClassifyActive(t *testing.T) {
	t.Parallel()

	m, fg, _ := newTestManager(t)
	seedWorktree(t, m, fg, "001-auth", 10, true)

	if got := m.Classify(t.Context(), "001-auth"); got != StatusActive {
		t.Errorf("Classify = %q, want %q", got, StatusActive)
	}
}

func TestClassifyStale(t *testing.T) {
	t.Parallel()

	m, fg, _ := newTestManager(t)
	// Registered, but the branch ref is gone.
	seedWorktree(t, m, fg, "002-api", 10, false)

	if got := m.Classify(t.Context(), "002-api"); got != StatusStale {
		t.Errorf("Classify = %q, want %q", got, StatusStale)
	}
}

func TestClassifyOrphaned(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestManager(t)
	// Directory on disk, nothing in the registry.
	if err := os.MkdirAll(m.Path("003-ui"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := m.Classify(t.Context(), "003-ui"); got != StatusOrphaned {
		t.Errorf("Classify = %q, want %q", got, StatusOrphaned)
	}
}

func TestClassifyRegistryFailure(t *testing.T) {
	t.Parallel()

	// A failing registry query degrades to "not registered", never an
	// error or a false active.
	m, fg, _ := newTestManager(t)
	seedWorktree(t, m, fg, "001-auth", 10, true)
	fg.worktreesErr = errors.New("registry locked")

	if got := m.Classify(t.Context(), "001-auth"); got != StatusOrphaned {
		t.Errorf("Classify with failing registry = %q, want %q", got, StatusOrphaned)
	}
}

func TestClassifyExactPathMatch(t *testing.T) {
	t.Parallel()

	// "001-auth-extra" being registered must not make "001-auth" count
	// as registered via prefix matching.
	m, fg, _ := newTestManager(t)
	seedWorktree(t, m, fg, "001-auth-extra", 10, true)
	if err := os.MkdirAll(m.Path("001-auth"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := m.Classify(t.Context(), "001-auth"); got != StatusOrphaned {
		t.Errorf("Classify = %q, want %q", got, StatusOrphaned)
	}
}
