package worktree

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spectrena/sw/internal/config"
	"github.com/spectrena/sw/internal/git"
)

var errSimulated = errors.New("simulated git failure")

func testConfig() config.Config {
	return config.Default()
}

type addCall struct {
	path      string
	branch    string
	newBranch bool
}

// fakeGit simulates git's registry and ref table in memory, with real
// directories under the test repo standing in for working copies.
type fakeGit struct {
	worktrees    []git.WorktreeInfo
	worktreesErr error
	branches     map[string]bool
	current      string
	status       map[string]string // dir -> porcelain output
	addErr       error
	removeErr    map[string]error
	leaveDir     bool // simulate git removal leaving the directory behind
	mergeErr     error
	deleteErr    error

	addCalls      []addCall
	removeCalls   []string
	checkoutCalls []string
	mergeCalls    []string
	deleteCalls   []string
}

func newFakeGit() *fakeGit {
	return &fakeGit{
		branches:  map[string]bool{"main": true},
		current:   "main",
		status:    map[string]string{},
		removeErr: map[string]error{},
	}
}

func (g *fakeGit) Worktrees(context.Context) ([]git.WorktreeInfo, error) {
	if g.worktreesErr != nil {
		return nil, g.worktreesErr
	}
	return g.worktrees, nil
}

func (g *fakeGit) BranchExists(_ context.Context, branch string) bool {
	return g.branches[branch]
}

func (g *fakeGit) CurrentBranch(context.Context) (string, error) {
	return g.current, nil
}

func (g *fakeGit) Status(_ context.Context, dir string) (string, error) {
	return g.status[dir], nil
}

func (g *fakeGit) AddWorktree(_ context.Context, path, branch string, newBranch bool) error {
	g.addCalls = append(g.addCalls, addCall{path: path, branch: branch, newBranch: newBranch})
	if g.addErr != nil {
		return g.addErr
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	g.worktrees = append(g.worktrees, git.WorktreeInfo{Path: path, Branch: branch})
	if newBranch {
		g.branches[branch] = true
	}
	return nil
}

func (g *fakeGit) RemoveWorktree(_ context.Context, path string, _ bool) error {
	g.removeCalls = append(g.removeCalls, path)
	if err := g.removeErr[path]; err != nil {
		return err
	}
	for i, wt := range g.worktrees {
		if wt.Path == path {
			g.worktrees = append(g.worktrees[:i], g.worktrees[i+1:]...)
			break
		}
	}
	if !g.leaveDir {
		return os.RemoveAll(path)
	}
	return nil
}

func (g *fakeGit) Checkout(_ context.Context, branch string) error {
	g.checkoutCalls = append(g.checkoutCalls, branch)
	g.current = branch
	return nil
}

func (g *fakeGit) Merge(_ context.Context, branch string) error {
	g.mergeCalls = append(g.mergeCalls, branch)
	return g.mergeErr
}

func (g *fakeGit) DeleteBranch(_ context.Context, branch string) error {
	g.deleteCalls = append(g.deleteCalls, branch)
	if g.deleteErr != nil {
		return g.deleteErr
	}
	delete(g.branches, branch)
	return nil
}

// fakeDecider answers with preconfigured decisions and records what it
// was asked.
type fakeDecider struct {
	conflict ConflictChoice
	discard  bool
	cleanup  bool
	pick     int

	conflictCalls int
	discardCalls  int
	cleanupCalls  int
	pickCalls     int

	lastStatus     string
	lastCandidates []Candidate
	lastTotal      string
	lastMenu       []string
}

func (d *fakeDecider) ResolveConflict(string, string) (ConflictChoice, error) {
	d.conflictCalls++
	return d.conflict, nil
}

func (d *fakeDecider) ConfirmDiscard(_, status string) (bool, error) {
	d.discardCalls++
	d.lastStatus = status
	return d.discard, nil
}

func (d *fakeDecider) ConfirmCleanup(candidates []Candidate, total string) (bool, error) {
	d.cleanupCalls++
	d.lastCandidates = candidates
	d.lastTotal = total
	return d.cleanup, nil
}

func (d *fakeDecider) PickWorktree(branches []string) (int, error) {
	d.pickCalls++
	d.lastMenu = branches
	return d.pick, nil
}

func newTestManager(t *testing.T) (*Manager, *fakeGit, *fakeDecider) {
	t.Helper()
	fg := newFakeGit()
	fd := &fakeDecider{}
	m := NewManager(t.TempDir(), testConfig(), fg, fd)
	return m, fg, fd
}

// seedWorktree sets up a worktree on disk and in the fake registry, with
// a file of the given size inside, optionally backed by a branch ref.
func seedWorktree(t *testing.T, m *Manager, fg *fakeGit, branch string, size int, withBranch bool) string {
	t.Helper()
	path := m.Path(branch)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "file.txt"), make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	fg.worktrees = append(fg.worktrees, git.WorktreeInfo{Path: path, Branch: branch})
	if withBranch {
		fg.branches[branch] = true
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
