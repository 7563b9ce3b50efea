package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/spectrena/sw/internal/log"
	"github.com/spectrena/sw/internal/output"
	"github.com/spectrena/sw/internal/ui/prompt"
	"github.com/spectrena/sw/internal/ui/static"
	"github.com/spectrena/sw/internal/ui/styles"
	"github.com/spectrena/sw/internal/worktree"
)

// terminalDecider answers the manager's questions with interactive
// prompts. Without a terminal on stdin every question resolves to the
// safe answer, with a diagnostic explaining why.
type terminalDecider struct {
	log *log.Logger
	out *output.Printer
	tty bool
}

func newTerminalDecider(ctx context.Context) *terminalDecider {
	return &terminalDecider{
		log: log.FromContext(ctx),
		out: output.FromContext(ctx),
		tty: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

func (d *terminalDecider) ResolveConflict(branch, path string) (worktree.ConflictChoice, error) {
	if !d.tty {
		d.log.Printf("Worktree for %q already exists at %s; stopping (no terminal to ask)\n", branch, path)
		return worktree.ConflictStop, nil
	}

	d.log.Printf("Worktree for %q already exists at %s\n", branch, path)
	res, err := prompt.Select("What now?", []string{
		"Stop - keep the existing worktree, abort",
		"Clean up - remove it and create a fresh one",
		"Skip - use the existing worktree as-is",
	})
	if err != nil {
		return worktree.ConflictStop, err
	}
	switch res.Index {
	case 1:
		return worktree.ConflictCleanup, nil
	case 2:
		return worktree.ConflictSkip, nil
	default:
		return worktree.ConflictStop, nil
	}
}

func (d *terminalDecider) ConfirmDiscard(branch, status string) (bool, error) {
	d.log.Printf("Worktree %q has uncommitted changes:\n\n%s\n", branch, strings.TrimRight(status, "\n"))
	if !d.tty {
		d.log.Printf("Declining removal (no terminal to confirm discarding changes)\n")
		return false, nil
	}

	res, err := prompt.ConfirmTyped(
		fmt.Sprintf("Remove %q and discard these changes?", branch), "yes")
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

func (d *terminalDecider) ConfirmCleanup(candidates []worktree.Candidate, totalSize string) (bool, error) {
	rows := make([][]string, 0, len(candidates))
	dirty := 0
	for _, c := range candidates {
		name := c.Name
		if c.Dirty {
			name += "*"
			dirty++
		}
		rows = append(rows, []string{name, styles.Status(string(c.Status)), c.Size, c.Path})
	}
	d.out.Print(static.RenderTable([]string{"WORKTREE", "STATUS", "SIZE", "PATH"}, rows))
	d.out.Printf("%d worktree(s), %s total\n", len(candidates), totalSize)
	if dirty > 0 {
		d.out.Println(styles.StaleStyle.Render(
			fmt.Sprintf("Warning: %d worktree(s) marked * have uncommitted changes that will be lost", dirty)))
	}

	if !d.tty {
		d.log.Printf("Declining cleanup (no terminal to confirm)\n")
		return false, nil
	}

	res, err := prompt.Confirm(fmt.Sprintf("Remove %d worktree(s)?", len(candidates)))
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

func (d *terminalDecider) PickWorktree(branches []string) (int, error) {
	if !d.tty {
		d.log.Printf("No branch given and no terminal to pick one; cancelling\n")
		return -1, nil
	}

	res, err := prompt.Select("Select a worktree to remove", branches)
	if err != nil {
		return -1, err
	}
	if res.Cancelled {
		return -1, nil
	}
	return res.Index, nil
}
