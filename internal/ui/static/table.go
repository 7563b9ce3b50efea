// Package static provides non-interactive terminal output components.
//
// This package renders formatted output that needs no user interaction,
// such as the worktree listing table.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/spectrena/sw/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// WorktreeRow builds one listing row: BRANCH, STATUS, SIZE, PATH.
// Dirty worktrees get a "*" after the branch name; the status word is
// colored but stays greppable.
func WorktreeRow(branch, status, size, path string, dirty bool) []string {
	name := branch
	if dirty {
		name += "*"
	}
	return []string{
		name,
		styles.Status(status),
		size,
		styles.MutedStyle.Render(path),
	}
}
