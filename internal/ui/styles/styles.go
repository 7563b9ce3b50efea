// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions so status markers, tables
// and prompts stay visually consistent.
package styles

import "charm.land/lipgloss/v2"

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent = lipgloss.Color("212")

	// Success is used for active worktrees and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Warning is used for stale worktrees and dirty markers (yellow)
	Warning = lipgloss.Color("220")

	// Error is used for orphaned entries and error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for secondary text like sizes and paths (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentStyle highlights the selected item in prompts
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// ActiveStyle renders the "active" worktree status
	ActiveStyle = lipgloss.NewStyle().Foreground(Success)

	// StaleStyle renders the "stale" worktree status
	StaleStyle = lipgloss.NewStyle().Foreground(Warning)

	// OrphanedStyle renders the "orphaned" worktree status
	OrphanedStyle = lipgloss.NewStyle().Foreground(Error)

	// ErrorStyle renders error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle renders secondary text
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Status renders a worktree status word in its color.
func Status(status string) string {
	switch status {
	case "active":
		return ActiveStyle.Render(status)
	case "stale":
		return StaleStyle.Render(status)
	case "orphaned":
		return OrphanedStyle.Render(status)
	default:
		return status
	}
}
