// SPDX-License-Identifier: MIT

package main

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#4f46e5")
	muted  = lipgloss.Color("#6b7280")
	danger = lipgloss.Color("#e53935")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(muted)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

// panel renders body under a bold title inside a rounded border.
func panel(title, body string) string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), body))
}

// renderMarkdown formats md for the terminal; on renderer failure the
// markdown is returned as is.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}

	return out
}
