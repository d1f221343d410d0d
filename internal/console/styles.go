// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package console

import (
	"github.com/charmbracelet/lipgloss"
)

// styles are bound to one renderer so colors follow the destination
// writer's capabilities. A plain file or buffer gets unstyled text.
type styles struct {
	prompt  lipgloss.Style
	heading lipgloss.Style
	index   lipgloss.Style
	err     lipgloss.Style
	bar     lipgloss.Style
	best    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prompt:  r.NewStyle().Foreground(lipgloss.Color("#6EC4F4")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		index:   r.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		err:     r.NewStyle().Foreground(lipgloss.Color("#F45E6E")),
		bar:     r.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		best:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#6EF4A1")),
		muted:   r.NewStyle().Faint(true),
	}
}
