// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package console

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// chartWidth is the bar length of a perfect mean score.
const chartWidth = 40

// RenderChart writes a horizontal bar chart of the mean score per
// candidate value, marking the best candidate.
func RenderChart(w io.Writer, result *recommend.TuningResult) error {
	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	b.WriteString(st.heading.Render(result.Parameter.Label()))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s\n", st.muted.Render(fmt.Sprintf("mean list rating over %d subject(s)", result.Subjects)))

	for _, m := range result.Means {
		filled := int(math.Round(m.Mean / maxRating * chartWidth))
		filled = max(0, min(filled, chartWidth))

		bar := strings.Repeat("█", filled) + strings.Repeat(" ", chartWidth-filled)
		line := fmt.Sprintf("%4d │ %s %.2f", m.Value, st.bar.Render(bar), m.Mean)
		if m.Value == result.Best {
			line += " " + st.best.Render("best")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
