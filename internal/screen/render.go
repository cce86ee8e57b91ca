package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lines returns the buffer rows as plain strings, one per row. This
// is the mono-profile output and the shape golden tests compare.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for row := 0; row < b.height; row++ {
		base := b.rowBase[row]
		lines[row] = string(b.cells[base : base+b.width])
	}
	return lines
}

// ANSI serializes the buffer with per-cell colors applied. Runs of
// identically colored cells share one styled segment so a mostly
// single-color row costs one escape sequence, not forty. Cells with
// no color-plane entry render in fallback.
func (b *Buffer) ANSI(fallback string) string {
	if b.colors == nil {
		return strings.Join(b.Lines(), "\n")
	}

	styles := map[string]lipgloss.Style{}
	styleFor := func(color string) lipgloss.Style {
		if color == "" {
			color = fallback
		}
		if s, ok := styles[color]; ok {
			return s
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		styles[color] = s
		return s
	}

	var out strings.Builder
	var run strings.Builder
	for row := 0; row < b.height; row++ {
		base := b.rowBase[row]
		runColor := b.colors[base]
		run.Reset()
		for col := 0; col < b.width; col++ {
			c := b.colors[base+col]
			if c != runColor {
				out.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = c
			}
			run.WriteRune(b.cells[base+col])
		}
		out.WriteString(styleFor(runColor).Render(run.String()))
		if row < b.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
