package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOverlay centres content in a box over a dimmed copy of the main view.
func (r *Renderer) renderOverlay(mainContent, content string, width, height int) string {
	box := r.styles.HelpBox.Render(content)
	boxW := lipgloss.Width(box)
	boxH := lipgloss.Height(box)
	if boxW >= width || boxH >= height {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	x := (width - boxW) / 2
	y := (height - boxH) / 2

	base := strings.Split(mainContent, "\n")
	for len(base) < height {
		base = append(base, "")
	}
	boxLines := strings.Split(box, "\n")

	out := make([]string, len(base))
	for i, line := range base {
		plain := r.styles.Dim.Render(cutWindow(stripANSI(line), 0, width))
		if i < y || i >= y+boxH {
			out[i] = plain
			continue
		}
		left := cutWindow(stripANSI(line), 0, x)
		right := cutWindow(stripANSI(line), x+boxW, width-x-boxW)
		out[i] = r.styles.Dim.Render(left) + boxLines[i-y] + r.styles.Dim.Render(right)
	}
	return strings.Join(out, "\n")
}
