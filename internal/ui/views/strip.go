package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pageswipe/internal/domain"
)

// StripShift converts a carousel frame into a horizontal shift in columns.
// percent is the strip translation in percent of the whole strip, live is
// the drag offset in columns. A negative result moves the strip left.
func StripShift(percent, live float64, pageCount, width int) float64 {
	stripWidth := float64(pageCount * width)
	return -percent/100*stripWidth + live
}

// renderStrip draws the window of the page strip visible at shift.
// Only the pages overlapping the window are rendered.
func (r *Renderer) renderStrip(pages []domain.Page, width, height int, shift float64) string {
	if width <= 0 || height <= 0 || len(pages) == 0 {
		return ""
	}

	// Column of the strip at the left edge of the window
	start := int(math.Round(-shift))

	first := floorDiv(start, width)
	last := floorDiv(start+width-1, width)
	if first < 0 {
		first = 0
	}
	if last > len(pages)-1 {
		last = len(pages) - 1
	}

	var boxes []string
	for i := first; i <= last; i++ {
		boxes = append(boxes, r.renderPage(pages[i], width, height))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	// Window start relative to the first rendered page
	local := start - first*width
	blank := strings.Repeat(" ", width)

	lines := strings.Split(joined, "\n")
	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if len(boxes) == 0 || row >= len(lines) {
			out = append(out, blank)
			continue
		}
		out = append(out, cutWindow(lines[row], local, width))
	}
	return strings.Join(out, "\n")
}

// renderPage draws one page box exactly width x height cells.
func (r *Renderer) renderPage(p domain.Page, width, height int) string {
	frameW, frameH := r.styles.Page.GetFrameSize()
	innerW := max(width-frameW, 1)
	innerH := max(height-frameH, 1)

	title := r.styles.PageTitle.Render(ansi.Truncate(p.Name, innerW, "…"))
	body := lipgloss.NewStyle().Width(innerW).Render(strings.TrimRight(p.Body, "\n"))
	content := lipgloss.JoinVertical(lipgloss.Left, title, body)

	// Clip overflowing content, then pad to the full box
	contentLines := strings.Split(content, "\n")
	if len(contentLines) > innerH {
		contentLines = contentLines[:innerH]
	}
	content = strings.Join(contentLines, "\n")

	return r.styles.Page.
		Width(innerW + r.styles.Page.GetHorizontalPadding()).
		Height(innerH + r.styles.Page.GetVerticalPadding()).
		Render(content)
}

// cutWindow returns width cells of line starting at column from. Columns
// before the start of the line or past its end render as blanks.
func cutWindow(line string, from, width int) string {
	if from < 0 {
		line = strings.Repeat(" ", -from) + line
		from = 0
	}
	line = ansi.TruncateLeft(line, from, "")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}
