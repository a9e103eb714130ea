package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"pageswipe/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys input.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys input.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// lines builds the full help text, one entry per line
func (r *HelpRenderer) lines() []string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(k, desc string) string {
		return fmt.Sprintf("  %s%s", keyStyle.Render(k), descStyle.Render(desc))
	}
	binding := func(b key.Binding) string {
		h := b.Help()
		return entry(h.Key, h.Desc)
	}

	out := []string{
		titleStyle.Render("pageswipe help"),
		"",
		sectionStyle.Render("Keyboard"),
		binding(r.keys.Prev),
		binding(r.keys.Next),
		binding(r.keys.First),
		binding(r.keys.Last),
		binding(r.keys.Open),
		"",
		sectionStyle.Render("Mouse"),
		entry("drag ←/→", "swipe between pages"),
		entry("release", "turn once past the threshold"),
		entry("wheel ←/→", "step one page"),
		binding(r.keys.Cancel),
		"",
		sectionStyle.Render("Other"),
		entry("j/k", "scroll this help"),
		binding(r.keys.Help),
		binding(r.keys.Quit),
	}
	return out
}

// renderHelpContent renders the help visible in height rows from scrollOffset
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	lines := r.lines()
	if height <= 0 || height >= len(lines) {
		return strings.Join(lines, "\n")
	}
	maxOffset := len(lines) - height
	scrollOffset = min(max(scrollOffset, 0), maxOffset)
	return strings.Join(lines[scrollOffset:scrollOffset+height], "\n")
}

// maxScroll returns the largest useful scroll offset for height rows
func (r *HelpRenderer) maxScroll(height int) int {
	return max(len(r.lines())-height, 0)
}
