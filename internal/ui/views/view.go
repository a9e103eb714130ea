package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"pageswipe/internal/carousel"
	"pageswipe/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Pages         []domain.Page
	Frame         carousel.Frame
	Shift         float64 // eased strip shift in columns
	StatusMessage string
	ShowHelp      bool
	HelpContent   string
	HelpModel     help.Model
	HelpKeys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Chrome is the number of rows outside the page strip: header, status, footer
const Chrome = 3

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return "Loading..."
	}

	stripHeight := max(state.Height-Chrome, 1)

	var b strings.Builder
	b.WriteString(r.renderHeader(state))
	b.WriteString("\n")
	b.WriteString(r.renderStrip(state.Pages, state.Width, stripHeight, state.Shift))
	b.WriteString("\n")
	b.WriteString(r.renderStatus(state))
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render(state.HelpModel.View(state.HelpKeys)))

	main := b.String()
	if state.ShowHelp {
		return r.renderOverlay(main, state.HelpContent, state.Width, state.Height)
	}
	return main
}

func (r *Renderer) renderHeader(state ViewState) string {
	f := state.Frame
	name := ""
	if f.FocusedIndex >= 1 && f.FocusedIndex <= len(state.Pages) {
		name = state.Pages[f.FocusedIndex-1].Name
	}
	left := r.styles.Title.Render("pageswipe") + "  " + name
	right := r.styles.Counter.Render(fmt.Sprintf("%d/%d", f.FocusedIndex, f.PageCount))

	gap := max(state.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderStatus(state ViewState) string {
	dots := r.Dots(state.Frame)

	msg := state.StatusMessage
	style := r.styles.Status
	if f := state.Frame; f.Dragging && f.Pending != carousel.DirectionNone {
		target := f.FocusedIndex + int(f.Pending)
		if target < 1 || target > f.PageCount {
			msg = "no more pages"
			style = r.styles.StatusStuck
		} else {
			msg = fmt.Sprintf("release to go %s", f.Pending)
			style = r.styles.StatusArmed
		}
	}

	if msg == "" {
		return dots
	}
	return dots + "  " + style.Render(msg)
}

// Dots renders one marker per page with the focused one highlighted
func (r *Renderer) Dots(f carousel.Frame) string {
	// Too many pages to draw one dot each
	if f.PageCount > 40 {
		return r.styles.Counter.Render(fmt.Sprintf("page %d of %d", f.FocusedIndex, f.PageCount))
	}
	parts := make([]string, f.PageCount)
	for i := range parts {
		if i+1 == f.FocusedIndex {
			parts[i] = r.styles.DotFocused.Render("●")
		} else {
			parts[i] = r.styles.Dot.Render("○")
		}
	}
	return strings.Join(parts, " ")
}
