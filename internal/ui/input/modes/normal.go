package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pageswipe/internal/carousel"
	"pageswipe/internal/ui/input/types"
)

// Bindings is the subset of the key map normal mode reads
type Bindings struct {
	Next, Prev, First, Last, Open, Cancel, Help, Quit key.Binding
}

type NormalMode struct {
	keys Bindings
}

func NewNormalMode(keys Bindings) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{By: carousel.DirectionForward}}, true
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.NavigateAction{By: carousel.DirectionBack}}, true
	case key.Matches(msg, m.keys.First):
		return []types.Action{types.JumpAction{Index: 1}}, true
	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.JumpAction{Index: 0}}, true
	case key.Matches(msg, m.keys.Open):
		if ctx.Dragging() {
			return nil, true
		}
		return []types.Action{types.OpenPageAction{}}, true
	case key.Matches(msg, m.keys.Cancel):
		// Esc only matters mid-drag
		if ctx.Dragging() {
			return []types.Action{types.CancelGestureAction{}}, true
		}
		return nil, false
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}
