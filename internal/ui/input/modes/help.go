package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pageswipe/internal/ui/input/types"
)

// HelpMode swallows keys while the help overlay is open
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	// A drag cannot continue under the overlay
	if ctx.Dragging() {
		return []types.Action{types.CancelGestureAction{}}
	}
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "?", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.HelpScrollAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.HelpScrollAction{Delta: 1}}, true
	}
	return nil, true
}
