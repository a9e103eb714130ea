package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"pageswipe/internal/carousel"
	"pageswipe/internal/ui/input/modes"
	"pageswipe/internal/ui/input/types"
)

// DefaultCellAspect is how many columns of width one terminal row spans.
// Rows are scaled by it so horizontal and vertical drags compare in
// visual distance.
const DefaultCellAspect = 2.0

// Handler turns Bubble Tea messages into actions for the current mode.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        KeyMap

	// Mouse turns pointer translation on or off
	Mouse      bool
	CellAspect float64
}

func New(keys KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
		Mouse:       true,
		CellAspect:  DefaultCellAspect,
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(modes.Bindings{
		Next:   keys.Next,
		Prev:   keys.Prev,
		First:  keys.First,
		Last:   keys.Last,
		Open:   keys.Open,
		Cancel: keys.Cancel,
		Help:   keys.Help,
		Quit:   keys.Quit,
	})
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// Keys returns the key bindings, for the help view
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// Handle translates any message into actions. Messages it does not know
// produce nothing.
func (h *Handler) Handle(msg tea.Msg, ctx types.Context) []types.Action {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.HandleKey(msg, ctx)
	case tea.MouseMsg:
		return h.HandleMouse(msg, ctx)
	case tea.BlurMsg:
		// Release may never arrive once focus is gone
		if ctx.Dragging() {
			return []types.Action{types.CancelGestureAction{}}
		}
	}
	return nil
}

// HandleKey routes a key press to the current mode and applies mode changes.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var all []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			all = append(all, action)
			continue
		}

		if cur := h.modes[h.currentMode]; cur != nil {
			all = append(all, cur.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			all = append(all, next.Enter(ctx)...)
		}
		all = append(all, action)
	}
	return all
}

// HandleMouse maps left-button press, drag and release onto gesture
// actions. Horizontal wheel ticks step one page.
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx types.Context) []types.Action {
	if !h.Mouse || h.currentMode != types.ModeNormal {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return []types.Action{types.PressAction{Point: h.point(msg)}}
		case tea.MouseButtonWheelLeft:
			return []types.Action{types.NavigateAction{By: carousel.DirectionBack}}
		case tea.MouseButtonWheelRight:
			return []types.Action{types.NavigateAction{By: carousel.DirectionForward}}
		}

	case tea.MouseActionMotion:
		// Terminals report held-button motion; plain hover is ignored
		if ctx.Dragging() && msg.Button != tea.MouseButtonNone {
			return []types.Action{types.DragAction{Point: h.point(msg)}}
		}

	case tea.MouseActionRelease:
		// Some terminals do not say which button was released
		if ctx.Dragging() {
			return []types.Action{types.ReleaseAction{}}
		}
	}
	return nil
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Reset returns to normal mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}

func (h *Handler) point(msg tea.MouseMsg) carousel.Point {
	aspect := h.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	return carousel.Point{X: float64(msg.X), Y: float64(msg.Y) * aspect}
}
