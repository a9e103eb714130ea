package input

import "pageswipe/internal/ui/input/types"

// Dispatch applies a carousel action to t. It reports false for actions
// that belong to the host (open, quit, help) and for moves the carousel
// did not take as a swipe.
func Dispatch(t Target, action types.Action) bool {
	switch a := action.(type) {
	case types.PressAction:
		t.Begin(a.Point)
		return true
	case types.DragAction:
		return t.Move(a.Point)
	case types.ReleaseAction:
		t.End()
		return true
	case types.CancelGestureAction:
		t.Cancel()
		return true
	case types.NavigateAction:
		t.Increment(a.By)
		return true
	case types.JumpAction:
		index := a.Index
		if index <= 0 {
			index += t.State().PageCount
		}
		t.JumpTo(index)
		return true
	}
	return false
}

// DispatchAll applies actions in order and returns the ones Dispatch did
// not consume
func DispatchAll(t Target, actions []types.Action) []types.Action {
	var rest []types.Action
	for _, a := range actions {
		switch a.(type) {
		case types.DragAction:
			// An unhandled drag is still a pointer action, not host work
			Dispatch(t, a)
		default:
			if !Dispatch(t, a) {
				rest = append(rest, a)
			}
		}
	}
	return rest
}
