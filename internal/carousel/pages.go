package carousel

// Increment moves focus by one page in either direction.
// A step that would leave [1, PageCount] is dropped silently, as is a zero
// or out-of-range step. OnPageTurn fires only when focus actually changes.
func Increment(s State, by Direction, obs Observer) (State, bool) {
	if by != DirectionBack && by != DirectionForward {
		return s, false
	}
	return JumpTo(s, s.FocusedIndex+int(by), obs)
}

// JumpTo focuses an absolute page. Out-of-range targets and jumps to the
// already focused page are no-ops.
func JumpTo(s State, index int, obs Observer) (State, bool) {
	if index < 1 || index > s.PageCount || index == s.FocusedIndex {
		return s, false
	}
	s.FocusedIndex = index
	observerOrNop(obs).OnPageTurn(index)
	return s, true
}

// EndGesture commits the pending direction and returns to idle.
// The reset happens whether or not the commit succeeded, so a boundary
// swipe just snaps back. Calling it on an idle state changes nothing.
func EndGesture(s State, obs Observer) State {
	s, _ = Increment(s, s.PendingDirection, obs)
	return End(s)
}

// CurrentOffsetFraction is the percentage of the page strip to translate by
// before LiveOffset is added on top.
func CurrentOffsetFraction(s State) float64 {
	if s.PageCount < 1 {
		return 0
	}
	return float64(s.FocusedIndex-1) / float64(s.PageCount) * 100
}

// Resize swaps in a new page count. Focus is clamped into range and any
// active gesture is dropped without committing. No observer is notified.
func Resize(s State, pageCount int) (State, error) {
	if pageCount < 1 {
		return s, ErrNoPages
	}
	s = s.idle()
	s.PageCount = pageCount
	if s.FocusedIndex > pageCount {
		s.FocusedIndex = pageCount
	}
	if s.FocusedIndex < 1 {
		s.FocusedIndex = 1
	}
	return s, nil
}
