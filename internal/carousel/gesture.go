package carousel

// Begin anchors a new gesture at p.
//
// With IgnoreWhileActive a press during an active gesture returns s
// unchanged. With ReplaceAnchor the active gesture is dropped without a
// commit and a fresh one starts at p.
func Begin(s State, p Point, policy BeginPolicy) State {
	if s.Dragging() {
		if policy != ReplaceAnchor {
			return s
		}
		s = s.idle()
	}
	anchor := p
	s.Anchor = &anchor
	return s
}

// Delta returns the displacement of p from the gesture anchor.
// ok is false when no gesture is active.
func Delta(s State, p Point) (dx, dy float64, ok bool) {
	if s.Anchor == nil {
		return 0, 0, false
	}
	return p.X - s.Anchor.X, p.Y - s.Anchor.Y, true
}

// End clears the anchor along with the offset and direction that depend on it.
func End(s State) State {
	return s.idle()
}
