package carousel

import "math"

// Classification is the outcome of one move event.
type Classification struct {
	Handled          bool
	DampedOffset     float64
	PendingDirection Direction
}

// Classify turns a raw displacement into a visual offset and commit decision.
//
// Only horizontal-dominant moves are handled; a tie is left to the host.
// Pulling right on the first page or left on the last page keeps only
// (1 - Damping) of the pull. A move at least containerWidth/ThresholdDivisor
// long resolves to DirectionBack for dx > 0 and DirectionForward for dx < 0.
// A non-positive container width never commits.
func Classify(dx, dy float64, focusedIndex, pageCount int, containerWidth float64, params Params) Classification {
	if math.Abs(dx) <= math.Abs(dy) {
		return Classification{}
	}

	offset := dx
	overscroll := (dx > 0 && focusedIndex == 1) || (dx < 0 && focusedIndex == pageCount)
	if overscroll {
		offset = dx - params.Damping*dx
	}

	dir := DirectionNone
	if containerWidth > 0 && math.Abs(dx) >= params.Threshold(containerWidth) {
		if dx > 0 {
			dir = DirectionBack
		} else {
			dir = DirectionForward
		}
	}

	return Classification{
		Handled:          true,
		DampedOffset:     offset,
		PendingDirection: dir,
	}
}

// Move feeds one pointer position through Delta and Classify and applies
// the result. OnThreshold fires the first time each direction's threshold
// is reached within a gesture. Without an active gesture, or for a move
// that is not handled, s is returned unchanged.
func Move(s State, p Point, containerWidth float64, params Params, obs Observer) (State, bool) {
	dx, dy, ok := Delta(s, p)
	if !ok {
		return s, false
	}
	c := Classify(dx, dy, s.FocusedIndex, s.PageCount, containerWidth, params)
	if !c.Handled {
		return s, false
	}

	s.LiveOffset = c.DampedOffset
	s.PendingDirection = c.PendingDirection

	if mark := markFor(c.PendingDirection); mark != 0 && s.notified&mark == 0 {
		s.notified |= mark
		observerOrNop(obs).OnThreshold(c.PendingDirection)
	}
	return s, true
}
