package input

import "pageswipe/internal/carousel"

// Target is the part of a carousel that input drives
type Target interface {
	Begin(p carousel.Point)
	Move(p carousel.Point) bool
	End()
	Cancel()
	Increment(by carousel.Direction) bool
	JumpTo(index int) bool
	State() carousel.State
}

// TargetContext implements types.Context over a Target
type TargetContext struct {
	Target Target
}

// FocusedIndex returns the focused 1-based page
func (c TargetContext) FocusedIndex() int {
	return c.Target.State().FocusedIndex
}

// PageCount returns the number of pages
func (c TargetContext) PageCount() int {
	return c.Target.State().PageCount
}

// Dragging reports whether a gesture is active
func (c TargetContext) Dragging() bool {
	return c.Target.State().Dragging()
}
