package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	frameInterval = 30 * time.Millisecond
	easeRate      = 0.35 // fraction of the remaining distance covered per frame
	settleCells   = 0.5
)

// Easing follows a target strip shift. It only ever reads the carousel;
// the carousel state is not touched by the animation.
type Easing struct {
	shown  float64
	target float64
}

// Shown returns the shift to draw this frame
func (e *Easing) Shown() float64 {
	return e.shown
}

// Target returns the shift being approached
func (e *Easing) Target() float64 {
	return e.target
}

// Snap jumps straight to target
func (e *Easing) Snap(target float64) {
	e.shown = target
	e.target = target
}

// SetTarget changes the target and reports whether frames are needed to reach it
func (e *Easing) SetTarget(target float64) bool {
	e.target = target
	return !e.Settled()
}

// Settled reports whether the shown shift has reached the target
func (e *Easing) Settled() bool {
	return math.Abs(e.target-e.shown) < settleCells
}

// Step advances one frame and reports whether more frames are needed
func (e *Easing) Step() bool {
	if e.Settled() {
		e.shown = e.target
		return false
	}
	e.shown += (e.target - e.shown) * easeRate
	if e.Settled() {
		e.shown = e.target
		return false
	}
	return true
}

// tick returns a command that sends a tick message after a frame
func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
