package types

import "pageswipe/internal/carousel"

// Pointer actions
type PressAction struct {
	Point carousel.Point
}

func (a PressAction) Type() string { return "press" }

type DragAction struct {
	Point carousel.Point
}

func (a DragAction) Type() string { return "drag" }

type ReleaseAction struct{}

func (a ReleaseAction) Type() string { return "release" }

// CancelGestureAction drops an active drag without committing it
type CancelGestureAction struct{}

func (a CancelGestureAction) Type() string { return "cancel_gesture" }

// Navigation actions
type NavigateAction struct {
	By carousel.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

type JumpAction struct {
	Index int // 1-based; 0 or less counts from the end (0 = last page)
}

func (a JumpAction) Type() string { return "jump" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Command actions
type OpenPageAction struct{}

func (a OpenPageAction) Type() string { return "open_page" }

type HelpScrollAction struct {
	Delta int
}

func (a HelpScrollAction) Type() string { return "help_scroll" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
