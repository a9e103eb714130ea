package ui

import (
	"time"

	"pageswipe/internal/domain"
)

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// pagesChangedMsg carries a rescanned page set into the update loop
type pagesChangedMsg struct {
	pages []domain.Page
}

// errorMsg reports a background failure
type errorMsg struct {
	message string
	err     error
}

// pagerMsg contains the result of a page pager command
type pagerMsg struct {
	name string
	err  error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
