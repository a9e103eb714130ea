package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPages is returned when a carousel is built over an empty page set.
	ErrNoPages = errors.New("carousel needs at least one page")
	// ErrInvalidParams is returned when gesture parameters are out of range.
	ErrInvalidParams = errors.New("invalid gesture parameters")
)

// Direction is the page-change direction a gesture resolves to.
// Dragging right (dx > 0) yields DirectionBack, dragging left yields DirectionForward.
type Direction int

const (
	DirectionBack    Direction = -1
	DirectionNone    Direction = 0
	DirectionForward Direction = 1
)

// String returns a short label for logs and status lines
func (d Direction) String() string {
	switch d {
	case DirectionBack:
		return "back"
	case DirectionForward:
		return "forward"
	default:
		return "none"
	}
}

// Point is a coordinate in the input source's coordinate space.
type Point struct {
	X, Y float64
}

// BeginPolicy decides what a second Begin does while a gesture is active.
type BeginPolicy int

const (
	// IgnoreWhileActive keeps the current anchor and drops the new press.
	IgnoreWhileActive BeginPolicy = iota
	// ReplaceAnchor starts a fresh gesture from the new press.
	ReplaceAnchor
)

// String returns the config spelling of the policy
func (p BeginPolicy) String() string {
	if p == ReplaceAnchor {
		return "replace"
	}
	return "ignore"
}

// ParseBeginPolicy maps a config value onto a BeginPolicy
func ParseBeginPolicy(s string) (BeginPolicy, error) {
	switch s {
	case "", "ignore":
		return IgnoreWhileActive, nil
	case "replace":
		return ReplaceAnchor, nil
	}
	return IgnoreWhileActive, fmt.Errorf("%w: unknown begin policy %q", ErrInvalidParams, s)
}

// Params tunes the gesture pipeline.
type Params struct {
	// Damping is the share of an overscroll pull that is dropped (0.65 keeps 35%).
	Damping float64
	// ThresholdDivisor sets the commit distance to containerWidth / ThresholdDivisor.
	ThresholdDivisor float64
	BeginPolicy      BeginPolicy
}

// DefaultParams returns the stock rubber-band and threshold tuning
func DefaultParams() Params {
	return Params{
		Damping:          0.65,
		ThresholdDivisor: 3.5,
		BeginPolicy:      IgnoreWhileActive,
	}
}

// Validate reports whether the parameters can drive a carousel
func (p Params) Validate() error {
	if p.Damping < 0 || p.Damping > 1 {
		return fmt.Errorf("%w: damping %v outside [0,1]", ErrInvalidParams, p.Damping)
	}
	if p.ThresholdDivisor <= 0 {
		return fmt.Errorf("%w: threshold divisor must be positive, got %v", ErrInvalidParams, p.ThresholdDivisor)
	}
	if p.BeginPolicy != IgnoreWhileActive && p.BeginPolicy != ReplaceAnchor {
		return fmt.Errorf("%w: begin policy %d", ErrInvalidParams, p.BeginPolicy)
	}
	return nil
}

// Threshold returns the absolute displacement needed to commit a page change
func (p Params) Threshold(containerWidth float64) float64 {
	return containerWidth / p.ThresholdDivisor
}

// thresholdMarks records which directions already fired OnThreshold in the
// current gesture.
type thresholdMarks uint8

const (
	markBack thresholdMarks = 1 << iota
	markForward
)

func markFor(d Direction) thresholdMarks {
	switch d {
	case DirectionBack:
		return markBack
	case DirectionForward:
		return markForward
	}
	return 0
}

// State is the interaction state of one carousel.
//
// Anchor is the only signal that a gesture is in progress. LiveOffset and
// PendingDirection are zero whenever Anchor is nil. Transition functions in
// this package take a State and return the next one; Anchor is never
// mutated in place, only replaced.
type State struct {
	FocusedIndex     int // 1-based
	PageCount        int
	Anchor           *Point
	LiveOffset       float64
	PendingDirection Direction

	notified thresholdMarks
}

// NewState returns an idle state focused on the first page
func NewState(pageCount int) (State, error) {
	if pageCount < 1 {
		return State{}, ErrNoPages
	}
	return State{FocusedIndex: 1, PageCount: pageCount}, nil
}

// Dragging reports whether a gesture is active
func (s State) Dragging() bool {
	return s.Anchor != nil
}

// idle drops every per-gesture field.
func (s State) idle() State {
	s.Anchor = nil
	s.LiveOffset = 0
	s.PendingDirection = DirectionNone
	s.notified = 0
	return s
}
